package tincture

// DefaultChunkSize is the number of lanes one work item of Batch execution
// processes.
const DefaultChunkSize = 4096

// BatchOption configures a Batch during creation.
// Use functional options to customize execution behavior.
//
// Example:
//
//	// Default: parallel execution in chunks of DefaultChunkSize lanes
//	b := tincture.NewBatch(colors)
//
//	// Smaller work items for expensive programs
//	b := tincture.NewBatch(colors, tincture.WithChunkSize(512))
type BatchOption func(*batchOptions)

// batchOptions holds optional configuration for Batch creation.
type batchOptions struct {
	chunkSize int
	serial    bool
}

// defaultBatchOptions returns the default batch options.
func defaultBatchOptions() batchOptions {
	return batchOptions{
		chunkSize: DefaultChunkSize,
	}
}

// WithChunkSize sets how many lanes one parallel work item processes.
// Values below 1 restore DefaultChunkSize.
func WithChunkSize(n int) BatchOption {
	return func(o *batchOptions) {
		if n < 1 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithSerial runs execution on the calling goroutine instead of the shared
// worker pool. Useful for small batches and for callers that manage their
// own parallelism.
func WithSerial() BatchOption {
	return func(o *batchOptions) {
		o.serial = true
	}
}
