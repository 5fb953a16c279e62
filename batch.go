package tincture

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/tincture/internal/blend"
	"github.com/gogpu/tincture/internal/parallel"
	"github.com/gogpu/tincture/internal/queue"
	"github.com/gogpu/tincture/internal/wide"
)

// Batch is an ordered collection of colors with a queue of deferred
// operations.
//
// Queuing methods (Add, SubScalars, Blend, ...) record one instruction each
// and return immediately; they never block, even while another goroutine is
// executing. ExecuteInPlace applies every queued instruction, in the order
// it was queued, to every color, then clamps and rounds the results back to
// 8-bit channels. Intermediate values are not clamped between instructions.
//
// Thread safety: Batch is safe for concurrent use. Execution holds an
// exclusive lock on the colors for its whole duration; Get, Set, Len and
// Colors wait for it. Queuing never takes the lock.
type Batch struct {
	mu     sync.RWMutex
	words  []uint32
	queue  queue.Queue[*instruction]
	config batchOptions
}

// NewBatch creates a batch holding a copy of colors.
func NewBatch(colors []Color, opts ...BatchOption) *Batch {
	config := defaultBatchOptions()
	for _, opt := range opts {
		opt(&config)
	}

	words := make([]uint32, len(colors))
	for i, c := range colors {
		words[i] = uint32(c)
	}
	return &Batch{words: words, config: config}
}

// =============================================================================
// Queuing
// =============================================================================

func (b *Batch) push(in *instruction) *Batch {
	if len(in.operands) > 0 {
		b.queue.Push(in)
	}
	return b
}

func colorOperands(colors []Color, includeAlpha bool, identity float32) []wide.F32x4 {
	out := make([]wide.F32x4, len(colors))
	for i, c := range colors {
		out[i] = colorOperand(c, includeAlpha, identity)
	}
	return out
}

func scalarOperands(scalars []float64, includeAlpha bool, identity float32) []wide.F32x4 {
	out := make([]wide.F32x4, len(scalars))
	for i, s := range scalars {
		out[i] = scalarOperand(s, includeAlpha, identity)
	}
	return out
}

// Add queues adding each of colors, in order, to every color.
func (b *Batch) Add(colors []Color, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opAdd, operands: colorOperands(colors, includeAlpha, additiveIdentity)})
}

// AddScalars queues adding each of scalars, in order, to every channel.
func (b *Batch) AddScalars(scalars []float64, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opAdd, operands: scalarOperands(scalars, includeAlpha, additiveIdentity)})
}

// Sub queues subtracting each of colors, in order, from every color.
func (b *Batch) Sub(colors []Color, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opSub, operands: colorOperands(colors, includeAlpha, additiveIdentity)})
}

// SubScalars queues subtracting each of scalars, in order, from every
// channel.
func (b *Batch) SubScalars(scalars []float64, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opSub, operands: scalarOperands(scalars, includeAlpha, additiveIdentity)})
}

// Mul queues multiplying every color by each of colors, in order.
func (b *Batch) Mul(colors []Color, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opMul, operands: colorOperands(colors, includeAlpha, multiplicativeIdentity)})
}

// MulScalars queues multiplying every channel by each of scalars, in order.
func (b *Batch) MulScalars(scalars []float64, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opMul, operands: scalarOperands(scalars, includeAlpha, multiplicativeIdentity)})
}

// DivScalars queues dividing every channel by each of scalars, in order.
// If any scalar is exactly zero it fails with ErrDivideByZero and queues
// nothing.
func (b *Batch) DivScalars(scalars []float64, includeAlpha bool) (*Batch, error) {
	for i, s := range scalars {
		if s == 0 {
			return b, fmt.Errorf("%w: scalar %d", ErrDivideByZero, i)
		}
	}
	return b.push(&instruction{op: opDiv, operands: scalarOperands(scalars, includeAlpha, multiplicativeIdentity)}), nil
}

// NthRoot queues replacing every channel x with x^(1/root) for each of
// roots, in order.
func (b *Batch) NthRoot(roots []float64, includeAlpha bool) *Batch {
	return b.push(&instruction{op: opRoot, operands: scalarOperands(roots, includeAlpha, multiplicativeIdentity)})
}

// Blend queues blending each of colors onto every color with the mode at
// the same index, in order. Every color of the batch is the first operand.
//
// It fails with ErrLengthMismatch when colors and modes differ in length
// and with ErrUnsupportedBlendMode for PinLight; nothing is queued then.
func (b *Batch) Blend(colors []Color, modes []BlendMode) (*Batch, error) {
	if len(colors) != len(modes) {
		return b, fmt.Errorf("%w: %d colors, %d blend modes", ErrLengthMismatch, len(colors), len(modes))
	}
	for _, m := range modes {
		if err := checkBlendMode(m); err != nil {
			return b, err
		}
	}

	in := &instruction{
		op:       opBlend,
		operands: make([]wide.F32x4, len(colors)),
		modes:    make([]blend.Mode, len(modes)),
	}
	for i, c := range colors {
		in.operands[i] = wide.Normalize(c.lane())
	}
	copy(in.modes, modes)
	return b.push(in), nil
}

// Pending returns the number of queued instructions. It is a snapshot.
func (b *Batch) Pending() int {
	return b.queue.Len()
}

// =============================================================================
// Execution
// =============================================================================

// ExecuteInPlace applies every queued instruction and returns b.
//
// It takes the exclusive lock, detaches the whole queue in one atomic swap,
// and processes the colors in independent chunks on the shared worker pool.
// Instructions queued after the swap wait for the next execution. A second
// concurrent call blocks until the first is done and then runs whatever is
// queued by then.
func (b *Batch) ExecuteInPlace() *Batch {
	b.exec()
	return b
}

// Execute returns an executed copy of b. The copy starts from b's current
// colors and runs b's queued instructions; b and its queue are left
// untouched.
func (b *Batch) Execute() *Batch {
	b.mu.RLock()
	c := b.cloneLocked()
	program := b.queue.Snapshot()
	b.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.run(program)
	return c
}

func (b *Batch) exec() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.run(b.queue.TakeAll())
}

// run applies program to every color. The caller holds the write lock.
func (b *Batch) run(program []*instruction) {
	if len(program) == 0 {
		// Every word is already quantized; nothing would change.
		return
	}

	start := time.Now()
	kernels := wide.Active()

	work := func(lo, hi int) {
		words := b.words[lo:hi]
		lanes := make([]wide.F32x4, len(words))
		kernels.Expand(lanes, words)
		for _, in := range program {
			in.apply(lanes)
		}
		kernels.Quantize(words, lanes)
	}

	if b.config.serial {
		work(0, len(b.words))
	} else {
		parallel.Default().For(len(b.words), b.config.chunkSize, work)
	}

	Logger().Debug("tincture: batch executed",
		"lanes", len(b.words),
		"instructions", len(program),
		"kernel", kernels.Name,
		"duration", time.Since(start))
}

// =============================================================================
// Access
// =============================================================================

// Len returns the number of colors.
func (b *Batch) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.words)
}

// Get returns the color at index i. It fails with ErrIndexOutOfRange unless
// 0 <= i < Len.
func (b *Batch) Get(i int) (Color, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.words) {
		return Transparent, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, len(b.words))
	}
	return Color(b.words[i]), nil
}

// Set replaces the color at index i. It fails with ErrIndexOutOfRange
// unless 0 <= i < Len.
func (b *Batch) Set(i int, c Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.words) {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, len(b.words))
	}
	b.words[i] = uint32(c)
	return nil
}

// Colors returns a copy of the colors.
func (b *Batch) Colors() []Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Color, len(b.words))
	for i, w := range b.words {
		out[i] = Color(w)
	}
	return out
}

// Clone returns a batch with a copy of b's colors and options and an empty
// queue. Pending instructions are not carried over.
func (b *Batch) Clone() *Batch {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cloneLocked()
}

func (b *Batch) cloneLocked() *Batch {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return &Batch{words: words, config: b.config}
}

// String returns "Batch(Color(r, g, b, a), ...)".
func (b *Batch) String() string {
	var sb strings.Builder
	sb.WriteString("Batch(")
	for i, c := range b.Colors() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
