// Package tincture provides packed RGBA colors and a batched engine for
// applying deferred color math to many colors at once.
//
// # Overview
//
// tincture stores colors as one 32-bit word each and offers two ways to
// work with them: a single-color API on Color, and Batch, which records
// operations in a lock-free queue and later applies them to every color in
// one data-parallel pass.
//
// # Quick Start
//
//	import "github.com/gogpu/tincture"
//
//	// Single colors
//	c := tincture.RGB(200, 100, 50)
//	d, _ := tincture.Blend(tincture.Darken, c, tincture.RGB(50, 150, 200))
//
//	// Many colors
//	b := tincture.NewBatch([]tincture.Color{c, d})
//	b.AddScalars([]float64{10}, false).MulScalars([]float64{1.5}, false)
//	b.ExecuteInPlace()
//
// # Quantization
//
// Every operation computes in float32 and quantizes once at the end:
// channels are clamped to [0, 255] and rounded half away from zero. NaN
// quantizes to 0. Channel arithmetic therefore saturates instead of
// wrapping, and never fails, except for division by exactly zero.
//
// # Blend Modes
//
// Twenty modes are defined (see BlendMode). PinLight is named but has no
// formula; Blend and Batch.Blend reject it with ErrUnsupportedBlendMode.
// Every mode is followed by the same alpha composite:
//
//	alpha = a1 + a2*(1-a1)
//	rgb   = (f*a1 + b*a2*(1-a1)) / alpha
//
// where f is the blended channel. A fully transparent pair composites to
// Transparent.
//
// # Concurrency
//
// Color is an immutable value. AtomicColor is a shared cell updated by
// whole-word atomic stores. Batch queuing methods never block; execution
// takes an exclusive lock on the batch for its whole duration.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, AtomicColor, Batch, BlendMode
//   - Internal: wide (float32 lanes and pack kernels), blend (mode formulas
//     and composite), queue (lock-free MPSC), parallel (worker pool),
//     recipe (declarative batch files)
//   - CLI: cmd/tincture
package tincture

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
