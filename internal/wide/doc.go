// Package wide provides the SIMD-friendly lane type used for color math.
//
// F32x4 holds the four channels of one color as float32. It is the single
// vector abstraction shared by the single-color path, the blend kernel and
// the batch engine. Operations are written as simple loops over fixed-size
// arrays so the Go compiler can auto-vectorize them on SSE, AVX and NEON.
//
// # Kernels
//
// Converting between packed RGBA words and lanes is the hot path of a batch
// execution. Two implementations exist:
//
//   - BlockKernels: converts BlockLanes lanes per step through fixed-size
//     staging arrays.
//   - ScalarKernels: converts one channel at a time.
//
// Active returns the set chosen once at startup by a CPU capability check.
// Both produce bit-identical results.
//
// # Quantization
//
// Pack clamps each channel to [0, 255] and rounds half away from zero.
// NaN quantizes to 0 and infinities saturate.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
package wide
