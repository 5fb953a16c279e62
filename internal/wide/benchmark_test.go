package wide

import "testing"

// Benchmark sizes: 4096 lanes = a 64x64 swatch grid.
const benchLanes = 4096

func benchWords() []uint32 {
	words := make([]uint32, benchLanes)
	for i := range words {
		words[i] = uint32(i) * 2654435761
	}
	return words
}

func BenchmarkF32x4_Add(b *testing.B) {
	x := RGBA(10, 20, 30, 40)
	y := SplatF32(1.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Add(y)
	}
	_ = x
}

func BenchmarkF32x4_Root(b *testing.B) {
	x := RGBA(10, 20, 30, 40)
	r := SplatF32(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Root(r)
	}
}

func BenchmarkExpand_Block(b *testing.B) {
	words := benchWords()
	lanes := make([]F32x4, len(words))
	b.SetBytes(int64(len(words) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BlockKernels.Expand(lanes, words)
	}
}

func BenchmarkExpand_Scalar(b *testing.B) {
	words := benchWords()
	lanes := make([]F32x4, len(words))
	b.SetBytes(int64(len(words) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarKernels.Expand(lanes, words)
	}
}

func BenchmarkQuantize_Block(b *testing.B) {
	words := benchWords()
	lanes := make([]F32x4, len(words))
	ScalarKernels.Expand(lanes, words)
	b.SetBytes(int64(len(words) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BlockKernels.Quantize(words, lanes)
	}
}

func BenchmarkQuantize_Scalar(b *testing.B) {
	words := benchWords()
	lanes := make([]F32x4, len(words))
	ScalarKernels.Expand(lanes, words)
	b.SetBytes(int64(len(words) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarKernels.Quantize(words, lanes)
	}
}
