package wide

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// BlockLanes is the number of lanes the block kernel converts per step.
const BlockLanes = 4

// Kernels is a set of conversion routines between packed RGBA words and
// F32x4 lanes. Every implementation must produce bit-identical results;
// they differ only in how the loop is shaped for the compiler.
type Kernels struct {
	// Name is a human-readable identifier ("block", "scalar").
	Name string

	// Expand converts src[i] into dst[i]. len(dst) must be >= len(src).
	Expand func(dst []F32x4, src []uint32)

	// Quantize converts src[i] into dst[i]. len(dst) must be >= len(src).
	Quantize func(dst []uint32, src []F32x4)
}

var (
	// BlockKernels processes BlockLanes lanes per step over fixed-size
	// arrays so the compiler can keep a whole block in vector registers.
	BlockKernels = Kernels{Name: "block", Expand: expandBlock, Quantize: quantizeBlock}

	// ScalarKernels converts one channel at a time.
	ScalarKernels = Kernels{Name: "scalar", Expand: expandScalar, Quantize: quantizeScalar}
)

// active is chosen once; see Active.
var active = selectKernels()

// Active returns the kernels selected for this CPU.
func Active() Kernels {
	return active
}

// HasVectorUnit reports whether the CPU has a 128-bit float vector unit the
// block kernel can be compiled onto.
func HasVectorUnit() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasSSE41
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

func selectKernels() Kernels {
	if HasVectorUnit() {
		return BlockKernels
	}
	return ScalarKernels
}

func expandBlock(dst []F32x4, src []uint32) {
	n := len(src) - len(src)%BlockLanes
	for i := 0; i < n; i += BlockLanes {
		words := (*[BlockLanes]uint32)(src[i : i+BlockLanes])
		lanes := (*[BlockLanes]F32x4)(dst[i : i+BlockLanes])
		var stage [BlockLanes * 4]float32
		for j := range BlockLanes {
			w := words[j]
			stage[j*4+0] = float32(w >> 24)
			stage[j*4+1] = float32((w >> 16) & 0xFF)
			stage[j*4+2] = float32((w >> 8) & 0xFF)
			stage[j*4+3] = float32(w & 0xFF)
		}
		for j := range BlockLanes {
			lanes[j] = F32x4(stage[j*4 : j*4+4])
		}
	}
	expandScalar(dst[n:], src[n:])
}

func quantizeBlock(dst []uint32, src []F32x4) {
	n := len(src) - len(src)%BlockLanes
	for i := 0; i < n; i += BlockLanes {
		lanes := (*[BlockLanes]F32x4)(src[i : i+BlockLanes])
		words := (*[BlockLanes]uint32)(dst[i : i+BlockLanes])
		var stage [BlockLanes]F32x4
		for j := range BlockLanes {
			stage[j] = lanes[j].Clamp(0, ChannelMax).Round()
		}
		for j := range BlockLanes {
			q := stage[j]
			// Intentional truncation - channels are clamped to [0, 255] above
			words[j] = uint32(q[0])<<24 | uint32(q[1])<<16 | uint32(q[2])<<8 | uint32(q[3]) // #nosec G115
		}
	}
	quantizeScalar(dst[n:], src[n:])
}

func expandScalar(dst []F32x4, src []uint32) {
	for i, w := range src {
		dst[i] = Unpack(w)
	}
}

func quantizeScalar(dst []uint32, src []F32x4) {
	for i, v := range src {
		dst[i] = Pack(v)
	}
}
