package tincture

import (
	"github.com/gogpu/tincture/internal/blend"
	"github.com/gogpu/tincture/internal/wide"
)

// opcode tags an instruction.
type opcode uint8

const (
	opAdd opcode = iota
	opSub
	opMul
	opDiv
	opRoot
	opBlend
)

var opcodeNames = [...]string{
	opAdd:   "AddVectors",
	opSub:   "SubVectors",
	opMul:   "MulVectors",
	opDiv:   "DivVectors",
	opRoot:  "NthRootVectors",
	opBlend: "BlendVectors",
}

func (op opcode) String() string {
	return opcodeNames[op]
}

// instruction is one deferred operation recorded by one queuing call.
//
// For the arithmetic opcodes, operands hold channel-space vectors ([0, 255]
// for colors, the raw value for scalars) and are folded into every lane in
// order. For opRoot they hold per-channel root exponents. For opBlend they
// hold normalized [0, 1] colors, paired index by index with modes.
type instruction struct {
	op       opcode
	operands []wide.F32x4
	modes    []blend.Mode
}

// apply runs the instruction over every lane.
func (in *instruction) apply(lanes []wide.F32x4) {
	switch in.op {
	case opAdd:
		for _, o := range in.operands {
			for i := range lanes {
				lanes[i] = lanes[i].Add(o)
			}
		}
	case opSub:
		for _, o := range in.operands {
			for i := range lanes {
				lanes[i] = lanes[i].Sub(o)
			}
		}
	case opMul:
		for _, o := range in.operands {
			for i := range lanes {
				lanes[i] = lanes[i].Mul(o)
			}
		}
	case opDiv:
		for _, o := range in.operands {
			for i := range lanes {
				lanes[i] = lanes[i].Div(o)
			}
		}
	case opRoot:
		for _, o := range in.operands {
			for i := range lanes {
				lanes[i] = lanes[i].Root(o)
			}
		}
	case opBlend:
		for j, o := range in.operands {
			mode := in.modes[j]
			for i := range lanes {
				// Earlier instructions may have pushed a lane out of range.
				a := wide.Normalize(lanes[i]).Clamp(0, 1)
				lanes[i] = wide.Denormalize(blend.Compute(mode, a, o))
			}
		}
	}
}
