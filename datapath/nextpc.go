package datapath

import (
	"github.com/sarchlab/mips1sim/control"
)

// jumpFieldMask covers the byte range a 26-bit word-address field can
// reach once shifted into place; the bits above it come from PC+4.
const jumpFieldMask = uint32(0x0FFFFFFF)

// SequentialPC returns the fall-through fetch address. Instructions are
// 4-byte aligned, so the step is always 4.
func SequentialPC(pc uint32) uint32 {
	return pc + 4
}

// BranchTargetPC returns the branch target: the fall-through address plus
// the sign-extended immediate scaled to bytes.
func BranchTargetPC(pc uint32, signExtImm uint32) uint32 {
	return SequentialPC(pc) + signExtImm<<2
}

// JumpTargetPC returns the jump target: the 26-bit address field scaled to
// bytes, with the high-order bits taken from the fall-through address.
func JumpTargetPC(pc uint32, addr26 uint32) uint32 {
	return SequentialPC(pc)&^jumpFieldMask | addr26<<2&jumpFieldMask
}

// SelectNextPC decides the next fetch address. All three candidate targets
// are computed unconditionally; the decision is an ordered priority list,
// first match wins, because the conditions are not mutually exclusive by
// construction:
//
//  1. JumpRegister: register A's value, verbatim.
//  2. BranchEqual with the zero flag set: branch target.
//  3. BranchNotEqual with the zero flag clear: branch target.
//  4. Jump: jump target.
//  5. JumpAndLink: jump target (the link value is captured by the
//     write-back mux, not here).
//  6. Otherwise: sequential.
func SelectNextPC(pc uint32, class control.OpFunc, zero bool, portA, signExtImm, addr26 uint32) uint32 {
	sequential := SequentialPC(pc)
	branch := BranchTargetPC(pc, signExtImm)
	jump := JumpTargetPC(pc, addr26)

	switch {
	case class == control.OpFuncJumpRegister:
		return portA
	case class == control.OpFuncBranchEqual && zero:
		return branch
	case class == control.OpFuncBranchNotEqual && !zero:
		return branch
	case class == control.OpFuncJump:
		return jump
	case class == control.OpFuncJumpAndLink:
		return jump
	default:
		return sequential
	}
}

// PCWriteEnable reports whether the PC register may latch this cycle:
// only when the instruction cache hit and the machine is not halted.
// Every other combination holds the PC, which is the sole stall mechanism
// at this layer.
func PCWriteEnable(instructionHit, halt bool) bool {
	return instructionHit && !halt
}
