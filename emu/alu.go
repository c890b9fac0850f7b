package emu

import (
	"github.com/sarchlab/mips1sim/control"
)

// ALUResult is the ALU's output bundle for one operation: the result word
// and the zero/negative/overflow flags.
type ALUResult struct {
	// Value is the 32-bit result.
	Value uint32

	// Zero is set when the result is 0. It drives the branch decision.
	Zero bool

	// Negative is set when the result's sign bit is 1.
	Negative bool

	// Overflow is set on signed add/sub overflow.
	Overflow bool
}

// ALU performs one arithmetic or logic operation per cycle.
// It is stateless; the operation selector comes from the control unit and
// is opaque to the datapath.
type ALU struct{}

// NewALU creates a new ALU.
func NewALU() *ALU {
	return &ALU{}
}

// Compute applies the selected operation to operands a and b.
//
// Shift operations shift operand a by b's low five bits; the datapath
// routes the shift-amount field to operand b through the immediate
// extension path. Unrecognized selectors produce a zero result.
func (al *ALU) Compute(op control.ALUOp, a, b uint32) ALUResult {
	var value uint32
	overflow := false

	switch op {
	case control.ALUAdd:
		value = a + b
		overflow = addOverflows(a, b, value)
	case control.ALUSub:
		value = a - b
		overflow = subOverflows(a, b, value)
	case control.ALUAnd:
		value = a & b
	case control.ALUOr:
		value = a | b
	case control.ALUXor:
		value = a ^ b
	case control.ALUNor:
		value = ^(a | b)
	case control.ALUSlt:
		if int32(a) < int32(b) {
			value = 1
		}
	case control.ALUSll:
		value = a << (b & 0x1F)
	case control.ALUSrl:
		value = a >> (b & 0x1F)
	case control.ALUSra:
		value = uint32(int32(a) >> (b & 0x1F))
	}

	return ALUResult{
		Value:    value,
		Zero:     value == 0,
		Negative: value>>31 == 1,
		Overflow: overflow,
	}
}

// addOverflows reports signed overflow of a+b.
// Overflow occurs when both operands share a sign and the result does not.
func addOverflows(a, b, result uint32) bool {
	aSign := a >> 31
	bSign := b >> 31
	resultSign := result >> 31
	return aSign == bSign && aSign != resultSign
}

// subOverflows reports signed overflow of a-b.
// Overflow occurs when the operands' signs differ and the result takes b's.
func subOverflows(a, b, result uint32) bool {
	aSign := a >> 31
	bSign := b >> 31
	resultSign := result >> 31
	return aSign != bSign && bSign == resultSign
}
