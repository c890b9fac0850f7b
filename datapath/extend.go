package datapath

import (
	"github.com/sarchlab/mips1sim/control"
)

// ExtendImmediate widens the 16-bit immediate (or the 5-bit shift amount)
// to a full word, according to the selected extension policy:
//
//   - ExtOpZero: immediate with zeros in bits [31:16].
//   - ExtOpSign: immediate with bit 15 replicated across bits [31:16].
//   - ExtOpShiftAmount: the shift amount, zero-extended.
//   - anything else: immediate placed in bits [31:16], zeros below
//     (load-upper-immediate). The catch-all is deliberate: the hardware
//     this models resolves every unlisted selector through its else branch.
func ExtendImmediate(imm uint16, shamt uint8, op control.ExtOp) uint32 {
	zeroExtended := uint32(imm)
	signExtended := uint32(int32(int16(imm)))
	shamtExtended := uint32(shamt & 0x1F)
	upperImmediate := uint32(imm) << 16

	switch op {
	case control.ExtOpZero:
		return zeroExtended
	case control.ExtOpSign:
		return signExtended
	case control.ExtOpShiftAmount:
		return shamtExtended
	default:
		return upperImmediate
	}
}
