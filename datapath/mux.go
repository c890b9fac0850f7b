package datapath

import (
	"github.com/sarchlab/mips1sim/control"
)

// SelectWriteRegister picks the register write address:
// rd for RegDstRD, rt for RegDstRT, the link register for RegDstR31.
// Every other selector value resolves to register 0, the error sink:
// a write that should never retire lands on the hardwired-zero register
// and is discarded there instead of faulting.
func SelectWriteRegister(sel control.RegDst, rd, rt uint8) uint8 {
	switch sel {
	case control.RegDstRD:
		return rd
	case control.RegDstRT:
		return rt
	case control.RegDstR31:
		return 31
	default:
		return 0
	}
}

// SelectOperandB picks the ALU's B operand: the register file's second
// read port, or the extended immediate.
func SelectOperandB(sel control.ALUSrc, portB, extended uint32) uint32 {
	if sel == control.ALUSrcImmediate {
		return extended
	}
	return portB
}

// SelectWriteBack picks the value committed to the register file: the ALU
// result, the data-memory load value, the raw register-B value, or the
// sequential next-PC value. The next-PC branch doubles as the default for
// any unlisted selector, which is what link instructions rely on.
func SelectWriteBack(sel control.MemtoReg, aluResult, dataLoad, portB, nextPC uint32) uint32 {
	switch sel {
	case control.MemtoRegALUResult:
		return aluResult
	case control.MemtoRegDataLoad:
		return dataLoad
	case control.MemtoRegPortB:
		return portB
	default:
		return nextPC
	}
}
