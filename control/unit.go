package control

import (
	"github.com/sarchlab/mips1sim/insts"
)

// Unit decodes instruction words into control signals.
type Unit struct{}

// NewUnit creates a new control unit.
func NewUnit() *Unit {
	return &Unit{}
}

// Decode maps one instruction word to its control-signal bundle.
//
// Unrecognized opcodes and function codes decode to the zero bundle: every
// enable false, every mux on its first input, OpFunc sequential. Such an
// instruction flows through the datapath as a NOP.
func (u *Unit) Decode(word insts.Instruction) Signals {
	switch word.Opcode() {
	case insts.OpcodeRType:
		return u.decodeRType(word)

	case insts.OpcodeJ:
		return Signals{OpFunc: OpFuncJump}

	case insts.OpcodeJAL:
		return Signals{
			OpFunc:   OpFuncJumpAndLink,
			RegDst:   RegDstR31,
			MemtoReg: MemtoRegNextPC,
			RegWEN:   true,
		}

	case insts.OpcodeBEQ:
		return Signals{
			OpFunc: OpFuncBranchEqual,
			ALUSrc: ALUSrcRegisterB,
			ALUOp:  ALUSub,
			ExtOp:  ExtOpSign,
		}

	case insts.OpcodeBNE:
		return Signals{
			OpFunc: OpFuncBranchNotEqual,
			ALUSrc: ALUSrcRegisterB,
			ALUOp:  ALUSub,
			ExtOp:  ExtOpSign,
		}

	case insts.OpcodeADDI, insts.OpcodeADDIU:
		return iTypeALU(ALUAdd, ExtOpSign)

	case insts.OpcodeSLTI:
		return iTypeALU(ALUSlt, ExtOpSign)

	case insts.OpcodeANDI:
		return iTypeALU(ALUAnd, ExtOpZero)

	case insts.OpcodeORI:
		return iTypeALU(ALUOr, ExtOpZero)

	case insts.OpcodeXORI:
		return iTypeALU(ALUXor, ExtOpZero)

	case insts.OpcodeLUI:
		return iTypeALU(ALUOr, ExtOpUpperImmediate)

	case insts.OpcodeLW:
		return Signals{
			RegDst:         RegDstRT,
			ALUSrc:         ALUSrcImmediate,
			MemtoReg:       MemtoRegDataLoad,
			ExtOp:          ExtOpSign,
			ALUOp:          ALUAdd,
			RegWEN:         true,
			DataReadIntent: true,
		}

	case insts.OpcodeSW:
		return Signals{
			ALUSrc:          ALUSrcImmediate,
			ExtOp:           ExtOpSign,
			ALUOp:           ALUAdd,
			DataWriteIntent: true,
		}

	case insts.OpcodeHALT:
		return Signals{Halt: true}

	default:
		return Signals{}
	}
}

// decodeRType dispatches on the function code.
func (u *Unit) decodeRType(word insts.Instruction) Signals {
	switch word.Funct() {
	case insts.FunctJR:
		return Signals{OpFunc: OpFuncJumpRegister}

	case insts.FunctSLL:
		return rTypeShift(ALUSll)
	case insts.FunctSRL:
		return rTypeShift(ALUSrl)
	case insts.FunctSRA:
		return rTypeShift(ALUSra)

	case insts.FunctADD, insts.FunctADDU:
		return rTypeALU(ALUAdd)
	case insts.FunctSUB, insts.FunctSUBU:
		return rTypeALU(ALUSub)
	case insts.FunctAND:
		return rTypeALU(ALUAnd)
	case insts.FunctOR:
		return rTypeALU(ALUOr)
	case insts.FunctXOR:
		return rTypeALU(ALUXor)
	case insts.FunctNOR:
		return rTypeALU(ALUNor)
	case insts.FunctSLT:
		return rTypeALU(ALUSlt)

	default:
		return Signals{}
	}
}

// rTypeALU builds the bundle shared by all register-register ALU ops.
func rTypeALU(op ALUOp) Signals {
	return Signals{
		RegDst:   RegDstRD,
		ALUSrc:   ALUSrcRegisterB,
		MemtoReg: MemtoRegALUResult,
		ALUOp:    op,
		RegWEN:   true,
	}
}

// rTypeShift builds the bundle for constant-shift ops. The shift amount
// reaches the ALU's B operand through the shift-amount extension path;
// the value to shift arrives on operand A.
func rTypeShift(op ALUOp) Signals {
	return Signals{
		RegDst:   RegDstRD,
		ALUSrc:   ALUSrcImmediate,
		MemtoReg: MemtoRegALUResult,
		ExtOp:    ExtOpShiftAmount,
		ALUOp:    op,
		RegWEN:   true,
	}
}

// iTypeALU builds the bundle shared by the immediate ALU ops.
func iTypeALU(op ALUOp, ext ExtOp) Signals {
	return Signals{
		RegDst:   RegDstRT,
		ALUSrc:   ALUSrcImmediate,
		MemtoReg: MemtoRegALUResult,
		ExtOp:    ext,
		ALUOp:    op,
		RegWEN:   true,
	}
}
