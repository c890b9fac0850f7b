// Package control provides the control unit: the pure mapping from an
// instruction word's opcode and function fields to the control-signal bundle
// that steers every multiplexer in the datapath.
package control

// RegDst selects the register write-address source.
type RegDst uint8

// Register write-address sources.
const (
	// RegDstRD writes to the R-format rd field.
	RegDstRD RegDst = iota
	// RegDstRT writes to the rt field (I-format destinations).
	RegDstRT
	// RegDstR31 writes to the link register, $31.
	RegDstR31
)

// ALUSrc selects the ALU's second operand.
type ALUSrc uint8

// ALU operand B sources.
const (
	// ALUSrcRegisterB uses the register file's second read port.
	ALUSrcRegisterB ALUSrc = iota
	// ALUSrcImmediate uses the extended immediate.
	ALUSrcImmediate
)

// MemtoReg selects the register write-back value.
type MemtoReg uint8

// Write-back value sources.
const (
	// MemtoRegALUResult writes the ALU result back.
	MemtoRegALUResult MemtoReg = iota
	// MemtoRegDataLoad writes the data-memory load value back.
	MemtoRegDataLoad
	// MemtoRegPortB writes the raw register-B value back.
	MemtoRegPortB
	// MemtoRegNextPC writes the sequential next-PC value back (link
	// instructions). This is also the mux's default branch.
	MemtoRegNextPC
)

// ExtOp selects the immediate extension policy.
type ExtOp uint8

// Immediate extension policies.
const (
	// ExtOpZero pads the 16-bit immediate with zeros on the high side.
	ExtOpZero ExtOp = iota
	// ExtOpSign replicates the immediate's bit 15 into the high 16 bits.
	ExtOpSign
	// ExtOpShiftAmount zero-extends the 5-bit shift amount field.
	ExtOpShiftAmount
	// ExtOpUpperImmediate places the immediate in the high 16 bits and
	// zero-fills the low 16 (lui). This is also the mux's default branch.
	ExtOpUpperImmediate
)

// ALUOp selects the ALU operation. The datapath treats it as opaque; only
// the ALU interprets it.
type ALUOp uint8

// ALU operations.
const (
	ALUAdd ALUOp = iota
	ALUSub
	ALUAnd
	ALUOr
	ALUXor
	ALUNor
	ALUSlt
	ALUSll
	ALUSrl
	ALUSra
)

// OpFunc classifies the instruction's control-flow behavior for the next-PC
// decision.
type OpFunc uint8

// Control-flow classes, in next-PC priority order. OpFuncOther is the
// zero value so an undecoded bundle falls through to sequential fetch.
const (
	// OpFuncOther takes the sequential next PC.
	OpFuncOther OpFunc = iota
	// OpFuncJumpRegister jumps to register A's value.
	OpFuncJumpRegister
	// OpFuncBranchEqual branches when the ALU zero flag is set.
	OpFuncBranchEqual
	// OpFuncBranchNotEqual branches when the ALU zero flag is clear.
	OpFuncBranchNotEqual
	// OpFuncJump jumps to the J-format target.
	OpFuncJump
	// OpFuncJumpAndLink jumps to the J-format target and links $31.
	OpFuncJumpAndLink
)

// Signals is the full control bundle produced for one instruction.
// It is a pure function of the instruction word; the datapath never
// mutates it.
type Signals struct {
	// RegDst selects the register write address.
	RegDst RegDst

	// ALUSrc selects the ALU's B operand.
	ALUSrc ALUSrc

	// MemtoReg selects the write-back value.
	MemtoReg MemtoReg

	// ExtOp selects the immediate extension policy.
	ExtOp ExtOp

	// ALUOp is the opaque ALU operation selector.
	ALUOp ALUOp

	// RegWEN enables the register file write port.
	RegWEN bool

	// DataReadIntent requests a data-memory read this cycle.
	DataReadIntent bool

	// DataWriteIntent requests a data-memory write this cycle.
	DataWriteIntent bool

	// Halt stops the machine: the PC holds from this cycle on.
	Halt bool

	// OpFunc is the decoded control-flow class.
	OpFunc OpFunc
}
