// Package datapath provides the per-cycle orchestration of a single-cycle
// MIPS-style processor: given one fetched instruction and the current
// register, PC, and memory-hit state, it decodes the instruction's field
// views, steers every multiplexer from the control signals, computes the
// ALU operands and the branch/jump targets, selects the write-back value,
// and arbitrates the cycle's memory requests.
//
// The orchestrator is stateless combinational logic. Every field view,
// extension branch, and mux input is computed unconditionally on each
// cycle, the way continuously-assigned hardware signals are always valid;
// the control signals only select among them. Persistent state (registers,
// PC, memory) lives entirely in the collaborators, which commit at the
// clock edge using the enables computed here.
package datapath

import (
	"github.com/sarchlab/mips1sim/control"
	"github.com/sarchlab/mips1sim/emu"
	"github.com/sarchlab/mips1sim/insts"
	"github.com/sarchlab/mips1sim/mem"
)

// RegisterFile is the read side of the register file. Reads are
// combinational; the write port is driven by the core from CycleOutputs.
type RegisterFile interface {
	Read(reg uint8) uint32
}

// ControlUnit maps an instruction word to its control-signal bundle.
type ControlUnit interface {
	Decode(word insts.Instruction) control.Signals
}

// ALU performs the selected operation and reports the result flags.
type ALU interface {
	Compute(op control.ALUOp, a, b uint32) emu.ALUResult
}

// RequestArbiter gates memory intents into actual enables.
type RequestArbiter interface {
	Arbitrate(req mem.Request) mem.Grant
}

// CycleInputs is the snapshot of machine state one cycle evaluates:
// everything is read at once, nothing written here is visible within the
// same cycle.
type CycleInputs struct {
	// Instruction is the fetched instruction word.
	Instruction insts.Instruction

	// PC is the current fetch address.
	PC uint32

	// DataLoad is the data-memory word at the cycle's data address.
	DataLoad uint32

	// InstructionHit reports the instruction cache hit for this fetch.
	InstructionHit bool

	// DataHit reports the data cache hit for this cycle's data access.
	DataHit bool
}

// CycleOutputs is everything one cycle computes: the register and PC
// update signals the sequential collaborators commit at the clock edge,
// and the gated memory requests surfaced to the memory boundary.
type CycleOutputs struct {
	// Register file ports.
	ReadRegA       uint8
	ReadRegB       uint8
	WriteReg       uint8
	WriteData      uint32
	RegWriteEnable bool

	// ALU result and flags, observable for the memory boundary and tests.
	ALU emu.ALUResult

	// Program counter update.
	NextPC        uint32
	PCWriteEnable bool

	// Memory boundary.
	DataAddress           uint32
	StoreData             uint32
	InstructionReadEnable bool
	DataReadEnable        bool
	DataWriteEnable       bool
	Atomic                bool
	Halt                  bool

	// Signals is the decoded control bundle the cycle ran under.
	Signals control.Signals
}

// Datapath wires the collaborators together once per cycle.
type Datapath struct {
	control ControlUnit
	regs    RegisterFile
	alu     ALU
	arbiter RequestArbiter
}

// New creates a datapath over the given collaborators.
func New(ctrl ControlUnit, regs RegisterFile, alu ALU, arbiter RequestArbiter) *Datapath {
	return &Datapath{
		control: ctrl,
		regs:    regs,
		alu:     alu,
		arbiter: arbiter,
	}
}

// Cycle evaluates one clock cycle's combinational network.
//
// All three instruction views are extracted unconditionally; the control
// signals decide which fields matter. The method never mutates collaborator
// state: register, PC, and memory updates happen outside, gated by the
// enables returned here.
func (d *Datapath) Cycle(in CycleInputs) CycleOutputs {
	sig := d.control.Decode(in.Instruction)

	r := in.Instruction.R()
	i := in.Instruction.I()
	j := in.Instruction.J()

	// Register read ports: rs on A, rt on B.
	portA := d.regs.Read(r.Rs)
	portB := d.regs.Read(r.Rt)

	// Immediate path. The branch adder always consumes the sign-extended
	// immediate regardless of which extension the ALU operand uses.
	extended := ExtendImmediate(i.Imm, r.Shamt, sig.ExtOp)
	signExtImm := ExtendImmediate(i.Imm, r.Shamt, control.ExtOpSign)

	// ALU operands and result.
	operandB := SelectOperandB(sig.ALUSrc, portB, extended)
	aluResult := d.alu.Compute(sig.ALUOp, portA, operandB)

	// Next-PC network.
	sequential := SequentialPC(in.PC)
	nextPC := SelectNextPC(in.PC, sig.OpFunc, aluResult.Zero, portA, signExtImm, j.Addr)

	// Write-back selection.
	writeReg := SelectWriteRegister(sig.RegDst, r.Rd, r.Rt)
	writeData := SelectWriteBack(sig.MemtoReg, aluResult.Value, in.DataLoad, portB, sequential)

	// Memory request arbitration.
	grant := d.arbiter.Arbitrate(mem.Request{
		ReadIntent:     sig.DataReadIntent,
		WriteIntent:    sig.DataWriteIntent,
		InstructionHit: in.InstructionHit,
		DataHit:        in.DataHit,
	})

	return CycleOutputs{
		ReadRegA:       r.Rs,
		ReadRegB:       r.Rt,
		WriteReg:       writeReg,
		WriteData:      writeData,
		RegWriteEnable: sig.RegWEN,

		ALU: aluResult,

		NextPC:        nextPC,
		PCWriteEnable: PCWriteEnable(in.InstructionHit, sig.Halt),

		DataAddress:           aluResult.Value,
		StoreData:             portB,
		InstructionReadEnable: grant.InstructionRead,
		DataReadEnable:        grant.DataRead,
		DataWriteEnable:       grant.DataWrite,
		Atomic:                grant.Atomic,
		Halt:                  sig.Halt,

		Signals: sig,
	}
}
