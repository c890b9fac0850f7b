// Package insts provides MIPS-I instruction words and field extraction.
//
// A 32-bit instruction word carries three overlapping structured views:
//   - R-format: opcode(6) | rs(5) | rt(5) | rd(5) | shamt(5) | funct(6)
//   - I-format: opcode(6) | rs(5) | rt(5) | imm16(16)
//   - J-format: opcode(6) | addr(26)
//
// Field extraction is pure and total: all three views can be computed for
// any word, with no error path. Which view is meaningful is decided
// downstream by the control unit's decode of the opcode field, never by a
// tag stored on the word itself.
//
// Usage:
//
//	word := insts.Instruction(0x014B4820) // add $9, $10, $11
//	r := word.R()
//	fmt.Printf("rs: %d, rt: %d, rd: %d\n", r.Rs, r.Rt, r.Rd)
package insts

// Instruction is a raw 32-bit MIPS instruction word.
type Instruction uint32

// RFields is the R-format view of an instruction word.
type RFields struct {
	Opcode uint8 // bits [31:26]
	Rs     uint8 // bits [25:21], first source register
	Rt     uint8 // bits [20:16], second source register
	Rd     uint8 // bits [15:11], destination register
	Shamt  uint8 // bits [10:6], shift amount
	Funct  uint8 // bits [5:0], function code
}

// IFields is the I-format view of an instruction word.
type IFields struct {
	Opcode uint8  // bits [31:26]
	Rs     uint8  // bits [25:21], base/source register
	Rt     uint8  // bits [20:16], target register
	Imm    uint16 // bits [15:0], 16-bit immediate
}

// JFields is the J-format view of an instruction word.
type JFields struct {
	Opcode uint8  // bits [31:26]
	Addr   uint32 // bits [25:0], 26-bit word address field
}

// Opcode extracts bits [31:26].
func (i Instruction) Opcode() uint8 {
	return uint8(uint32(i) >> 26)
}

// Rs extracts bits [25:21].
func (i Instruction) Rs() uint8 {
	return uint8((uint32(i) >> 21) & 0x1F)
}

// Rt extracts bits [20:16].
func (i Instruction) Rt() uint8 {
	return uint8((uint32(i) >> 16) & 0x1F)
}

// Rd extracts bits [15:11].
func (i Instruction) Rd() uint8 {
	return uint8((uint32(i) >> 11) & 0x1F)
}

// Shamt extracts bits [10:6].
func (i Instruction) Shamt() uint8 {
	return uint8((uint32(i) >> 6) & 0x1F)
}

// Funct extracts bits [5:0].
func (i Instruction) Funct() uint8 {
	return uint8(uint32(i) & 0x3F)
}

// Imm extracts bits [15:0].
func (i Instruction) Imm() uint16 {
	return uint16(uint32(i) & 0xFFFF)
}

// Addr extracts bits [25:0].
func (i Instruction) Addr() uint32 {
	return uint32(i) & 0x3FFFFFF
}

// R returns the R-format view.
func (i Instruction) R() RFields {
	return RFields{
		Opcode: i.Opcode(),
		Rs:     i.Rs(),
		Rt:     i.Rt(),
		Rd:     i.Rd(),
		Shamt:  i.Shamt(),
		Funct:  i.Funct(),
	}
}

// I returns the I-format view.
func (i Instruction) I() IFields {
	return IFields{
		Opcode: i.Opcode(),
		Rs:     i.Rs(),
		Rt:     i.Rt(),
		Imm:    i.Imm(),
	}
}

// J returns the J-format view.
func (i Instruction) J() JFields {
	return JFields{
		Opcode: i.Opcode(),
		Addr:   i.Addr(),
	}
}
