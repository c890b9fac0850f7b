package insts

// MIPS-I opcode values (bits [31:26]).
const (
	OpcodeRType uint8 = 0x00
	OpcodeJ     uint8 = 0x02
	OpcodeJAL   uint8 = 0x03
	OpcodeBEQ   uint8 = 0x04
	OpcodeBNE   uint8 = 0x05
	OpcodeADDI  uint8 = 0x08
	OpcodeADDIU uint8 = 0x09
	OpcodeSLTI  uint8 = 0x0A
	OpcodeANDI  uint8 = 0x0C
	OpcodeORI   uint8 = 0x0D
	OpcodeXORI  uint8 = 0x0E
	OpcodeLUI   uint8 = 0x0F
	OpcodeLW    uint8 = 0x23
	OpcodeSW    uint8 = 0x2B

	// OpcodeHALT stops the machine. It occupies an opcode slot that MIPS-I
	// leaves unused.
	OpcodeHALT uint8 = 0x3F
)

// R-format function codes (bits [5:0]).
const (
	FunctSLL  uint8 = 0x00
	FunctSRL  uint8 = 0x02
	FunctSRA  uint8 = 0x03
	FunctJR   uint8 = 0x08
	FunctADD  uint8 = 0x20
	FunctADDU uint8 = 0x21
	FunctSUB  uint8 = 0x22
	FunctSUBU uint8 = 0x23
	FunctAND  uint8 = 0x24
	FunctOR   uint8 = 0x25
	FunctXOR  uint8 = 0x26
	FunctNOR  uint8 = 0x27
	FunctSLT  uint8 = 0x2A
)
