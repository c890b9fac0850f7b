package insts

// EncodeR builds an R-format instruction word.
func EncodeR(rs, rt, rd, shamt, funct uint8) Instruction {
	return Instruction(uint32(OpcodeRType)<<26 |
		uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(rd&0x1F)<<11 |
		uint32(shamt&0x1F)<<6 |
		uint32(funct&0x3F))
}

// EncodeI builds an I-format instruction word.
func EncodeI(opcode, rs, rt uint8, imm uint16) Instruction {
	return Instruction(uint32(opcode&0x3F)<<26 |
		uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(imm))
}

// EncodeJ builds a J-format instruction word.
func EncodeJ(opcode uint8, addr uint32) Instruction {
	return Instruction(uint32(opcode&0x3F)<<26 | (addr & 0x3FFFFFF))
}
