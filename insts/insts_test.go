package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mips1sim/insts"
)

var _ = Describe("Instruction Fields", func() {
	Describe("R-format view", func() {
		// add $9, $10, $11
		It("should extract all R fields", func() {
			word := insts.Instruction(0x014B4820)

			r := word.R()

			Expect(r.Opcode).To(Equal(insts.OpcodeRType))
			Expect(r.Rs).To(Equal(uint8(10)))
			Expect(r.Rt).To(Equal(uint8(11)))
			Expect(r.Rd).To(Equal(uint8(9)))
			Expect(r.Shamt).To(Equal(uint8(0)))
			Expect(r.Funct).To(Equal(insts.FunctADD))
		})

		// sll with shamt=5
		It("should extract the shift amount", func() {
			word := insts.EncodeR(4, 0, 3, 5, insts.FunctSLL)

			r := word.R()

			Expect(r.Rs).To(Equal(uint8(4)))
			Expect(r.Rd).To(Equal(uint8(3)))
			Expect(r.Shamt).To(Equal(uint8(5)))
			Expect(r.Funct).To(Equal(insts.FunctSLL))
		})
	})

	Describe("I-format view", func() {
		// lw $8, -4($29)
		It("should extract all I fields", func() {
			word := insts.Instruction(0x8FA8FFFC)

			i := word.I()

			Expect(i.Opcode).To(Equal(insts.OpcodeLW))
			Expect(i.Rs).To(Equal(uint8(29)))
			Expect(i.Rt).To(Equal(uint8(8)))
			Expect(i.Imm).To(Equal(uint16(0xFFFC)))
		})
	})

	Describe("J-format view", func() {
		// j 0x0000010
		It("should extract the 26-bit address field", func() {
			word := insts.Instruction(0x08000010)

			j := word.J()

			Expect(j.Opcode).To(Equal(insts.OpcodeJ))
			Expect(j.Addr).To(Equal(uint32(0x10)))
		})

		It("should mask the address to 26 bits", func() {
			word := insts.EncodeJ(insts.OpcodeJAL, 0x3FFFFFF)

			Expect(word.J().Addr).To(Equal(uint32(0x3FFFFFF)))
			Expect(word.Opcode()).To(Equal(insts.OpcodeJAL))
		})
	})

	Describe("unconditional extraction", func() {
		// Decoding is free: every view exists for every word and which
		// one is meaningful is decided downstream.
		It("should produce all three views for the same word", func() {
			word := insts.EncodeI(insts.OpcodeBEQ, 1, 2, 0x0004)

			Expect(word.R().Rs).To(Equal(uint8(1)))
			Expect(word.I().Imm).To(Equal(uint16(0x0004)))
			Expect(word.J().Addr).To(Equal(uint32(1<<21 | 2<<16 | 0x0004)))
		})
	})

	Describe("encoding", func() {
		It("should round-trip an I-format word", func() {
			word := insts.EncodeI(insts.OpcodeADDI, 3, 7, 0x1234)

			i := word.I()

			Expect(i.Opcode).To(Equal(insts.OpcodeADDI))
			Expect(i.Rs).To(Equal(uint8(3)))
			Expect(i.Rt).To(Equal(uint8(7)))
			Expect(i.Imm).To(Equal(uint16(0x1234)))
		})
	})
})
