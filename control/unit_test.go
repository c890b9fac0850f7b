package control_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mips1sim/control"
	"github.com/sarchlab/mips1sim/insts"
)

var _ = Describe("Control Unit", func() {
	var unit *control.Unit

	BeforeEach(func() {
		unit = control.NewUnit()
	})

	Context("R-type instructions", func() {
		It("should decode add", func() {
			sig := unit.Decode(insts.EncodeR(10, 11, 9, 0, insts.FunctADD))

			Expect(sig.RegDst).To(Equal(control.RegDstRD))
			Expect(sig.ALUSrc).To(Equal(control.ALUSrcRegisterB))
			Expect(sig.MemtoReg).To(Equal(control.MemtoRegALUResult))
			Expect(sig.ALUOp).To(Equal(control.ALUAdd))
			Expect(sig.RegWEN).To(BeTrue())
			Expect(sig.OpFunc).To(Equal(control.OpFuncOther))
		})

		It("should decode sub and slt to their ALU operations", func() {
			Expect(unit.Decode(insts.EncodeR(1, 2, 3, 0, insts.FunctSUB)).ALUOp).
				To(Equal(control.ALUSub))
			Expect(unit.Decode(insts.EncodeR(1, 2, 3, 0, insts.FunctSLT)).ALUOp).
				To(Equal(control.ALUSlt))
		})

		It("should route shift amounts through the immediate path", func() {
			sig := unit.Decode(insts.EncodeR(4, 0, 3, 5, insts.FunctSLL))

			Expect(sig.ALUSrc).To(Equal(control.ALUSrcImmediate))
			Expect(sig.ExtOp).To(Equal(control.ExtOpShiftAmount))
			Expect(sig.ALUOp).To(Equal(control.ALUSll))
			Expect(sig.RegDst).To(Equal(control.RegDstRD))
		})

		It("should decode jr with no register write", func() {
			sig := unit.Decode(insts.EncodeR(31, 0, 0, 0, insts.FunctJR))

			Expect(sig.OpFunc).To(Equal(control.OpFuncJumpRegister))
			Expect(sig.RegWEN).To(BeFalse())
		})

		It("should decode an unknown funct as a NOP bundle", func() {
			sig := unit.Decode(insts.EncodeR(1, 2, 3, 0, 0x3F))

			Expect(sig).To(Equal(control.Signals{}))
		})
	})

	Context("memory instructions", func() {
		It("should decode lw", func() {
			sig := unit.Decode(insts.EncodeI(insts.OpcodeLW, 29, 8, 0xFFFC))

			Expect(sig.RegDst).To(Equal(control.RegDstRT))
			Expect(sig.ALUSrc).To(Equal(control.ALUSrcImmediate))
			Expect(sig.MemtoReg).To(Equal(control.MemtoRegDataLoad))
			Expect(sig.ExtOp).To(Equal(control.ExtOpSign))
			Expect(sig.RegWEN).To(BeTrue())
			Expect(sig.DataReadIntent).To(BeTrue())
			Expect(sig.DataWriteIntent).To(BeFalse())
		})

		It("should decode sw with no register write", func() {
			sig := unit.Decode(insts.EncodeI(insts.OpcodeSW, 29, 8, 0x0010))

			Expect(sig.RegWEN).To(BeFalse())
			Expect(sig.DataWriteIntent).To(BeTrue())
			Expect(sig.DataReadIntent).To(BeFalse())
			Expect(sig.ExtOp).To(Equal(control.ExtOpSign))
		})
	})

	Context("immediate ALU instructions", func() {
		It("should sign-extend for addi and zero-extend for the logical ops", func() {
			Expect(unit.Decode(insts.EncodeI(insts.OpcodeADDI, 1, 2, 0)).ExtOp).
				To(Equal(control.ExtOpSign))
			Expect(unit.Decode(insts.EncodeI(insts.OpcodeANDI, 1, 2, 0)).ExtOp).
				To(Equal(control.ExtOpZero))
			Expect(unit.Decode(insts.EncodeI(insts.OpcodeORI, 1, 2, 0)).ExtOp).
				To(Equal(control.ExtOpZero))
		})

		It("should decode lui through the upper-immediate extension", func() {
			sig := unit.Decode(insts.EncodeI(insts.OpcodeLUI, 0, 5, 0x1234))

			Expect(sig.ExtOp).To(Equal(control.ExtOpUpperImmediate))
			Expect(sig.RegDst).To(Equal(control.RegDstRT))
			Expect(sig.RegWEN).To(BeTrue())
		})
	})

	Context("control-flow instructions", func() {
		It("should classify beq and bne", func() {
			beq := unit.Decode(insts.EncodeI(insts.OpcodeBEQ, 1, 2, 4))
			bne := unit.Decode(insts.EncodeI(insts.OpcodeBNE, 1, 2, 4))

			Expect(beq.OpFunc).To(Equal(control.OpFuncBranchEqual))
			Expect(beq.ALUOp).To(Equal(control.ALUSub))
			Expect(beq.RegWEN).To(BeFalse())
			Expect(bne.OpFunc).To(Equal(control.OpFuncBranchNotEqual))
		})

		It("should classify j", func() {
			sig := unit.Decode(insts.EncodeJ(insts.OpcodeJ, 0x10))

			Expect(sig.OpFunc).To(Equal(control.OpFuncJump))
			Expect(sig.RegWEN).To(BeFalse())
		})

		It("should decode jal to link through $31", func() {
			sig := unit.Decode(insts.EncodeJ(insts.OpcodeJAL, 0x10))

			Expect(sig.OpFunc).To(Equal(control.OpFuncJumpAndLink))
			Expect(sig.RegDst).To(Equal(control.RegDstR31))
			Expect(sig.MemtoReg).To(Equal(control.MemtoRegNextPC))
			Expect(sig.RegWEN).To(BeTrue())
		})
	})

	Context("halt and unknown opcodes", func() {
		It("should decode halt", func() {
			sig := unit.Decode(insts.EncodeI(insts.OpcodeHALT, 0, 0, 0))

			Expect(sig.Halt).To(BeTrue())
			Expect(sig.RegWEN).To(BeFalse())
		})

		It("should decode an unknown opcode as a NOP bundle", func() {
			sig := unit.Decode(insts.EncodeI(0x3A, 1, 2, 3))

			Expect(sig).To(Equal(control.Signals{}))
		})
	})

	It("should be a pure function of the word", func() {
		word := insts.EncodeI(insts.OpcodeLW, 29, 8, 0xFFFC)

		first := unit.Decode(word)
		second := unit.Decode(word)

		Expect(first).To(Equal(second))
	})
})
