package datapath_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mips1sim/control"
	"github.com/sarchlab/mips1sim/datapath"
)

var _ = Describe("SelectWriteRegister", func() {
	It("should select rd, rt, or the link register", func() {
		Expect(datapath.SelectWriteRegister(control.RegDstRD, 9, 10)).
			To(Equal(uint8(9)))
		Expect(datapath.SelectWriteRegister(control.RegDstRT, 9, 10)).
			To(Equal(uint8(10)))
		Expect(datapath.SelectWriteRegister(control.RegDstR31, 9, 10)).
			To(Equal(uint8(31)))
	})

	It("should sink unlisted selectors into register 0", func() {
		Expect(datapath.SelectWriteRegister(control.RegDst(7), 9, 10)).
			To(Equal(uint8(0)))
	})
})

var _ = Describe("SelectOperandB", func() {
	It("should select the register port or the extended immediate", func() {
		Expect(datapath.SelectOperandB(control.ALUSrcRegisterB, 0x11, 0x22)).
			To(Equal(uint32(0x11)))
		Expect(datapath.SelectOperandB(control.ALUSrcImmediate, 0x11, 0x22)).
			To(Equal(uint32(0x22)))
	})
})

var _ = Describe("SelectWriteBack", func() {
	It("should select among the four write-back sources", func() {
		Expect(datapath.SelectWriteBack(control.MemtoRegALUResult, 1, 2, 3, 4)).
			To(Equal(uint32(1)))
		Expect(datapath.SelectWriteBack(control.MemtoRegDataLoad, 1, 2, 3, 4)).
			To(Equal(uint32(2)))
		Expect(datapath.SelectWriteBack(control.MemtoRegPortB, 1, 2, 3, 4)).
			To(Equal(uint32(3)))
		Expect(datapath.SelectWriteBack(control.MemtoRegNextPC, 1, 2, 3, 4)).
			To(Equal(uint32(4)))
	})

	It("should resolve unlisted selectors to the next-PC branch", func() {
		Expect(datapath.SelectWriteBack(control.MemtoReg(5), 1, 2, 3, 4)).
			To(Equal(uint32(4)))
	})
})
