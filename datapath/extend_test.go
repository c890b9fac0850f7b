package datapath_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mips1sim/control"
	"github.com/sarchlab/mips1sim/datapath"
)

var _ = Describe("ExtendImmediate", func() {
	It("should zero-extend", func() {
		Expect(datapath.ExtendImmediate(0x8000, 0, control.ExtOpZero)).
			To(Equal(uint32(0x00008000)))
		Expect(datapath.ExtendImmediate(0x1234, 0, control.ExtOpZero)).
			To(Equal(uint32(0x00001234)))
	})

	It("should sign-extend a negative immediate", func() {
		Expect(datapath.ExtendImmediate(0x8000, 0, control.ExtOpSign)).
			To(Equal(uint32(0xFFFF8000)))
		Expect(datapath.ExtendImmediate(0xFFFC, 0, control.ExtOpSign)).
			To(Equal(uint32(0xFFFFFFFC)))
	})

	It("should sign-extend a positive immediate to itself", func() {
		Expect(datapath.ExtendImmediate(0x7FFF, 0, control.ExtOpSign)).
			To(Equal(uint32(0x00007FFF)))
	})

	It("should pass the shift amount through, ignoring the immediate", func() {
		Expect(datapath.ExtendImmediate(0xFFFF, 12, control.ExtOpShiftAmount)).
			To(Equal(uint32(12)))
	})

	It("should place the immediate in the upper half", func() {
		Expect(datapath.ExtendImmediate(0xABCD, 0, control.ExtOpUpperImmediate)).
			To(Equal(uint32(0xABCD0000)))
	})

	It("should resolve unlisted selectors to the upper-immediate branch", func() {
		Expect(datapath.ExtendImmediate(0xABCD, 0, control.ExtOp(9))).
			To(Equal(uint32(0xABCD0000)))
	})
})
