package benchmarks_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mips1sim/benchmarks"
)

var _ = Describe("Microbenchmarks", func() {
	It("should run every benchmark to completion with correct results", func() {
		for _, b := range benchmarks.GetMicrobenchmarks() {
			result := benchmarks.Run(b)

			Expect(result.Halted).To(BeTrue(), "benchmark %s did not halt", b.Name)
			Expect(result.RegisterMismatches).To(BeEmpty(),
				"benchmark %s: %v", b.Name, result.RegisterMismatches)
			Expect(result.Instructions).To(BeNumerically(">", 0))
			Expect(result.CPI).To(BeNumerically(">=", 1.0))
		}
	})

	It("should charge the branch loop one cycle per retired instruction plus fetch stalls", func() {
		var loop benchmarks.Benchmark
		for _, b := range benchmarks.GetMicrobenchmarks() {
			if b.Name == "branch_loop" {
				loop = b
			}
		}

		result := benchmarks.Run(loop)

		Expect(result.Cycles).To(Equal(result.Instructions + result.Stalls))
	})

	It("should see cold-cache fetch misses once per line", func() {
		var mem benchmarks.Benchmark
		for _, b := range benchmarks.GetMicrobenchmarks() {
			if b.Name == "memory_sequential" {
				mem = b
			}
		}

		result := benchmarks.Run(mem)

		// 16 instructions over four 16-byte lines, data in one line.
		Expect(result.ICacheMisses).To(Equal(uint64(4)))
		Expect(result.DCacheMisses).To(Equal(uint64(1)))
	})

	It("should serialize a report", func() {
		results := benchmarks.RunAll(benchmarks.GetMicrobenchmarks())

		var buf bytes.Buffer
		Expect(benchmarks.WriteReport(&buf, results)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("branch_loop"))
		Expect(buf.String()).To(ContainSubstring("\"cpi\""))
	})
})
