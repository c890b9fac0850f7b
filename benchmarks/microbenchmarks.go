// Package benchmarks provides self-checking microbenchmark programs for
// the single-cycle machine, plus a harness that runs them and collects
// cycle and cache statistics.
package benchmarks

import (
	"github.com/sarchlab/mips1sim/emu"
	"github.com/sarchlab/mips1sim/insts"
)

// Benchmark defines a single benchmark program.
type Benchmark struct {
	// Name identifies the benchmark.
	Name string

	// Description explains what the benchmark measures.
	Description string

	// Setup pre-loads registers and memory before the run.
	Setup func(regs *emu.RegFile, memory *emu.Memory)

	// Program is the instruction sequence, loaded at address 0.
	Program []insts.Instruction

	// Expected maps register numbers to the values they must hold after
	// the program halts.
	Expected map[uint8]uint32
}

// GetMicrobenchmarks returns the standard set of microbenchmarks. Each one
// targets a specific machine characteristic.
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		arithmeticSequential(),
		dependencyChain(),
		memorySequential(),
		branchLoop(),
		functionCalls(),
	}
}

// 1. Arithmetic Sequential - independent immediate adds across registers.
func arithmeticSequential() Benchmark {
	program := []insts.Instruction{}
	for round := 0; round < 3; round++ {
		for reg := uint8(8); reg <= 11; reg++ {
			program = append(program,
				insts.EncodeI(insts.OpcodeADDI, reg, reg, 1))
		}
	}
	program = append(program, insts.EncodeJ(insts.OpcodeHALT, 0))

	return Benchmark{
		Name:        "arithmetic_sequential",
		Description: "12 independent immediate adds across four registers",
		Program:     program,
		Expected: map[uint8]uint32{
			8: 3, 9: 3, 10: 3, 11: 3,
		},
	}
}

// 2. Dependency Chain - each add consumes the previous result.
func dependencyChain() Benchmark {
	return Benchmark{
		Name:        "dependency_chain",
		Description: "serial doubling chain, every add depends on the last",
		Program: []insts.Instruction{
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 1),
			insts.EncodeR(8, 8, 8, 0, insts.FunctADD),
			insts.EncodeR(8, 8, 8, 0, insts.FunctADD),
			insts.EncodeR(8, 8, 8, 0, insts.FunctADD),
			insts.EncodeR(8, 8, 8, 0, insts.FunctADD),
			insts.EncodeR(8, 8, 8, 0, insts.FunctADD),
			insts.EncodeJ(insts.OpcodeHALT, 0),
		},
		Expected: map[uint8]uint32{8: 32},
	}
}

// 3. Memory Sequential - store a small array, load it back, sum it.
func memorySequential() Benchmark {
	return Benchmark{
		Name:        "memory_sequential",
		Description: "sequential stores and loads over one cache line",
		Program: []insts.Instruction{
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 1),
			insts.EncodeI(insts.OpcodeSW, 0, 8, 0x200),
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 2),
			insts.EncodeI(insts.OpcodeSW, 0, 8, 0x204),
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 3),
			insts.EncodeI(insts.OpcodeSW, 0, 8, 0x208),
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 4),
			insts.EncodeI(insts.OpcodeSW, 0, 8, 0x20C),
			insts.EncodeI(insts.OpcodeLW, 0, 9, 0x200),
			insts.EncodeI(insts.OpcodeLW, 0, 10, 0x204),
			insts.EncodeI(insts.OpcodeLW, 0, 11, 0x208),
			insts.EncodeI(insts.OpcodeLW, 0, 12, 0x20C),
			insts.EncodeR(9, 10, 9, 0, insts.FunctADD),
			insts.EncodeR(9, 11, 9, 0, insts.FunctADD),
			insts.EncodeR(9, 12, 9, 0, insts.FunctADD),
			insts.EncodeJ(insts.OpcodeHALT, 0),
		},
		Expected: map[uint8]uint32{9: 10},
	}
}

// 4. Branch Loop - counted accumulation loop, taken branch per iteration.
func branchLoop() Benchmark {
	return Benchmark{
		Name:        "branch_loop",
		Description: "counted loop summing the counter, branch taken 7 times",
		Program: []insts.Instruction{
			insts.EncodeI(insts.OpcodeADDI, 0, 8, 8),      // counter = 8
			insts.EncodeI(insts.OpcodeADDI, 0, 9, 0),      // sum = 0
			insts.EncodeR(9, 8, 9, 0, insts.FunctADD),     // loop: sum += counter
			insts.EncodeI(insts.OpcodeADDI, 8, 8, 0xFFFF), // counter--
			insts.EncodeI(insts.OpcodeBNE, 8, 0, 0xFFFD),  // bne $8, $0, loop
			insts.EncodeJ(insts.OpcodeHALT, 0),
		},
		Expected: map[uint8]uint32{8: 0, 9: 36},
	}
}

// 5. Function Calls - two call/return round trips through one subroutine.
func functionCalls() Benchmark {
	return Benchmark{
		Name:        "function_calls",
		Description: "two jal/jr round trips through a counting subroutine",
		Program: []insts.Instruction{
			insts.EncodeJ(insts.OpcodeJAL, 4), // jal 0x10
			insts.EncodeJ(insts.OpcodeJAL, 4), // jal 0x10
			insts.EncodeJ(insts.OpcodeHALT, 0),
			0, // padding
			insts.EncodeI(insts.OpcodeADDI, 8, 8, 1), // 0x10: $8++
			insts.EncodeR(31, 0, 0, 0, insts.FunctJR),
		},
		Expected: map[uint8]uint32{8: 2, 31: 8},
	}
}
