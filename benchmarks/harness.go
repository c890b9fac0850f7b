package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sarchlab/mips1sim/core"
)

// maxCycles bounds a benchmark run; a program that has not halted by then
// is reported as such rather than spinning forever.
const maxCycles = 1_000_000

// Result holds the statistics from a single benchmark run.
type Result struct {
	// Name identifies the benchmark.
	Name string `json:"name"`

	// Description explains what the benchmark measures.
	Description string `json:"description"`

	// Halted reports whether the program reached its halt instruction.
	Halted bool `json:"halted"`

	// Cycles is the total cycle count.
	Cycles uint64 `json:"cycles"`

	// Instructions is the number of retired instructions.
	Instructions uint64 `json:"instructions"`

	// Stalls is the number of cycles the PC held on a fetch miss.
	Stalls uint64 `json:"stalls"`

	// CPI is cycles per instruction.
	CPI float64 `json:"cpi"`

	// Instruction and data cache miss counts.
	ICacheMisses uint64 `json:"icache_misses"`
	DCacheMisses uint64 `json:"dcache_misses"`

	// WallTime is the host time taken to run the simulation.
	WallTime time.Duration `json:"wall_time_ns"`

	// RegisterMismatches lists registers whose final value differed from
	// the benchmark's expectation, empty on a correct run.
	RegisterMismatches []string `json:"register_mismatches,omitempty"`
}

// Run executes one benchmark on a fresh processor and collects its result.
func Run(b Benchmark) Result {
	p := core.NewProcessor()
	p.LoadProgram(0, b.Program)
	if b.Setup != nil {
		b.Setup(p.RegFile(), p.Memory())
	}

	start := time.Now()
	halted := p.Run(maxCycles)
	wall := time.Since(start)

	stats := p.Stats()

	result := Result{
		Name:         b.Name,
		Description:  b.Description,
		Halted:       halted,
		Cycles:       stats.Cycles,
		Instructions: stats.Instructions,
		Stalls:       stats.Stalls,
		CPI:          stats.CPI(),
		ICacheMisses: p.ICache().Stats().Misses,
		DCacheMisses: p.DCache().Stats().Misses,
		WallTime:     wall,
	}

	for reg, want := range b.Expected {
		got := p.RegFile().Read(reg)
		if got != want {
			result.RegisterMismatches = append(result.RegisterMismatches,
				fmt.Sprintf("$%d: got 0x%X, want 0x%X", reg, got, want))
		}
	}

	return result
}

// RunAll executes every benchmark in order.
func RunAll(bs []Benchmark) []Result {
	results := make([]Result, 0, len(bs))
	for _, b := range bs {
		results = append(results, Run(b))
	}
	return results
}

// WriteReport writes the results as indented JSON.
func WriteReport(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
