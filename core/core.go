// Package core provides the single-cycle processor model. It owns the
// sequential collaborators (register file, PC register, memory, caches),
// evaluates the datapath's combinational network once per tick, and
// commits register, PC, and memory updates at the clock edge.
package core

import (
	"github.com/sarchlab/mips1sim/control"
	"github.com/sarchlab/mips1sim/datapath"
	"github.com/sarchlab/mips1sim/emu"
	"github.com/sarchlab/mips1sim/insts"
	"github.com/sarchlab/mips1sim/mem"
	"github.com/sarchlab/mips1sim/mem/cache"
)

// Stats holds performance counters for the processor.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions retired.
	Instructions uint64
	// Stalls is the number of cycles the PC held on a cache miss.
	Stalls uint64
}

// CPI returns the cycles per instruction.
func (s Stats) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// ProcessorOption is a functional option for configuring the Processor.
type ProcessorOption func(*Processor)

// WithICacheConfig sets the instruction cache geometry.
func WithICacheConfig(config cache.Config) ProcessorOption {
	return func(p *Processor) {
		p.icacheConfig = config
	}
}

// WithDCacheConfig sets the data cache geometry.
func WithDCacheConfig(config cache.Config) ProcessorOption {
	return func(p *Processor) {
		p.dcacheConfig = config
	}
}

// Processor is a single-cycle MIPS-style machine: one instruction is
// fetched, executed, and committed per cycle, except when a cache miss
// holds the PC for a cycle while the line fills.
type Processor struct {
	regs    *emu.RegFile
	pc      *emu.PCReg
	memory  *emu.Memory
	icache  *cache.Cache
	dcache  *cache.Cache
	ctrl    *control.Unit
	alu     *emu.ALU
	arbiter *mem.RequestUnit
	dp      *datapath.Datapath

	icacheConfig cache.Config
	dcacheConfig cache.Config

	stats  Stats
	halted bool
}

// NewProcessor creates a processor with empty memory and zeroed registers.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		regs:         &emu.RegFile{},
		pc:           emu.NewPCReg(0),
		memory:       emu.NewMemory(),
		ctrl:         control.NewUnit(),
		alu:          emu.NewALU(),
		arbiter:      mem.NewRequestUnit(),
		icacheConfig: cache.DefaultIConfig(),
		dcacheConfig: cache.DefaultDConfig(),
	}

	for _, opt := range opts {
		opt(p)
	}

	backing := cache.NewMemoryBacking(p.memory)
	p.icache = cache.New(p.icacheConfig, backing)
	p.dcache = cache.New(p.dcacheConfig, backing)

	p.dp = datapath.New(p.ctrl, p.regs, p.alu, p.arbiter)

	return p
}

// RegFile returns the register file.
func (p *Processor) RegFile() *emu.RegFile {
	return p.regs
}

// Memory returns the backing memory.
func (p *Processor) Memory() *emu.Memory {
	return p.memory
}

// ICache returns the instruction cache.
func (p *Processor) ICache() *cache.Cache {
	return p.icache
}

// DCache returns the data cache.
func (p *Processor) DCache() *cache.Cache {
	return p.dcache
}

// PC returns the current fetch address.
func (p *Processor) PC() uint32 {
	return p.pc.Value()
}

// SetPC sets the fetch address.
func (p *Processor) SetPC(addr uint32) {
	p.pc.Set(addr)
}

// Stats returns the performance counters.
func (p *Processor) Stats() Stats {
	return p.stats
}

// Halted reports whether the machine has executed a halt instruction.
func (p *Processor) Halted() bool {
	return p.halted
}

// LoadProgram writes instruction words into memory starting at addr and
// points the PC there. The caches fill from memory on first access, so
// loading must happen before execution starts.
func (p *Processor) LoadProgram(addr uint32, words []insts.Instruction) {
	for i, w := range words {
		p.memory.Write32(addr+uint32(i)*4, uint32(w))
	}
	p.pc.Set(addr)
}

// Tick executes one clock cycle.
//
// The combinational network is evaluated twice: the first evaluation
// settles the address side (decode, register read, ALU) so the data cache
// can answer, and the second folds the cache's response into the final
// outputs. Both evaluations see the same state snapshot, so this models
// one combinational settle, not two cycles. Commits happen at the end,
// the clock edge.
func (p *Processor) Tick() {
	if p.halted {
		return
	}

	p.stats.Cycles++

	pcv := p.pc.Value()

	// Instruction fetch. A miss fills the line and turns this cycle into a
	// pure stall: the PC holds and nothing executes. The refetch next cycle
	// hits.
	ifetch := p.icache.Read(pcv, 4)
	if !ifetch.Hit {
		p.stats.Stalls++
		return
	}

	in := datapath.CycleInputs{
		Instruction:    insts.Instruction(ifetch.Data),
		PC:             pcv,
		InstructionHit: true,
		DataHit:        true,
	}

	// First settle: learn the data address and intents.
	probe := p.dp.Cycle(in)

	switch {
	case probe.Signals.DataReadIntent:
		dres := p.dcache.Read(probe.DataAddress, 4)
		in.DataHit = dres.Hit
		in.DataLoad = dres.Data
	case probe.Signals.DataWriteIntent:
		dres := p.dcache.Write(probe.DataAddress, 4, probe.StoreData)
		in.DataHit = dres.Hit
	}

	// Second settle: final outputs with the memory response folded in.
	out := p.dp.Cycle(in)

	// Clock edge: commit register, PC, and halt state.
	if out.RegWriteEnable {
		p.regs.Write(out.WriteReg, out.WriteData)
	}
	p.pc.Update(out.PCWriteEnable, out.NextPC)

	// The instruction retires: a data-cache miss does not stall because the
	// line fills synchronously (the miss still shows in the cache counters).
	p.stats.Instructions++
	if out.Halt {
		p.halted = true
	}
}

// Run executes cycles until the machine halts or maxCycles elapse.
// Returns true if the machine halted.
func (p *Processor) Run(maxCycles uint64) bool {
	for i := uint64(0); i < maxCycles && !p.halted; i++ {
		p.Tick()
	}
	return p.halted
}

// Reset clears registers, PC, caches, and counters. Memory contents are
// kept so a loaded program can be rerun.
func (p *Processor) Reset() {
	*p.regs = emu.RegFile{}
	p.pc.Set(0)
	p.icache.Reset()
	p.dcache.Reset()
	p.stats = Stats{}
	p.halted = false
}
