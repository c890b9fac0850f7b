// Package emu provides the sequential units of the machine: the register
// file, the ALU, byte-addressable memory, and the program counter register.
// Each is a narrow, independently testable collaborator of the datapath.
package emu

// RegFile holds the 32 general-purpose registers.
// Reads are combinational; writes are applied by the core at the clock edge.
// Register 0 is hardwired to zero: it always reads as 0 and writes to it
// are discarded.
type RegFile struct {
	// R holds registers $0-$31.
	R [32]uint32
}

// Read returns a register value. Register 0 reads as 0; indices outside
// 0-31 also read as 0.
func (r *RegFile) Read(reg uint8) uint32 {
	if reg == 0 || reg >= 32 {
		return 0
	}
	return r.R[reg]
}

// Write stores a value into a register. Writes to register 0 and to
// indices outside 0-31 are discarded.
func (r *RegFile) Write(reg uint8, value uint32) {
	if reg == 0 || reg >= 32 {
		return
	}
	r.R[reg] = value
}
