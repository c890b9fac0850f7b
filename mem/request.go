// Package mem provides the memory-side boundary of the machine: the
// request unit that arbitrates per-cycle memory accesses, and (in the
// cache subpackage) the L1 cache models that produce the hit signals the
// arbiter consumes.
package mem

// Request carries one cycle's memory intents and cache-hit signals into
// the request unit. The datapath forwards the control unit's read/write
// intents here unchanged.
type Request struct {
	// ReadIntent requests a data read this cycle.
	ReadIntent bool

	// WriteIntent requests a data write this cycle.
	WriteIntent bool

	// InstructionHit reports the instruction cache holds the fetch word.
	InstructionHit bool

	// DataHit reports the data cache holds the accessed line.
	DataHit bool
}

// Grant carries the gated memory enables back out of the request unit.
// The datapath surfaces these to the memory boundary unchanged.
type Grant struct {
	// InstructionRead enables the fetch of the next instruction: the
	// current cycle completed with no outstanding miss.
	InstructionRead bool

	// DataRead enables the data-memory read this cycle.
	DataRead bool

	// DataWrite enables the data-memory write this cycle.
	DataWrite bool

	// Atomic reports an atomic read-modify-write access. This layer never
	// issues one; the field is a seam for a future extension.
	Atomic bool
}

// RequestUnit turns read/write intents plus cache-hit signals into actual
// memory-enable pulses. A miss on either cache deasserts the enables for
// the cycle; the machine holds until the line arrives.
type RequestUnit struct{}

// NewRequestUnit creates a new request unit.
func NewRequestUnit() *RequestUnit {
	return &RequestUnit{}
}

// Arbitrate computes the gated enables for one cycle.
//
// A data access is granted only when the instruction that issued it
// actually fetched (instruction hit) and the data cache holds the line.
// The instruction-read enable asserts when the whole cycle can complete:
// the fetch hit and any data access it carries also hit.
func (u *RequestUnit) Arbitrate(req Request) Grant {
	dataAccess := req.ReadIntent || req.WriteIntent
	complete := req.InstructionHit && (!dataAccess || req.DataHit)

	return Grant{
		InstructionRead: complete,
		DataRead:        req.ReadIntent && req.InstructionHit && req.DataHit,
		DataWrite:       req.WriteIntent && req.InstructionHit && req.DataHit,
		Atomic:          false,
	}
}
