package emu

// PCReg holds the current fetch address. It updates only when explicitly
// enabled at the clock edge; a deasserted enable holds the value, which is
// the machine's stall mechanism.
type PCReg struct {
	value uint32
}

// NewPCReg creates a PC register starting at the given address.
func NewPCReg(start uint32) *PCReg {
	return &PCReg{value: start}
}

// Value returns the current fetch address.
func (p *PCReg) Value() uint32 {
	return p.value
}

// Update latches the next fetch address when enable is asserted and holds
// the current value otherwise.
func (p *PCReg) Update(enable bool, next uint32) {
	if enable {
		p.value = next
	}
}

// Set forces the fetch address, bypassing the enable. Used for reset.
func (p *PCReg) Set(addr uint32) {
	p.value = addr
}
