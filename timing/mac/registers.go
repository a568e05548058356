// Package mac provides the 3-stage pipelined multiply-accumulate engine
// for cycle-accurate timing simulation.
package mac

import "github.com/Bryan-Kuang/ECE298A/emu"

// Slot is the content of one pipeline stage: an operand pair, its mode,
// and a validity tag. Invalid slots flow through the pipeline like any
// other but must not affect the accumulator.
type Slot struct {
	// Valid indicates if this slot holds a real, not-yet-consumed operation.
	Valid bool

	// A and B are the unsigned 8-bit operands.
	A uint8
	B uint8

	// Mode selects clear-vs-accumulate when the slot reaches the accumulator.
	Mode emu.Mode
}

// Clear resets the slot to the empty state.
func (s *Slot) Clear() {
	s.Valid = false
	s.A = 0
	s.B = 0
	s.Mode = emu.ModeAccumulate
}
