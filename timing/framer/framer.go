// Package framer provides the serial protocol state machine that spreads
// wide operands and results across cycle-sized chunks on a narrow host bus.
package framer

import (
	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/mac"
)

// Phase identifies which half of a framed transfer is in flight.
type Phase uint8

const (
	// FirstHalf is the idle/boundary phase; a transfer starts here.
	FirstHalf Phase = iota
	// SecondHalf completes a transfer and returns to FirstHalf.
	SecondHalf
)

// Inputs are the host-driven signals sampled on one clock.
type Inputs struct {
	// Enable gates the input state machine; the framer is idle while it
	// is deasserted.
	Enable bool

	// Data is the operand chunk for the current input phase.
	Data uint8

	// Mode is the clear/accumulate bit, sampled only in FirstHalf.
	Mode emu.Mode
}

// Framer runs the 2-phase input assembler and the 2-phase output
// disassembler concurrently. The two sides share no state except the
// result latch the output side refreshes from the accumulator.
type Framer struct {
	gran Granularity

	// Input side
	inPhase    Phase
	staged     uint8
	stagedMode emu.Mode

	// Output side
	outPhase        Phase
	latchedResult   uint16
	latchedOverflow bool
	resultAvailable bool
}

// New creates a framer with the given chunk granularity, idle at an
// operand boundary.
func New(gran Granularity) *Framer {
	return &Framer{gran: gran}
}

// Granularity returns the active chunk granularity.
func (f *Framer) Granularity() Granularity {
	return f.gran
}

// TickInput advances the input state machine by one clock and returns
// the pipeline slot to feed the engine this cycle. The slot is valid
// only on the clock that completes an operand pair.
//
// While Enable is deasserted the phase holds, so a transfer abandoned
// after its first half stays frozen; the staged chunk is overwritten by
// the next transfer and the last completed pair is never corrupted.
func (f *Framer) TickInput(in Inputs) mac.Slot {
	if !in.Enable {
		return mac.Slot{}
	}

	if f.inPhase == FirstHalf {
		f.staged = in.Data
		f.stagedMode = in.Mode
		f.inPhase = SecondHalf
		return mac.Slot{}
	}

	a, b := f.gran.Assemble(f.staged, in.Data)
	f.inPhase = FirstHalf

	// Completing a write ends any open read window.
	f.resultAvailable = false

	return mac.Slot{Valid: true, A: a, B: b, Mode: f.stagedMode}
}

// TickOutput advances the output state machine by one clock. The result
// latch refreshes unconditionally from the accumulator's current visible
// output; it reflects whatever the accumulator holds at this edge, which
// is stale until the host has waited out the pipeline latency.
//
// When the host is not writing, the first idle clock opens a fresh read
// window at FirstHalf; each further idle clock toggles the exposed half.
func (f *Framer) TickOutput(enable bool, result uint16, overflow bool) {
	f.latchedResult = result
	f.latchedOverflow = overflow

	if enable {
		return
	}

	if !f.resultAvailable {
		f.outPhase = FirstHalf
		f.resultAvailable = true
		return
	}

	if f.outPhase == FirstHalf {
		f.outPhase = SecondHalf
	} else {
		f.outPhase = FirstHalf
	}
}

// DataOut returns the result chunk for the current output phase.
func (f *Framer) DataOut() uint8 {
	return f.gran.ResultChunk(f.latchedResult, f.outPhase)
}

// OverflowOut returns the latched overflow flag. It is exposed
// identically in both output phases.
func (f *Framer) OverflowOut() bool {
	return f.latchedOverflow
}

// DataReady reports whether the framer is idle at an operand boundary:
// input phase at FirstHalf with Enable deasserted.
func (f *Framer) DataReady(enable bool) bool {
	return f.inPhase == FirstHalf && !enable
}

// InputPhase returns the input-side phase.
func (f *Framer) InputPhase() Phase {
	return f.inPhase
}

// OutputPhase returns the output-side phase.
func (f *Framer) OutputPhase() Phase {
	return f.outPhase
}

// ResultAvailable reports whether a read window is open.
func (f *Framer) ResultAvailable() bool {
	return f.resultAvailable
}

// Reset returns both phases to FirstHalf, clears the staged chunk and
// the result latch, and closes the read window.
func (f *Framer) Reset() {
	f.inPhase = FirstHalf
	f.staged = 0
	f.stagedMode = emu.ModeAccumulate
	f.outPhase = FirstHalf
	f.latchedResult = 0
	f.latchedOverflow = false
	f.resultAvailable = false
}
