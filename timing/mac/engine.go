package mac

import "github.com/Bryan-Kuang/ECE298A/emu"

// Statistics holds engine performance counters.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Operations is the number of valid operations retired by the accumulator.
	Operations uint64
	// Overflows is the number of retired operations whose accumulation
	// carried out of bit 16.
	Overflows uint64
}

// Engine is the 3-stage pipelined MAC core:
// input register -> pipeline register -> multiply+accumulate.
//
// The pipeline advances on every tick regardless of validity and cannot
// be stalled or back-pressured. A valid slot presented on tick t updates
// the accumulator at the end of tick t+2, so the new result is visible
// from tick t+3 onward.
type Engine struct {
	// Pipeline registers
	input Slot
	pipe  Slot

	acc      Accumulator
	detector ChangeDetector

	stats Statistics
}

// NewEngine creates an engine with all stages empty and the accumulator
// zeroed.
func NewEngine() *Engine {
	return &Engine{}
}

// Tick advances the pipeline by one clock with an explicitly tagged slot.
// This is the framed input path: the serial framer decides validity, so
// the change detector is not consulted.
//
// Stages are evaluated output-first so each register consumes the value
// its upstream neighbor held before this edge.
func (e *Engine) Tick(in Slot) {
	e.stats.Cycles++

	// Stage 3: multiply + accumulate
	if e.pipe.Valid {
		product := Multiply(e.pipe.A, e.pipe.B)
		e.acc.Apply(e.pipe.Mode, product)
		e.stats.Operations++
		if e.acc.Overflow() {
			e.stats.Overflows++
		}
	}

	// Stage 2: pipeline register
	e.pipe = e.input

	// Stage 1: input register
	e.input = in
}

// TickObserved advances the pipeline by one clock with raw operand inputs.
// This is the direct-drive path: validity comes from the change detector,
// so a host holding static inputs retires exactly one operation.
func (e *Engine) TickObserved(a, b uint8, mode emu.Mode) {
	changed := e.detector.Observe(a, b, mode)
	e.Tick(Slot{Valid: changed, A: a, B: b, Mode: mode})
}

// Result returns the accumulator's visible 16-bit result.
func (e *Engine) Result() uint16 {
	return e.acc.Result()
}

// Overflow returns the accumulator's overflow flag.
func (e *Engine) Overflow() bool {
	return e.acc.Overflow()
}

// Stats returns engine statistics.
func (e *Engine) Stats() Statistics {
	return e.stats
}

// Reset clears both pipeline registers, the accumulator, the change
// detector, and the statistics. The visible result returns to zero and
// overflow deasserts.
func (e *Engine) Reset() {
	e.input.Clear()
	e.pipe.Clear()
	e.acc.Reset()
	e.detector.Reset()
	e.stats = Statistics{}
}
