// Package device composes the serial framer and the pipelined MAC engine
// into the complete clocked device behind the narrow host bus.
package device

import (
	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/framer"
	"github.com/Bryan-Kuang/ECE298A/timing/mac"
)

// Inputs are the host-driven signals sampled on one clock edge.
type Inputs struct {
	// Reset synchronously clears all device state this cycle; other
	// inputs are ignored while it is asserted.
	Reset bool

	// Enable gates the framer's input state machine.
	Enable bool

	// Data is the operand chunk for the current framing phase.
	Data uint8

	// Mode is the clear/accumulate bit, sampled only in the first half.
	Mode emu.Mode
}

// Outputs are the device signals observable after one clock edge.
type Outputs struct {
	// Data is the result chunk for the current output phase.
	Data uint8

	// Overflow is the accumulator overflow flag, valid in both phases.
	Overflow bool

	// DataReady is asserted when the framer is idle at an operand
	// boundary and can accept a new transfer.
	DataReady bool
}

// Device is the serial MAC unit: a framer feeding the 3-stage engine,
// all in one clock domain. The framer's result latch samples the
// accumulator on every clock, so a host that reads before waiting out
// the pipeline latency sees a well-defined but stale value; the device
// never detects or reports protocol misuse.
type Device struct {
	framer *framer.Framer
	engine *mac.Engine

	cycles uint64
}

// New creates a device with the byte-paired framing.
func New() *Device {
	return newDevice(framer.Byte)
}

// NewNibble creates a device with the nibble-paired framing.
func NewNibble() *Device {
	return newDevice(framer.Nibble)
}

func newDevice(gran framer.Granularity) *Device {
	return &Device{
		framer: framer.New(gran),
		engine: mac.NewEngine(),
	}
}

// Granularity returns the active framing granularity.
func (d *Device) Granularity() framer.Granularity {
	return d.framer.Granularity()
}

// Tick advances the device by one clock and returns the output signals.
//
// The framer's result latch samples the accumulator before the engine
// advances, mirroring the nonblocking-assignment semantics of the
// register-transfer design: every register consumes its neighbors'
// pre-edge values.
func (d *Device) Tick(in Inputs) Outputs {
	d.cycles++

	if in.Reset {
		d.framer.Reset()
		d.engine.Reset()
		return Outputs{DataReady: d.framer.DataReady(in.Enable)}
	}

	result := d.engine.Result()
	overflow := d.engine.Overflow()

	slot := d.framer.TickInput(framer.Inputs{
		Enable: in.Enable,
		Data:   in.Data,
		Mode:   in.Mode,
	})
	d.framer.TickOutput(in.Enable, result, overflow)
	d.engine.Tick(slot)

	return Outputs{
		Data:      d.framer.DataOut(),
		Overflow:  d.framer.OverflowOut(),
		DataReady: d.framer.DataReady(in.Enable),
	}
}

// Result returns the accumulator's current visible result, bypassing
// the serial interface. Intended for tests and instrumentation.
func (d *Device) Result() uint16 {
	return d.engine.Result()
}

// Stats returns the engine's statistics.
func (d *Device) Stats() mac.Statistics {
	return d.engine.Stats()
}

// Cycles returns the number of clocks the device has been ticked,
// including reset cycles.
func (d *Device) Cycles() uint64 {
	return d.cycles
}

// Reset clears all device state immediately, without consuming a clock.
func (d *Device) Reset() {
	d.framer.Reset()
	d.engine.Reset()
}
