package device

import (
	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/framer"
	"github.com/Bryan-Kuang/ECE298A/timing/latency"
)

// Transactor drives a Device the way a well-behaved host does: hold
// enable for both halves of a write, idle through the settle window,
// then sample both halves of the read window. It is the software
// equivalent of the bench driver the device was characterized with.
type Transactor struct {
	dev    *Device
	config *latency.TimingConfig

	// last holds the outputs of the most recent tick, the signals a
	// host would sample between clock edges.
	last Outputs
}

// NewTransactor creates a transactor for the given device. A nil config
// uses the default protocol timing.
func NewTransactor(dev *Device, config *latency.TimingConfig) *Transactor {
	if config == nil {
		config = latency.DefaultTimingConfig()
	}
	return &Transactor{dev: dev, config: config}
}

// Device returns the device under the transactor.
func (t *Transactor) Device() *Device {
	return t.dev
}

// Outputs returns the device outputs sampled after the most recent tick.
func (t *Transactor) Outputs() Outputs {
	return t.last
}

// Reset holds reset for the configured cycle count, then idles through
// the recovery window.
func (t *Transactor) Reset() {
	for i := uint64(0); i < t.config.ResetCycles; i++ {
		t.last = t.dev.Tick(Inputs{Reset: true})
	}
	t.Idle(t.config.ResetRecoveryCycles)
}

// Idle ticks the device for the given number of cycles with the
// interface disabled.
func (t *Transactor) Idle(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		t.last = t.dev.Tick(Inputs{})
	}
}

// Send frames one operation across the serial interface: two enabled
// cycles carrying the operand chunks, then one disabled cycle to return
// the interface to idle.
func (t *Transactor) Send(a, b uint8, mode emu.Mode) {
	first, second := t.dev.Granularity().InputChunks(a, b)

	t.last = t.dev.Tick(Inputs{Enable: true, Data: first, Mode: mode})
	t.last = t.dev.Tick(Inputs{Enable: true, Data: second})
	t.last = t.dev.Tick(Inputs{})
}

// Settle idles through the configured settle window so the submitted
// operation drains the pipeline before a read.
func (t *Transactor) Settle() {
	t.Idle(t.config.SettleCycles)
}

// ReadResult samples both halves of the open read window and
// reconstructs the 16-bit result and the overflow flag.
func (t *Transactor) ReadResult() (uint16, bool) {
	// Land on a window boundary so the first sample is the first half.
	// A real host gets this alignment for free by counting cycles from
	// the end of its write; the transactor reads the phase directly.
	if t.dev.framer.OutputPhase() != framer.FirstHalf {
		t.last = t.dev.Tick(Inputs{})
	}

	first := t.last.Data
	overflow := t.last.Overflow

	t.last = t.dev.Tick(Inputs{})
	second := t.last.Data

	return t.dev.Granularity().AssembleResult(first, second), overflow
}

// Run performs one complete operation: send, settle, read.
func (t *Transactor) Run(a, b uint8, mode emu.Mode) (uint16, bool) {
	t.Send(a, b, mode)
	t.Settle()
	return t.ReadResult()
}
