package acc

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Phase tracks where the accelerator is in the host protocol for the
// operation in flight.
type Phase int

const (
	// PhaseReset holds the device in reset.
	PhaseReset Phase = iota

	// PhaseRecover idles through the post-reset recovery window.
	PhaseRecover

	// PhaseIdle waits for a request.
	PhaseIdle

	// PhaseSendSecond drives the second operand chunk.
	PhaseSendSecond

	// PhaseGap returns the interface to idle after a write pair.
	PhaseGap

	// PhaseSettle idles while the pipeline drains.
	PhaseSettle

	// PhaseReadSecond has sampled the first result chunk and needs the
	// second.
	PhaseReadSecond

	// PhaseRespond holds a completed result until the response is sent.
	PhaseRespond
)

// State is the mutable runtime data of the accelerator. It is pure data
// so it can be snapshotted; the clocked device itself is rebuilt from
// the Spec and replayed, not serialized.
type State struct {
	Phase Phase

	// CyclesLeft counts down the reset, recovery, and settle windows.
	CyclesLeft uint64

	// The operation in flight.
	A          uint8
	B          uint8
	Accumulate bool

	// SecondChunk is the staged second operand chunk for PhaseSendSecond.
	SecondChunk uint8

	// FirstResult holds the first sampled result chunk between the two
	// read cycles.
	FirstResult uint8

	// Completed result awaiting PhaseRespond delivery.
	Result   uint16
	Overflow bool

	// Response routing for the request in flight.
	ReqID string
	Src   sim.RemotePort
}
