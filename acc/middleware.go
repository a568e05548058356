package acc

import (
	"github.com/Bryan-Kuang/ECE298A/device"
	"github.com/Bryan-Kuang/ECE298A/emu"
)

// middleware runs the host protocol, one device clock per tick.
type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	s := &m.state

	switch s.Phase {
	case PhaseReset:
		m.dev.Tick(device.Inputs{Reset: true})
		s.CyclesLeft--
		if s.CyclesLeft == 0 {
			s.Phase = PhaseRecover
			s.CyclesLeft = m.Spec.Timing.ResetRecoveryCycles
		}
		return true

	case PhaseRecover:
		m.dev.Tick(device.Inputs{})
		s.CyclesLeft--
		if s.CyclesLeft == 0 {
			s.Phase = PhaseIdle
		}
		return true

	case PhaseIdle:
		return m.acceptRequest()

	case PhaseSendSecond:
		m.dev.Tick(device.Inputs{Enable: true, Data: s.SecondChunk})
		s.Phase = PhaseGap
		return true

	case PhaseGap:
		m.dev.Tick(device.Inputs{})
		s.Phase = PhaseSettle
		s.CyclesLeft = m.Spec.Timing.SettleCycles
		return true

	case PhaseSettle:
		out := m.dev.Tick(device.Inputs{})
		s.CyclesLeft--
		if s.CyclesLeft == 0 {
			// The last settle cycle presents the first result chunk.
			s.FirstResult = out.Data
			s.Overflow = out.Overflow
			s.Phase = PhaseReadSecond
		}
		return true

	case PhaseReadSecond:
		out := m.dev.Tick(device.Inputs{})
		s.Result = m.dev.Granularity().AssembleResult(s.FirstResult, out.Data)
		s.Phase = PhaseRespond
		return true

	case PhaseRespond:
		return m.respond()
	}

	return false
}

// acceptRequest pulls the next ComputeReq and drives the first operand
// chunk in the same cycle.
func (m *middleware) acceptRequest() bool {
	msg := m.ctrlPort.PeekIncoming()
	if msg == nil {
		return false
	}

	req := msg.(*ComputeReq)
	m.ctrlPort.RetrieveIncoming()

	s := &m.state
	s.A = req.A
	s.B = req.B
	s.Accumulate = req.Accumulate
	s.ReqID = req.ID
	s.Src = req.Src

	mode := emu.ModeClear
	if req.Accumulate {
		mode = emu.ModeAccumulate
	}

	first, second := m.dev.Granularity().InputChunks(req.A, req.B)
	m.dev.Tick(device.Inputs{Enable: true, Data: first, Mode: mode})
	s.SecondChunk = second
	s.Phase = PhaseSendSecond

	return true
}

// respond delivers the completed result. The device clock is gated
// while the response waits for buffer space.
func (m *middleware) respond() bool {
	s := &m.state

	rsp := ComputeRspBuilder{}.
		WithSrc(m.ctrlPort.AsRemote()).
		WithDst(s.Src).
		WithRspTo(s.ReqID).
		WithResult(s.Result).
		WithOverflow(s.Overflow).
		Build()

	if err := m.ctrlPort.Send(rsp); err != nil {
		return false
	}

	s.Phase = PhaseIdle
	s.ReqID = ""
	s.Src = ""

	return true
}
