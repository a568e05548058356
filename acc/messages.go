package acc

import (
	"github.com/sarchlab/akita/v4/sim"
)

// ComputeReq asks the accelerator to run one multiply-accumulate
// operation.
type ComputeReq struct {
	sim.MsgMeta

	A          uint8
	B          uint8
	Accumulate bool
}

// Meta returns the message metadata.
func (r *ComputeReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone creates a copy of the request with a new ID.
func (r *ComputeReq) Clone() sim.Msg {
	c := *r
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// ComputeReqBuilder builds ComputeReq messages.
type ComputeReqBuilder struct {
	src, dst   sim.RemotePort
	a, b       uint8
	accumulate bool
}

// WithSrc sets the source port of the request.
func (b ComputeReqBuilder) WithSrc(src sim.RemotePort) ComputeReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the request.
func (b ComputeReqBuilder) WithDst(dst sim.RemotePort) ComputeReqBuilder {
	b.dst = dst
	return b
}

// WithOperands sets the two unsigned 8-bit operands.
func (b ComputeReqBuilder) WithOperands(a, bOperand uint8) ComputeReqBuilder {
	b.a = a
	b.b = bOperand
	return b
}

// WithAccumulate selects accumulate mode instead of clear.
func (b ComputeReqBuilder) WithAccumulate(accumulate bool) ComputeReqBuilder {
	b.accumulate = accumulate
	return b
}

// Build creates the request.
func (b ComputeReqBuilder) Build() *ComputeReq {
	r := &ComputeReq{
		A:          b.a,
		B:          b.b,
		Accumulate: b.accumulate,
	}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	return r
}

// ComputeRsp carries the visible result of a completed operation.
type ComputeRsp struct {
	sim.MsgMeta

	RespondTo string

	Result   uint16
	Overflow bool
}

// Meta returns the message metadata.
func (r *ComputeRsp) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone creates a copy of the response with a new ID.
func (r *ComputeRsp) Clone() sim.Msg {
	c := *r
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// ComputeRspBuilder builds ComputeRsp messages.
type ComputeRspBuilder struct {
	src, dst  sim.RemotePort
	respondTo string
	result    uint16
	overflow  bool
}

// WithSrc sets the source port of the response.
func (b ComputeRspBuilder) WithSrc(src sim.RemotePort) ComputeRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the response.
func (b ComputeRspBuilder) WithDst(dst sim.RemotePort) ComputeRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request being answered.
func (b ComputeRspBuilder) WithRspTo(id string) ComputeRspBuilder {
	b.respondTo = id
	return b
}

// WithResult sets the 16-bit visible result.
func (b ComputeRspBuilder) WithResult(result uint16) ComputeRspBuilder {
	b.result = result
	return b
}

// WithOverflow sets the overflow flag.
func (b ComputeRspBuilder) WithOverflow(overflow bool) ComputeRspBuilder {
	b.overflow = overflow
	return b
}

// Build creates the response.
func (b ComputeRspBuilder) Build() *ComputeRsp {
	r := &ComputeRsp{
		RespondTo: b.respondTo,
		Result:    b.result,
		Overflow:  b.overflow,
	}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	return r
}
