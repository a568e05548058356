// Package emu provides functional multiply-accumulate emulation.
// It models the arithmetic of the MAC unit with zero latency and serves
// as the golden reference for the cycle-accurate model in timing/.
package emu

// Mode selects what the accumulator does with a freshly computed product.
type Mode uint8

const (
	// ModeAccumulate adds the product into the running sum.
	ModeAccumulate Mode = 0

	// ModeClear replaces the running sum with the product.
	ModeClear Mode = 1
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	if m == ModeClear {
		return "clear"
	}
	return "accumulate"
}

// AccumulatorMask keeps the running sum at 17 bits. The extra bit above
// the 16-bit visible result is the overflow carry.
const AccumulatorMask = 0x1FFFF

// MAC is the functional model of the multiply-accumulate unit.
// Each Step completes immediately; there is no pipeline and no framing.
type MAC struct {
	value    uint32 // 17-bit running sum
	overflow bool

	// Execution state
	stepCount uint64
}

// NewMAC creates a functional MAC model with a zeroed accumulator.
func NewMAC() *MAC {
	return &MAC{}
}

// Step performs one multiply-accumulate operation and returns the visible
// 16-bit result and the overflow flag.
//
// ModeClear loads the 8x8 product directly; a single product fits in 16
// bits, so overflow is always false. ModeAccumulate adds the product into
// the 17-bit running sum; overflow is bit 16 of the new sum. The flag
// reflects only this step, not an OR of history.
func (m *MAC) Step(a, b uint8, mode Mode) (uint16, bool) {
	product := uint32(a) * uint32(b)

	if mode == ModeClear {
		m.value = product
		m.overflow = false
	} else {
		m.value = (m.value + product) & AccumulatorMask
		m.overflow = m.value>>16 == 1
	}

	m.stepCount++
	return m.Result(), m.overflow
}

// Result returns the visible 16-bit result (low 16 bits of the sum).
func (m *MAC) Result() uint16 {
	return uint16(m.value & 0xFFFF)
}

// Overflow returns the overflow flag from the most recent step.
func (m *MAC) Overflow() bool {
	return m.overflow
}

// Value returns the raw 17-bit running sum.
func (m *MAC) Value() uint32 {
	return m.value
}

// StepCount returns the number of operations performed since reset.
func (m *MAC) StepCount() uint64 {
	return m.stepCount
}

// Reset clears the accumulator, the overflow flag, and the step counter.
func (m *MAC) Reset() {
	m.value = 0
	m.overflow = false
	m.stepCount = 0
}
