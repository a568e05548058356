package mac

import "github.com/Bryan-Kuang/ECE298A/emu"

// Accumulator owns the 17-bit running sum. The extra bit above the
// 16-bit visible result is the overflow carry of the most recent
// accumulation; it is not an OR of history.
type Accumulator struct {
	value    uint32 // 17-bit running sum
	overflow bool
}

// Apply performs one accumulator transition with the given product.
// Callers gate this on slot validity; an invalid slot must simply not
// call Apply, leaving all outputs holding their previous values.
func (ac *Accumulator) Apply(mode emu.Mode, product uint16) {
	if mode == emu.ModeClear {
		// A single 8x8 product fits in 16 bits, so this transition
		// provably cannot overflow.
		ac.value = uint32(product)
		ac.overflow = false
		return
	}

	ac.value = (ac.value + uint32(product)) & emu.AccumulatorMask
	ac.overflow = ac.value>>16 == 1
}

// Result returns the visible 16-bit result.
func (ac *Accumulator) Result() uint16 {
	return uint16(ac.value & 0xFFFF)
}

// Overflow returns the carry out of bit 16 from the most recent valid
// transition.
func (ac *Accumulator) Overflow() bool {
	return ac.overflow
}

// Value returns the raw 17-bit running sum.
func (ac *Accumulator) Value() uint32 {
	return ac.value
}

// Reset zeroes the sum and the overflow flag.
func (ac *Accumulator) Reset() {
	ac.value = 0
	ac.overflow = false
}
