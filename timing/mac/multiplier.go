package mac

// Multiply returns the full-precision product of two unsigned 8-bit
// operands. It is combinational: the product is available in the same
// cycle the pipeline register presents valid operands, so the
// accumulator can consume it without an extra stage of latency.
func Multiply(a, b uint8) uint16 {
	return uint16(a) * uint16(b)
}
