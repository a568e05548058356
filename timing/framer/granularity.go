package framer

// Granularity defines how wide operands and results are split into
// cycle-sized chunks on the narrow host bus. The byte and nibble
// granularities are the two wire-level framings; both drive the same
// state machine.
type Granularity interface {
	// Name identifies the framing for logs and benchmarks.
	Name() string

	// InputChunks splits an operand pair into the chunk presented in
	// each input phase. This is the host-side encoder.
	InputChunks(a, b uint8) (first, second uint8)

	// Assemble combines the staged first-phase chunk with the
	// second-phase chunk into the complete operand pair.
	Assemble(first, second uint8) (a, b uint8)

	// ResultChunk returns the data_out value for the given output phase.
	ResultChunk(result uint16, phase Phase) uint8

	// AssembleResult reconstructs the 16-bit result from the chunks read
	// in each output phase. This is the host-side decoder.
	AssembleResult(first, second uint8) uint16
}

// Byte is the byte-paired framing: phase 1 carries operand A plus the
// mode bit, phase 2 carries operand B. Results come back high byte
// first, then low byte.
var Byte Granularity = byteGranularity{}

// Nibble is the nibble-paired framing: phase 1 carries both operands'
// low nibbles (A in bits 3:0, B in bits 7:4), phase 2 the high nibbles.
// Results come back with the same packing, low nibbles first.
var Nibble Granularity = nibbleGranularity{}

type byteGranularity struct{}

func (byteGranularity) Name() string { return "byte" }

func (byteGranularity) InputChunks(a, b uint8) (uint8, uint8) {
	return a, b
}

func (byteGranularity) Assemble(first, second uint8) (uint8, uint8) {
	return first, second
}

func (byteGranularity) ResultChunk(result uint16, phase Phase) uint8 {
	if phase == FirstHalf {
		return uint8(result >> 8)
	}
	return uint8(result)
}

func (byteGranularity) AssembleResult(first, second uint8) uint16 {
	return uint16(first)<<8 | uint16(second)
}

type nibbleGranularity struct{}

func (nibbleGranularity) Name() string { return "nibble" }

func (nibbleGranularity) InputChunks(a, b uint8) (uint8, uint8) {
	first := a&0x0F | (b&0x0F)<<4
	second := a>>4 | b&0xF0
	return first, second
}

func (nibbleGranularity) Assemble(first, second uint8) (uint8, uint8) {
	a := (second&0x0F)<<4 | first&0x0F
	b := second&0xF0 | first>>4
	return a, b
}

func (nibbleGranularity) ResultChunk(result uint16, phase Phase) uint8 {
	low := uint8(result)
	high := uint8(result >> 8)
	if phase == FirstHalf {
		return low&0x0F | (high&0x0F)<<4
	}
	return low>>4 | high&0xF0
}

func (nibbleGranularity) AssembleResult(first, second uint8) uint16 {
	low := (second&0x0F)<<4 | first&0x0F
	high := second&0xF0 | first>>4
	return uint16(high)<<8 | uint16(low)
}
