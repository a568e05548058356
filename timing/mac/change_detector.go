package mac

import "github.com/Bryan-Kuang/ECE298A/emu"

// ChangeDetector flags when a newly presented operand pair differs from
// the pair observed on the previous clock. It is the validity source for
// the direct-drive input path: a host holding static inputs produces one
// operation, not one per clock.
//
// The internal memory updates every clock whether or not a change was
// detected. After reset the memory is zero, so an all-zero pair presented
// immediately will not register as a change; hosts that need the very
// first operation detected must present a nonzero pair or use the framed
// path, which carries explicit validity and bypasses this detector.
type ChangeDetector struct {
	lastA    uint8
	lastB    uint8
	lastMode emu.Mode
}

// Observe compares the current inputs against the previous clock's inputs
// and returns true if any field differs. The memory is updated
// unconditionally.
func (d *ChangeDetector) Observe(a, b uint8, mode emu.Mode) bool {
	changed := a != d.lastA || b != d.lastB || mode != d.lastMode
	d.lastA = a
	d.lastB = b
	d.lastMode = mode
	return changed
}

// Reset zeroes the detector memory.
func (d *ChangeDetector) Reset() {
	d.lastA = 0
	d.lastB = 0
	d.lastMode = emu.ModeAccumulate
}
