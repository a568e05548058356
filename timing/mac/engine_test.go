package mac_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/mac"
)

// idle ticks the engine with an empty slot.
func idle(e *mac.Engine, cycles int) {
	for i := 0; i < cycles; i++ {
		e.Tick(mac.Slot{})
	}
}

var _ = Describe("Engine", func() {
	var engine *mac.Engine

	BeforeEach(func() {
		engine = mac.NewEngine()
	})

	Describe("Pipeline latency", func() {
		It("should retire a valid slot after exactly 3 ticks", func() {
			engine.Tick(mac.Slot{Valid: true, A: 5, B: 6, Mode: emu.ModeClear})

			// Tick 1 latched the input register, tick 2 the pipeline
			// register. The result must not appear yet.
			engine.Tick(mac.Slot{})
			Expect(engine.Result()).To(Equal(uint16(0)))

			// Tick 3 applies the accumulator transition.
			engine.Tick(mac.Slot{})
			Expect(engine.Result()).To(Equal(uint16(30)))
		})

		It("should sustain one operation per tick back to back", func() {
			engine.Tick(mac.Slot{Valid: true, A: 10, B: 10, Mode: emu.ModeClear})
			engine.Tick(mac.Slot{Valid: true, A: 5, B: 5, Mode: emu.ModeAccumulate})
			engine.Tick(mac.Slot{Valid: true, A: 2, B: 2, Mode: emu.ModeAccumulate})
			idle(engine, 2)

			Expect(engine.Result()).To(Equal(uint16(129)))
			Expect(engine.Stats().Operations).To(Equal(uint64(3)))
		})
	})

	Describe("Validity gating", func() {
		It("should hold all outputs across invalid slots", func() {
			engine.Tick(mac.Slot{Valid: true, A: 255, B: 255, Mode: emu.ModeClear})
			idle(engine, 2)
			result := engine.Result()

			idle(engine, 10)

			Expect(engine.Result()).To(Equal(result))
			Expect(engine.Overflow()).To(BeFalse())
			Expect(engine.Stats().Operations).To(Equal(uint64(1)))
		})

		It("should ignore operand data in invalid slots", func() {
			engine.Tick(mac.Slot{Valid: true, A: 5, B: 6, Mode: emu.ModeClear})
			engine.Tick(mac.Slot{Valid: false, A: 200, B: 200, Mode: emu.ModeAccumulate})
			idle(engine, 2)

			Expect(engine.Result()).To(Equal(uint16(30)))
		})
	})

	Describe("Accumulation", func() {
		It("should follow scenario clear(10,10) then accumulate(5,5)", func() {
			engine.Tick(mac.Slot{Valid: true, A: 10, B: 10, Mode: emu.ModeClear})
			idle(engine, 2)
			Expect(engine.Result()).To(Equal(uint16(100)))

			engine.Tick(mac.Slot{Valid: true, A: 5, B: 5, Mode: emu.ModeAccumulate})
			idle(engine, 2)
			Expect(engine.Result()).To(Equal(uint16(125)))
			Expect(engine.Overflow()).To(BeFalse())
		})

		It("should flag overflow and wrap modulo 65536", func() {
			engine.Tick(mac.Slot{Valid: true, A: 255, B: 255, Mode: emu.ModeClear})
			engine.Tick(mac.Slot{Valid: true, A: 200, B: 200, Mode: emu.ModeAccumulate})
			idle(engine, 3)

			Expect(engine.Result()).To(Equal(uint16(39489)))
			Expect(engine.Overflow()).To(BeTrue())
			Expect(engine.Stats().Overflows).To(Equal(uint64(1)))
		})

		It("should deassert overflow on the next clear", func() {
			engine.Tick(mac.Slot{Valid: true, A: 255, B: 255, Mode: emu.ModeClear})
			engine.Tick(mac.Slot{Valid: true, A: 200, B: 200, Mode: emu.ModeAccumulate})
			engine.Tick(mac.Slot{Valid: true, A: 3, B: 3, Mode: emu.ModeClear})
			idle(engine, 3)

			Expect(engine.Result()).To(Equal(uint16(9)))
			Expect(engine.Overflow()).To(BeFalse())
		})
	})

	Describe("Direct-drive path", func() {
		It("should retire one operation for static inputs", func() {
			for i := 0; i < 10; i++ {
				engine.TickObserved(7, 6, emu.ModeClear)
			}
			idle(engine, 3)

			Expect(engine.Result()).To(Equal(uint16(42)))
			Expect(engine.Stats().Operations).To(Equal(uint64(1)))
		})

		It("should retire again when an operand changes", func() {
			for i := 0; i < 5; i++ {
				engine.TickObserved(10, 10, emu.ModeClear)
			}
			for i := 0; i < 5; i++ {
				engine.TickObserved(5, 5, emu.ModeAccumulate)
			}
			idle(engine, 3)

			Expect(engine.Result()).To(Equal(uint16(125)))
			Expect(engine.Stats().Operations).To(Equal(uint64(2)))
		})

		It("should not detect an all-zero pair right after reset", func() {
			// Post-reset detector memory is zero, so (0,0,accumulate)
			// is indistinguishable from no input.
			for i := 0; i < 4; i++ {
				engine.TickObserved(0, 0, emu.ModeAccumulate)
			}

			Expect(engine.Stats().Operations).To(Equal(uint64(0)))
		})
	})

	Describe("Reset", func() {
		It("should clear in-flight slots and the accumulator", func() {
			engine.Tick(mac.Slot{Valid: true, A: 255, B: 255, Mode: emu.ModeClear})
			engine.Tick(mac.Slot{Valid: true, A: 200, B: 200, Mode: emu.ModeAccumulate})
			engine.Reset()
			idle(engine, 5)

			Expect(engine.Result()).To(Equal(uint16(0)))
			Expect(engine.Overflow()).To(BeFalse())
			Expect(engine.Stats().Operations).To(Equal(uint64(0)))
		})
	})
})
