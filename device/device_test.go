package device_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Bryan-Kuang/ECE298A/device"
	"github.com/Bryan-Kuang/ECE298A/emu"
)

var _ = Describe("Device", func() {
	var (
		dev  *device.Device
		host *device.Transactor
	)

	BeforeEach(func() {
		dev = device.New()
		host = device.NewTransactor(dev, nil)
		host.Reset()
	})

	Describe("Basic operations", func() {
		It("should compute clear(5,6) = 30", func() {
			result, overflow := host.Run(5, 6, emu.ModeClear)

			Expect(result).To(Equal(uint16(30)))
			Expect(overflow).To(BeFalse())
		})

		It("should compute clear(15,17) = 255", func() {
			result, _ := host.Run(15, 17, emu.ModeClear)

			Expect(result).To(Equal(uint16(255)))
		})

		It("should compute the maximum product without overflow", func() {
			result, overflow := host.Run(255, 255, emu.ModeClear)

			Expect(result).To(Equal(uint16(65025)))
			Expect(overflow).To(BeFalse())
		})

		It("should compute clear(255,127) = 32385", func() {
			result, overflow := host.Run(255, 127, emu.ModeClear)

			Expect(result).To(Equal(uint16(32385)))
			Expect(overflow).To(BeFalse())
		})
	})

	Describe("Accumulation", func() {
		It("should accumulate clear(10,10) then accumulate(5,5)", func() {
			result, _ := host.Run(10, 10, emu.ModeClear)
			Expect(result).To(Equal(uint16(100)))

			result, overflow := host.Run(5, 5, emu.ModeAccumulate)
			Expect(result).To(Equal(uint16(125)))
			Expect(overflow).To(BeFalse())
		})

		It("should flag overflow when the sum crosses 65535", func() {
			result, overflow := host.Run(255, 255, emu.ModeClear)
			Expect(result).To(Equal(uint16(65025)))
			Expect(overflow).To(BeFalse())

			result, overflow = host.Run(200, 200, emu.ModeAccumulate)
			Expect(result).To(Equal(uint16(39489)), "(65025+40000) mod 65536")
			Expect(overflow).To(BeTrue())
		})

		It("should clear after accumulating", func() {
			host.Run(10, 10, emu.ModeClear)
			host.Run(8, 9, emu.ModeAccumulate)
			result, _ := host.Run(7, 6, emu.ModeAccumulate)
			Expect(result).To(Equal(uint16(214)))

			result, overflow := host.Run(5, 4, emu.ModeClear)
			Expect(result).To(Equal(uint16(20)), "clear must discard the previous 214")
			Expect(overflow).To(BeFalse())

			result, _ = host.Run(3, 2, emu.ModeAccumulate)
			Expect(result).To(Equal(uint16(26)))
		})
	})

	Describe("Result framing", func() {
		It("should expose the high byte first, then the low byte", func() {
			host.Send(68, 68, emu.ModeClear) // 4624
			host.Settle()

			first := host.Outputs().Data
			result, _ := host.ReadResult()

			Expect(result).To(Equal(uint16(4624)))
			Expect(first).To(Equal(uint8(4624>>8)), "first half carries the high byte")
		})

		It("should hold overflow across both output phases", func() {
			host.Run(255, 255, emu.ModeClear)
			host.Send(200, 200, emu.ModeAccumulate)
			host.Settle()

			firstOverflow := host.Outputs().Overflow
			_, secondOverflow := host.ReadResult()

			Expect(firstOverflow).To(BeTrue())
			Expect(secondOverflow).To(BeTrue())
		})
	})

	Describe("data_ready", func() {
		It("should be asserted when idle at an operand boundary", func() {
			Expect(host.Outputs().DataReady).To(BeTrue())
		})

		It("should deassert during a write", func() {
			out := dev.Tick(device.Inputs{Enable: true, Data: 5, Mode: emu.ModeClear})
			Expect(out.DataReady).To(BeFalse())

			dev.Tick(device.Inputs{Enable: true, Data: 6})
			out = dev.Tick(device.Inputs{})
			Expect(out.DataReady).To(BeTrue())
		})
	})

	Describe("Protocol misuse", func() {
		It("should expose a stale snapshot when reading too early", func() {
			host.Run(10, 10, emu.ModeClear)

			// Submit a new operation but sample the window immediately,
			// before the pipeline could retire it.
			host.Send(20, 20, emu.ModeAccumulate)
			result, _ := host.ReadResult()

			Expect(result).To(Equal(uint16(100)), "early read sees the previous result")

			// With the latency honored the new result appears.
			host.Settle()
			result, _ = host.ReadResult()
			Expect(result).To(Equal(uint16(500)))
		})

		It("should not corrupt completed work when enable drops mid-frame", func() {
			host.Run(10, 10, emu.ModeClear)

			// First half only, then the host gives up for a while.
			dev.Tick(device.Inputs{Enable: true, Data: 99, Mode: emu.ModeAccumulate})
			host.Idle(5)

			// The abandoned half stays staged; the completed transfer is intact.
			Expect(dev.Result()).To(Equal(uint16(100)))

			// Resuming supplies the second half and completes the pair.
			dev.Tick(device.Inputs{Enable: true, Data: 2})
			host.Idle(6)
			Expect(dev.Result()).To(Equal(uint16(100 + 99*2)))
		})
	})

	Describe("Reset mid-sequence", func() {
		It("should return every register and both framer phases to zero", func() {
			host.Run(255, 255, emu.ModeClear)

			// Interrupt with operations in flight.
			host.Send(200, 200, emu.ModeAccumulate)
			host.Reset()

			Expect(dev.Result()).To(Equal(uint16(0)))
			Expect(dev.Stats().Operations).To(Equal(uint64(0)))

			result, overflow := host.Run(5, 6, emu.ModeClear)
			Expect(result).To(Equal(uint16(30)))
			Expect(overflow).To(BeFalse())
		})
	})

	Describe("Pipeline latency through the interface", func() {
		It("should sustain back-to-back operations", func() {
			result, overflow := host.Run(6, 7, emu.ModeClear)
			Expect(result).To(Equal(uint16(42)))
			Expect(overflow).To(BeFalse())

			result, overflow = host.Run(3, 4, emu.ModeAccumulate)
			Expect(result).To(Equal(uint16(54)))
			Expect(overflow).To(BeFalse())
		})
	})

	Describe("Randomized equivalence with the functional model", func() {
		runSweep := func(newDev func() *device.Device) {
			dev := newDev()
			host := device.NewTransactor(dev, nil)
			host.Reset()

			golden := emu.NewMAC()
			rng := rand.New(rand.NewSource(1234567))

			for i := 0; i < 300; i++ {
				a := uint8(rng.Intn(256))
				b := uint8(rng.Intn(256))
				mode := emu.ModeAccumulate
				if i == 0 || rng.Float64() < 0.15 {
					mode = emu.ModeClear
				}

				wantResult, wantOverflow := golden.Step(a, b, mode)
				gotResult, gotOverflow := host.Run(a, b, mode)

				Expect(gotResult).To(Equal(wantResult),
					"iteration %d: %v(%d,%d)", i, mode, a, b)
				Expect(gotOverflow).To(Equal(wantOverflow),
					"iteration %d: %v(%d,%d)", i, mode, a, b)
			}
		}

		It("should match on the byte framing", func() {
			runSweep(device.New)
		})

		It("should match on the nibble framing", func() {
			runSweep(device.NewNibble)
		})
	})

	Describe("Nibble framing round trip", func() {
		It("should reconstruct the exact visible result", func() {
			dev := device.NewNibble()
			host := device.NewTransactor(dev, nil)
			host.Reset()

			result, overflow := host.Run(255, 255, emu.ModeClear)

			Expect(result).To(Equal(uint16(65025)))
			Expect(overflow).To(BeFalse())
		})
	})
})
