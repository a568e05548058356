package acc

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/Bryan-Kuang/ECE298A/timing/latency"
)

// Spec holds immutable configuration values for the accelerator.
type Spec struct {
	// Freq is the clock frequency of the device. One tick is one device
	// clock.
	Freq sim.Freq

	// Granularity selects the serial framing, "byte" or "nibble".
	Granularity string

	// Timing is the host protocol timing the accelerator honors when
	// driving the serial interface.
	Timing *latency.TimingConfig
}

func (s Spec) validate() error {
	if s.Freq <= 0 {
		return fmt.Errorf("freq must be > 0")
	}
	if s.Granularity != "byte" && s.Granularity != "nibble" {
		return fmt.Errorf("granularity must be byte or nibble, got %q",
			s.Granularity)
	}
	if s.Timing == nil {
		return fmt.Errorf("timing config must be provided")
	}
	if err := s.Timing.Validate(); err != nil {
		return fmt.Errorf("invalid timing config: %w", err)
	}
	return nil
}

func defaults() Spec {
	return Spec{
		Freq:        1 * sim.GHz,
		Granularity: "byte",
		Timing:      latency.DefaultTimingConfig(),
	}
}
