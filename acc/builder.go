package acc

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/Bryan-Kuang/ECE298A/device"
	"github.com/Bryan-Kuang/ECE298A/timing/latency"
)

// Builder builds accelerator components.
type Builder struct {
	engine sim.Engine
	spec   Spec
}

// MakeBuilder creates a builder with default spec values.
func MakeBuilder() Builder {
	return Builder{spec: defaults()}
}

// WithEngine sets the event engine the component registers with.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the device clock frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.spec.Freq = freq
	return b
}

// WithGranularity selects the serial framing, "byte" or "nibble".
func (b Builder) WithGranularity(granularity string) Builder {
	b.spec.Granularity = granularity
	return b
}

// WithTimingConfig sets the host protocol timing.
func (b Builder) WithTimingConfig(config *latency.TimingConfig) Builder {
	b.spec.Timing = config
	return b
}

// Build creates the component. It panics on an invalid spec, matching
// how misconfigured components fail at construction time.
func (b Builder) Build(name string) *Comp {
	if err := b.spec.validate(); err != nil {
		panic(err)
	}

	c := &Comp{Spec: b.spec}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.spec.Freq, c)

	switch b.spec.Granularity {
	case "byte":
		c.dev = device.New()
	case "nibble":
		c.dev = device.NewNibble()
	}

	c.ctrlPort = sim.NewPort(c, 4, 4, name+".CtrlPort")
	c.AddPort("Ctrl", c.ctrlPort)

	c.state = State{
		Phase:      PhaseReset,
		CyclesLeft: b.spec.Timing.ResetCycles,
	}

	c.AddMiddleware(&middleware{Comp: c})

	return c
}
