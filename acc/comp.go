// Package acc wraps the clocked multiply-accumulate device in an Akita
// ticking component, so the device can be dropped into an event-driven
// simulation and driven through messages instead of pin wiggling.
package acc

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/Bryan-Kuang/ECE298A/device"
)

// Comp is a multiply-accumulate accelerator with Spec/State/Ports/
// Middlewares. One tick advances the device by one clock.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	Spec  Spec
	state State

	// dev is the clocked device behind the serial interface. It is not
	// part of State; a restored component rebuilds it from the Spec.
	dev *device.Device

	ctrlPort sim.Port
}

// Tick delegates to the middleware pipeline.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// CtrlPort returns the port that accepts ComputeReq messages.
func (c *Comp) CtrlPort() sim.Port {
	return c.ctrlPort
}

// Device returns the clocked device under the component.
func (c *Comp) Device() *device.Device {
	return c.dev
}

// SnapshotState returns a serializable (pure data) snapshot of the
// protocol state. The device registers are intentionally excluded.
func (c *Comp) SnapshotState() any {
	return c.state
}

// RestoreState restores the protocol state from a snapshot.
func (c *Comp) RestoreState(snapshot any) error {
	switch s := snapshot.(type) {
	case State:
		c.state = s
	case *State:
		c.state = *s
	default:
		// Best effort: ignore unknown shapes silently.
	}
	return nil
}
