// Package latency holds the host-side timing parameters of the serial
// MAC protocol: how long a host must hold reset and how long it must let
// the device settle between finishing a write and sampling the result.
package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// EngineDepth is the fixed depth of the MAC pipeline: input register,
// pipeline register, multiply+accumulate.
const EngineDepth = 3

// MinSettleCycles is the minimum number of idle cycles between the end
// of input framing and the first result read. Below this the snapshot
// the framer exposes cannot yet reflect the submitted operand pair.
const MinSettleCycles = 4

// TimingConfig holds host protocol timing values.
type TimingConfig struct {
	// ResetCycles is how many cycles the host holds reset asserted.
	// Default: 5 cycles.
	ResetCycles uint64 `json:"reset_cycles"`

	// ResetRecoveryCycles is how many idle cycles the host waits after
	// releasing reset before driving the interface. Default: 2 cycles.
	ResetRecoveryCycles uint64 `json:"reset_recovery_cycles"`

	// SettleCycles is how many idle cycles the host waits between
	// completing a framed write and reading the result. Must be at
	// least MinSettleCycles and even, so the read lands on a window
	// boundary. Default: 6 cycles.
	SettleCycles uint64 `json:"settle_cycles"`
}

// DefaultTimingConfig returns the timing the original device was
// characterized with.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ResetCycles:         5,
		ResetRecoveryCycles: 2,
		SettleCycles:        6,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Missing fields keep
// their defaults.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that the timing values satisfy the protocol contract.
func (c *TimingConfig) Validate() error {
	if c.ResetCycles == 0 {
		return fmt.Errorf("reset_cycles must be > 0")
	}
	if c.SettleCycles < MinSettleCycles {
		return fmt.Errorf("settle_cycles must be >= %d", MinSettleCycles)
	}
	if c.SettleCycles%2 != 0 {
		return fmt.Errorf("settle_cycles must be even to land on a read window boundary")
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
