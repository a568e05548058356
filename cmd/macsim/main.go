// Package main provides the entry point for macsim.
// Macsim is a cycle-accurate simulator for a serial multiply-accumulate unit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Bryan-Kuang/ECE298A/device"
	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/latency"
	"github.com/Bryan-Kuang/ECE298A/trace"
)

var (
	timing      = flag.Bool("timing", false, "Enable timing simulation mode")
	configPath  = flag.String("config", "", "Path to timing configuration JSON file")
	granularity = flag.String("granularity", "byte", "Serial framing granularity: byte or nibble")
	verbose     = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: macsim [options] <ops.trace>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	tracePath := flag.Arg(0)

	t, err := trace.Load(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", tracePath)
		fmt.Printf("Operations: %d\n", len(t.Ops))
	}

	if *timing {
		runTiming(t, tracePath)
	} else {
		runEmulation(t, tracePath)
	}
}

// runEmulation runs the trace against the functional model, one result
// per clock with no interface overhead.
func runEmulation(t *trace.Trace, tracePath string) {
	mac := emu.NewMAC()

	var result uint16
	var overflow bool
	for _, op := range t.Ops {
		result, overflow = mac.Step(op.A, op.B, op.Mode)
		if *verbose {
			fmt.Printf("%-10s a=%3d b=%3d -> result=%5d overflow=%v\n",
				op.Mode, op.A, op.B, result, overflow)
		}
	}

	fmt.Printf("\nTrace: %s\n", tracePath)
	fmt.Printf("Result: %d\n", result)
	fmt.Printf("Overflow: %v\n", overflow)
	fmt.Printf("Steps executed: %d\n", mac.StepCount())
}

// runTiming runs the trace through the clocked device behind the serial
// interface, honoring the configured protocol timing.
func runTiming(t *trace.Trace, tracePath string) {
	var timingConfig *latency.TimingConfig
	if *configPath != "" {
		var err error
		timingConfig, err = latency.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timing config: %v\n", err)
			os.Exit(1)
		}
	} else {
		timingConfig = latency.DefaultTimingConfig()
	}
	if err := timingConfig.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid timing config: %v\n", err)
		os.Exit(1)
	}

	var dev *device.Device
	switch *granularity {
	case "byte":
		dev = device.New()
	case "nibble":
		dev = device.NewNibble()
	default:
		fmt.Fprintf(os.Stderr, "Unknown granularity %q (want byte or nibble)\n",
			*granularity)
		os.Exit(1)
	}

	host := device.NewTransactor(dev, timingConfig)
	host.Reset()

	var result uint16
	var overflow bool
	for _, op := range t.Ops {
		result, overflow = host.Run(op.A, op.B, op.Mode)
		if *verbose {
			fmt.Printf("%-10s a=%3d b=%3d -> result=%5d overflow=%v\n",
				op.Mode, op.A, op.B, result, overflow)
		}
	}

	stats := dev.Stats()

	fmt.Printf("\n")
	fmt.Printf("Trace: %s\n", tracePath)
	fmt.Printf("Granularity: %s\n", dev.Granularity().Name())
	fmt.Printf("Result: %d\n", result)
	fmt.Printf("Overflow: %v\n", overflow)
	fmt.Printf("Total Operations: %d\n", stats.Operations)
	fmt.Printf("Total Cycles: %d\n", dev.Cycles())
	if stats.Operations > 0 {
		fmt.Printf("Cycles per Operation: %.2f\n",
			float64(dev.Cycles())/float64(stats.Operations))
	}
	fmt.Printf("Overflow Events: %d\n", stats.Overflows)
}
