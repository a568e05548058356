// Command benchmark compares the serial framing granularities.
//
// Usage:
//
//	go run ./cmd/benchmark [flags]
//
// Flags:
//
//	-csv    Output results in CSV format (default: human-readable)
//	-ops    Operations per workload (default: 1000)
//
// Example:
//
//	# Run all workloads with human-readable output
//	go run ./cmd/benchmark
//
//	# Output CSV for spreadsheet comparison
//	go run ./cmd/benchmark -csv > results.csv
//
// Each workload runs on both the byte-paired and nibble-paired framings
// with identical operands, so the cycle counts isolate the interface
// overhead from the arithmetic.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Bryan-Kuang/ECE298A/device"
	"github.com/Bryan-Kuang/ECE298A/emu"
	"github.com/Bryan-Kuang/ECE298A/timing/latency"
)

type workload struct {
	name string
	ops  func(n int) []op
}

type op struct {
	a, b uint8
	mode emu.Mode
}

type result struct {
	workload    string
	granularity string
	operations  uint64
	cycles      uint64
	final       uint16
}

func (r result) cyclesPerOp() float64 {
	if r.operations == 0 {
		return 0
	}
	return float64(r.cycles) / float64(r.operations)
}

func main() {
	csvOutput := flag.Bool("csv", false, "Output results in CSV format")
	opCount := flag.Int("ops", 1000, "Operations per workload")
	flag.Parse()

	workloads := []workload{
		{"dot_product", dotProduct},
		{"running_sum", runningSum},
		{"clear_heavy", clearHeavy},
		{"saturating", saturating},
	}

	if !*csvOutput {
		fmt.Println("MAC Framing Benchmark")
		fmt.Println("=====================")
		fmt.Printf("Operations per workload: %d\n", *opCount)
		fmt.Println("")
	}

	var results []result
	for _, w := range workloads {
		ops := w.ops(*opCount)
		results = append(results,
			run(w.name, device.New, ops),
			run(w.name, device.NewNibble, ops),
		)
	}

	if *csvOutput {
		printCSV(results)
	} else {
		printResults(results)
	}
}

// run replays one workload through a fresh device and collects its
// cycle counts.
func run(name string, newDev func() *device.Device, ops []op) result {
	dev := newDev()
	host := device.NewTransactor(dev, latency.DefaultTimingConfig())
	host.Reset()

	var final uint16
	for _, o := range ops {
		final, _ = host.Run(o.a, o.b, o.mode)
	}

	return result{
		workload:    name,
		granularity: dev.Granularity().Name(),
		operations:  dev.Stats().Operations,
		cycles:      dev.Cycles(),
		final:       final,
	}
}

func printResults(results []result) {
	fmt.Printf("%-14s %-8s %10s %10s %12s\n",
		"Workload", "Framing", "Ops", "Cycles", "Cycles/Op")
	for _, r := range results {
		fmt.Printf("%-14s %-8s %10d %10d %12.2f\n",
			r.workload, r.granularity, r.operations, r.cycles, r.cyclesPerOp())
	}
	fmt.Println("")
	fmt.Println("Both framings carry one operand pair per two enabled cycles,")
	fmt.Println("so identical cycle counts confirm the packing is free; any")
	fmt.Println("difference would point at a framer bug.")
}

func printCSV(results []result) {
	fmt.Println("workload,granularity,operations,cycles,cycles_per_op,final_result")
	for _, r := range results {
		fmt.Printf("%s,%s,%d,%d,%.4f,%d\n",
			r.workload, r.granularity, r.operations, r.cycles,
			r.cyclesPerOp(), r.final)
	}
}

// dotProduct clears once, then accumulates random operand pairs.
func dotProduct(n int) []op {
	rng := rand.New(rand.NewSource(42))
	ops := make([]op, n)
	for i := range ops {
		mode := emu.ModeAccumulate
		if i == 0 {
			mode = emu.ModeClear
		}
		ops[i] = op{uint8(rng.Intn(256)), uint8(rng.Intn(256)), mode}
	}
	return ops
}

// runningSum accumulates small products that stay well below the
// overflow threshold.
func runningSum(n int) []op {
	ops := make([]op, n)
	for i := range ops {
		mode := emu.ModeAccumulate
		if i == 0 {
			mode = emu.ModeClear
		}
		ops[i] = op{uint8(i % 8), 1, mode}
	}
	return ops
}

// clearHeavy restarts the accumulator every fourth operation.
func clearHeavy(n int) []op {
	rng := rand.New(rand.NewSource(7))
	ops := make([]op, n)
	for i := range ops {
		mode := emu.ModeAccumulate
		if i%4 == 0 {
			mode = emu.ModeClear
		}
		ops[i] = op{uint8(rng.Intn(256)), uint8(rng.Intn(256)), mode}
	}
	return ops
}

// saturating accumulates maximum products to exercise the overflow path.
func saturating(n int) []op {
	ops := make([]op, n)
	for i := range ops {
		mode := emu.ModeAccumulate
		if i == 0 {
			mode = emu.ModeClear
		}
		ops[i] = op{255, 255, mode}
	}
	return ops
}
