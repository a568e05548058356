// Package main provides the entry point for macsim.
// Macsim is a cycle-accurate simulator for a serial multiply-accumulate unit.
//
// For the full CLI, use: go run ./cmd/macsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Macsim - Serial Multiply-Accumulate Simulator")
	fmt.Println("")
	fmt.Println("Usage: macsim [options] <ops.trace>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -timing       Enable timing simulation mode")
	fmt.Println("  -config       Path to timing configuration JSON file")
	fmt.Println("  -granularity  Serial framing granularity: byte or nibble")
	fmt.Println("  -v            Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/macsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/macsim' instead.")
	}
}
