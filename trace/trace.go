// Package trace provides operation trace loading for the macsim CLI.
//
// A trace is a plain text file with one operation per line:
//
//	# comments and blank lines are ignored
//	clear 10 10
//	acc 5 5
//	acc 0x0F 0x11
//
// Operands are unsigned 8-bit values in any base strconv accepts.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Bryan-Kuang/ECE298A/emu"
)

// Op is one multiply-accumulate operation.
type Op struct {
	// A and B are the unsigned 8-bit operands.
	A uint8
	B uint8

	// Mode selects clear or accumulate.
	Mode emu.Mode
}

// Trace is a loaded operation sequence ready for execution.
type Trace struct {
	// Ops are the operations in program order.
	Ops []Op
}

// Load reads a trace file from disk.
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a trace from the given reader.
func Parse(r io.Reader) (*Trace, error) {
	t := &Trace{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.Ops = append(t.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	return t, nil
}

func parseLine(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Op{}, fmt.Errorf("expected 'clear|acc <a> <b>', got %q", line)
	}

	var mode emu.Mode
	switch strings.ToLower(fields[0]) {
	case "clear":
		mode = emu.ModeClear
	case "acc", "accumulate":
		mode = emu.ModeAccumulate
	default:
		return Op{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	a, err := parseOperand(fields[1])
	if err != nil {
		return Op{}, err
	}
	b, err := parseOperand(fields[2])
	if err != nil {
		return Op{}, err
	}

	return Op{A: a, B: b, Mode: mode}, nil
}

func parseOperand(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return uint8(v), nil
}
