// Package lights applies rectangle range updates to a square grid of
// lights, as in Advent of Code 2015 day 6.
package lights

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2015"
)

// ErrMalformedInstruction is returned for lines that are not of the form
// "turn on|turn off|toggle X1,Y1 through X2,Y2".
var ErrMalformedInstruction = errors.New("malformed instruction")

// Mode is the operation an Instruction applies to its rectangle.
type Mode int

const (
	// TurnOn is "turn on", or increment by one under Additive.
	TurnOn Mode = iota + 1
	// TurnOff is "turn off", or decrement floored at zero under Additive.
	TurnOff
	// Toggle is "toggle", or increment by two under Additive.
	Toggle
)

func (m Mode) String() string {
	switch m {
	case TurnOn:
		return "turn on"
	case TurnOff:
		return "turn off"
	case Toggle:
		return "toggle"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Instruction is one range update. Rect always has Min <= Max.
type Instruction struct {
	Mode Mode
	Rect aoc.Rect
}

func (in Instruction) String() string {
	r := in.Rect
	return fmt.Sprintf("%v %d,%d through %d,%d", in.Mode, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// ParseInstruction parses a single instruction line. The two corners may
// be given in any order.
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	var mode Mode
	switch {
	case len(f) > 0 && f[0] == "toggle":
		mode, f = Toggle, f[1:]
	case len(f) > 1 && f[0] == "turn" && f[1] == "on":
		mode, f = TurnOn, f[2:]
	case len(f) > 1 && f[0] == "turn" && f[1] == "off":
		mode, f = TurnOff, f[2:]
	default:
		return Instruction{}, fmt.Errorf("%w: unknown mode in %q", ErrMalformedInstruction, line)
	}
	if len(f) != 3 || f[1] != "through" {
		return Instruction{}, fmt.Errorf("%w: want \"X1,Y1 through X2,Y2\" in %q", ErrMalformedInstruction, line)
	}
	a, err := parsePt(f[0])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w in %q", err, line)
	}
	b, err := parsePt(f[2])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w in %q", err, line)
	}
	return Instruction{Mode: mode, Rect: aoc.RectOf(a, b)}, nil
}

func parsePt(s string) (aoc.Pt, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return aoc.Pt{}, fmt.Errorf("%w: bad coordinate %q", ErrMalformedInstruction, s)
	}
	x, err := parseCoord(xs)
	if err != nil {
		return aoc.Pt{}, err
	}
	y, err := parseCoord(ys)
	if err != nil {
		return aoc.Pt{}, err
	}
	return aoc.Pt{X: x, Y: y}, nil
}

// parseCoord parses an unsigned decimal coordinate. Digits too large
// for an int are out of bounds rather than malformed.
func parseCoord(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%w: bad coordinate %q", ErrMalformedInstruction, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("coordinate %s: %w", s, aoc.ErrOutOfBounds)
	}
	return n, nil
}

// ParseError is returned by ParseInstructions for the first bad line.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseInstructions parses lines in order, stopping at the first
// malformed one.
func ParseInstructions(lines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		out = append(out, in)
	}
	return out, nil
}
