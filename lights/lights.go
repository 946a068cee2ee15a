package lights

import (
	"fmt"

	aoc "github.com/maisem/aoc2015"
)

// Semantics decides what each Mode does to a cell and how a finished
// grid is reduced to an answer. The only implementations are Binary and
// Additive.
type Semantics interface {
	fmt.Stringer

	// update returns the per-cell update for m.
	update(m Mode) func(int) int
	// aggregate reduces a finished grid.
	aggregate(g aoc.Grid[int]) int
}

var (
	// Binary treats cells as lights that are off (0) or on (1). Its
	// aggregate is the number of lit cells.
	Binary Semantics = binary{}

	// Additive treats cells as brightness levels that never go below
	// zero. Its aggregate is the total brightness.
	Additive Semantics = additive{}
)

type binary struct{}

func (binary) String() string { return "binary" }

func (binary) update(m Mode) func(int) int {
	switch m {
	case TurnOn:
		return func(int) int { return 1 }
	case TurnOff:
		return func(int) int { return 0 }
	case Toggle:
		return func(v int) int { return 1 - v }
	}
	panic(fmt.Sprintf("binary: unhandled mode %v", m))
}

func (binary) aggregate(g aoc.Grid[int]) int {
	return g.Count(func(v int) bool { return v == 1 })
}

type additive struct{}

func (additive) String() string { return "additive" }

func (additive) update(m Mode) func(int) int {
	switch m {
	case TurnOn:
		return func(v int) int { return v + 1 }
	case TurnOff:
		return func(v int) int { return max(0, v-1) }
	case Toggle:
		return func(v int) int { return v + 2 }
	}
	panic(fmt.Sprintf("additive: unhandled mode %v", m))
}

func (additive) aggregate(g aoc.Grid[int]) int {
	return aoc.SumGrid(g)
}

// Apply applies instructions to g in order. It stops at the first
// instruction that does not fit in g; that instruction leaves g
// unchanged, but earlier ones have already been applied.
func Apply(g aoc.Grid[int], sem Semantics, instructions []Instruction) error {
	for i, in := range instructions {
		if err := g.ForEachInRect(in.Rect, sem.update(in.Mode)); err != nil {
			return fmt.Errorf("instruction %d (%v): %w", i, in, err)
		}
	}
	return nil
}

// Execute applies instructions to a new side by side grid and returns it.
func Execute(side int, sem Semantics, instructions []Instruction) (aoc.Grid[int], error) {
	g, err := aoc.NewSquareGrid[int](side)
	if err != nil {
		return nil, err
	}
	if err := Apply(g, sem, instructions); err != nil {
		return nil, err
	}
	return g, nil
}

// Run executes instructions on a new side by side grid and returns the
// aggregate sem defines: lit cells for Binary, total brightness for
// Additive.
func Run(side int, sem Semantics, instructions []Instruction) (int, error) {
	g, err := Execute(side, sem, instructions)
	if err != nil {
		return 0, err
	}
	return sem.aggregate(g), nil
}
