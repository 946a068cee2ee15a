package aoc

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

var (
	// ErrOutOfBounds is returned when a point lies outside a grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidDomain is returned when a grid is requested with a
	// non-positive size.
	ErrInvalidDomain = errors.New("invalid grid domain")
)

// Grid is a dense row-major grid, indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// InBounds reports whether p is a cell of g.
func (g Grid[T]) InBounds(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

// Get is like At but returns ErrOutOfBounds instead of panicking.
func (g Grid[T]) Get(p Pt) (T, error) {
	v, ok := g.AtOk(p)
	if !ok {
		return v, fmt.Errorf("get %v in %v grid: %w", p, g.Size(), ErrOutOfBounds)
	}
	return v, nil
}

// Put is like Set but returns ErrOutOfBounds instead of panicking.
func (g Grid[T]) Put(p Pt, v T) error {
	if !g.InBounds(p) {
		return fmt.Errorf("put %v in %v grid: %w", p, g.Size(), ErrOutOfBounds)
	}
	g[p.Y][p.X] = v
	return nil
}

// MakeGrid returns an x by y grid of zero values. All rows share a
// single backing slice.
func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	cells := make([]T, x*y)
	for i := range out {
		out[i] = cells[:x:x]
		cells = cells[x:]
	}
	return out
}

// NewSquareGrid returns a side by side grid of zero values.
func NewSquareGrid[T any](side int) (Grid[T], error) {
	if side <= 0 {
		return nil, fmt.Errorf("side length %d: %w", side, ErrInvalidDomain)
	}
	return MakeGrid[T](side, side), nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEachInRect replaces every cell v inside r with f(v), row by row.
// Both corners of r are checked before any cell is touched, so on error
// g is unchanged.
func (g Grid[T]) ForEachInRect(r Rect, f func(T) T) error {
	for _, p := range []Pt{r.Min, r.Max} {
		if !g.InBounds(p) {
			return fmt.Errorf("rect %v corner %v in %v grid: %w", r, p, g.Size(), ErrOutOfBounds)
		}
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		row := g[y]
		for x := r.Min.X; x <= r.Max.X; x++ {
			row[x] = f(row[x])
		}
	}
	return nil
}

// Count returns the number of cells for which pred returns true.
func (g Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}
	return n
}

// SumGrid returns the sum of all cells in g.
func SumGrid[T Number](g Grid[T]) T {
	var sum T
	for _, row := range g {
		sum += Sum(row...)
	}
	return sum
}

var (
	hashersMu sync.Mutex
	hashers   = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a deep hash of the grid contents. It is safe to call
// concurrently.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Rect is an axis-aligned rectangle that includes both corners.
type Rect struct {
	Min, Max Pt
}

// RectOf returns the bounding box of a and b.
func RectOf(a, b Pt) Rect {
	return Rect{
		Min: Pt{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Pt{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

// Area returns the number of cells in r.
func (r Rect) Area() int {
	return (r.Max.X - r.Min.X + 1) * (r.Max.Y - r.Min.Y + 1)
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d-%d,%d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ParseDirection returns the direction for one of the arrows ^ > v <.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the point one unit away from p in direction d.
// Up is toward smaller Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
