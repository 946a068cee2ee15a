package aoc

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewSquareGrid(t *testing.T) {
	for _, side := range []int{0, -1} {
		_, err := NewSquareGrid[int](side)
		require.ErrorIs(t, err, ErrInvalidDomain, "side %d", side)
	}

	g, err := NewSquareGrid[int](3)
	require.NoError(t, err)
	if got, want := g.Size(), (Pt{3, 3}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got := SumGrid(g); got != 0 {
		t.Errorf("SumGrid(new grid) = %d, want 0", got)
	}
}

func TestGridGetPut(t *testing.T) {
	g := MakeGrid[int](4, 2)
	require.NoError(t, g.Put(Pt{3, 1}, 7))
	v, err := g.Get(Pt{3, 1})
	require.NoError(t, err)
	if v != 7 {
		t.Errorf("Get = %d, want 7", v)
	}
	// Rows share a backing slice; writing one row must not bleed into the next.
	if got := g.At(Pt{0, 1}); got != 0 {
		t.Errorf("At(0,1) = %d, want 0", got)
	}

	for _, p := range []Pt{{4, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := g.Get(p)
		require.ErrorIs(t, err, ErrOutOfBounds, "Get(%v)", p)
		require.ErrorIs(t, g.Put(p, 1), ErrOutOfBounds, "Put(%v)", p)
	}
}

func TestForEachInRect(t *testing.T) {
	g := MakeGrid[int](3, 3)
	i := 0
	err := g.ForEachInRect(RectOf(Pt{2, 2}, Pt{1, 1}), func(v int) int {
		i++
		return v + i
	})
	require.NoError(t, err)
	want := Grid[int]{
		{0, 0, 0},
		{0, 1, 2},
		{0, 3, 4},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	// Single cell.
	require.NoError(t, g.ForEachInRect(Rect{Pt{0, 0}, Pt{0, 0}}, func(int) int { return 9 }))
	if got := g.Count(func(v int) bool { return v == 9 }); got != 1 {
		t.Errorf("Count(9) = %d, want 1", got)
	}
}

func TestForEachInRectOutOfBounds(t *testing.T) {
	g := MakeGrid[int](3, 3)
	before := g.Hash()
	called := false
	err := g.ForEachInRect(RectOf(Pt{0, 0}, Pt{3, 1}), func(v int) int {
		called = true
		return 1
	})
	require.ErrorIs(t, err, ErrOutOfBounds)
	if called {
		t.Error("update called for out of bounds rect")
	}
	if g.Hash() != before {
		t.Error("grid changed after failed update")
	}
}

func TestGridHash(t *testing.T) {
	a := MakeGrid[int](5, 5)
	b := MakeGrid[int](5, 5)
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(Pt{4, 4}, 1)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hash the same")
	}
}

func TestGridHashConcurrent(t *testing.T) {
	grids := []Grid[int]{MakeGrid[int](4, 4), MakeGrid[int](4, 4)}
	grids[1].Set(Pt{1, 2}, 3)
	for i := 0; i < 8; i++ {
		g := grids[i%2]
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			t.Parallel()
			if g.Hash() != g.Hash() {
				t.Error("hash not stable")
			}
			// First use of a new grid type registers a hasher.
			MakeGrid[uint8](2, 2).Hash()
		})
	}
}

func TestRect(t *testing.T) {
	r := RectOf(Pt{5, 1}, Pt{2, 3})
	if want := (Rect{Pt{2, 1}, Pt{5, 3}}); r != want {
		t.Errorf("RectOf = %v, want %v", r, want)
	}
	if got := r.Area(); got != 12 {
		t.Errorf("Area() = %d, want 12", got)
	}
}

func TestPtStep(t *testing.T) {
	p := Pt{}
	for _, r := range "^>v<<" {
		d, ok := ParseDirection(r)
		if !ok {
			t.Fatalf("ParseDirection(%q) failed", r)
		}
		p = p.Step(d)
	}
	if want := (Pt{-1, 0}); p != want {
		t.Errorf("p = %v, want %v", p, want)
	}
	if _, ok := ParseDirection('x'); ok {
		t.Error("ParseDirection('x') succeeded")
	}
}
