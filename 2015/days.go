package main

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"unicode"

	aoc "github.com/maisem/aoc2015"
	"tailscale.com/util/set"
)

// floors follows the parentheses in in, one floor up for '(' and one
// down for ')'. It returns the final floor and the 1-based position of
// the first move into the basement (floor -1), or 0 if that never happens.
func floors(in []byte) (floor, basement int) {
	pos := 0
	for _, c := range in {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		default:
			continue
		}
		pos++
		if floor == -1 && basement == 0 {
			basement = pos
		}
	}
	return floor, basement
}

type box struct {
	l, w, h int
}

func parseBox(line string) (box, error) {
	f := strings.Split(strings.TrimSpace(line), "x")
	if len(f) != 3 {
		return box{}, fmt.Errorf("bad box %q", line)
	}
	var d [3]int
	for i, v := range f {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return box{}, fmt.Errorf("bad box %q", line)
		}
		d[i] = n
	}
	return box{d[0], d[1], d[2]}, nil
}

// paper is the surface area plus the area of the smallest side.
func (b box) paper() int {
	sides := []int{b.l * b.w, b.w * b.h, b.h * b.l}
	return 2*aoc.Sum(sides...) + slices.Min(sides)
}

// ribbon is the smallest perimeter plus the volume.
func (b box) ribbon() int {
	d := []int{b.l, b.w, b.h}
	slices.Sort(d)
	return 2*(d[0]+d[1]) + b.l*b.w*b.h
}

// visit moves walkers in turn according to moves and returns the number
// of distinct points visited, including the shared starting point.
func visit(moves string, walkers int) (int, error) {
	pos := make([]aoc.Pt, walkers)
	seen := set.Set[aoc.Pt]{}
	seen.Add(aoc.Pt{})
	turn := 0
	for _, r := range moves {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := aoc.ParseDirection(r)
		if !ok {
			return 0, fmt.Errorf("bad move %q at %d", r, turn)
		}
		w := turn % walkers
		pos[w] = pos[w].Step(d)
		seen.Add(pos[w])
		turn++
	}
	return seen.Len(), nil
}

const mineBatch = 1 << 14

// mine returns the lowest non-negative n such that the hex md5 of
// secret followed by n starts with zeros zeros. Batches of candidates
// are hashed in parallel; batches are checked in order so the result
// does not depend on scheduling.
func mine(secret string, zeros int) int {
	workers := runtime.GOMAXPROCS(0)
	for start := 0; ; start += workers * mineBatch {
		froms := make([]int, workers)
		for i := range froms {
			froms[i] = start + i*mineBatch
		}
		hits := aoc.Parallel(froms, func(from int) int {
			return mineRange(secret, zeros, from, from+mineBatch)
		})
		for _, n := range hits {
			if n >= 0 {
				return n
			}
		}
	}
}

// mineRange is mine over [from, to). It returns -1 if there is no hit.
func mineRange(secret string, zeros, from, to int) int {
	buf := make([]byte, 0, len(secret)+20)
	buf = append(buf, secret...)
	for n := from; n < to; n++ {
		sum := md5.Sum(strconv.AppendInt(buf, int64(n), 10))
		if zeroNibbles(sum[:], zeros) {
			return n
		}
	}
	return -1
}

// zeroNibbles reports whether the first n hex digits of b are zero.
func zeroNibbles(b []byte, n int) bool {
	for i := 0; i < n; i++ {
		v := b[i/2]
		if i%2 == 0 {
			v >>= 4
		} else {
			v &= 0xf
		}
		if v != 0 {
			return false
		}
	}
	return true
}

// isNice reports whether s has at least three vowels, a letter twice in
// a row, and none of ab, cd, pq or xy.
func isNice(s string) bool {
	vowels := 0
	double := false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			vowels++
		}
		if i == 0 {
			continue
		}
		if s[i] == s[i-1] {
			double = true
		}
		switch s[i-1 : i+1] {
		case "ab", "cd", "pq", "xy":
			return false
		}
	}
	return vowels >= 3 && double
}

// isNicer reports whether s has a pair of letters that appears twice
// without overlapping, and a letter that repeats with exactly one letter
// between.
func isNicer(s string) bool {
	firstPair := make(map[string]int)
	pairTwice, sandwich := false, false
	for i := 1; i < len(s); i++ {
		p := s[i-1 : i+1]
		if j, ok := firstPair[p]; !ok {
			firstPair[p] = i
		} else if i-j >= 2 {
			pairTwice = true
		}
		if i >= 2 && s[i] == s[i-2] {
			sandwich = true
		}
	}
	return pairTwice && sandwich
}
