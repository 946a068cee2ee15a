package main

import (
	_ "embed"
	"strings"

	aoc "github.com/maisem/aoc2015"
	"github.com/maisem/aoc2015/lights"
)

func main() {
	aoc.Run(2015, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=3

(()(()(
*/
func (s solver) D1p1() any {
	floor, _ := floors(s.Input())
	return floor
}

/*
want=5

()())
*/
func (s solver) D1p2() any {
	_, pos := floors(s.Input())
	return pos
}

/*
want=101

2x3x4
1x1x10
*/
func (s solver) D2p1() any {
	total := 0
	s.ForLines(func(line string) {
		total += aoc.MustGet(parseBox(line)).paper()
	})
	return total
}

// want=48
func (s solver) D2p2() any {
	total := 0
	s.ForLines(func(line string) {
		total += aoc.MustGet(parseBox(line)).ribbon()
	})
	return total
}

/*
want=4

^>v<
*/
func (s solver) D3p1() any {
	return aoc.MustGet(visit(string(s.Input()), 1))
}

// want=3
func (s solver) D3p2() any {
	return aoc.MustGet(visit(string(s.Input()), 2))
}

/*
want=609043

abcdef
*/
func (s solver) D4p1() any {
	return mine(strings.TrimSpace(string(s.Input())), 5)
}

// want=6742839
func (s solver) D4p2() any {
	return mine(strings.TrimSpace(string(s.Input())), 6)
}

/*
want=2

ugknbfddgicrmopn
aaa
jchzalrnumimnmhp
haegwjzuvuyypxyu
dvszwmarrgswjxmb
*/
func (s solver) D5p1() any {
	return s.count(isNice)
}

/*
want=2

qjhvhtzxzqqjkmpb
xxyxx
uurcxstgmygtbttf
ieodomkazucvgmuy
*/
func (s solver) D5p2() any {
	return s.count(isNicer)
}

// count returns the number of input lines matching pred.
func (s solver) count(pred func(string) bool) int {
	return aoc.Fold(s.Lines(), func(n int, line string) int {
		if pred(line) {
			return n + 1
		}
		return n
	}, 0)
}

/*
want=998996

turn on 0,0 through 999,999
toggle 0,0 through 999,0
turn off 499,499 through 500,500
*/
func (s solver) D6p1() any {
	return s.runLights(lights.Binary)
}

// want=1001996
func (s solver) D6p2() any {
	return s.runLights(lights.Additive)
}

// runLights returns the answer, or the error that stopped the run.
func (s solver) runLights(sem lights.Semantics) any {
	instructions, err := lights.ParseInstructions(s.Lines())
	if err != nil {
		return err
	}
	side := s.Param("grid_size", 1000)
	s.Debugf("%d instructions on a %dx%d grid (%v)", len(instructions), side, side, sem)
	n, err := lights.Run(side, sem, instructions)
	if err != nil {
		return err
	}
	return n
}
