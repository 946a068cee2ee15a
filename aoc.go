// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "aoc.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     *Config
	solver  partSolver
	samples map[string]sample
}

// NewPuzzle returns a puzzle for one day that reads its input from
// cfg.InputDir.
func NewPuzzle(year, dayNum int, cfg *Config) *Puzzle {
	return &Puzzle{
		year: year,
		day:  day{day: dayNum},
		cfg:  cfg,
	}
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	name := filepath.Join(p.cfg.InputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
	return p.cfg.fileOrFetch(name, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the non-empty lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		if line != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

// Param returns the day's configured parameter name, or def if the
// config does not set it.
func (p *Puzzle) Param(name string, def int) int {
	if v, ok := p.cfg.Param(p.day.day, name); ok {
		return v
	}
	return def
}

// Debugf prints a debug line when running a sample with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods of x named D{day}p{part}. The
// methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagConfig     string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagConfig, "config", "aoc.hcl", "path to optional HCL config file")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runPart runs one part and reports whether the day should continue.
func runPart(p *Puzzle, ps partSolver, sm bool) bool {
	p.SampleMode = sm
	if !sm {
		// Prime the input.
		p.Input()
	}
	t0 := time.Now()
	got := ps.fn()
	if err, ok := got.(error); ok {
		mode := ""
		if sm {
			mode = " sample"
		}
		fmt.Printf("part %s%s: %v ❌\n", ps.Part, mode, err)
		return false
	}
	if sm {
		sample := p.Sample()
		if fmt.Sprint(got) != sample.want {
			fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
			return false
		}
		fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	} else {
		fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
	return true
}

func runDay(slvr any, cfg *Config, year int, day day, samples map[string]sample) {
	p := NewPuzzle(year, day.day, cfg)
	p.day = day
	p.samples = samples
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			if !runPart(p, ps, sm) {
				return
			}
		}
	}
}

// Run runs every D{day}p{part} method of slvr, or only those selected
// by flags. slvr must be a pointer to a struct embedding *Puzzle, and
// src the Go source declaring its methods, from which the want=
// samples are read.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		log.Fatal(err)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, cfg, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, cfg, year, days[day], samples)
		fmt.Println()
	}
}

func (c *Config) session() string {
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		log.Fatalf("no puzzle input cached and no session to fetch it: %v", err)
	}
	return strings.TrimSpace(string(b))
}

func (c *Config) fileOrFetch(filename, url string) []byte {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	body := c.fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func (c *Config) fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}
