package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", "/home/santa")
	path := writeConfig(t, `
input_dir    = "inputs"
session_file = "~/aoc/session"

day "6" {
  params = { grid_size = 10 }
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	want := &Config{
		InputDir:    "inputs",
		SessionFile: "/home/santa/aoc/session",
		Days: []DayConfig{
			{Day: "6", Params: map[string]int{"grid_size": 10}},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if v, ok := cfg.Param(6, "grid_size"); !ok || v != 10 {
		t.Errorf("Param(6, grid_size) = %d, %v; want 10, true", v, ok)
	}
	if _, ok := cfg.Param(5, "grid_size"); ok {
		t.Error("Param(5, grid_size) set")
	}

	p := &Puzzle{cfg: cfg, day: day{day: 6}}
	if got := p.Param("grid_size", 1000); got != 10 {
		t.Errorf("Puzzle.Param = %d, want 10", got)
	}
	if got := p.Param("other", 3); got != 3 {
		t.Errorf("Puzzle.Param default = %d, want 3", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `input_dir = `},
		{"unknown attribute", `color = "red"`},
		{"bad day label", `day "six" {}`},
		{"day out of range", `day "26" {}`},
		{"zero-padded day", `day "06" { params = { grid_size = 10 } }`},
		{"duplicate day", "day \"6\" {}\nday \"6\" {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}
