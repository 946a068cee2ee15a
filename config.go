package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the optional runner configuration, read from an HCL file:
//
//	input_dir    = "inputs"
//	session_file = "~/keys/aoc.session"
//
//	day "6" {
//	  params = { grid_size = 1000 }
//	}
type Config struct {
	InputDir    string      `hcl:"input_dir,optional"`
	SessionFile string      `hcl:"session_file,optional"`
	Days        []DayConfig `hcl:"day,block"`
}

// DayConfig holds per-day integer parameters.
type DayConfig struct {
	Day    string         `hcl:"day,label"`
	Params map[string]int `hcl:"params,optional"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
	}
}

// LoadConfig reads the config file at path. A missing file is not an
// error; it yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}
	var parsed Config
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, diags)
	}

	seen := make(map[int]bool)
	for _, d := range parsed.Days {
		n, err := strconv.Atoi(d.Day)
		if err != nil || n < 1 || n > 25 || strconv.Itoa(n) != d.Day {
			return nil, fmt.Errorf("config %s: bad day label %q", path, d.Day)
		}
		if seen[n] {
			return nil, fmt.Errorf("config %s: day %d declared twice", path, n)
		}
		seen[n] = true
	}

	cfg.InputDir = Or(parsed.InputDir, cfg.InputDir)
	cfg.SessionFile = expandHome(Or(parsed.SessionFile, cfg.SessionFile))
	cfg.Days = parsed.Days
	return cfg, nil
}

// Param returns the named parameter for day, if set.
func (c *Config) Param(day int, name string) (int, bool) {
	for _, d := range c.Days {
		if d.Day != strconv.Itoa(day) {
			continue
		}
		v, ok := d.Params[name]
		return v, ok
	}
	return 0, false
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(os.Getenv("HOME"), rest)
	}
	return path
}
