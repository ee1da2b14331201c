package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
)

// defaultConfigFile is read from the working directory when no -config flag
// is given; it may be absent.
const defaultConfigFile = "m3c.toml"

// Config is the optional m3c.toml configuration.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig configures diagnostic reporting.
type CheckConfig struct {
	// Strict turns every diagnostic into an error.
	Strict bool `toml:"strict"`
	// MaxDiagnostics limits how many diagnostics are reported per file; 0
	// means no limit.
	MaxDiagnostics int `toml:"max-diagnostics"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`
}

func defaultConfig() Config {
	return Config{Output: OutputConfig{Color: "auto"}}
}

// loadConfig reads the named TOML file; an empty name reads m3c.toml if it
// exists, falling back to defaults.
func loadConfig(name string) (Config, error) {
	cfg := defaultConfig()
	explicit := name != ""
	if !explicit {
		name = defaultConfigFile
	}
	data, err := os.ReadFile(name)
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", name, err)
	}
	if err := cfg.parse(string(data)); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", name, err)
	}
	return cfg, nil
}

func (cfg *Config) parse(data string) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys %v", strings.Join(keys, ", "))
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid output.color %q, must be auto, always or never", cfg.Output.Color)
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("invalid check.max-diagnostics %v, must not be negative", cfg.Check.MaxDiagnostics)
	}
	return nil
}

// colorFor decides whether to color output written to f.
func (cfg Config) colorFor(f *os.File) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
