package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	// Steps stops headless runs after this many ticks; 0 runs until cancelled.
	Steps int
	// File is an optional TOML file loaded beneath the flags.
	File string
	// Params is handed to the sim factory (see core.Factory).
	Params map[string]string

	overrides kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "stop after this many ticks (0 = run until interrupted)")
	fs.StringVar(&c.File, "config", c.File, "TOML config file")
	fs.Var(&c.overrides, "set", "sim parameter override in key=value form (repeatable)")
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file it is loaded first and the flags are applied on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File); err != nil {
			return nil, err
		}
		cfg.overrides = nil
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type fileConfig struct {
	Sim    string         `toml:"sim"`
	Scale  int            `toml:"scale"`
	TPS    int            `toml:"tps"`
	Seed   int64          `toml:"seed"`
	Steps  int            `toml:"steps"`
	Params map[string]any `toml:"params"`
}

// LoadFile applies the keys defined in a TOML file to c. Keys the file does
// not mention keep their current values.
func (c *Config) LoadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("sim") {
		c.Sim = strings.TrimSpace(raw.Sim)
	}
	if meta.IsDefined("scale") {
		c.Scale = raw.Scale
	}
	if meta.IsDefined("tps") {
		c.TPS = raw.TPS
	}
	if meta.IsDefined("seed") {
		c.Seed = raw.Seed
	}
	if meta.IsDefined("steps") {
		c.Steps = raw.Steps
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	for k, v := range raw.Params {
		c.Params[k] = fmt.Sprint(v)
	}
	return c.Validate()
}

// Validate rejects values no driver can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim == "" {
		errs = append(errs, errors.New("sim must not be empty"))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	}
	return errors.Join(errs...)
}

func (c *Config) applyOverrides() error {
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	for _, kv := range c.overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("parse -set %q: want key=value", kv)
		}
		c.Params[key] = strings.TrimSpace(value)
	}
	return c.Validate()
}

type kvList []string

func (l *kvList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
