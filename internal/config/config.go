package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Flyrell/timeaudit/internal/compliance"
	"gopkg.in/yaml.v3"
)

// Config holds the rule thresholds and state mode. Hour values may be
// fractional.
type Config struct {
	MaxConsecutiveDays int     `yaml:"max_consecutive_days"`
	MinRestHours       float64 `yaml:"min_rest_hours"`
	MinRestFloorHours  float64 `yaml:"min_rest_floor_hours"`
	MaxShiftHours      float64 `yaml:"max_shift_hours"`
	StateMode          string  `yaml:"state_mode"`
}

// Default returns the built-in thresholds.
func Default() *Config {
	th := compliance.DefaultThresholds()
	return &Config{
		MaxConsecutiveDays: th.MaxConsecutiveDays,
		MinRestHours:       th.MinRest.Hours(),
		MinRestFloorHours:  th.RestFloor.Hours(),
		MaxShiftHours:      th.MaxShift.Hours(),
		StateMode:          compliance.RollingState.String(),
	}
}

// Read loads a YAML config file. Keys absent from the file keep their
// default values. An empty path returns the defaults.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every threshold is positive, the rest floor is below
// the rest minimum, and the state mode is known.
func (c *Config) Validate() error {
	if c.MaxConsecutiveDays <= 0 {
		return fmt.Errorf("max_consecutive_days must be positive, got %d", c.MaxConsecutiveDays)
	}
	if c.MinRestHours <= 0 {
		return fmt.Errorf("min_rest_hours must be positive, got %g", c.MinRestHours)
	}
	if c.MinRestFloorHours < 0 {
		return fmt.Errorf("min_rest_floor_hours must not be negative, got %g", c.MinRestFloorHours)
	}
	if c.MinRestFloorHours >= c.MinRestHours {
		return fmt.Errorf("min_rest_floor_hours (%g) must be below min_rest_hours (%g)", c.MinRestFloorHours, c.MinRestHours)
	}
	if c.MaxShiftHours <= 0 {
		return fmt.Errorf("max_shift_hours must be positive, got %g", c.MaxShiftHours)
	}
	if _, ok := compliance.ParseStateMode(c.StateMode); !ok {
		return fmt.Errorf("state_mode must be rolling or per-employee, got %q", c.StateMode)
	}
	return nil
}

// Options converts the config into evaluation options.
func (c *Config) Options() compliance.Options {
	mode, _ := compliance.ParseStateMode(c.StateMode)
	return compliance.Options{
		Thresholds: compliance.Thresholds{
			MaxConsecutiveDays: c.MaxConsecutiveDays,
			MinRest:            hours(c.MinRestHours),
			RestFloor:          hours(c.MinRestFloorHours),
			MaxShift:           hours(c.MaxShiftHours),
		},
		Mode: mode,
	}
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
