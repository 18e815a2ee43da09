package cliconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/bft-labs/minidxf/pkg/dxf"
	"github.com/bft-labs/minidxf/pkg/log"
)

// Config holds CLI configuration for minidxf.
type Config struct {
	// Units overrides the units named in drawing files when non-empty.
	Units string

	// Output is the DXF path for a single render. Flag only.
	Output string
	OutDir string

	MoveToOrigin bool
	Watch        bool
	Debounce     time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Debounce: 100 * time.Millisecond,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Units != "" {
		if _, err := dxf.ParseUnits(c.Units); err != nil {
			return err
		}
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.OutDir != "" {
		fi, err := os.Stat(c.OutDir)
		if err != nil {
			return fmt.Errorf("out-dir: %w", err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("out-dir %s is not a directory", c.OutDir)
		}
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
