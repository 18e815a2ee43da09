package cliconfig

import "os"

// ApplyEnvConfig applies configuration from MINIDXF_* environment variables.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("units", os.Getenv("MINIDXF_UNITS"), &cfg.Units)
	s.setString("out-dir", os.Getenv("MINIDXF_OUT_DIR"), &cfg.OutDir)
	s.setString("log-level", os.Getenv("MINIDXF_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("move-to-origin", os.Getenv("MINIDXF_MOVE_TO_ORIGIN"), &cfg.MoveToOrigin)

	return s.setDuration("debounce", os.Getenv("MINIDXF_DEBOUNCE"), &cfg.Debounce)
}
