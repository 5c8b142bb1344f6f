package cliconfig

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvInput  = "FIVEWORD_INPUT"
	EnvOutput = "FIVEWORD_OUTPUT"
)

// ApplyEnvConfig applies configuration from environment variables (FIVEWORD_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv(EnvInput), &cfg.Input)
	s.setString("output", os.Getenv(EnvOutput), &cfg.Output)
}
