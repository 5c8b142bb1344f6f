package cliconfig

import (
	"fmt"

	"github.com/bft-labs/fiveword/pkg/fiveword"
)

// Defaults of the library Config.
const (
	DefaultInput  = fiveword.DefaultInput
	DefaultOutput = fiveword.DefaultOutput
)

// Config holds CLI configuration for fiveword.
// It is the library Config; Validate rejects empty paths.
type Config = fiveword.Config

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return fiveword.DefaultConfig()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
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

// Resolve layers the config file (if present) and FIVEWORD_* environment
// variables onto cfg, leaving explicitly set flags untouched, and validates
// the result. An empty cfgPath falls back to DefaultConfigPath. A missing
// default file is not an error; a missing explicit file is.
func Resolve(cfg *Config, cfgPath string, changed map[string]bool) error {
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = DefaultConfigPath()
	}

	if cfgPath != "" && (explicit || FileExists(cfgPath)) {
		fc, err := LoadFileConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(cfg, fc, changed)
	}

	ApplyEnvConfig(cfg, changed)

	return cfg.Validate()
}
