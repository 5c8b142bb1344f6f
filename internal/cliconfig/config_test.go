package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/fiveword/internal/domain"
	"github.com/bft-labs/fiveword/pkg/fiveword"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "alltrwords.txt" {
		t.Errorf("Input = %v, want alltrwords.txt", cfg.Input)
	}
	if cfg.Output != "5-letter-words.txt" {
		t.Errorf("Output = %v, want 5-letter-words.txt", cfg.Output)
	}
}

func TestDefaultConfig_MatchesLibrary(t *testing.T) {
	if got, want := DefaultConfig(), fiveword.DefaultConfig(); got != want {
		t.Errorf("DefaultConfig() = %+v, want library defaults %+v", got, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "custom paths",
			config:  Config{Input: "/data/words.txt", Output: "/tmp/out.txt"},
			wantErr: false,
		},
		{
			name:    "missing input",
			config:  Config{Output: "out.txt"},
			wantErr: true,
		},
		{
			name:    "missing output",
			config:  Config{Input: "in.txt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("input = \"/file/in.txt\"\noutput = \"/file/out.txt\"\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := Resolve(&cfg, configPath, map[string]bool{}); err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Input != "/file/in.txt" || cfg.Output != "/file/out.txt" {
			t.Errorf("cfg = %+v, want file values", cfg)
		}
	})

	t.Run("env overrides file, flag overrides env", func(t *testing.T) {
		t.Setenv(EnvInput, "/env/in.txt")
		t.Setenv(EnvOutput, "/env/out.txt")

		cfg := DefaultConfig()
		cfg.Output = "/flag/out.txt"
		if err := Resolve(&cfg, configPath, map[string]bool{"output": true}); err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Input != "/env/in.txt" {
			t.Errorf("Input = %v, want /env/in.txt", cfg.Input)
		}
		if cfg.Output != "/flag/out.txt" {
			t.Errorf("Output = %v, want /flag/out.txt", cfg.Output)
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := Resolve(&cfg, filepath.Join(tmpDir, "nope.toml"), map[string]bool{}); err == nil {
			t.Error("Resolve() expected error for missing explicit config file")
		}
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		cfg := DefaultConfig()
		if err := Resolve(&cfg, "", map[string]bool{}); err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})
}
