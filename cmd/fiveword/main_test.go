package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/fiveword/pkg/fiveword"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FIVEWORD_INPUT", "")
	t.Setenv("FIVEWORD_OUTPUT", "")

	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCommand_Flags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "words.txt")
	out := filepath.Join(dir, "five.txt")
	if err := os.WriteFile(in, []byte("kıyı\nsınır\nzevki\nabc12\nsüsle\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := runCommand(t, "--input", in, "-o", out); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "SINIR\nZEVKİ\nSÜSLE\n"; string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "words.txt")
	out := filepath.Join(dir, "five.txt")
	cfgPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(in, []byte("kalem\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("input: "+in+"\noutput: "+out+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := runCommand(t, "--config", cfgPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "KALEM\n" {
		t.Errorf("output = %q, want %q", got, "KALEM\n")
	}
}

func TestRootCommand_MissingSource(t *testing.T) {
	dir := t.TempDir()

	err := runCommand(t, "--input", filepath.Join(dir, "missing.txt"), "--output", filepath.Join(dir, "out.txt"))
	if !errors.Is(err, fiveword.ErrOpen) {
		t.Fatalf("Execute() error = %v, want ErrOpen", err)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	if err := runCommand(t, "stray"); err == nil {
		t.Error("Execute() expected error for positional argument")
	}
}
