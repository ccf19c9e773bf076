package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "xorcrack" {
			t.Errorf("expected use 'xorcrack', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has corpus flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("corpus")
		if flag == nil {
			t.Fatal("expected corpus flag")
		}
		if flag.DefValue != "" {
			t.Errorf("expected empty default, got %q", flag.DefValue)
		}
	})

	t.Run("has no-cache flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("no-cache")
		if flag == nil {
			t.Fatal("expected no-cache flag")
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		subcommands := cmd.Commands()
		if len(subcommands) == 0 {
			t.Error("expected subcommands")
		}

		// Check for crack, break, and init commands
		hasCrack := false
		hasBreak := false
		hasInit := false
		for _, sub := range subcommands {
			switch sub.Use {
			case "crack [hex-ciphertext]":
				hasCrack = true
			case "break <base64-file>":
				hasBreak = true
			case "init":
				hasInit = true
			}
		}
		if !hasCrack {
			t.Error("expected crack subcommand")
		}
		if !hasBreak {
			t.Error("expected break subcommand")
		}
		if !hasInit {
			t.Error("expected init subcommand")
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}
