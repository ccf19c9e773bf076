// Package main provides the entry point for the xorcrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for xorcrack.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xorcrack",
		Short: "Statistical cryptanalysis tool for XOR ciphers",
		Long: `Xorcrack recovers plaintext encrypted under byte-wise XOR ciphers.
It cracks single-byte keys by exhaustive search and repeating multi-byte
keys via Hamming-distance key-length estimation, scoring every candidate
decoding against an English character-frequency distribution.

By default, scoring uses a built-in English frequency table.
Use --corpus to derive the reference distribution from your own text.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("corpus", "", "Reference corpus file (default: built-in English table)")
	cmd.PersistentFlags().Bool("no-cache", false, "Disable the corpus frequency cache")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: .xorcrack in current, XDG config, or home directory)")

	// Add subcommands
	cmd.AddCommand(NewCrackCmd())
	cmd.AddCommand(NewBreakCmd())
	cmd.AddCommand(NewDetectCmd())
	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewXORCmd())
	cmd.AddCommand(NewECBCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
