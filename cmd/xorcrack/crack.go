package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/danielvallance/xorcrack/internal/cracker"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/spf13/cobra"
)

// NewCrackCmd creates the crack command.
func NewCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [hex-ciphertext]",
		Short: "Crack a single-byte XOR cipher",
		Long: `Crack tries all 256 single-byte keys against a hex-encoded ciphertext
and reports the key whose decoding best matches English character
frequencies.

Examples:
  # Crack a hex ciphertext given as an argument
  xorcrack crack 1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736

  # Crack a ciphertext read from a file
  xorcrack crack --file ciphertext.hex

  # Output JSON report
  xorcrack crack --json 1b37373331363f78...

  # Score against your own corpus
  xorcrack crack --corpus novel.txt 1b37373331363f78...`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCrackCmd,
	}

	cmd.Flags().StringP("file", "f", "", "Read the hex ciphertext from a file")
	addReportFlags(cmd)

	return cmd
}

// runCrackCmd executes the crack command.
func runCrackCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	input, err := readHexInput(cmd, args)
	if err != nil {
		return err
	}

	ciphertext, err := codec.DecodeHex(input)
	if err != nil {
		return fmt.Errorf("invalid hex ciphertext: %w", err)
	}

	reference, err := loadReference(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug("starting single-byte crack", "length", len(ciphertext))
	start := time.Now()

	result, err := cracker.CrackSingleByte(ciphertext, reference)
	if err != nil {
		if errors.Is(err, cracker.ErrNoValidKey) {
			return fmt.Errorf("no single-byte key produces a valid decoding: %w", err)
		}
		return err
	}

	rep := model.NewCrackReport(model.ModeSingleByte, ciphertext)
	rep.Elapsed = time.Since(start)
	rep.KeyHex = hex.EncodeToString([]byte{result.Key})
	rep.KeyLength = 1
	rep.Plaintext = result.Plaintext
	rep.Score = result.Score

	logger.Debug("crack finished", "key", rep.KeyHex, "score", rep.Score)

	return outputReport(cfg, rep)
}

// readHexInput returns the hex ciphertext from the positional argument
// or the --file flag. Exactly one of the two must be provided.
func readHexInput(cmd *cobra.Command, args []string) (string, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return "", err
	}

	switch {
	case path != "" && len(args) > 0:
		return "", errors.New("provide either a hex argument or --file, not both")
	case path != "":
		data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return "", fmt.Errorf("failed to read ciphertext file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case len(args) > 0:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", errors.New("no ciphertext provided (pass a hex string or --file)")
	}
}
