package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/danielvallance/xorcrack/internal/cracker"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/spf13/cobra"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Find the single-byte-XOR'd line in a file of hex ciphertexts",
		Long: `Detect reads a file with one hex-encoded ciphertext per line, cracks
each line as a single-byte XOR cipher, and reports the line whose best
decoding looks most like English. Lines that are not valid hex or that
decode to nothing readable are skipped.

Examples:
  # Find the encrypted line in a haystack file
  xorcrack detect haystack.txt

  # Output JSON report
  xorcrack detect --json haystack.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runDetectCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runDetectCmd executes the detect command.
func runDetectCmd(cmd *cobra.Command, args []string) error {
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

	data, err := os.ReadFile(args[0]) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	reference, err := loadReference(ctx, cfg, logger)
	if err != nil {
		return err
	}

	start := time.Now()

	result, err := cracker.DetectSingleByte(ctx, bytes.NewReader(data), reference)
	if err != nil {
		if errors.Is(err, cracker.ErrNoValidKey) {
			return fmt.Errorf("no line yields a valid single-byte decoding: %w", err)
		}
		return err
	}

	rep := model.NewCrackReport(model.ModeDetect, data)
	rep.Elapsed = time.Since(start)
	rep.KeyHex = hex.EncodeToString([]byte{result.Key})
	rep.KeyLength = 1
	rep.Plaintext = result.Plaintext
	rep.Score = result.Score
	rep.Line = result.Line

	logger.Debug("detect finished", "line", rep.Line, "key", rep.KeyHex, "score", rep.Score)

	return outputReport(cfg, rep)
}
