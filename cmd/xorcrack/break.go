package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/danielvallance/xorcrack/internal/config"
	"github.com/danielvallance/xorcrack/internal/cracker"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/spf13/cobra"
)

// NewBreakCmd creates the break command.
func NewBreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break <base64-file>",
		Short: "Break a repeating-key XOR cipher",
		Long: `Break recovers the repeating multi-byte key of a base64-encoded
ciphertext file. It estimates likely key lengths by normalized Hamming
distance between ciphertext blocks, recovers each key byte by
single-byte frequency analysis of its column, and keeps the decoding
that best matches English character frequencies.

Examples:
  # Break a base64 ciphertext file
  xorcrack break ciphertext.b64

  # Search a wider key length range
  xorcrack break --min-key 2 --max-key 60 ciphertext.b64

  # Try more key length candidates
  xorcrack break --candidates 5 ciphertext.b64

  # Output Markdown report to a file
  xorcrack break --markdown -o report.md ciphertext.b64`,
		Args: cobra.ExactArgs(1),
		RunE: runBreakCmd,
	}

	cmd.Flags().Int("min-key", config.DefaultMinKeyLength,
		"Minimum key length to consider")
	cmd.Flags().Int("max-key", config.DefaultMaxKeyLength,
		"Maximum key length to consider")
	cmd.Flags().Int("candidates", config.DefaultCandidates,
		"Number of key length candidates to try")
	addReportFlags(cmd)

	return cmd
}

// runBreakCmd executes the break command.
func runBreakCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyBreakFlags(cmd, cfg); err != nil {
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
		return fmt.Errorf("failed to read ciphertext file: %w", err)
	}

	ciphertext, err := codec.DecodeBase64(string(data))
	if err != nil {
		return fmt.Errorf("invalid base64 ciphertext: %w", err)
	}

	reference, err := loadReference(ctx, cfg, logger)
	if err != nil {
		return err
	}

	start := time.Now()

	lengths := cracker.EstimateKeyLengths(ciphertext, cfg.MinKeyLength, cfg.MaxKeyLength, cfg.Candidates)
	logger.Debug("estimated key lengths", "candidates", fmt.Sprint(lengths))

	result, err := cracker.CrackRepeatingKey(ctx, ciphertext, lengths, reference)
	if err != nil {
		if errors.Is(err, cracker.ErrNoValidDecoding) {
			return fmt.Errorf("no candidate key length produces a valid decoding: %w", err)
		}
		return err
	}

	rep := model.NewCrackReport(model.ModeRepeatingKey, ciphertext)
	rep.Elapsed = time.Since(start)
	rep.KeyHex = result.KeyHex()
	rep.KeyLength = result.KeyLength()
	rep.Plaintext = result.Plaintext
	rep.Score = result.Score
	rep.CandidateKeyLengths = lengths

	logger.Debug("break finished", "key", rep.KeyHex, "keyLength", rep.KeyLength, "score", rep.Score)

	return outputReport(cfg, rep)
}

// applyBreakFlags reads the key-length search flags into the config.
// Flags left at their defaults do not clobber config-file values.
func applyBreakFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cmd.Flags().Changed("min-key") || cfg.MinKeyLength == 0 {
		cfg.MinKeyLength, err = cmd.Flags().GetInt("min-key")
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("max-key") || cfg.MaxKeyLength == 0 {
		cfg.MaxKeyLength, err = cmd.Flags().GetInt("max-key")
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("candidates") || cfg.Candidates == 0 {
		cfg.Candidates, err = cmd.Flags().GetInt("candidates")
		if err != nil {
			return err
		}
	}

	return nil
}
