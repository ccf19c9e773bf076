package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/danielvallance/xorcrack/internal/config"
	"github.com/danielvallance/xorcrack/internal/corpus"
	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/log"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/danielvallance/xorcrack/internal/report"
	"github.com/spf13/cobra"
)

// buildConfig creates a Config from global cobra flags and the optional
// configuration file. File values are applied first so explicit flags
// still win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileDefaults, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.FileDefaults.ApplyTo(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	corpusPath, err := cmd.Flags().GetString("corpus")
	if err != nil {
		return nil, err
	}
	if corpusPath != "" {
		cfg.CorpusPath = corpusPath
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.NoCache = true
	}

	return cfg, nil
}

// applyReportFlags reads the per-command report flags into the config.
// Only commands with structured results (crack, break, detect) define these.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	return nil
}

// addReportFlags registers the report format flags on a command.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// setupLogger creates a structured logger based on verbosity setting.
// Long attribute values are truncated so ciphertext dumps stay readable.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewLogger(os.Stderr, verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM so a
// long-running crack can be interrupted cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadReference loads the reference frequency distribution.
// With no corpus configured it returns the built-in English table.
// Otherwise the corpus file is streamed, going through the SQLite
// frequency cache unless caching is disabled. Cache setup failures fall
// back to a fresh stream rather than failing the crack.
func loadReference(ctx context.Context, cfg *config.Config, logger *slog.Logger) (freq.Table, error) {
	if cfg.CorpusPath == "" {
		return freq.EnglishReference(), nil
	}

	if cfg.NoCache {
		return corpus.Load(cfg.CorpusPath)
	}

	store, err := corpus.OpenStore(config.XDGCacheDir(), corpus.DefaultStoreOptions())
	if err != nil {
		logger.Warn("corpus cache unavailable, streaming corpus directly",
			"dir", config.XDGCacheDir(), "error", err)
		return corpus.Load(cfg.CorpusPath)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close corpus cache", "error", err)
		}
	}()

	return corpus.LoadCached(ctx, store, cfg.CorpusPath)
}

// outputReport writes the crack report in the requested format.
func outputReport(cfg *config.Config, rep *model.CrackReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(rep)
	return err
}
