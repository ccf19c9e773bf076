package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The key-length defaults are chosen for typical repeating-key XOR
// ciphertexts: keys shorter than 2 bytes are handled by the single-byte
// path, and keys longer than 40 bytes need more ciphertext than the tool
// usually sees for the Hamming estimate to stay meaningful.
const (
	// DefaultMinKeyLength is the shortest repeating-key length the
	// estimator considers. Length 1 is the single-byte case, which has
	// its own dedicated command.
	DefaultMinKeyLength = 2

	// DefaultMaxKeyLength is the longest repeating-key length the
	// estimator considers. The estimate needs at least two full blocks
	// of ciphertext per candidate length, so very long keys require
	// proportionally long inputs. 40 matches the classic break setup.
	DefaultMaxKeyLength = 40

	// DefaultCandidates is how many key-length candidates the estimator
	// keeps. The true length is not always ranked first (its multiples
	// often score equally well), so the recoverer tries several.
	DefaultCandidates = 3

	// AppName is the application name used for XDG directory paths.
	AppName = "xorcrack"
)

// Config holds all configuration options for xorcrack.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., CrackConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// CorpusPath is the path to a reference text corpus. When set, the
	// reference frequency table is streamed from this file instead of
	// using the built-in English distribution.
	CorpusPath string

	// MinKeyLength is the shortest key length the estimator considers.
	MinKeyLength int

	// MaxKeyLength is the longest key length the estimator considers.
	MaxKeyLength int

	// Candidates is how many estimated key lengths the recoverer tries.
	Candidates int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// NoCache disables the SQLite corpus frequency cache. Every run
	// re-streams the corpus file even if a cached count set exists.
	NoCache bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .xorcrack in the current directory,
	// the XDG config directory, and the user's home directory, in that order.
	ConfigFilePath string

	// FileDefaults holds values loaded from the config file, if one was
	// found. CLI flags take precedence over these.
	FileDefaults *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable
	// format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because the key-length defaults are non-zero.
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MinKeyLength: DefaultMinKeyLength,
		MaxKeyLength: DefaultMaxKeyLength,
		Candidates:   DefaultCandidates,
	}
}

// XDGConfigDir returns the XDG config directory for xorcrack.
// FindConfigFile searches here after the current directory.
// On Linux: ~/.config/xorcrack
// On macOS: ~/Library/Application Support/xorcrack
// On Windows: %APPDATA%\xorcrack
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for xorcrack.
// The corpus frequency cache database lives here.
// On Linux: ~/.cache/xorcrack
// On macOS: ~/Library/Caches/xorcrack
// On Windows: %LOCALAPPDATA%\xorcrack\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any cracking begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// The estimator cannot consider keys shorter than one byte
	if c.MinKeyLength < 1 {
		return ErrInvalidMinKeyLength
	}

	// An inverted range would leave the estimator with no candidates
	if c.MaxKeyLength < c.MinKeyLength {
		return ErrInvalidKeyLengthRange
	}

	// At least one candidate length must survive estimation
	if c.Candidates <= 0 {
		return ErrInvalidCandidates
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
