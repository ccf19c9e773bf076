package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrInvalidMinKeyLength is returned when the minimum key length is
	// less than one. A zero or negative length has no meaning for a
	// repeating key.
	ErrInvalidMinKeyLength = errors.New("invalid minimum key length: must be at least 1")

	// ErrInvalidKeyLengthRange is returned when the maximum key length is
	// smaller than the minimum. An inverted range leaves the estimator
	// with nothing to try.
	ErrInvalidKeyLengthRange = errors.New("invalid key length range: maximum must not be smaller than minimum")

	// ErrInvalidCandidates is returned when the candidate count is not
	// positive. Zero candidates would mean the recoverer never attempts
	// a single key length.
	ErrInvalidCandidates = errors.New("invalid candidate count: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
