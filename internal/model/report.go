package model

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// Mode identifies which kind of crack produced a report.
type Mode string

// Crack modes.
const (
	ModeSingleByte   Mode = "single-byte"
	ModeRepeatingKey Mode = "repeating-key"
	ModeDetect       Mode = "detect"
)

// CrackReport is the composite result handed to the report writers.
// It is returned whole or not at all: a failed crack produces an
// error, never a partial report.
//
// Design decision: We use a single flat struct for all crack modes
// rather than one type per mode. The report writers would otherwise
// need three nearly identical code paths, and the unused fields are
// simply omitted from serialized output.
type CrackReport struct {
	// Mode identifies the crack that produced this report.
	Mode Mode `json:"mode"`

	// InputDigest is the SHA3-256 digest of the raw ciphertext,
	// so reports can be correlated with their inputs without
	// embedding the ciphertext itself.
	InputDigest string `json:"input_digest"`

	// InputLength is the ciphertext length in bytes.
	InputLength int `json:"input_length"`

	// DateCracked is when the crack finished.
	DateCracked time.Time `json:"date_cracked"`

	// Elapsed is how long the search took.
	Elapsed time.Duration `json:"elapsed"`

	// KeyHex is the recovered key as a hexadecimal string.
	KeyHex string `json:"key_hex"`

	// KeyLength is the recovered key length in bytes. Always 1 for
	// single-byte mode.
	KeyLength int `json:"key_length"`

	// Plaintext is the recovered message.
	Plaintext string `json:"plaintext"`

	// Score is the winning chi-squared score.
	Score float64 `json:"score"`

	// CandidateKeyLengths lists the key lengths the estimator
	// proposed, for repeating-key mode. The order carries no meaning;
	// every candidate was tried.
	CandidateKeyLengths []int `json:"candidate_key_lengths,omitempty"`

	// Line is the 1-based input line that cracked, for detect mode.
	Line int `json:"line,omitempty"`
}

// NewCrackReport creates a report for the given mode and ciphertext,
// stamping the input digest, length, and completion time. The caller
// fills in the result fields.
func NewCrackReport(mode Mode, ciphertext []byte) *CrackReport {
	digest := sha3.Sum256(ciphertext)
	return &CrackReport{
		Mode:        mode,
		InputDigest: hex.EncodeToString(digest[:]),
		InputLength: len(ciphertext),
		DateCracked: time.Now(),
	}
}
