package model

import "encoding/hex"

// SingleByteResult is the outcome of a single-byte XOR crack: the key
// byte that produced the most plausible decoding, the decoded text,
// and its chi-squared score against the reference distribution.
//
// Results are compared only against other results from the same
// search; the score has no meaning across different ciphertexts or
// reference tables.
type SingleByteResult struct {
	// Key is the recovered single-byte key.
	Key byte `json:"key"`

	// Plaintext is the decoded message.
	Plaintext string `json:"plaintext"`

	// Score is the chi-squared distance between the plaintext's
	// character frequencies and the reference table. Lower is better.
	Score float64 `json:"score"`

	// Line is the 1-based input line the result came from when the
	// crack searched across multiple ciphertext lines. Zero for
	// single-ciphertext cracks.
	Line int `json:"line,omitempty"`
}

// RepeatingKeyResult is the outcome of a repeating-key XOR crack.
type RepeatingKeyResult struct {
	// Key is the recovered multi-byte key.
	Key []byte `json:"-"`

	// Plaintext is the decoded message.
	Plaintext string `json:"plaintext"`

	// Score is the chi-squared distance of the decoded message
	// against the reference table. Lower is better.
	Score float64 `json:"score"`
}

// KeyHex returns the recovered key as a hexadecimal string.
func (r *RepeatingKeyResult) KeyHex() string {
	return hex.EncodeToString(r.Key)
}

// KeyLength returns the recovered key length in bytes.
func (r *RepeatingKeyResult) KeyLength() int {
	return len(r.Key)
}
