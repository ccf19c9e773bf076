package cracker

import (
	"errors"
	"unicode/utf8"

	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/danielvallance/xorcrack/internal/xor"
)

// Search exhaustion errors. Per-candidate failures are absorbed during
// the search; these surface only when every candidate was rejected.
var (
	// ErrNoValidKey is returned when no single-byte key produces a
	// valid text decoding.
	ErrNoValidKey = errors.New("cracker: no key produced a valid text decoding")

	// ErrNoValidDecoding is returned when every candidate key length
	// fails recovery or produces invalid text.
	ErrNoValidDecoding = errors.New("cracker: no candidate key length produced a valid decoding")
)

// CrackSingleByte brute-forces all 256 single-byte keys against the
// ciphertext and returns the decoding whose character frequencies are
// closest to the reference table under the chi-squared distance.
//
// Candidates that do not decode to valid UTF-8 are discarded without
// being scored. Ties on the minimum score keep the first candidate in
// ascending key order, so the result is deterministic. Returns
// ErrNoValidKey if all 256 candidates are invalid.
func CrackSingleByte(ciphertext []byte, reference freq.Table) (*model.SingleByteResult, error) {
	decoded := make([]byte, len(ciphertext))

	var best *model.SingleByteResult
	for key := 0; key <= 0xff; key++ {
		xor.SingleByte(decoded, ciphertext, byte(key))
		if !utf8.Valid(decoded) {
			continue
		}

		plaintext := string(decoded)
		score := freq.ChiSquared(reference, freq.Percentages(plaintext))
		if best == nil || score < best.Score {
			best = &model.SingleByteResult{
				Key:       byte(key),
				Plaintext: plaintext,
				Score:     score,
			}
		}
	}

	if best == nil {
		return nil, ErrNoValidKey
	}
	return best, nil
}
