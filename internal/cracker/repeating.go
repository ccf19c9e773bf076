package cracker

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/danielvallance/xorcrack/internal/xor"
)

// RecoverKey recovers a repeating XOR key of the given length from the
// ciphertext. Every ciphertext byte at index i was XORed with key byte
// i mod keyLength, so the bytes of each key position form an
// independent single-byte XOR cipher: partition the ciphertext into
// those columns, crack each column, and assemble the key.
//
// The column cracks are independent and run concurrently, one
// goroutine per key position; each writes only its own key index, so
// the result is deterministic. If any position fails to crack, the
// whole recovery fails and no partial key is returned.
func RecoverKey(ctx context.Context, ciphertext []byte, keyLength int, reference freq.Table) ([]byte, error) {
	if keyLength <= 0 || keyLength > len(ciphertext) {
		return nil, fmt.Errorf("cracker: key length %d out of range for %d ciphertext bytes", keyLength, len(ciphertext))
	}

	key := make([]byte, keyLength)

	g, ctx := errgroup.WithContext(ctx)
	for position := 0; position < keyLength; position++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			column := make([]byte, 0, len(ciphertext)/keyLength+1)
			for i := position; i < len(ciphertext); i += keyLength {
				column = append(column, ciphertext[i])
			}

			result, err := CrackSingleByte(column, reference)
			if err != nil {
				return fmt.Errorf("key position %d: %w", position, err)
			}
			key[position] = result.Key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return key, nil
}

// primitivePeriod reduces a key that is a whole number of repetitions
// of a shorter prefix to that prefix. Repeating the prefix reproduces
// the exact same keystream, so decodings are unchanged.
func primitivePeriod(key []byte) []byte {
	for period := 1; period < len(key); period++ {
		if len(key)%period != 0 {
			continue
		}
		repeated := true
		for i := period; i < len(key); i++ {
			if key[i] != key[i%period] {
				repeated = false
				break
			}
		}
		if repeated {
			return key[:period]
		}
	}
	return key
}

// CrackRepeatingKey tries every candidate key length, recovers a key
// for each, decodes the full ciphertext with it, and returns the
// decoding whose character frequencies best match the reference table.
//
// A recovered key that is a cyclic repetition of a shorter prefix is
// reduced to that prefix before scoring. Multiples of the true key
// length align columns just as well as the true length does and often
// outrank it in the Hamming estimate, so this reduction is what turns
// a winning multiple back into the primitive key.
//
// Candidate lengths whose recovery fails or whose decoding is not
// valid UTF-8 are skipped. Exact ties on the winning score are broken
// toward the shorter key. Returns ErrNoValidDecoding if every
// candidate length fails.
func CrackRepeatingKey(ctx context.Context, ciphertext []byte, candidateLengths []int, reference freq.Table) (*model.RepeatingKeyResult, error) {
	results := make([]*model.RepeatingKeyResult, len(candidateLengths))

	g, ctx := errgroup.WithContext(ctx)
	for i, length := range candidateLengths {
		g.Go(func() error {
			key, err := RecoverKey(ctx, ciphertext, length, reference)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// This length has no valid key; drop the candidate.
				return nil
			}

			key = primitivePeriod(key)
			decoded := xor.RepeatingKey(ciphertext, key)
			if !utf8.Valid(decoded) {
				return nil
			}

			plaintext := string(decoded)
			results[i] = &model.RepeatingKeyResult{
				Key:       key,
				Plaintext: plaintext,
				Score:     freq.ChiSquared(reference, freq.Percentages(plaintext)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *model.RepeatingKeyResult
	for _, result := range results {
		if result == nil {
			continue
		}
		switch {
		case best == nil,
			result.Score < best.Score,
			result.Score == best.Score && len(result.Key) < len(best.Key):
			best = result
		}
	}

	if best == nil {
		return nil, ErrNoValidDecoding
	}
	return best, nil
}
