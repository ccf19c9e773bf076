package cracker

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danielvallance/xorcrack/internal/codec"
	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/model"
)

// DetectSingleByte reads one hex-encoded ciphertext per line from r,
// cracks each line as a single-byte XOR cipher, and returns the result
// with the best chi-squared score across all lines. This finds the one
// encrypted line hiding in a file of noise.
//
// Lines that are not valid hex or that crack to nothing are skipped;
// the search fails with ErrNoValidKey only when no line at all yields
// a valid decoding. The returned result carries the 1-based line
// number it came from.
func DetectSingleByte(ctx context.Context, r io.Reader, reference freq.Table) (*model.SingleByteResult, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	results := make([]*model.SingleByteResult, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			ciphertext, err := codec.DecodeHex(line)
			if err != nil || len(ciphertext) == 0 {
				// Not a ciphertext line; skip it.
				return nil
			}

			result, err := CrackSingleByte(ciphertext, reference)
			if err != nil {
				return nil
			}
			result.Line = i + 1
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *model.SingleByteResult
	for _, result := range results {
		if result == nil {
			continue
		}
		if best == nil || result.Score < best.Score {
			best = result
		}
	}

	if best == nil {
		return nil, ErrNoValidKey
	}
	return best, nil
}
