package corpus

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/danielvallance/xorcrack/internal/freq"
)

// ErrSourceUnavailable is returned when the corpus file cannot be
// opened or read. It is propagated to the caller; no retry is
// attempted.
var ErrSourceUnavailable = errors.New("corpus: source unavailable")

// Load streams the corpus file at path and returns its character
// frequency percentages.
func Load(path string) (freq.Table, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	table, err := freq.CorpusPercentages(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return table, nil
}

// Fingerprint returns the SHA3-256 digest of the file at path as a
// hexadecimal string. The file is streamed through the hash, so large
// corpora do not load into memory.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	h := sha3.New256()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// LoadCached returns the corpus frequency table for the file at path,
// consulting the store first. On a cache miss the corpus is streamed
// and the resulting counts are saved for next time.
//
// Cache failures are never fatal: a store that cannot be read or
// written is logged and the corpus is simply streamed fresh.
func LoadCached(ctx context.Context, store *Store, path string) (freq.Table, error) {
	digest, err := Fingerprint(path)
	if err != nil {
		return nil, err
	}

	counts, total, err := store.LoadCounts(ctx, digest)
	if err == nil {
		slog.Debug("corpus cache hit", "path", path, "digest", digest)
		return freq.FromCounts(counts, total), nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("corpus cache read failed, rebuilding", "path", path, "error", err)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	counts, total, err = freq.CorpusCounts(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if err := store.SaveCounts(ctx, digest, path, counts, total); err != nil {
		slog.Warn("failed to cache corpus frequencies", "path", path, "error", err)
	}
	return freq.FromCounts(counts, total), nil
}
