package cracker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/xor"
)

// TestRecoverKey tests column-wise key recovery at a known length.
func TestRecoverKey(t *testing.T) {
	t.Parallel()

	t.Run("recovers a known 3-byte key", func(t *testing.T) {
		t.Parallel()

		ciphertext := loadRepeatingKeyFixture(t)
		key, err := RecoverKey(context.Background(), ciphertext, 3, freq.EnglishReference())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(key, []byte("ICE")) {
			t.Errorf("got key %q, expected %q", key, "ICE")
		}
	})

	t.Run("rejects out-of-range key length", func(t *testing.T) {
		t.Parallel()

		if _, err := RecoverKey(context.Background(), []byte("short"), 0, freq.EnglishReference()); err == nil {
			t.Error("expected error for zero key length")
		}
		if _, err := RecoverKey(context.Background(), []byte("short"), 6, freq.EnglishReference()); err == nil {
			t.Error("expected error for key length beyond ciphertext")
		}
	})

	t.Run("fails whole recovery when one position fails", func(t *testing.T) {
		t.Parallel()

		// Column 1 becomes {0xff, 0x00} repeated, which no key decodes
		// to valid text, so the whole recovery must fail.
		ciphertext := []byte{'a', 0xff, 'b', 0x00, 'c', 0xff, 'd', 0x00}
		_, err := RecoverKey(context.Background(), ciphertext, 2, freq.EnglishReference())
		if !errors.Is(err, ErrNoValidKey) {
			t.Errorf("expected ErrNoValidKey, got %v", err)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ciphertext := loadRepeatingKeyFixture(t)
		if _, err := RecoverKey(ctx, ciphertext, 3, freq.EnglishReference()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

// TestPrimitivePeriod tests reduction of cyclically repeated keys.
func TestPrimitivePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "already primitive", key: "ICE", want: "ICE"},
		{name: "doubled key", key: "ICEICE", want: "ICE"},
		{name: "tripled key", key: "ICEICEICE", want: "ICE"},
		{name: "single byte repeated", key: "XXXX", want: "X"},
		{name: "prefix repeats but does not divide evenly", key: "ABABA", want: "ABABA"},
		{name: "empty key", key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := primitivePeriod([]byte(tt.key)); string(got) != tt.want {
				t.Errorf("primitivePeriod(%q) = %q, expected %q", tt.key, got, tt.want)
			}
		})
	}
}

// TestCrackRepeatingKey tests the full multi-byte crack across
// candidate lengths.
func TestCrackRepeatingKey(t *testing.T) {
	t.Parallel()

	t.Run("recovers key and plaintext from estimated lengths", func(t *testing.T) {
		t.Parallel()

		ciphertext := loadRepeatingKeyFixture(t)
		lengths := EstimateKeyLengths(ciphertext, 2, 10, 3)

		result, err := CrackRepeatingKey(context.Background(), ciphertext, lengths, freq.EnglishReference())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.Equal(result.Key, []byte("ICE")) {
			t.Errorf("got key %q, expected %q", result.Key, "ICE")
		}
		if !strings.HasPrefix(result.Plaintext, "The quiet harbour town woke slowly") {
			t.Errorf("unexpected plaintext prefix: %q", result.Plaintext[:min(60, len(result.Plaintext))])
		}
		if string(xor.RepeatingKey(ciphertext, result.Key)) != result.Plaintext {
			t.Error("plaintext does not match decoding with the recovered key")
		}
	})

	t.Run("multiples of the true length reduce to the primitive key", func(t *testing.T) {
		t.Parallel()

		// The Hamming estimate can rank multiples of the true length
		// ahead of the length itself, so the candidate set may not
		// contain 3 at all. Recovery at lengths 6 and 9 yields the key
		// repeated, which must still come back as the 3-byte primitive.
		ciphertext := loadRepeatingKeyFixture(t)
		result, err := CrackRepeatingKey(context.Background(), ciphertext, []int{4, 6, 9}, freq.EnglishReference())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(result.Key, []byte("ICE")) {
			t.Errorf("got key %q, expected %q", result.Key, "ICE")
		}
		if !strings.HasPrefix(result.Plaintext, "The quiet harbour town woke slowly") {
			t.Errorf("unexpected plaintext prefix: %q", result.Plaintext[:min(60, len(result.Plaintext))])
		}
	})

	t.Run("cyclic repetitions collapse to the shortest key", func(t *testing.T) {
		t.Parallel()

		// Lengths 3, 6, and 9 all decode to the identical plaintext;
		// the tie must resolve to the primitive 3-byte key.
		ciphertext := loadRepeatingKeyFixture(t)
		result, err := CrackRepeatingKey(context.Background(), ciphertext, []int{9, 6, 3}, freq.EnglishReference())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(result.Key, []byte("ICE")) {
			t.Errorf("got key %q, expected %q", result.Key, "ICE")
		}
	})

	t.Run("no candidate lengths fails", func(t *testing.T) {
		t.Parallel()

		ciphertext := loadRepeatingKeyFixture(t)
		_, err := CrackRepeatingKey(context.Background(), ciphertext, nil, freq.EnglishReference())
		if !errors.Is(err, ErrNoValidDecoding) {
			t.Errorf("expected ErrNoValidDecoding, got %v", err)
		}
	})

	t.Run("all candidates failing surfaces ErrNoValidDecoding", func(t *testing.T) {
		t.Parallel()

		ciphertext := []byte{'a', 0xff, 'b', 0x00, 'c', 0xff, 'd', 0x00}
		_, err := CrackRepeatingKey(context.Background(), ciphertext, []int{2}, freq.EnglishReference())
		if !errors.Is(err, ErrNoValidDecoding) {
			t.Errorf("expected ErrNoValidDecoding, got %v", err)
		}
	})
}
