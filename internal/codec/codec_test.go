package codec

import (
	"bytes"
	"testing"
)

// TestIsValidHex tests hexadecimal validation.
func TestIsValidHex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"mixed case digits", "9087654321abcdefABCDEF", true},
		{"empty string", "", true},
		{"grave accent", "9087654321abcdefABCDEF`", false},
		{"ampersand", "9087654321abcdefABCDEF@", false},
		{"slash", "9087654321abcdefABCDEF/", false},
		{"colon", "9087654321abcdefABCDEF:", false},
		{"uppercase g", "9087654321abcdefABCDEFG", false},
		{"lowercase g", "9087654321abcdefABCDEFg", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidHex(tc.input); got != tc.expected {
				t.Errorf("IsValidHex(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

// TestDecodeHex tests hex decoding.
func TestDecodeHex(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeHex("4cd2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, []byte{76, 210}) {
			t.Errorf("got %v, expected [76 210]", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeHex("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty buffer, got %v", got)
		}
	})

	t.Run("invalid characters fail", func(t *testing.T) {
		t.Parallel()

		if _, err := DecodeHex("invalid_hex"); err == nil {
			t.Error("expected error for non-hex input")
		}
	})

	t.Run("odd length fails rather than truncating", func(t *testing.T) {
		t.Parallel()

		if _, err := DecodeHex("8f61c"); err == nil {
			t.Error("expected error for odd-length input")
		}
	})
}

// TestHexRoundTrip tests that encode and decode are inverses.
func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1234567890abcdef", "fedcba0987654321", "000030fedcba"} {
		buf, err := DecodeHex(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := EncodeHex(buf); got != s {
			t.Errorf("round trip: got %q, expected %q", got, s)
		}
	}
}

// TestDecodeBase64 tests base64 decoding.
func TestDecodeBase64(t *testing.T) {
	t.Parallel()

	t.Run("plain input", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeBase64("aGVsbG8=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("got %q, expected %q", got, "hello")
		}
	})

	t.Run("line-wrapped input", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeBase64("aGVs\nbG8g\nd29y\nbGQ=\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "hello world" {
			t.Errorf("got %q, expected %q", got, "hello world")
		}
	})

	t.Run("malformed input fails", func(t *testing.T) {
		t.Parallel()

		if _, err := DecodeBase64("not*base64!"); err == nil {
			t.Error("expected error for malformed input")
		}
	})
}
