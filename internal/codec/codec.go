// Package codec provides strict hex and base64 transcoding for
// ciphertext input and key output. Malformed input always produces an
// error; nothing is ever silently truncated.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// IsValidHex reports whether s consists only of ASCII hexadecimal
// digits. The empty string is valid hex.
func IsValidHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// DecodeHex decodes a hexadecimal string into raw bytes.
// Odd-length or non-hex input is an error.
func DecodeHex(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return buf, nil
}

// EncodeHex encodes raw bytes as a lowercase hexadecimal string.
func EncodeHex(buf []byte) string {
	return hex.EncodeToString(buf)
}

// DecodeBase64 decodes a base64 string into raw bytes. Whitespace is
// stripped first so that line-wrapped files decode as a single buffer;
// any other malformed input is an error.
func DecodeBase64(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)

	buf, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return buf, nil
}

// EncodeBase64 encodes raw bytes as a standard base64 string.
func EncodeBase64(buf []byte) string {
	return base64.StdEncoding.EncodeToString(buf)
}
