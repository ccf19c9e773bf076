// Package xor provides the byte-level primitives for XOR ciphers:
// single-byte and repeating-key XOR application, fixed-length XOR
// combination, and bitwise Hamming distance.
//
// All functions operate on raw byte buffers. Text validation and
// frequency scoring live elsewhere; this package never inspects
// content beyond the bit level.
package xor

import (
	"errors"
	"math/bits"
)

// ErrLengthMismatch is returned by operations that require two buffers
// of equal length when the lengths differ.
var ErrLengthMismatch = errors.New("xor: buffers must have equal length")

// SingleByte writes the XOR combination of src with the single key byte
// into dst. dst must be at least as long as src.
func SingleByte(dst, src []byte, key byte) {
	for i := range src {
		dst[i] = src[i] ^ key
	}
}

// Fixed returns the byte-wise XOR of two equal-length buffers.
// It returns ErrLengthMismatch if the lengths differ.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// RepeatingKey returns the XOR combination of msg with the key repeated
// cyclically. Applying it twice with the same key is the identity, so
// the same function both encodes and decodes.
//
// The key must be non-empty; an empty key is a caller bug and panics.
func RepeatingKey(msg, key []byte) []byte {
	if len(key) == 0 {
		panic("xor: empty key")
	}
	out := make([]byte, len(msg))
	for i := range msg {
		out[i] = msg[i] ^ key[i%len(key)]
	}
	return out
}

// Hamming returns the number of differing bits between two equal-length
// buffers. It returns ErrLengthMismatch if the lengths differ.
//
// The XOR of two bytes has a bit set for every bit in which they differ,
// so the distance is the population count of the byte-wise XOR.
func Hamming(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var distance int
	for i := range a {
		distance += bits.OnesCount8(a[i] ^ b[i])
	}
	return distance, nil
}
