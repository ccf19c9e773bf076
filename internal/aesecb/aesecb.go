// Package aesecb decrypts and encrypts AES-128 in ECB mode with PKCS#7
// padding. The block cipher itself comes from crypto/aes; this package
// only supplies the (insecure, but historically common) ECB chaining
// and padding around it.
package aesecb

import (
	"crypto/aes"
	"errors"
	"fmt"
)

// Padding and input shape errors.
var (
	// ErrInvalidLength is returned when the ciphertext is not a whole
	// number of AES blocks.
	ErrInvalidLength = errors.New("aesecb: ciphertext is not a multiple of the block size")

	// ErrInvalidPadding is returned when the decrypted data does not
	// end with valid PKCS#7 padding.
	ErrInvalidPadding = errors.New("aesecb: invalid PKCS#7 padding")
)

// Decrypt decrypts AES-128-ECB ciphertext with the given 16-byte key
// and strips the PKCS#7 padding.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesecb: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, ErrInvalidLength
	}

	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += block.BlockSize() {
		block.Decrypt(plaintext[i:], ciphertext[i:])
	}

	return pkcs7Unpad(plaintext, block.BlockSize())
}

// Encrypt applies PKCS#7 padding and encrypts with AES-128-ECB.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesecb: %w", err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += block.BlockSize() {
		block.Encrypt(ciphertext[i:], padded[i:])
	}
	return ciphertext, nil
}

// pkcs7Pad appends 1..blockSize padding bytes, each holding the
// padding length. Input that is already block-aligned gains a full
// block of padding so the unpad is unambiguous.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
