// Package main provides the entry point for the xorcrack CLI.
//
// Xorcrack is a statistical cryptanalysis tool for XOR ciphers.
// It recovers single-byte and repeating-key XOR plaintexts using
// chi-squared character-frequency analysis.
//
// Usage:
//
//	xorcrack crack <hex-ciphertext>
//	xorcrack break <base64-file>
//
// See --help for all available options.
package main

// main is the entry point for xorcrack.
func main() {
	Execute()
}
