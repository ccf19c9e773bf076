// Package log provides logging for the cracker, built on top of the
// standard slog package.
//
// Cracking works on raw ciphertext buffers that can be megabytes long,
// and debug logging naturally wants to include the buffers and decoded
// candidates it is working on. The TruncateHandler caps the length of
// every string attribute so a verbose run stays readable instead of
// dumping entire ciphertexts into the log stream.
//
// # Usage
//
//	// Create a truncating logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("scoring candidate",
//	    "plaintext", candidate, // long values are cut at TruncateAt
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
