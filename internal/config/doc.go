// Package config provides configuration structures and utilities for xorcrack.
// It defines the main configuration options for key-length estimation,
// corpus selection, and report generation preferences.
package config
