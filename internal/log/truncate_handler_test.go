package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncateHandler_TruncatesLongValues tests that long string values are cut.
func TestTruncateHandler_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		wantCut bool
	}{
		{
			name:    "short value is untouched",
			key:     "key_hex",
			value:   "494345",
			wantCut: false,
		},
		{
			name:    "value at the limit is untouched",
			key:     "plaintext",
			value:   strings.Repeat("a", TruncateAt),
			wantCut: false,
		},
		{
			name:    "value one byte over the limit is cut",
			key:     "plaintext",
			value:   strings.Repeat("a", TruncateAt+1),
			wantCut: true,
		},
		{
			name:    "long ciphertext dump is cut",
			key:     "ciphertext",
			value:   strings.Repeat("0b3637272a2b2e63", 200),
			wantCut: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)

			logger.Info("test message", tt.key, tt.value)

			output := buf.String()

			if tt.wantCut {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value to be truncated, but full value found in output")
				}
				if !strings.Contains(output, "bytes total") {
					t.Errorf("expected truncation marker in output, but not found: %s", output)
				}
			} else {
				if !strings.Contains(output, tt.value) {
					t.Errorf("expected value to be present in output, but not found: %s", output)
				}
				if strings.Contains(output, "bytes total") {
					t.Errorf("expected no truncation marker, but found one: %s", output)
				}
			}
		})
	}
}

// TestTruncateHandler_NonStringValuesUntouched tests that non-string attributes pass through.
func TestTruncateHandler_NonStringValuesUntouched(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Info("test message", "score", 608.25, "key", 88, "valid", true)

	output := buf.String()

	for _, want := range []string{"608.25", "88", "true"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, but not found: %s", want, output)
		}
	}
}

// TestTruncateHandler_RuneBoundary tests that truncation never splits a multi-byte rune.
func TestTruncateHandler_RuneBoundary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	// Multi-byte runes positioned so a naive byte cut would land mid-rune.
	value := "a" + strings.Repeat("é", TruncateAt)
	logger.Info("test message", "plaintext", value)

	output := buf.String()

	if strings.Contains(output, "�") {
		t.Errorf("truncated output contains replacement character: %s", output)
	}
	if !strings.Contains(output, "bytes total") {
		t.Errorf("expected truncation marker in output, but not found: %s", output)
	}
}

// TestTruncateHandler_LogLevels tests that log levels are respected.
func TestTruncateHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{
			name:       "debug message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelDebug,
			shouldShow: true,
		},
		{
			name:       "debug message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelDebug,
			shouldShow: false,
		},
		{
			name:       "info message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelInfo,
			shouldShow: false,
		},
		{
			name:       "warn message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelWarn,
			shouldShow: true,
		},
		{
			name:       "error message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelError,
			shouldShow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			testMsg := "test_unique_message_12345"

			switch tt.logLevel {
			case slog.LevelDebug:
				logger.Debug(testMsg)
			case slog.LevelInfo:
				logger.Info(testMsg)
			case slog.LevelWarn:
				logger.Warn(testMsg)
			case slog.LevelError:
				logger.Error(testMsg)
			}

			output := buf.String()
			hasMessage := strings.Contains(output, testMsg)

			if tt.shouldShow && !hasMessage {
				t.Errorf("expected message to be shown, but not found in output: %s", output)
			}
			if !tt.shouldShow && hasMessage {
				t.Errorf("expected message to be hidden, but found in output: %s", output)
			}
		})
	}
}

// TestTruncateHandler_WithAttrs tests that WithAttrs truncates attributes.
func TestTruncateHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	long := strings.Repeat("x", TruncateAt*2)
	childLogger := logger.With("plaintext", long)
	childLogger.Info("test message")

	output := buf.String()

	if strings.Contains(output, long) {
		t.Errorf("expected attribute added via With to be truncated, but full value found")
	}
	if !strings.Contains(output, "bytes total") {
		t.Errorf("expected truncation marker in output, but not found: %s", output)
	}
}

// TestTruncateHandler_WithGroup tests that WithGroup still truncates.
func TestTruncateHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	long := strings.Repeat("y", TruncateAt*2)
	groupLogger := logger.WithGroup("crack")
	groupLogger.Info("test message", "key_hex", "494345", "plaintext", long)

	output := buf.String()

	if !strings.Contains(output, "494345") {
		t.Errorf("expected short value to be visible, but not found in output: %s", output)
	}
	if strings.Contains(output, long) {
		t.Errorf("expected long value to be truncated inside group, but full value found")
	}
}

// TestNewTruncateHandler_NilHandler tests that nil handler is handled gracefully.
func TestNewTruncateHandler_NilHandler(t *testing.T) {
	t.Parallel()

	handler := NewTruncateHandler(nil)
	if handler == nil {
		t.Error("expected non-nil handler")
	}

	logger := slog.New(handler)
	logger.Info("test message") // Should not panic
}
