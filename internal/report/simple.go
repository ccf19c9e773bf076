package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/danielvallance/xorcrack/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.CrackReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeResult(&sb, report)
	if w.verbose {
		w.writeDetails(&sb, report)
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with crack information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.CrackReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         XORCRACK REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Mode:           %s\n", modeTitle(report.Mode)))
	sb.WriteString(fmt.Sprintf("Date:           %s\n", report.DateCracked.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Input Length:   %d bytes\n", report.InputLength))
	sb.WriteString(fmt.Sprintf("Elapsed:        %s\n", report.Elapsed))
	sb.WriteString("\n")
}

// writeResult writes the recovered key and plaintext.
func (w *SimpleWriter) writeResult(sb *strings.Builder, report *model.CrackReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Key (hex):    %s\n", report.KeyHex))
	sb.WriteString(fmt.Sprintf("  Key Length:   %d\n", report.KeyLength))
	sb.WriteString(fmt.Sprintf("  Score:        %.4f\n", report.Score))
	if report.Line > 0 {
		sb.WriteString(fmt.Sprintf("  Line:         %d\n", report.Line))
	}
	sb.WriteString("\n")
	sb.WriteString("  Plaintext:\n")
	for _, line := range strings.Split(strings.TrimRight(report.Plaintext, "\n"), "\n") {
		sb.WriteString("    " + line + "\n")
	}
	sb.WriteString("\n")
}

// writeDetails writes additional information for verbose output.
func (w *SimpleWriter) writeDetails(sb *strings.Builder, report *model.CrackReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DETAILS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Input Digest: %s\n", report.InputDigest))
	if len(report.CandidateKeyLengths) > 0 {
		lengths := make([]string, len(report.CandidateKeyLengths))
		for i, l := range report.CandidateKeyLengths {
			lengths[i] = fmt.Sprintf("%d", l)
		}
		sb.WriteString(fmt.Sprintf("  Key Lengths Tried: %s\n", strings.Join(lengths, ", ")))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by xorcrack\n")
	sb.WriteString("https://github.com/danielvallance/xorcrack\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
