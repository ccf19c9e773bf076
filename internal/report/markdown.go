package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/danielvallance/xorcrack/internal/freq"
	"github.com/danielvallance/xorcrack/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// pieChartChars is how many of the most frequent plaintext characters
// the distribution chart shows. More slices than this are unreadable
// in rendered mermaid output.
const pieChartChars = 8

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CrackReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeResult(md, report)
	w.writeDistribution(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with crack information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CrackReport) {
	md.H1("Xorcrack Report")
	md.PlainText("")

	// Basic info table
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Mode", modeTitle(report.Mode)},
			{"Date", report.DateCracked.Format("2006-01-02 15:04:05 MST")},
			{"Input Length", strconv.Itoa(report.InputLength) + " bytes"},
			{"Input Digest", "`" + report.InputDigest + "`"},
			{"Elapsed", report.Elapsed.String()},
		},
	})
	md.PlainText("")
}

// writeResult writes the recovered key and plaintext.
func (w *MarkdownWriter) writeResult(md *markdown.Markdown, report *model.CrackReport) {
	md.H2("Result")
	md.PlainText("")

	rows := [][]string{
		{"Key (hex)", "`" + report.KeyHex + "`"},
		{"Key Length", strconv.Itoa(report.KeyLength)},
		{"Score", fmt.Sprintf("%.4f", report.Score)},
	}
	if report.Line > 0 {
		rows = append(rows, []string{"Line", strconv.Itoa(report.Line)})
	}
	if len(report.CandidateKeyLengths) > 0 {
		candidates := ""
		for i, l := range report.CandidateKeyLengths {
			if i > 0 {
				candidates += ", "
			}
			candidates += strconv.Itoa(l)
		}
		rows = append(rows, []string{"Key Lengths Tried", candidates})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Plaintext")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightText, report.Plaintext)
	md.PlainText("")
}

// writeDistribution writes a mermaid pie chart of the most frequent
// characters in the recovered plaintext. A recognisably natural-language
// distribution is quick visual confirmation that the crack succeeded.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, report *model.CrackReport) {
	counts := freq.Count(report.Plaintext)
	if len(counts) == 0 {
		return
	}

	type charCount struct {
		char  rune
		count int
	}
	all := make([]charCount, 0, len(counts))
	for c, n := range counts {
		all = append(all, charCount{char: c, count: n})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].char < all[j].char
	})
	if len(all) > pieChartChars {
		all = all[:pieChartChars]
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Plaintext Character Distribution"),
		piechart.WithShowData(true),
	)
	for _, cc := range all {
		chart.LabelAndIntValue(charLabel(cc.char), uint64(cc.count))
	}

	md.H2("Character Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// charLabel returns a readable pie chart label for a character.
func charLabel(c rune) string {
	switch c {
	case ' ':
		return "space"
	case '\n':
		return "newline"
	case '\t':
		return "tab"
	default:
		return string(c)
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [xorcrack](https://github.com/danielvallance/xorcrack)*")
}
