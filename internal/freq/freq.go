// Package freq implements the character-frequency model used to judge
// how plausible a decoded candidate is: occurrence counts, percentage
// tables, streamed corpus accumulation, and the chi-squared distance
// between two frequency tables.
package freq

import (
	"bufio"
	"io"
	"sort"
)

// corpusBufferSize is the read buffer size used when streaming a
// reference corpus. Corpora are typically whole books, so a generous
// buffer keeps the line reads off the syscall path.
const corpusBufferSize = 300 * 1024

// Table maps a character to its frequency as a percentage of all
// characters in the source text. A table built from non-empty text
// sums to 100 within floating-point tolerance; a table built from
// empty text is empty.
//
// Tables are plain values. Once built they are treated as read-only
// and may be shared across any number of concurrent searches.
type Table map[rune]float64

// Count returns the number of occurrences of each character in text.
// Empty input yields an empty map.
func Count(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}
	return counts
}

// Percentages returns the frequency of each character in text as a
// percentage of the total character count. Empty input yields an empty
// table rather than dividing by zero.
func Percentages(text string) Table {
	counts := Count(text)
	var total int
	for _, n := range counts {
		total += n
	}
	return FromCounts(counts, total)
}

// CorpusCounts streams a reference corpus line by line and returns the
// accumulated character counts and the total character count. The
// source is never materialized in memory, so arbitrarily large corpora
// are fine.
//
// Each line is read together with its terminator, and one additional
// newline is credited per line on top of that. This double accounting
// is the convention the reference frequency model was calibrated
// against; changing it would shift every chi-squared comparison made
// against tables built here.
func CorpusCounts(r io.Reader) (map[rune]int, int, error) {
	br := bufio.NewReaderSize(r, corpusBufferSize)
	counts := make(map[rune]int)
	var total int

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			for _, c := range line {
				counts[c]++
				total++
			}
			counts['\n']++
			total++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}
	return counts, total, nil
}

// CorpusPercentages streams a reference corpus and returns its
// character frequencies as percentages. See CorpusCounts for the
// newline accounting convention.
func CorpusPercentages(r io.Reader) (Table, error) {
	counts, total, err := CorpusCounts(r)
	if err != nil {
		return nil, err
	}
	return FromCounts(counts, total), nil
}

// FromCounts converts raw character counts into a percentage table.
// Zero total yields an empty table.
func FromCounts(counts map[rune]int, total int) Table {
	table := make(Table, len(counts))
	if total == 0 {
		return table
	}
	for c, n := range counts {
		table[c] = float64(n) / (float64(total) / 100.0)
	}
	return table
}

// ChiSquared returns the chi-squared distance between a reference
// table and a candidate table. Lower means the candidate's character
// distribution is closer to the reference; zero only when both tables
// agree on every character either side contains.
//
// Characters present in the reference are scored as
// (candidate - reference)^2 / reference, with a missing candidate
// entry counting as zero. Characters present only in the candidate
// are scored as (0 - candidate)^2 / candidate, so text full of
// characters the reference has never seen is penalized in proportion
// to how much of the candidate they make up.
//
// Accumulation runs in sorted character order so that equal
// distributions always produce bit-identical sums regardless of map
// iteration order. Candidate selection relies on exact score ties for
// equivalent decodings.
func ChiSquared(reference, candidate Table) float64 {
	refChars := sortedChars(reference)
	candChars := sortedChars(candidate)

	var chi float64
	for _, c := range refChars {
		diff := candidate[c] - reference[c]
		chi += diff * diff / reference[c]
	}
	for _, c := range candChars {
		if _, ok := reference[c]; ok {
			continue
		}
		diff := 0 - candidate[c]
		chi += diff * diff / candidate[c]
	}
	return chi
}

func sortedChars(t Table) []rune {
	chars := make([]rune, 0, len(t))
	for c := range t {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}
