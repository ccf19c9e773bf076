package cracker

import (
	"container/heap"

	"github.com/danielvallance/xorcrack/internal/xor"
)

// lengthScore pairs a candidate key length with its normalized
// inter-block Hamming distance. The score exists only while ranking;
// callers receive bare lengths.
type lengthScore struct {
	length int
	score  float64
}

// lengthHeap is a max-heap of lengthScore keyed by score, used as a
// fixed-capacity "keep the N best" selector: push every candidate,
// then evict the worst whenever the heap exceeds capacity.
type lengthHeap []lengthScore

func (h lengthHeap) Len() int            { return len(h) }
func (h lengthHeap) Less(i, j int) bool  { return h[i].score > h[j].score }
func (h lengthHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *lengthHeap) Push(x interface{}) { *h = append(*h, x.(lengthScore)) }
func (h *lengthHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EstimateKeyLengths ranks candidate repeating-key lengths for the
// ciphertext and returns the count most probable ones. A correct key
// length aligns blocks that encode the same statistical alphabet, so
// consecutive blocks of that length differ in fewer bits than blocks
// of a wrong length.
//
// Candidate lengths run from max(1, minLen) to min(maxLen,
// len(ciphertext)/2), so every scored length has at least one pair of
// full blocks. Each candidate's score is the average Hamming distance
// between consecutive non-overlapping blocks, normalized by the block
// length to make scores comparable across lengths.
//
// The returned lengths are in no particular order, and the order is
// not meaningful: near-correct lengths (in particular multiples of the
// true length) score close together, so callers must try every
// returned candidate and pick by decode quality. A zero count returns
// an empty slice.
func EstimateKeyLengths(ciphertext []byte, minLen, maxLen, count int) []int {
	if count <= 0 {
		return nil
	}

	lo := max(1, minLen)
	hi := min(maxLen, len(ciphertext)/2)

	best := &lengthHeap{}
	for length := lo; length <= hi; length++ {
		pairs := len(ciphertext)/length - 1

		var total int
		for i := 0; i+2*length <= len(ciphertext); i += length {
			// The blocks are equal length by construction, so the
			// distance cannot fail.
			d, _ := xor.Hamming(ciphertext[i:i+length], ciphertext[i+length:i+2*length])
			total += d
		}

		score := float64(total) / float64(pairs) / float64(length)
		heap.Push(best, lengthScore{length: length, score: score})
		if best.Len() > count {
			heap.Pop(best)
		}
	}

	lengths := make([]int, 0, best.Len())
	for _, candidate := range *best {
		lengths = append(lengths, candidate.length)
	}
	return lengths
}
