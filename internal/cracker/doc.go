// Package cracker implements the statistical search that recovers XOR
// keys from ciphertext alone: a 256-way brute force for single-byte
// keys, a Hamming-distance estimator that ranks candidate repeating-key
// lengths, and a column-wise recoverer that assembles multi-byte keys
// from independent single-byte cracks.
//
// Every search is exhaustive over its candidate space. Per-candidate
// failures (a decoding that is not valid text) are absorbed locally;
// only a fully exhausted space surfaces as an error, so a failure means
// there was genuinely nothing to find, not that a retry could help.
package cracker
