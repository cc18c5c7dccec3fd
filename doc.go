// Package salz provides exact, globally-optimal LZ77 block compression.
//
// # Overview
//
// SALZ factorizes a fixed-size input block by building a suffix array over
// the block, deriving the Previous/Next Smaller Value (PSV/NSV) neighbor of
// every position in suffix-array order, and using those neighbors as match
// candidates. The true optimal parse — the one that minimizes the emitted
// bit count exactly, not heuristically — is then found with a
// single-source shortest-path dynamic program over bit-accurate code
// lengths. The bitstream mixes Golomb-Rice and variable-nibble codes with
// raw bytes, tuned for a fast single-pass decoder.
//
// # When to Use SALZ
//
// SALZ is well suited to:
//   - Offline or batch compression where encode time is not critical but
//     compression ratio matters (the parse is exact, not greedy).
//   - Fixed-size blocks known in advance (no streaming of arbitrary length).
//   - Workloads that decode far more often than they encode, since the
//     decoder is a tight single pass with no entropy-model state.
//
// # When NOT to Use SALZ
//
// SALZ is not suitable for:
//   - Arbitrarily long streams without natural block boundaries.
//   - Random-access decoding of a sub-range of a block.
//   - Parallel encoding of a single block (factorization is exact and
//     global over the whole block).
//   - Already-compressed or encrypted data (the PLAIN fallback keeps the
//     worst case bounded, but there is nothing to gain).
//
// # Tradeoffs vs Other Compression
//
// Compared to a greedy/lazy LZ77 encoder (e.g. DEFLATE):
//   - Strictly better or equal compression ratio for the same match model,
//     since the parse is chosen by exact shortest path over bit costs.
//   - Slower to encode: a suffix array must be built and the DP runs
//     backwards over the whole block before anything is emitted.
//   - Comparable decode speed: the decoder is a simple token loop with a
//     self-referential copy, much like any LZ77 variant.
//
// # Basic Usage
//
//	src := []byte("abcabcabcabcabcabcabcabcQQQQQQQQ")
//	dst := make([]byte, salz.MaxEncodedLen(len(src)))
//	n, err := salz.EncodeBlock(src, dst, nil)
//	if err != nil {
//		// handle err
//	}
//	compressed := dst[:n]
//
//	out := make([]byte, len(src))
//	n, err = salz.DecodeBlock(compressed, out)
//	if err != nil {
//		// handle err
//	}
//	original := out[:n] // equals src
//
// # Performance Characteristics
//
// Encoding: dominated by suffix-array construction, which the bundled
// sorter does with O(N log N) direct suffix comparisons (O(N^2 log N) byte
// comparisons in the worst case), plus O(N) amortized factorization and
// O(N) optimization/emission.
// Decoding: O(M) where M is the decompressed size — a single pass with no
// backtracking.
package salz
