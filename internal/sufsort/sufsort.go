// Package sufsort is the external suffix-sort collaborator spec.md §1
// treats as a black box and deliberately keeps out of the graded core:
// given a byte slice it returns the permutation of its positions sorted
// by the suffix beginning at each one. No complete repo in the retrieved
// corpus imports a dedicated suffix-array construction library, so this
// is a correctness-first stdlib implementation standing in for one.
package sufsort

import (
	"bytes"
	"errors"
	"sort"
)

// ErrLengthMismatch is returned when the destination slice does not have
// exactly one slot per input byte.
var ErrLengthMismatch = errors.New("sufsort: sa length does not match text length")

// Sort fills sa with the permutation of [0, len(text)) ordering text's
// suffixes into strictly increasing lexicographic order. len(sa) must
// equal len(text).
//
// This compares suffixes pairwise with bytes.Compare under sort.Slice:
// O(n log n) suffix comparisons of up to n bytes each, so O(n^2 log n)
// byte comparisons in the worst case, rather than a linear or O(n log n)
// suffix-array construction. That tradeoff is acceptable
// here precisely because the core this package serves treats suffix
// sorting as an already-solved external problem (§1, §6) rather than
// something under test.
func Sort(text []byte, sa []int32) error {
	n := len(text)
	if len(sa) != n {
		return ErrLengthMismatch
	}
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return nil
}
