package salz

import (
	"testing"

	"github.com/salzgo/salz/internal/sufsort"
)

// augmentedSA builds the sentinel-augmented suffix array DerivePsvNsv
// expects: a real suffix array over text, framed by -1 sentinels at both
// ends.
func augmentedSA(t *testing.T, text []byte) []int32 {
	t.Helper()
	n := len(text)
	sa := make([]int32, n+2)
	sa[0] = noPos
	sa[n+1] = noPos
	if err := sufsort.Sort(text, sa[1:n+1]); err != nil {
		t.Fatalf("sufsort.Sort: %v", err)
	}
	return sa
}

// bruteForcePsvNsv computes PSV/NSV directly from spec.md §4.3's
// definition -- the nearest SA-rank neighbor on each side whose value is
// smaller -- by linear scan, independent of the monotone-stack algorithm
// under test.
func bruteForcePsvNsv(sa []int32) (psv, nsv []int32) {
	n := len(sa) - 2
	psv = make([]int32, n)
	nsv = make([]int32, n)
	for r := 1; r <= n; r++ {
		cur := sa[r]
		p := int32(-1)
		for j := r - 1; j >= 0; j-- {
			if sa[j] < cur {
				p = sa[j]
				break
			}
		}
		nx := int32(-1)
		for j := r + 1; j < len(sa); j++ {
			if sa[j] < cur {
				nx = sa[j]
				break
			}
		}
		psv[cur] = p
		nsv[cur] = nx
	}
	return psv, nsv
}

func checkPsvNsv(t *testing.T, text []byte) {
	t.Helper()

	want := augmentedSA(t, text)
	wantPsv, wantNsv := bruteForcePsvNsv(append([]int32(nil), want...))

	sa := augmentedSA(t, text)
	aux := NewAux(len(text))
	DerivePsvNsv(sa, aux)

	for i := range text {
		if got, w := aux.Psv(i), wantPsv[i]; got != w {
			t.Errorf("text=%q: Psv(%d) = %d, want %d", text, i, got, w)
		}
		if got, w := aux.Nsv(i), wantNsv[i]; got != w {
			t.Errorf("text=%q: Nsv(%d) = %d, want %d", text, i, got, w)
		}
	}
}

func TestDerivePsvNsvMatchesBruteForce(t *testing.T) {
	texts := []string{
		"a",
		"ab",
		"banana",
		"mississippi",
		"abcabcabcabc",
		"aaaaaaaaaaaa",
		"abcdefghijklmnop",
		"zzyyxxwwvvuu",
	}
	for _, s := range texts {
		checkPsvNsv(t, []byte(s))
	}
}

// TestDerivePsvNsvLexicographicInvariant checks property 7 from spec.md
// §8: wherever psv[i] is not -1, T[psv[i]:] sorts strictly before T[i:],
// and symmetrically for nsv, since both are read off SA order directly.
func TestDerivePsvNsvLexicographicInvariant(t *testing.T) {
	text := []byte("abracadabra_abracadabra")
	sa := augmentedSA(t, text)
	aux := NewAux(len(text))
	DerivePsvNsv(sa, aux)

	less := func(a, b int) bool {
		ta, tb := text[a:], text[b:]
		for i := 0; i < len(ta) && i < len(tb); i++ {
			if ta[i] != tb[i] {
				return ta[i] < tb[i]
			}
		}
		return len(ta) < len(tb)
	}

	for i := range text {
		if p := aux.Psv(i); p >= 0 {
			if !less(int(p), i) {
				t.Errorf("Psv(%d)=%d but T[%d:] does not sort before T[%d:]", i, p, p, i)
			}
		}
		if n := aux.Nsv(i); n >= 0 {
			if !less(i, int(n)) {
				t.Errorf("Nsv(%d)=%d but T[%d:] does not sort before T[%d:]", i, n, i, n)
			}
		}
	}
}
