package salz

// DerivePsvNsv implements C3: given a suffix array sa already augmented to
// length n+2 with sentinels sa[0] = sa[n+1] = -1, it derives for every text
// position the nearest suffix-array neighbor on each side whose text index
// is smaller (PSV to the left, whose suffix sorts before it; NSV to the
// right, whose suffix sorts after it), storing the pair into aux.
//
// The derivation is the monotone-stack scan from spec.md §4.3: sa doubles
// as the stack, since every element popped before index top is replaced
// has already had its (psv,nsv) pair finalized and is never read again.
// This destructively rewrites sa; callers must not reuse it afterward.
func DerivePsvNsv(sa []int32, aux *Aux) {
	n := len(sa) - 2
	top := 0
	for i := 1; i <= n+1; i++ {
		for sa[top] > sa[i] {
			psv := sa[top-1]
			nsv := sa[i]
			aux.SetPsvNsv(int(sa[top]), psv, nsv)
			top--
		}
		top++
		sa[top] = sa[i]
	}
}
