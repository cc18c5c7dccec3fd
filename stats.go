package salz

// Stats is an optional per-call diagnostic out-parameter for EncodeBlock.
// The reference implementation this is grounded on keeps the equivalent
// counters in a process-wide singleton gated by a build flag; per the
// Design Notes that is redone here as a value the caller owns and passes
// in, so concurrent encodes never share mutable state.
type Stats struct {
	Literals   int
	PsvFactors int
	NsvFactors int
	TotalBits  uint64
}

// fill populates s from a completed optimization over the active region
// text[0:n], walking the chosen parse the same way emitParse does.
func (s *Stats) fill(aux *Aux, n int) {
	*s = Stats{TotalBits: aux.Cost(0)}
	for i := 0; i < n; {
		offset, length := aux.Decision(i)
		if length == 1 {
			s.Literals++
			i++
			continue
		}
		psvOffset, psvLen, _, _ := aux.Candidates(i)
		if offset == psvOffset && length == psvLen {
			s.PsvFactors++
		} else {
			s.NsvFactors++
		}
		i += int(length)
	}
}
