package salz

// literalCost is the bit cost of a literal token: 1 flag bit + 8 payload
// bits.
const literalCost = 9

// offsBits returns the bit cost of encoding a factor offset d: one raw
// byte for the low 8 bits, plus a vnibble-coded high part.
func offsBits(d uint32) uint64 {
	return 8 + 4*uint64(VNibbleSize((d-1)>>8))
}

// lenBits returns the bit cost of encoding a factor length l (l >= 3):
// the Golomb-Rice (k=3) code for l-3.
func lenBits(l uint32) uint64 {
	return uint64(GR3Size(l - 3))
}

// Optimize implements C5: a backwards single-source-shortest-path dynamic
// program over the DAG whose edges are "emit a literal" or "emit a PSV/NSV
// factor", weighted by the exact bit cost each edge would add to the
// stream. It walks from the end of the block back to its start so that
// aux.Cost(i) always holds the true minimum number of bits needed to
// encode text[i:n] once position i is reached.
//
// Ties are broken deterministically so encoder and decoder agree on the
// exact bit-for-bit output: a literal is preferred over a factor of equal
// cost, and a PSV factor is preferred over an NSV factor of equal cost.
// This is one of several tie-break policies the source's various
// revisions used; any consistent choice satisfies round-trip correctness,
// this is simply the one this implementation commits to.
func Optimize(n int, aux *Aux) {
	aux.BeginDecisions()
	aux.SetDecision(n, 0, 0, 0)

	for i := n - 1; i >= 0; i-- {
		bestCost := literalCost + aux.Cost(i+1)
		bestOffset := uint32(0)
		bestLength := uint32(1)

		psvOffset, psvLen, nsvOffset, nsvLen := aux.Candidates(i)

		if psvLen >= 3 {
			cost := 1 + offsBits(psvOffset) + lenBits(psvLen) + aux.Cost(i+int(psvLen))
			if cost < bestCost {
				bestCost = cost
				bestOffset = psvOffset
				bestLength = psvLen
			}
		}

		if nsvLen >= 3 {
			cost := 1 + offsBits(nsvOffset) + lenBits(nsvLen) + aux.Cost(i+int(nsvLen))
			if cost < bestCost {
				bestCost = cost
				bestOffset = nsvOffset
				bestLength = nsvLen
			}
		}

		aux.SetDecision(i, bestOffset, bestLength, bestCost)
	}
}
