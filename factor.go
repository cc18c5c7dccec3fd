package salz

import (
	"encoding/binary"
	"math/bits"
)

// Factorize implements C4: for every text position from 1 to len(text)-1,
// compute the longest common prefix between text[i:] and each of its PSV
// and NSV neighbors (as already derived into aux by DerivePsvNsv), and
// store the resulting candidate (offset, length) pairs back into aux.
//
// Neighboring positions tend to have strongly correlated LCPs, so the
// running psvFloor/nsvFloor values carry a safe lower bound on the next
// comparison's starting point forward from one position to the next: if
// the previous match was nonzero, the next one is guaranteed to be at
// least that long minus one, so the inner loop can start its byte
// comparison there instead of at zero. This amortizes the total LCP work
// to linear in the common case.
func Factorize(text []byte, aux *Aux) {
	n := len(text)
	aux.BeginCandidates()

	var psvFloor, nsvFloor uint32

	for i := 1; i < n; i++ {
		psv := aux.Psv(i)
		nsv := aux.Nsv(i)

		var psvOffset, psvLen uint32
		if psv >= 0 {
			start := uint32(0)
			if psvFloor > 0 {
				start = psvFloor - 1
			}
			psvLen = lcpFrom(text, int(psv), i, start)
			psvOffset = uint32(i) - uint32(psv)
		}

		var nsvOffset, nsvLen uint32
		if nsv >= 0 {
			start := uint32(0)
			if nsvFloor > 0 {
				start = nsvFloor - 1
			}
			nsvLen = lcpFrom(text, int(nsv), i, start)
			nsvOffset = uint32(i) - uint32(nsv)
		}

		aux.SetCandidates(i, psvOffset, psvLen, nsvOffset, nsvLen)
		psvFloor, nsvFloor = psvLen, nsvLen
	}
}

// lcpFrom returns the length of the common prefix of text[a:] and
// text[b:], both bounded by len(text), assuming the caller has already
// verified the first `known` bytes match (a safe optimistic lower bound
// carried over from a correlated neighboring position).
func lcpFrom(text []byte, a, b int, known uint32) uint32 {
	n := len(text)
	i := int(known)

	for a+i+8 <= n && b+i+8 <= n {
		wa := binary.LittleEndian.Uint64(text[a+i : a+i+8])
		wb := binary.LittleEndian.Uint64(text[b+i : b+i+8])
		if wa != wb {
			return uint32(i) + uint32(bits.TrailingZeros64(wa^wb)/8)
		}
		i += 8
	}
	for a+i < n && b+i < n && text[a+i] == text[b+i] {
		i++
	}
	return uint32(i)
}
