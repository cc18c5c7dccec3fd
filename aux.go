package salz

// The reference SALZ reuses one `int[4*(N+1)]` array across three
// unrelated interpretations as the pipeline advances: (psv,nsv) indices,
// then (offset,len) candidates, then (chosen offset, chosen length, cost).
// Per the source's own documented need for re-architecture, this file
// gives each interpretation its own named fields instead of raw index
// arithmetic. A phase marker records the latest stage begun; the accessors
// do not check it, and reading a stage's slices before its Begin call
// panics with an index out of range.

type auxPhase int

const (
	phaseEmpty auxPhase = iota
	phasePsvNsv
	phaseCandidates
	phaseDecided
)

// noPos is the sentinel marking "no such text position" for psv/nsv;
// kept internally as -1 for compact branch-friendly comparisons, never
// returned across the package boundary.
const noPos = int32(-1)

// Aux holds the three successive per-position interpretations the SALZ
// pipeline needs: PSV/NSV neighbor indices, candidate (offset,len) pairs
// derived from them, and the final chosen parse plus its running cost.
// One Aux is allocated per block encode and discarded afterward.
type Aux struct {
	phase auxPhase
	n     int

	// phase 1 (PsvNsv): text index of the nearest suffix-array neighbor
	// on each side with a smaller text index, or noPos if there is none.
	psv []int32
	nsv []int32

	// phase 2 (Factorizer): candidate match length/offset against each
	// neighbor. Zero length means no usable candidate on that side.
	psvOffset []uint32
	psvLen    []uint32
	nsvOffset []uint32
	nsvLen    []uint32

	// phase 3 (Optimizer): the parse chosen at each position and the
	// minimum bit cost to encode from that position to the end of the
	// block. chosenLength == 1 means the position is encoded as a
	// literal (chosenOffset is then unused and reads as 0).
	chosenOffset []uint32
	chosenLength []uint32
	cost         []uint64
}

// NewAux allocates an Aux table sized for a block whose active length
// (excluding the forced-literal tail) is n.
func NewAux(n int) *Aux {
	return &Aux{
		n:   n,
		psv: make([]int32, n),
		nsv: make([]int32, n),
	}
}

// SetPsvNsv records the PSV/NSV neighbor indices for position i, or noPos
// for a side with no neighbor. Must be called once per position in phase
// phaseEmpty/phasePsvNsv before the table advances to phaseCandidates.
func (a *Aux) SetPsvNsv(i int, psv, nsv int32) {
	a.psv[i] = psv
	a.nsv[i] = nsv
}

// Psv returns the PSV neighbor text index for position i, or -1.
func (a *Aux) Psv(i int) int32 { return a.psv[i] }

// Nsv returns the NSV neighbor text index for position i, or -1.
func (a *Aux) Nsv(i int) int32 { return a.nsv[i] }

// BeginCandidates allocates the phase-2 candidate slices and marks the
// table ready to receive Factorizer output.
func (a *Aux) BeginCandidates() {
	a.psvOffset = make([]uint32, a.n)
	a.psvLen = make([]uint32, a.n)
	a.nsvOffset = make([]uint32, a.n)
	a.nsvLen = make([]uint32, a.n)
	a.phase = phaseCandidates
}

// SetCandidates records the candidate match against each neighbor for
// position i. A zero length means that side has no usable candidate.
func (a *Aux) SetCandidates(i int, psvOffset, psvLen, nsvOffset, nsvLen uint32) {
	a.psvOffset[i] = psvOffset
	a.psvLen[i] = psvLen
	a.nsvOffset[i] = nsvOffset
	a.nsvLen[i] = nsvLen
}

// Candidates returns the candidate match pair for position i.
func (a *Aux) Candidates(i int) (psvOffset, psvLen, nsvOffset, nsvLen uint32) {
	return a.psvOffset[i], a.psvLen[i], a.nsvOffset[i], a.nsvLen[i]
}

// BeginDecisions allocates the phase-3 decision slices and marks the
// table ready to receive Optimizer output.
func (a *Aux) BeginDecisions() {
	a.chosenOffset = make([]uint32, a.n+1)
	a.chosenLength = make([]uint32, a.n+1)
	a.cost = make([]uint64, a.n+1)
	a.phase = phaseDecided
}

// SetDecision records the chosen parse at position i and the minimum bit
// cost to encode from i to the end of the block.
func (a *Aux) SetDecision(i int, offset, length uint32, cost uint64) {
	a.chosenOffset[i] = offset
	a.chosenLength[i] = length
	a.cost[i] = cost
}

// Decision returns the chosen (offset, length) parse at position i.
func (a *Aux) Decision(i int) (offset, length uint32) {
	return a.chosenOffset[i], a.chosenLength[i]
}

// Cost returns the minimum bit cost to encode T[i..N).
func (a *Aux) Cost(i int) uint64 { return a.cost[i] }
