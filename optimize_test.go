package salz

import "testing"

// TestOptimizeHandCalculatedCost verifies the SSSP recurrence from
// spec.md §4.5 against a small hand-computed DAG: four positions where
// only position 1 has an eligible factor, forcing literals everywhere
// else.
func TestOptimizeHandCalculatedCost(t *testing.T) {
	const n = 4
	aux := NewAux(n)
	aux.BeginCandidates()
	// psvOffset=1, psvLen=3 at position 1: covers [1,4), landing exactly
	// on C[4]=0.
	aux.SetCandidates(1, 1, 3, 0, 0)

	Optimize(n, aux)

	wantCost := []uint64{26, 17, 18, 9, 0}
	for i := 0; i <= n; i++ {
		if got := aux.Cost(i); got != wantCost[i] {
			t.Errorf("Cost(%d) = %d, want %d", i, got, wantCost[i])
		}
	}

	if offset, length := aux.Decision(0); offset != 0 || length != 1 {
		t.Errorf("Decision(0) = (%d,%d), want (0,1) (literal)", offset, length)
	}
	if offset, length := aux.Decision(1); offset != 1 || length != 3 {
		t.Errorf("Decision(1) = (%d,%d), want (1,3) (psv factor)", offset, length)
	}
	if offset, length := aux.Decision(2); offset != 0 || length != 1 {
		t.Errorf("Decision(2) = (%d,%d), want (0,1) (literal)", offset, length)
	}
	if offset, length := aux.Decision(3); offset != 0 || length != 1 {
		t.Errorf("Decision(3) = (%d,%d), want (0,1) (literal)", offset, length)
	}
}

// TestOptimizeLiteralInitializesBestCost checks that Optimize seeds
// bestCost from the literal edge: with no eligible candidate present the
// literal edge is the only option, so it must win at exactly literalCost.
// (A factor displaces that seed only by costing strictly less; no
// literal/factor cost tie is constructed here.)
func TestOptimizeLiteralInitializesBestCost(t *testing.T) {
	const n = 1
	aux := NewAux(n)
	aux.BeginCandidates()
	Optimize(n, aux)
	if offset, length := aux.Decision(0); offset != 0 || length != 1 {
		t.Fatalf("Decision(0) = (%d,%d), want (0,1) literal when no eligible candidate exists", offset, length)
	}
	if cost := aux.Cost(0); cost != literalCost {
		t.Fatalf("Cost(0) = %d, want %d (the literal edge cost)", cost, literalCost)
	}
}

// TestOptimizePsvPreferredOverNsvOnTie checks the second half of §9 Open
// Question 1's tie-break: when a PSV and an NSV factor have identical
// total bit cost, PSV wins.
func TestOptimizePsvPreferredOverNsvOnTie(t *testing.T) {
	const n = 3
	aux := NewAux(n)
	aux.BeginCandidates()
	// Both candidates span [0,3), landing on C[3]=0, and both fall in the
	// same vnibble bucket for their high offset bits ((d-1)>>8 == 0 for
	// d in [1,256]), so their bit costs are identical; only the chosen
	// offset value tells us which one Optimize picked.
	aux.SetCandidates(0, 1 /*psvOffset*/, 3, 255 /*nsvOffset*/, 3)

	Optimize(n, aux)

	offset, length := aux.Decision(0)
	if length != 3 {
		t.Fatalf("Decision(0) length = %d, want 3 (a factor should have won over the literal here)", length)
	}
	if offset != 1 {
		t.Fatalf("Decision(0) offset = %d, want 1 (PSV candidate) on a cost tie with NSV", offset)
	}
}

// TestOptimizeIgnoresSubThresholdCandidates checks the §4.4 edge policy
// that factors shorter than 3 are ineligible and must not influence the
// parse even when present in Aux.
func TestOptimizeIgnoresSubThresholdCandidates(t *testing.T) {
	const n = 2
	aux := NewAux(n)
	aux.BeginCandidates()
	aux.SetCandidates(0, 1, 2, 0, 0) // length 2: below the eligibility floor

	Optimize(n, aux)

	if offset, length := aux.Decision(0); offset != 0 || length != 1 {
		t.Fatalf("Decision(0) = (%d,%d), want (0,1) -- sub-threshold candidate must be ignored", offset, length)
	}
}
