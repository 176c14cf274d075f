package assign

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// solveBruteForce enumerates every permutation of {0,...,N-1} and returns
// the first one (in lexicographic order) achieving the maximum total
// profit. It is the reference oracle for cross-validating the other four
// solvers and is only practical for small N: spec.md documents ~12 as the
// implementation-defined ceiling, enforced here via bruteForceMaxN.
func solveBruteForce(m ProfitMatrix) (Assignment, error) {
	n := m.N()
	if n == 0 {
		return Assignment{}, nil
	}
	if n > bruteForceMaxN {
		return nil, fmt.Errorf("%w: N=%d exceeds brute-force ceiling of %d", ErrCapacity, n, bruteForceMaxN)
	}

	gen := combin.NewPermutationGenerator(n, n)
	best := make(Assignment, n)
	bestScore := -1.0
	perm := make([]int, n)
	found := false

	for gen.Next() {
		gen.Permutation(perm)
		score := 0.0
		for i, j := range perm {
			score += m[i][j]
		}
		if !found || score > bestScore {
			found = true
			bestScore = score
			copy(best, perm)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no permutation enumerated for N=%d", ErrInternalInvariant, n)
	}
	return best, nil
}
