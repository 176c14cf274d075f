package assign

import (
	"fmt"
	"math"
)

// ProfitMatrix is a square, row-major table of finite, non-negative profit
// values: ProfitMatrix[i][j] is the profit of assigning row i to column j.
// It is owned by the caller and passed by reference into solvers, which
// never mutate it directly (solvers that need a cost transform copy it).
type ProfitMatrix [][]float64

// N returns the side length of the matrix.
func (m ProfitMatrix) N() int {
	return len(m)
}

// Validate checks the shape and value invariants of spec.md §3: square,
// every row the same length as the matrix side, no NaN or ±Inf entry.
func (m ProfitMatrix) Validate() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrShape, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: entry [%d][%d] = %v", ErrDomain, i, j, v)
			}
		}
	}
	return nil
}

// max returns the largest entry in m, or 0 for an empty matrix or one with
// no positive entry.
func (m ProfitMatrix) max() float64 {
	best := 0.0
	for _, row := range m {
		for _, v := range row {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// Assignment is an integer sequence of length N where position i holds the
// column matched to row i. Every value lies in [0, N) and all values are
// distinct: it is a permutation of 0..N-1.
type Assignment []int

// Score returns the total profit of assignment a under matrix m.
func (a Assignment) Score(m ProfitMatrix) float64 {
	total := 0.0
	for i, j := range a {
		total += m[i][j]
	}
	return total
}

// Variant names one of the five interchangeable solvers.
type Variant int

const (
	// JonkerVolgenant is the default solver: successive shortest paths
	// with Dijkstra over vertex potentials, ~O(n^3).
	JonkerVolgenant Variant = iota
	// BellmanFord is successive shortest paths via Bellman-Ford on a
	// per-stage residual graph, ~O(n^4).
	BellmanFord
	// Classic is matrix-reduction Hungarian with exact arithmetic, ~O(n^4).
	Classic
	// KuhnMunkres runs Kuhn-Munkres over a bipartite graph primitive, ~O(n^3).
	KuhnMunkres
	// BruteForce enumerates all permutations; O(n!), reference oracle only.
	BruteForce
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case JonkerVolgenant:
		return "jv"
	case BellmanFord:
		return "bf"
	case Classic:
		return "classic"
	case KuhnMunkres:
		return "km"
	case BruteForce:
		return "brute"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// bruteForceMaxN is the implementation-defined ceiling past which
// BruteForce refuses to run rather than enumerate N! permutations.
const bruteForceMaxN = 12
