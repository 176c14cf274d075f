package assign

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file exercises the cross-validation properties spec.md §8 names:
// every variant must agree on total score (within 1e-3 here, Classic
// included; Classic's exact score on an integer matrix is checked in
// solver_classic_test.go) even though they may break ties in the
// optimal assignment differently.

var allVariants = []Variant{JonkerVolgenant, BellmanFord, Classic, KuhnMunkres, BruteForce}
var nonBruteVariants = []Variant{JonkerVolgenant, BellmanFord, Classic, KuhnMunkres}

func assertIsPermutation(t *testing.T, a Assignment, n int) {
	t.Helper()
	require.Len(t, a, n)
	seen := make([]bool, n)
	for _, j := range a {
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, n)
		require.False(t, seen[j], "column %d matched twice", j)
		seen[j] = true
	}
}

type scenario struct {
	name  string
	m     ProfitMatrix
	score float64
}

func diagonalMatrix(n int, d float64) ProfitMatrix {
	m := make(ProfitMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = d
	}
	return m
}

var scenarios = []scenario{
	{"S1 3x3 known optimum", ProfitMatrix{{1, 2, 9}, {7, 3, 4}, {5, 8, 2}}, 24},
	{"S2 1x1 trivial", ProfitMatrix{{5}}, 5},
	{"S3 empty", ProfitMatrix{}, 0},
	{"S4 equal rows", ProfitMatrix{{3, 3, 3}, {3, 3, 3}, {3, 3, 3}}, 9},
	{"S5 diagonal optimum", diagonalMatrix(6, 10), 60},
}

func TestScenariosAgainstAllVariants(t *testing.T) {
	for _, sc := range scenarios {
		for _, v := range allVariants {
			t.Run(sc.name+"/"+v.String(), func(t *testing.T) {
				a, err := Solve(sc.m, v)
				require.NoError(t, err)
				assertIsPermutation(t, a, sc.m.N())
				assert.InDelta(t, sc.score, a.Score(sc.m), 1e-6)
			})
		}
	}
}

func TestS1ExactAssignment(t *testing.T) {
	// S1's optimum happens to be unique, so every variant must also agree
	// on the assignment itself, not only the score.
	m := ProfitMatrix{{1, 2, 9}, {7, 3, 4}, {5, 8, 2}}
	want := Assignment{2, 0, 1}
	for _, v := range allVariants {
		a, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		assert.Equalf(t, want, a, "variant %s", v)
	}
}

func TestS5IdentityPermutation(t *testing.T) {
	m := diagonalMatrix(5, 10)
	for _, v := range allVariants {
		a, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		for i, j := range a {
			assert.Equalf(t, i, j, "variant %s", v)
		}
	}
}

func randomMatrix(rng *rand.Rand, n int, max float64) ProfitMatrix {
	m := make(ProfitMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = rng.Float64() * max
		}
	}
	return m
}

func TestOracleEquivalenceSmallN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 8; n++ {
		m := randomMatrix(rng, n, 100)
		oracle, err := Solve(m, BruteForce)
		require.NoErrorf(t, err, "n=%d", n)
		oracleScore := oracle.Score(m)

		for _, v := range nonBruteVariants {
			a, err := Solve(m, v)
			require.NoErrorf(t, err, "n=%d variant=%s", n, v)
			assertIsPermutation(t, a, n)
			assert.InDeltaf(t, oracleScore, a.Score(m), 1e-3, "n=%d variant=%s", n, v)
		}
	}
}

func TestCrossAgreementUpToN100(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 2, 5, 10, 25, 50, 100} {
		m := randomMatrix(rng, n, 500)
		var scores []float64
		for _, v := range nonBruteVariants {
			a, err := Solve(m, v)
			require.NoErrorf(t, err, "n=%d variant=%s", n, v)
			assertIsPermutation(t, a, n)
			scores = append(scores, a.Score(m))
		}
		for i := 1; i < len(scores); i++ {
			assert.InDeltaf(t, scores[0], scores[i], 1e-3, "n=%d variant index %d disagreed", n, i)
		}
	}
}

func TestOffsetInvariance(t *testing.T) {
	m := ProfitMatrix{{1, 2, 9}, {7, 3, 4}, {5, 8, 2}}
	const c = 17.0
	shifted := make(ProfitMatrix, len(m))
	for i, row := range m {
		shifted[i] = make([]float64, len(row))
		for j, v := range row {
			shifted[i][j] = v + c
		}
	}

	for _, v := range allVariants {
		base, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		shiftedResult, err := Solve(shifted, v)
		require.NoErrorf(t, err, "variant %s", v)

		assert.InDeltaf(t, base.Score(m)+c*float64(m.N()), shiftedResult.Score(shifted), 1e-6, "variant %s", v)
	}
}

func TestPermuteRowsInvariance(t *testing.T) {
	m := ProfitMatrix{{1, 2, 9}, {7, 3, 4}, {5, 8, 2}}
	perm := []int{2, 0, 1} // row i of permuted comes from row perm[i] of m
	permuted := make(ProfitMatrix, len(m))
	for i := range permuted {
		permuted[i] = m[perm[i]]
	}

	for _, v := range allVariants {
		base, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		permutedResult, err := Solve(permuted, v)
		require.NoErrorf(t, err, "variant %s", v)
		assert.InDeltaf(t, base.Score(m), permutedResult.Score(permuted), 1e-6, "variant %s", v)
	}
}

func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randomMatrix(rng, 10, 50)
	for _, v := range allVariants {
		a1, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		a2, err := Solve(m, v)
		require.NoErrorf(t, err, "variant %s", v)
		assert.Equalf(t, a1, a2, "variant %s", v)
	}
}

func TestPaddingNeutrality(t *testing.T) {
	real := ProfitMatrix{{1, 2}, {7, 3}}
	padded := ProfitMatrix{
		{1, 2, 0},
		{7, 3, 0},
		{0, 0, 0},
	}

	for _, v := range allVariants {
		realResult, err := Solve(real, v)
		require.NoErrorf(t, err, "variant %s", v)
		paddedResult, err := Solve(padded, v)
		require.NoErrorf(t, err, "variant %s", v)

		for i := range real {
			if paddedResult[i] < len(real) {
				assert.Equalf(t, realResult[i], paddedResult[i], "variant %s row %d", v, i)
			}
		}
	}
}
