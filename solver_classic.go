package assign

import (
	"fmt"
	"math/big"
)

// solveClassic runs the classical matrix-reduction Hungarian algorithm: row
// and column reduction, a greedy zero-cost match, and repeated cover-search
// plus delta-adjustment until a full matching is found (spec.md §4.4).
//
// The algorithm repeatedly subtracts and adds the same scalar across rows
// and columns and then tests entries for exact equality with zero. Under
// float64 that drift breaks zero-recognition on large matrices (spec.md
// §8 S6); no exact-decimal or rational library appears anywhere in the
// retrieved corpus (see DESIGN.md), so this solver promotes the matrix to
// math/big.Rat, where repeated add/subtract of the same value is exact by
// construction.
func solveClassic(m ProfitMatrix) (Assignment, error) {
	n := m.N()
	if n == 0 {
		return Assignment{}, nil
	}

	maxProfit := m.max()
	cost := make([][]*big.Rat, n)
	for i := range cost {
		cost[i] = make([]*big.Rat, n)
		for j := range cost[i] {
			r := new(big.Rat).SetFloat64(maxProfit - m[i][j])
			if r == nil {
				return nil, fmt.Errorf("%w: non-finite entry at [%d][%d]", ErrDomain, i, j)
			}
			cost[i][j] = r
		}
	}

	rowReduceRat(cost, n)
	colReduceRat(cost, n)

	rowMatch := make([]int, n)
	colMatch := make([]int, n)

	// Each adjustment strictly reduces the sum of uncovered minima, a
	// Lyapunov quantity that cannot decrease forever on a finite exact
	// matrix (spec.md §4.4); the attempt cap below is a defensive
	// backstop, not a normal exit path.
	for attempt := 0; ; attempt++ {
		for i := range rowMatch {
			rowMatch[i] = -1
		}
		for j := range colMatch {
			colMatch[j] = -1
		}
		greedyMatchRat(cost, rowMatch, colMatch, n)

		matched := 0
		for _, j := range rowMatch {
			if j != -1 {
				matched++
			}
		}
		if matched == n {
			break
		}
		if attempt > n*n+n+8 {
			return nil, fmt.Errorf("%w: classic solver failed to converge after %d adjustments", ErrInternalInvariant, attempt)
		}

		rowReachable, colReachable := coverSearchRat(cost, rowMatch, colMatch, n)
		if err := adjustRat(cost, rowReachable, colReachable, n); err != nil {
			return nil, err
		}
	}

	return Assignment(rowMatch), nil
}

func rowReduceRat(cost [][]*big.Rat, n int) {
	for i := 0; i < n; i++ {
		min := cost[i][0]
		for j := 1; j < n; j++ {
			if cost[i][j].Cmp(min) < 0 {
				min = cost[i][j]
			}
		}
		for j := 0; j < n; j++ {
			cost[i][j] = new(big.Rat).Sub(cost[i][j], min)
		}
	}
}

func colReduceRat(cost [][]*big.Rat, n int) {
	for j := 0; j < n; j++ {
		min := cost[0][j]
		for i := 1; i < n; i++ {
			if cost[i][j].Cmp(min) < 0 {
				min = cost[i][j]
			}
		}
		for i := 0; i < n; i++ {
			cost[i][j] = new(big.Rat).Sub(cost[i][j], min)
		}
	}
}

// greedyMatchRat performs the greedy match pass of spec.md §4.4 step 4: for
// each unmatched row in order, pick the first zero-cost column still free.
func greedyMatchRat(cost [][]*big.Rat, rowMatch, colMatch []int, n int) {
	zero := new(big.Rat)
	for i := 0; i < n; i++ {
		if rowMatch[i] != -1 {
			continue
		}
		for j := 0; j < n; j++ {
			if colMatch[j] == -1 && cost[i][j].Cmp(zero) == 0 {
				rowMatch[i] = j
				colMatch[j] = i
				break
			}
		}
	}
}

// coverSearchRat marks rows/columns reachable from an unmatched row by
// alternating zero-cost edges (spec.md §4.4 step 6).
func coverSearchRat(cost [][]*big.Rat, rowMatch, colMatch []int, n int) (rowReachable, colReachable []bool) {
	zero := new(big.Rat)
	rowReachable = make([]bool, n)
	colReachable = make([]bool, n)
	for i := 0; i < n; i++ {
		if rowMatch[i] == -1 {
			rowReachable[i] = true
		}
	}
	for {
		changed := false
		for i := 0; i < n; i++ {
			if !rowReachable[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if !colReachable[j] && cost[i][j].Cmp(zero) == 0 {
					colReachable[j] = true
					changed = true
				}
			}
		}
		for j := 0; j < n; j++ {
			if colReachable[j] && colMatch[j] != -1 && !rowReachable[colMatch[j]] {
				rowReachable[colMatch[j]] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return rowReachable, colReachable
}

// adjustRat applies the delta shift of spec.md §4.4 step 7: subtract delta
// in reachable rows, add delta in reachable columns; a cell reachable both
// ways nets to unchanged.
func adjustRat(cost [][]*big.Rat, rowReachable, colReachable []bool, n int) error {
	var delta *big.Rat
	for i := 0; i < n; i++ {
		if !rowReachable[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if colReachable[j] {
				continue
			}
			if delta == nil || cost[i][j].Cmp(delta) < 0 {
				delta = cost[i][j]
			}
		}
	}
	if delta == nil {
		return fmt.Errorf("%w: no uncovered cell to compute adjustment delta", ErrInternalInvariant)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case rowReachable[i] && colReachable[j]:
				// net change is zero: the subtract and add cancel.
			case rowReachable[i]:
				cost[i][j] = new(big.Rat).Sub(cost[i][j], delta)
			case colReachable[j]:
				cost[i][j] = new(big.Rat).Add(cost[i][j], delta)
			}
		}
	}
	return nil
}
