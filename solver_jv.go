package assign

import (
	"fmt"
	"math"
)

// solveJonkerVolgenant is the default solver: successive shortest paths
// computed by Dijkstra over maintained row/column potentials, so that every
// reduced cost stays non-negative and each stage runs in O(n^2) (spec.md
// §4.7). Representation is 1-indexed with column 0 a sentinel unassigned
// column, exactly as spec.md describes.
//
// Grounded on other_examples/6134be32_canonical-go-algo__assign-assign.go.go
// (canonical/go-algo's Assign package), whose optimalCost implements the
// same dummy-sentinel-column, partial-cost/potential, minSlack + trail
// structure this solver follows — generalized here from that file's generic
// Cost interface down to float64, and renamed to the driver/shipment domain.
func solveJonkerVolgenant(m ProfitMatrix) (Assignment, error) {
	n := m.N()
	if n == 0 {
		return Assignment{}, nil
	}

	maxProfit := m.max()
	cost := make([][]float64, n+1)
	for i := range cost {
		cost[i] = make([]float64, n+1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cost[i+1][j+1] = maxProfit - m[i][j]
		}
	}

	rowPot := make([]float64, n+1)
	colPot := make([]float64, n+1)
	colAssignment := make([]int, n+1) // colAssignment[j] = owning row; 0 = unassigned
	prev := make([]int, n+1)
	cheapest := make([]float64, n+1)
	visited := make([]bool, n+1)

	for r := 1; r <= n; r++ {
		colAssignment[0] = r
		cur := 0
		for j := range cheapest {
			cheapest[j] = math.Inf(1)
			visited[j] = false
		}

		for {
			visited[cur] = true
			owner := colAssignment[cur]

			delta := math.Inf(1)
			next := -1
			for j := 0; j <= n; j++ {
				if visited[j] {
					continue
				}
				rc := cost[owner][j] - rowPot[owner] - colPot[j]
				if rc < cheapest[j] {
					cheapest[j] = rc
					prev[j] = cur
				}
				if cheapest[j] < delta {
					delta = cheapest[j]
					next = j
				}
			}
			if next == -1 {
				return nil, fmt.Errorf("%w: no unvisited column reachable at row %d", ErrInternalInvariant, r)
			}

			for j := 0; j <= n; j++ {
				if visited[j] {
					rowPot[colAssignment[j]] += delta
					colPot[j] -= delta
				} else {
					cheapest[j] -= delta
				}
			}

			cur = next
			if colAssignment[cur] == 0 {
				break
			}
		}

		for cur != 0 {
			colAssignment[cur] = colAssignment[prev[cur]]
			cur = prev[cur]
		}
	}

	result := make(Assignment, n)
	for j := 1; j <= n; j++ {
		row := colAssignment[j]
		if row == 0 {
			return nil, fmt.Errorf("%w: column %d left unassigned after all rows processed", ErrInternalInvariant, j)
		}
		result[row-1] = j - 1
	}
	return result, nil
}
