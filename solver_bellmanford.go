package assign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// solveBellmanFord runs successive shortest paths over a freshly-built
// per-row residual graph (spec.md §4.5): N shipment nodes plus a virtual
// source and sink, with the shortest s->t path computed by gonum's
// Bellman-Ford rather than a hand-rolled one (see SPEC_FULL.md Domain
// Stack, grounded on the logistics min-cost-flow solver in
// other_examples/81ea1cee_..._solver.go.go, which assembles a graph and
// delegates the search the same way).
func solveBellmanFord(m ProfitMatrix) (Assignment, error) {
	n := m.N()
	if n == 0 {
		return Assignment{}, nil
	}

	maxProfit := m.max()
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = maxProfit - m[i][j]
		}
	}

	const unassigned = -1
	colOwner := make([]int, n)
	for j := range colOwner {
		colOwner[j] = unassigned
	}

	source, sink := int64(n), int64(n+1)

	for r := 0; r < n; r++ {
		g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for id := 0; id < n+2; id++ {
			g.AddNode(simple.Node(int64(id)))
		}
		for j := 0; j < n; j++ {
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(source), T: simple.Node(int64(j)), W: cost[r][j]})
		}
		for j := 0; j < n; j++ {
			if d := colOwner[j]; d != unassigned {
				for k := 0; k < n; k++ {
					if k == j {
						continue
					}
					g.SetWeightedEdge(simple.WeightedEdge{
						F: simple.Node(int64(j)),
						T: simple.Node(int64(k)),
						W: cost[d][k] - cost[d][j],
					})
				}
			} else {
				g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(j)), T: simple.Node(sink), W: 0})
			}
		}

		shortest, ok := path.BellmanFordFrom(simple.Node(source), g)
		if !ok {
			return nil, fmt.Errorf("%w: negative cycle detected building row %d residual graph", ErrInternalInvariant, r)
		}
		nodes, _ := shortest.To(sink)
		if len(nodes) < 2 {
			return nil, fmt.Errorf("%w: no augmenting path found for row %d", ErrInternalInvariant, r)
		}

		// nodes is [source, c1, c2, ..., ck, sink]. Apply the reassignment
		// chain in reverse order so each driver is read before being
		// overwritten (spec.md §4.5).
		columns := nodes[1 : len(nodes)-1]
		for idx := len(columns) - 1; idx >= 1; idx-- {
			colOwner[int(columns[idx].ID())] = colOwner[int(columns[idx-1].ID())]
		}
		colOwner[int(columns[0].ID())] = r
	}

	result := make(Assignment, n)
	for j, d := range colOwner {
		if d == unassigned {
			return nil, fmt.Errorf("%w: column %d left unassigned after all rows processed", ErrInternalInvariant, j)
		}
		result[d] = j
	}
	return result, nil
}
