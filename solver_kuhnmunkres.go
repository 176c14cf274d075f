package assign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// solveKuhnMunkres builds the weighted undirected bipartite graph spec.md
// §4.6 describes — N driver nodes 0..N-1 and N shipment nodes N..2N-1, edge
// (i, N+j) weighted -profit[i][j] since the matching primitive minimizes —
// using gonum's graph/simple, then hands the assembled graph to a
// minimum-weight-perfect-matching primitive and unpacks the result. The
// primitive itself (bipartiteMatcher, below) is the Kuhn-Munkres labeling
// algorithm adapted from the teacher package: committed-worker/committed-job
// alternating trees over per-column slack, exactly the "generic
// weighted-bipartite-matching primitive" spec.md §4.6 calls a black box.
func solveKuhnMunkres(m ProfitMatrix) (Assignment, error) {
	n := m.N()
	if n == 0 {
		return Assignment{}, nil
	}

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for id := 0; id < 2*n; id++ {
		g.AddNode(simple.Node(int64(id)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(i)),
				T: simple.Node(int64(n + j)),
				W: -m[i][j],
			})
		}
	}

	cost := make([][]float64, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			e := g.WeightedEdge(int64(i), int64(n+j))
			if e == nil {
				return nil, fmt.Errorf("%w: missing bipartite edge (%d,%d)", ErrInternalInvariant, i, n+j)
			}
			cost[i][j] = e.Weight()
		}
	}

	matcher := newBipartiteMatcher(cost)
	matching := matcher.execute()

	result := make(Assignment, n)
	for driver, shipment := range matching {
		if shipment < 0 || shipment >= n {
			return nil, fmt.Errorf("%w: driver %d matched to invalid shipment %d", ErrInternalInvariant, driver, shipment)
		}
		result[driver] = shipment
	}
	return result, nil
}

// bipartiteMatcher finds a minimum-weight perfect matching on a square cost
// matrix via Kuhn-Munkres labeling: zero labels for drivers, per-shipment
// labels at the minimum incident cost, a greedy zero-slack match, then
// repeated phases that grow an alternating tree of committed drivers and
// shipments, tightening labels by the minimum slack until an augmenting
// path reaches an unmatched shipment.
type bipartiteMatcher struct {
	cost                            [][]float64
	dim                             int
	labelByDriver, labelByShipment  []float64
	minSlackDriverByShipment        []int
	minSlackValueByShipment         []float64
	matchShipmentByDriver           []int
	matchDriverByShipment           []int
	parentDriverByCommittedShipment []int
	committedDrivers                []bool
}

func newBipartiteMatcher(cost [][]float64) *bipartiteMatcher {
	dim := len(cost)
	b := &bipartiteMatcher{
		cost:                             cost,
		dim:                              dim,
		labelByDriver:                    make([]float64, dim),
		labelByShipment:                  make([]float64, dim),
		minSlackDriverByShipment:         make([]int, dim),
		minSlackValueByShipment:          make([]float64, dim),
		matchShipmentByDriver:            make([]int, dim),
		matchDriverByShipment:            make([]int, dim),
		parentDriverByCommittedShipment:  make([]int, dim),
		committedDrivers:                 make([]bool, dim),
	}
	for i := range b.matchShipmentByDriver {
		b.matchShipmentByDriver[i] = -1
		b.matchDriverByShipment[i] = -1
	}
	return b
}

func (b *bipartiteMatcher) execute() []int {
	b.computeInitialLabels()
	b.greedyMatch()

	for driver := b.firstUnmatchedDriver(); driver < b.dim; driver = b.firstUnmatchedDriver() {
		b.initializePhase(driver)
		b.runPhase()
	}
	return b.matchShipmentByDriver
}

func (b *bipartiteMatcher) computeInitialLabels() {
	for j := range b.labelByShipment {
		b.labelByShipment[j] = math.Inf(1)
	}
	for i := 0; i < b.dim; i++ {
		for j := 0; j < b.dim; j++ {
			if b.cost[i][j] < b.labelByShipment[j] {
				b.labelByShipment[j] = b.cost[i][j]
			}
		}
	}
}

func (b *bipartiteMatcher) greedyMatch() {
	for i := 0; i < b.dim; i++ {
		for j := 0; j < b.dim; j++ {
			if b.matchShipmentByDriver[i] == -1 &&
				b.matchDriverByShipment[j] == -1 &&
				b.cost[i][j]-b.labelByDriver[i]-b.labelByShipment[j] == 0 {
				b.match(i, j)
			}
		}
	}
}

func (b *bipartiteMatcher) firstUnmatchedDriver() int {
	for i, j := range b.matchShipmentByDriver {
		if j == -1 {
			return i
		}
	}
	return b.dim
}

func (b *bipartiteMatcher) initializePhase(root int) {
	for i := range b.committedDrivers {
		b.committedDrivers[i] = false
	}
	for j := range b.parentDriverByCommittedShipment {
		b.parentDriverByCommittedShipment[j] = -1
	}
	b.committedDrivers[root] = true
	for j := 0; j < b.dim; j++ {
		b.minSlackValueByShipment[j] = b.cost[root][j] - b.labelByDriver[root] - b.labelByShipment[j]
		b.minSlackDriverByShipment[j] = root
	}
}

func (b *bipartiteMatcher) runPhase() {
	for {
		shipment, driver, slack := -1, -1, math.Inf(1)
		for j := 0; j < b.dim; j++ {
			if b.parentDriverByCommittedShipment[j] == -1 && b.minSlackValueByShipment[j] < slack {
				slack = b.minSlackValueByShipment[j]
				driver = b.minSlackDriverByShipment[j]
				shipment = j
			}
		}
		if slack > 0 {
			b.tightenLabels(slack)
		}
		b.parentDriverByCommittedShipment[shipment] = driver

		if b.matchDriverByShipment[shipment] == -1 {
			b.augment(shipment)
			return
		}
		owner := b.matchDriverByShipment[shipment]
		b.committedDrivers[owner] = true
		for j := 0; j < b.dim; j++ {
			if b.parentDriverByCommittedShipment[j] == -1 {
				s := b.cost[owner][j] - b.labelByDriver[owner] - b.labelByShipment[j]
				if s < b.minSlackValueByShipment[j] {
					b.minSlackValueByShipment[j] = s
					b.minSlackDriverByShipment[j] = owner
				}
			}
		}
	}
}

func (b *bipartiteMatcher) augment(shipment int) {
	for {
		driver := b.parentDriverByCommittedShipment[shipment]
		prevShipment := b.matchShipmentByDriver[driver]
		b.match(driver, shipment)
		if prevShipment == -1 {
			return
		}
		shipment = prevShipment
	}
}

func (b *bipartiteMatcher) tightenLabels(slack float64) {
	for i := 0; i < b.dim; i++ {
		if b.committedDrivers[i] {
			b.labelByDriver[i] += slack
		}
	}
	for j := 0; j < b.dim; j++ {
		if b.parentDriverByCommittedShipment[j] != -1 {
			b.labelByShipment[j] -= slack
		} else {
			b.minSlackValueByShipment[j] -= slack
		}
	}
}

func (b *bipartiteMatcher) match(driver, shipment int) {
	b.matchShipmentByDriver[driver] = shipment
	b.matchDriverByShipment[shipment] = driver
}
