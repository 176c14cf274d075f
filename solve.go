package assign

import "fmt"

// Solve dispatches to one of the five solver variants over matrix m,
// validating shape and finiteness first (spec.md §4, §7). Every variant
// returns assignments of equal total score on the same input; only
// BruteForce and Classic make any reproducibility promise beyond that
// (spec.md §6).
func Solve(m ProfitMatrix, variant Variant) (Assignment, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	switch variant {
	case JonkerVolgenant:
		return solveJonkerVolgenant(m)
	case BellmanFord:
		return solveBellmanFord(m)
	case Classic:
		return solveClassic(m)
	case KuhnMunkres:
		return solveKuhnMunkres(m)
	case BruteForce:
		return solveBruteForce(m)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, variant)
	}
}

// DriverAssignment is a (driver, shipment, score) triple: one edge of an
// optimal assignment, with the real-world names filled back in and the
// padding rows/columns already filtered out (spec.md §3, §4.8).
type DriverAssignment struct {
	Driver   string
	Shipment string
	Score    float64
}

// AssignmentCoordinator is the sole entry point spec.md §4.8 specifies for
// external callers: it builds the padded matrix, runs a solver, and filters
// the result back down to real driver/shipment pairs.
type AssignmentCoordinator struct {
	// Variant selects the solver; the zero value is JonkerVolgenant, the
	// documented default.
	Variant Variant
}

// Assign runs the coordinator's configured solver over drivers and
// shipments and returns one DriverAssignment per real driver/shipment pair.
// Drivers matched to a padding column (more drivers than shipments) are
// left out of the result.
func (c AssignmentCoordinator) Assign(drivers, shipments []string) ([]DriverAssignment, error) {
	matrix := BuildMatrix(drivers, shipments)
	assignment, err := Solve(matrix, c.Variant)
	if err != nil {
		return nil, err
	}

	d, s := len(drivers), len(shipments)
	result := make([]DriverAssignment, 0, d)
	for i := 0; i < d; i++ {
		j := assignment[i]
		if j >= s {
			continue
		}
		result = append(result, DriverAssignment{
			Driver:   drivers[i],
			Shipment: shipments[j],
			Score:    matrix[i][j],
		})
	}
	return result, nil
}

// Assign is the package-level convenience composition of BuildMatrix and
// Solve with the default (Jonker-Volgenant) solver, for callers that do not
// need to pick a variant (spec.md §6).
func Assign(drivers, shipments []string) ([]DriverAssignment, error) {
	var c AssignmentCoordinator
	return c.Assign(drivers, shipments)
}
