package assign

// BuildMatrix constructs a padded N×N ProfitMatrix from parallel driver and
// shipment lists, where N = max(len(drivers), len(shipments)). Real cells
// hold Score(shipment, driver); padding rows and columns (when drivers and
// shipments differ in count) are zero-filled, to be filtered back out by
// AssignmentCoordinator once a solver has run.
func BuildMatrix(drivers, shipments []string) ProfitMatrix {
	d, s := len(drivers), len(shipments)
	n := d
	if s > n {
		n = s
	}

	m := make(ProfitMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		if i >= d {
			continue
		}
		for j := 0; j < s; j++ {
			m[i][j] = Score(shipments[j], drivers[i])
		}
	}
	return m
}
