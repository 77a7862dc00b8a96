package device

// Result is one completed solve: the J-V sweep arrays, the generation
// profile with its depth grid, and the derived performance metrics. All
// quantities are SI: volts, A/m^2, meters, pairs/(m^3·s).
type Result struct {
	Voltage    []float64 // V
	Current    []float64 // A/m^2, index-aligned with Voltage
	Depth      []float64 // m, strictly increasing
	Generation []float64 // pairs/(m^3·s), index-aligned with Depth

	Jsc        float64 // Short-circuit current density magnitude (A/m^2)
	Voc        float64 // Open-circuit voltage (V)
	FF         float64 // Fill factor (0-1)
	Efficiency float64 // Power conversion efficiency (0-1)
	Pmax       float64 // Maximum output power density (W/m^2)
}

// Map exposes the result as named arrays, scalars as single-element slices.
// Keys: voltage, current, depth, generation, jsc, voc, ff, efficiency.
func (r *Result) Map() map[string][]float64 {
	return map[string][]float64{
		"voltage":    r.Voltage,
		"current":    r.Current,
		"depth":      r.Depth,
		"generation": r.Generation,
		"jsc":        {r.Jsc},
		"voc":        {r.Voc},
		"ff":         {r.FF},
		"efficiency": {r.Efficiency},
	}
}
