package analysis

import (
	"fmt"
)

// Metrics are the standard photovoltaic performance figures derived from a
// J-V curve.
type Metrics struct {
	Jsc        float64 // Short-circuit current density magnitude (A/m^2)
	Voc        float64 // Open-circuit voltage (V)
	FF         float64 // Fill factor (0-1)
	Efficiency float64 // Power conversion efficiency (0-1)
	Pmax       float64 // Maximum output power density (W/m^2)
	Vmp        float64 // Voltage at maximum power (V)
	Jmp        float64 // Current density at maximum power (A/m^2)
}

// DeriveMetrics extracts Jsc, Voc, FF and efficiency from an index-aligned
// J-V curve. The record is fully populated or the call fails with exactly
// one error kind.
//
// Conventions: Voc must be strictly positive; a curve that only crosses zero
// at or below 0 V (the dark curve at zero photocurrent does) reports
// ErrNoZeroCrossing.
func DeriveMetrics(v, j []float64, pin float64) (Metrics, error) {
	if len(v) != len(j) || len(v) < 2 {
		return Metrics{}, fmt.Errorf("curve arrays must be index-aligned with at least 2 samples")
	}

	voc, ok := zeroCrossing(v, j)
	if !ok || voc <= 0 {
		return Metrics{}, fmt.Errorf("%w: sweep [%g, %g] V", ErrNoZeroCrossing, v[0], v[len(v)-1])
	}

	jsc := -interpolateAt(v, j, 0)

	if voc*jsc <= 0 {
		return Metrics{}, fmt.Errorf("%w: Voc=%g V, Jsc=%g A/m^2", ErrDegenerateCurve, voc, jsc)
	}

	// Maximum power point over the photovoltaic quadrant. Output power is
	// -V*J since the terminal current is negative there.
	pmax, vmp, jmp := 0.0, 0.0, 0.0
	for i := range v {
		if v[i] <= 0 || v[i] >= voc {
			continue
		}
		if p := -v[i] * j[i]; p > pmax {
			pmax, vmp, jmp = p, v[i], j[i]
		}
	}
	if pmax <= 0 {
		return Metrics{}, fmt.Errorf("%w: no positive power in 0 < V < Voc", ErrDegenerateCurve)
	}

	if pin <= 0 {
		return Metrics{}, fmt.Errorf("%w: incident power density %g W/m^2", ErrMissingIrradiance, pin)
	}

	return Metrics{
		Jsc:        jsc,
		Voc:        voc,
		FF:         pmax / (voc * jsc),
		Efficiency: pmax / pin,
		Pmax:       pmax,
		Vmp:        vmp,
		Jmp:        jmp,
	}, nil
}

// zeroCrossing locates the voltage where j crosses from negative to
// non-negative, linearly interpolating between the bracketing samples.
func zeroCrossing(v, j []float64) (float64, bool) {
	for i := 0; i < len(j)-1; i++ {
		if j[i] < 0 && j[i+1] >= 0 {
			if j[i+1] == j[i] {
				return v[i], true
			}
			return v[i] + (0-j[i])*(v[i+1]-v[i])/(j[i+1]-j[i]), true
		}
		if j[i] == 0 && j[i+1] > 0 {
			return v[i], true
		}
	}
	return 0, false
}

// interpolateAt evaluates the sampled curve at voltage x, linearly between
// the bracketing samples. x must lie within the sweep domain.
func interpolateAt(v, j []float64, x float64) float64 {
	if x <= v[0] {
		return j[0]
	}
	for i := 0; i < len(v)-1; i++ {
		if x <= v[i+1] {
			t := (x - v[i]) / (v[i+1] - v[i])
			return j[i] + t*(j[i+1]-j[i])
		}
	}
	return j[len(j)-1]
}
