package analysis

import (
	"fmt"
	"math"

	"toy-solar/internal/consts"
	"toy-solar/pkg/device"
)

// DiodeParams are the lumped single-diode model parameters.
type DiodeParams struct {
	J0 float64 // Saturation current density (A/m^2); <= 0 means derive from stack doping
	N  float64 // Ideality factor; <= 0 means 1
}

// Saturation current heuristic: baseline J00 scaled inversely with the total
// stack doping, with a floor for nominally undoped stacks.
const (
	j00         = 1e-12 // A/m^2
	dopingFloor = 1e14  // m^-3
)

// DeriveJ0 estimates the saturation current density from the stack doping.
// Higher doping reduces J0.
func DeriveJ0(dev *device.Device) float64 {
	total := 0.0
	for _, l := range dev.Layers {
		total += math.Max(l.NaSI(), l.NdSI())
	}
	if total <= 0 {
		total = dopingFloor
	}
	return j00 * 1e24 / total
}

func thermalVoltage(temp float64) float64 {
	if temp <= 0 {
		temp = consts.KELVIN + 27.0
	}
	return consts.BOLTZMANN * temp / consts.CHARGE
}

// idealDiode is the explicit single-diode relation
// J(V) = J0*(exp(V/(n*Vt)) - 1) - Jph. Sign convention: current is negative
// in the photovoltaic quadrant and crosses zero at Voc.
type idealDiode struct {
	j0  float64
	n   float64
	vt  float64
	jph float64
}

func (d idealDiode) CurrentAt(v float64) float64 {
	return d.j0*(math.Exp(v/(d.n*d.vt))-1.0) - d.jph
}

// DefaultSweep builds a strictly increasing voltage sweep from slightly
// below zero to past the analytic open-circuit estimate for the given
// photocurrent and diode parameters.
func DefaultSweep(jph float64, params DiodeParams, temp float64, points int) []float64 {
	if points < 2 {
		points = 200
	}
	n := params.N
	if n <= 0 {
		n = 1
	}
	start := -0.05
	stop := 0.2
	if params.J0 > 0 && jph > 0 {
		vocEst := n * thermalVoltage(temp) * math.Log(jph/params.J0+1.0)
		if s := 1.15 * vocEst; s > stop {
			stop = s
		}
	}
	sweep := make([]float64, points)
	step := (stop - start) / float64(points-1)
	for i := range sweep {
		sweep[i] = start + float64(i)*step
	}
	return sweep
}

// JVSweep evaluates the diode equation over a voltage sweep and derives the
// performance metrics from the resulting curve.
type JVSweep struct {
	dev    *device.Device
	params DiodeParams
	jph    float64 // photogenerated current density (A/m^2)
	pin    float64 // incident optical power density (W/m^2)
	sweep  []float64
	solver CurrentSolver

	voltage []float64
	current []float64
	metrics Metrics
	solved  bool
}

// NewJVSweep creates a sweep analysis. jph comes from the optical solver,
// pin is the incident power density used for the efficiency.
func NewJVSweep(jph, pin float64, params DiodeParams, sweep []float64) *JVSweep {
	return &JVSweep{
		params: params,
		jph:    jph,
		pin:    pin,
		sweep:  sweep,
	}
}

func (a *JVSweep) Setup(dev *device.Device) error {
	if err := dev.Validate(); err != nil {
		return err
	}
	if a.jph < 0 {
		return fmt.Errorf("photocurrent must be non-negative, got %g A/m^2", a.jph)
	}
	if len(a.sweep) < 2 {
		return fmt.Errorf("voltage sweep needs at least 2 samples, got %d", len(a.sweep))
	}
	for i := 1; i < len(a.sweep); i++ {
		if a.sweep[i] <= a.sweep[i-1] {
			return fmt.Errorf("voltage sweep must be strictly increasing at index %d", i)
		}
	}
	if a.sweep[0] > 0 {
		return fmt.Errorf("voltage sweep must start at or below 0 V, got %g V", a.sweep[0])
	}

	if a.params.J0 <= 0 {
		a.params.J0 = DeriveJ0(dev)
	}
	if a.params.N <= 0 {
		a.params.N = 1
	}

	a.dev = dev
	a.solver = idealDiode{
		j0:  a.params.J0,
		n:   a.params.N,
		vt:  thermalVoltage(dev.Temp),
		jph: a.jph,
	}
	return nil
}

// Execute evaluates the curve and derives the metrics. On a metric error the
// curve arrays stay available for inspection but the analysis is not marked
// solved.
func (a *JVSweep) Execute() error {
	if a.solver == nil {
		return fmt.Errorf("analysis not set up")
	}

	a.voltage = make([]float64, len(a.sweep))
	a.current = make([]float64, len(a.sweep))
	for i, v := range a.sweep {
		a.voltage[i] = v
		a.current[i] = a.solver.CurrentAt(v)
	}

	m, err := DeriveMetrics(a.voltage, a.current, a.pin)
	if err != nil {
		return err
	}
	a.metrics = m
	a.solved = true
	return nil
}

// Curve returns the index-aligned voltage and current density arrays.
func (a *JVSweep) Curve() (v, j []float64) {
	return a.voltage, a.current
}

// Metrics returns the derived performance metrics; valid only after a
// successful Execute.
func (a *JVSweep) Metrics() Metrics { return a.metrics }

// Solved reports whether Execute completed including metric derivation.
func (a *JVSweep) Solved() bool { return a.solved }

// Params returns the effective diode parameters after Setup filled defaults.
func (a *JVSweep) Params() DiodeParams { return a.params }

// GetResults returns the named result arrays, scalars as single-element
// slices.
func (a *JVSweep) GetResults() map[string][]float64 {
	results := map[string][]float64{
		"voltage": a.voltage,
		"current": a.current,
	}
	if a.solved {
		results["jsc"] = []float64{a.metrics.Jsc}
		results["voc"] = []float64{a.metrics.Voc}
		results["ff"] = []float64{a.metrics.FF}
		results["efficiency"] = []float64{a.metrics.Efficiency}
	}
	return results
}
