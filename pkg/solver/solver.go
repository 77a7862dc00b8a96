// Package solver ties the optical and electrical models together: it
// computes the generation profile, runs the J-V sweep, and stores the
// complete result set on the device in a single step.
package solver

import (
	"toy-solar/pkg/analysis"
	"toy-solar/pkg/device"
	"toy-solar/pkg/optical"
)

// Options configure one solve. Zero values select the standard illumination,
// doping-derived diode parameters, and an automatic voltage sweep.
type Options struct {
	Illumination optical.Illumination
	Diode        analysis.DiodeParams
	Sweep        []float64 // nil picks DefaultSweep around the estimated Voc
	SweepPoints  int       // used when Sweep is nil; 0 means 200
}

// Solve runs the full pipeline against the device. On success the result is
// stored on the device and returned; on failure the device keeps its prior
// results, if any. Two solves must not run concurrently against the same
// device.
func Solve(dev *device.Device, opts Options) (*device.Result, error) {
	if err := dev.Validate(); err != nil {
		return nil, err
	}

	il := opts.Illumination
	if il == (optical.Illumination{}) {
		il = optical.Standard()
	}

	depth, g, jph, err := optical.Generation(dev, il)
	if err != nil {
		return nil, err
	}

	params := opts.Diode
	if params.J0 <= 0 {
		params.J0 = analysis.DeriveJ0(dev)
	}
	if params.N <= 0 {
		params.N = 1
	}

	sweep := opts.Sweep
	if sweep == nil {
		sweep = analysis.DefaultSweep(jph, params, dev.Temp, opts.SweepPoints)
	}

	jv := analysis.NewJVSweep(jph, il.PowerDensity, params, sweep)
	if err := jv.Setup(dev); err != nil {
		return nil, err
	}
	if err := jv.Execute(); err != nil {
		return nil, err
	}

	v, j := jv.Curve()
	m := jv.Metrics()
	result := &device.Result{
		Voltage:    v,
		Current:    j,
		Depth:      depth,
		Generation: g,
		Jsc:        m.Jsc,
		Voc:        m.Voc,
		FF:         m.FF,
		Efficiency: m.Efficiency,
		Pmax:       m.Pmax,
	}
	dev.StoreResults(result)
	return result, nil
}
