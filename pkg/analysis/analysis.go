package analysis

import (
	"toy-solar/pkg/device"
)

// Analysis is one simulation pass against a device.
type Analysis interface {
	Setup(dev *device.Device) error
	Execute() error
	GetResults() map[string][]float64
}

// CurrentSolver computes the terminal current density at a single bias
// point. The ideal diode is explicit; an extended model with series
// resistance becomes implicit and would plug a Newton or bisection solver in
// behind the same contract without touching the sweep loop.
type CurrentSolver interface {
	CurrentAt(v float64) float64
}
