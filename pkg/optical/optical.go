// Package optical computes the photogeneration profile of a layer stack
// under illumination. Light is attenuated by Beer-Lambert absorption layer
// by layer; interference and wavelength dependence are not modeled.
package optical

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"toy-solar/internal/consts"
	"toy-solar/pkg/device"
)

// Alpha0 is the absorption scale of the bandgap heuristic, in m^-1·eV:
// alpha = Alpha0 / Eg for photon energies at or above the gap.
const Alpha0 = 1e7

// egFloor keeps the heuristic bounded for very narrow gaps.
const egFloor = 0.5

// Illumination describes the incident light as a single representative
// photon energy carrying the full power density.
type Illumination struct {
	PowerDensity float64 // W/m^2
	PhotonEnergy float64 // eV
	Coupling     float64 // fraction of the raw photon flux coupled into the stack
}

// DefaultCoupling reproduces realistic short-circuit currents from the flat
// spectrum approximation.
const DefaultCoupling = 0.33

// Standard approximates unconcentrated sunlight: 1000 W/m^2 at a 2.0 eV
// representative photon energy, above the gap of common absorbers.
func Standard() Illumination {
	return Illumination{PowerDensity: 1000.0, PhotonEnergy: 2.0, Coupling: DefaultCoupling}
}

func (il Illumination) Validate() error {
	if il.PowerDensity < 0 {
		return fmt.Errorf("illumination: power density must be non-negative, got %g W/m^2", il.PowerDensity)
	}
	if il.PhotonEnergy <= 0 {
		return fmt.Errorf("illumination: photon energy must be positive, got %g eV", il.PhotonEnergy)
	}
	return nil
}

// Flux returns the coupled photon flux entering the stack, in
// photons/(m^2·s).
func (il Illumination) Flux() float64 {
	coupling := il.Coupling
	if coupling == 0 {
		coupling = DefaultCoupling
	}
	return il.PowerDensity * coupling / (il.PhotonEnergy * consts.EV)
}

// AbsorptionCoefficient returns alpha in m^-1 for one layer. Photons below
// the gap are not absorbed.
func AbsorptionCoefficient(l device.Layer, photonEnergy float64) float64 {
	if photonEnergy < l.Eg {
		return 0
	}
	eg := l.Eg
	if eg < egFloor {
		eg = egFloor
	}
	return Alpha0 / eg
}

// Generation computes the depth grid, the generation rate profile G(x) in
// pairs/(m^3·s) assuming unity internal quantum efficiency, and the
// integrated photocurrent density Jph = q * integral of G over the absorber
// layers, in A/m^2.
//
// The intensity marches through the stack front to back: within each layer
// I(x) = I_in * exp(-alpha * x_local), and the attenuated intensity exiting
// a layer feeds the next one. G(x) = alpha * I(x), so the profile steps at
// layer boundaries where alpha changes.
func Generation(dev *device.Device, il Illumination) (depth, g []float64, jph float64, err error) {
	if err := il.Validate(); err != nil {
		return nil, nil, 0, err
	}
	if len(dev.Layers) == 0 {
		return nil, nil, 0, fmt.Errorf("%w: %s: layer stack is empty", device.ErrInvalidDevice, dev.Name)
	}
	if dev.TotalThickness() <= 0 {
		return nil, nil, 0, fmt.Errorf("%w: %s: stack has zero total thickness", device.ErrInvalidDevice, dev.Name)
	}

	// Per-layer absorption coefficient and entry intensity. Zero-thickness
	// layers pass the intensity through unchanged.
	alpha := make([]float64, len(dev.Layers))
	entry := make([]float64, len(dev.Layers))
	intensity := il.Flux()
	for i, l := range dev.Layers {
		alpha[i] = AbsorptionCoefficient(l, il.PhotonEnergy)
		entry[i] = intensity
		intensity *= math.Exp(-alpha[i] * l.Thickness)
	}

	depth = dev.Mesh()
	g = make([]float64, len(depth))
	gAbs := make([]float64, len(depth))

	starts := make([]float64, len(dev.Layers))
	ends := dev.Interfaces()
	for i := 1; i < len(dev.Layers); i++ {
		starts[i] = ends[i-1]
	}

	li := 0
	for k, x := range depth {
		// Advance to the layer containing x. Points exactly on a boundary
		// belong to the deeper layer; the back surface stays in the last one.
		for li < len(dev.Layers)-1 && x >= ends[li] {
			li++
		}
		g[k] = alpha[li] * entry[li] * math.Exp(-alpha[li]*(x-starts[li]))
		if dev.Layers[li].IsAbsorber() {
			gAbs[k] = g[k]
		}
	}

	jph = consts.CHARGE * integrate.Trapezoidal(depth, gAbs)
	return depth, g, jph, nil
}
