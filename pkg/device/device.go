package device

import (
	"fmt"
)

const (
	DefaultTemp       = 300.0 // K
	DefaultMeshPoints = 200
)

// Device is an ordered stack of layers, front (illuminated) side first, plus
// the ambient temperature and a slot for solve results. A device owns its
// layers and results exclusively; concurrent solves against the same device
// are not supported.
type Device struct {
	Name       string
	Layers     []Layer
	Temp       float64 // K
	MeshPoints int

	results *Result
}

// New creates a device with the default temperature and mesh. Layer order
// defines the stacking order from the illuminated surface inward.
func New(name string, layers []Layer) *Device {
	return &Device{
		Name:       name,
		Layers:     layers,
		Temp:       DefaultTemp,
		MeshPoints: DefaultMeshPoints,
	}
}

func (d *Device) Validate() error {
	if len(d.Layers) == 0 {
		return fmt.Errorf("%w: %s: layer stack is empty", ErrInvalidDevice, d.Name)
	}
	if d.Temp <= 0 {
		return fmt.Errorf("%w: %s: temperature must be positive, got %g K", ErrInvalidDevice, d.Name, d.Temp)
	}
	if d.MeshPoints < 2 {
		return fmt.Errorf("%w: %s: mesh needs at least 2 points, got %d", ErrInvalidDevice, d.Name, d.MeshPoints)
	}
	seen := make(map[string]bool, len(d.Layers))
	for _, l := range d.Layers {
		if err := l.Validate(); err != nil {
			return err
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: %s: duplicate layer name %q", ErrInvalidDevice, d.Name, l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}

// CheckStackOrder returns advisory warnings when the stack deviates from the
// conventional ETL / absorber / HTL arrangement. The solve proceeds anyway so
// unusual stacks stay explorable.
func (d *Device) CheckStackOrder() []string {
	if len(d.Layers) == 0 {
		return nil
	}
	var warnings []string
	if !d.Layers[0].IsNType() {
		warnings = append(warnings, "first layer does not appear to be n-type; expected electron transport layer (ETL)")
	}
	if !d.Layers[len(d.Layers)-1].IsPType() {
		warnings = append(warnings, "last layer does not appear to be p-type; expected hole transport layer (HTL)")
	}
	if len(d.Layers) > 2 {
		found := false
		for _, l := range d.Layers[1 : len(d.Layers)-1] {
			if l.IsAbsorber() {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, "no intrinsic or lightly doped absorber layer found between transport layers")
		}
	}
	return warnings
}

func (d *Device) TotalThickness() float64 {
	total := 0.0
	for _, l := range d.Layers {
		total += l.Thickness
	}
	return total
}

// Interfaces returns the cumulative depth of each layer's back boundary, in
// meters from the front surface. The last entry equals TotalThickness.
func (d *Device) Interfaces() []float64 {
	pos := 0.0
	out := make([]float64, len(d.Layers))
	for i, l := range d.Layers {
		pos += l.Thickness
		out[i] = pos
	}
	return out
}

// Mesh builds a uniform depth grid across the stack, front surface to back
// surface inclusive, with MeshPoints samples.
func (d *Device) Mesh() []float64 {
	n := d.MeshPoints
	if n < 2 {
		n = DefaultMeshPoints
	}
	total := d.TotalThickness()
	mesh := make([]float64, n)
	step := total / float64(n-1)
	for i := range mesh {
		mesh[i] = float64(i) * step
	}
	mesh[n-1] = total
	return mesh
}

// HasResults reports whether a solve has completed against this device.
func (d *Device) HasResults() bool { return d.results != nil }

// Results returns the last completed solve, or nil before the first
// successful solve. The returned record is frozen until the next solve.
func (d *Device) Results() *Result { return d.results }

// StoreResults installs a completed result set in a single assignment. A
// failed solve never calls this, so prior results survive failures.
func (d *Device) StoreResults(r *Result) { d.results = r }
