package device

import "fmt"

// Default material parameters for a layer. Mobilities and lifetimes are not
// used by the ideal-diode solve but are part of the material description.
const (
	DefaultEg   = 1.5  // Bandgap (eV)
	DefaultChi  = 4.0  // Electron affinity (eV)
	DefaultEpsr = 10.0 // Relative permittivity
	DefaultMuN  = 1e-4 // Electron mobility (m^2/(V·s))
	DefaultMuP  = 1e-4 // Hole mobility (m^2/(V·s))
	DefaultTauN = 1e-6 // Electron lifetime (s)
	DefaultTauP = 1e-6 // Hole lifetime (s)
)

// Layer is one material slab of the cell stack. Thickness is in meters,
// doping densities in cm^-3 (semiconductor convention, see the SI accessors),
// energies in eV. A layer is built once and not modified afterwards.
type Layer struct {
	Name      string
	Thickness float64 // m
	Na        float64 // Acceptor density (cm^-3)
	Nd        float64 // Donor density (cm^-3)
	Eg        float64 // Bandgap (eV)
	Chi       float64 // Electron affinity (eV)
	Epsr      float64 // Relative permittivity

	MuN  float64 // m^2/(V·s)
	MuP  float64 // m^2/(V·s)
	TauN float64 // s
	TauP float64 // s
}

// NewLayer creates a layer with default material parameters. Callers adjust
// the exported fields before handing the layer to a Device.
func NewLayer(name string, thickness float64) Layer {
	return Layer{
		Name:      name,
		Thickness: thickness,
		Eg:        DefaultEg,
		Chi:       DefaultChi,
		Epsr:      DefaultEpsr,
		MuN:       DefaultMuN,
		MuP:       DefaultMuP,
		TauN:      DefaultTauN,
		TauP:      DefaultTauP,
	}
}

func (l Layer) Validate() error {
	if l.Thickness <= 0 {
		return fmt.Errorf("%w: %s: thickness must be positive, got %g m", ErrInvalidLayer, l.Name, l.Thickness)
	}
	if l.Eg <= 0 {
		return fmt.Errorf("%w: %s: bandgap must be positive, got %g eV", ErrInvalidLayer, l.Name, l.Eg)
	}
	if l.Na < 0 || l.Nd < 0 {
		return fmt.Errorf("%w: %s: doping densities must be non-negative", ErrInvalidLayer, l.Name)
	}
	if l.Epsr <= 0 {
		return fmt.Errorf("%w: %s: relative permittivity must be positive, got %g", ErrInvalidLayer, l.Name, l.Epsr)
	}
	return nil
}

// NaSI returns the acceptor density in m^-3.
func (l Layer) NaSI() float64 { return l.Na * 1e6 }

// NdSI returns the donor density in m^-3.
func (l Layer) NdSI() float64 { return l.Nd * 1e6 }

func (l Layer) IsNType() bool     { return l.Nd > l.Na }
func (l Layer) IsPType() bool     { return l.Na > l.Nd }
func (l Layer) IsIntrinsic() bool { return l.Na == 0 && l.Nd == 0 }

// IsAbsorber reports whether the layer acts as the photovoltaic absorber:
// intrinsic, or lightly doped with both species present.
func (l Layer) IsAbsorber() bool {
	return l.IsIntrinsic() || (l.Na > 0 && l.Nd > 0)
}

func (l Layer) String() string {
	return fmt.Sprintf("Layer(%s: %g m, Na=%g cm^-3, Nd=%g cm^-3, Eg=%g eV, chi=%g eV, epsr=%g)",
		l.Name, l.Thickness, l.Na, l.Nd, l.Eg, l.Chi, l.Epsr)
}
