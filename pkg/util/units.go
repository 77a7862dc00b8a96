package util

// Display-unit conversions. The core works in SI (A/m^2, m); the
// conventional reporting units for solar cells are mA/cm^2 and nm.

// ToMilliampPerCm2 converts a current density from A/m^2.
func ToMilliampPerCm2(j float64) float64 { return j * 0.1 }

// FromMilliampPerCm2 converts a current density to A/m^2.
func FromMilliampPerCm2(j float64) float64 { return j * 10 }

// ToNanometers converts a length from meters.
func ToNanometers(x float64) float64 { return x * 1e9 }

// FromNanometers converts a length to meters.
func FromNanometers(x float64) float64 { return x * 1e-9 }
