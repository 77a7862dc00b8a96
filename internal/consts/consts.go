package consts

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // Kelvin temperature (K)

	EPSILON0 = 8.854187817e-12 // Vacuum permittivity (F/m)
	EV       = CHARGE          // 1 eV in joules
)
