package consts

import "math"

const (
	CHARGE     = 1.602176634e-19 // Elementary charge (C)
	BOLTZMANN  = 1.380649e-23    // Boltzmann constant (J/K)
	PLANCK     = 6.62607015e-34  // Planck constant (J*s)
	LIGHTSPEED = 2.99792458e8    // Speed of light (m/s)
	KELVIN     = 273.15          // 0 degC in kelvin (K)

	// DBPrefix is the detailed-balance prefactor 2*pi*q*(k/h)^3/c^2 divided
	// by 1e4 to land in A/cm2/K3 units, about 1.0133e-8. Kept as a constant
	// expression over the fundamental constants so it cannot drift from them.
	DBPrefix = 2 * math.Pi * CHARGE *
		(BOLTZMANN / PLANCK) * (BOLTZMANN / PLANCK) * (BOLTZMANN / PLANCK) /
		(LIGHTSPEED * LIGHTSPEED) / 1e4
)
