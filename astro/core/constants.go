package core

// Physical constants in Gaussian-cgs units (CODATA 2018).
const (
	// SpeedOfLight in cm s⁻¹.
	SpeedOfLight = 2.99792458e10
	// ElectronMass in g.
	ElectronMass = 9.1093837015e-28
	// Planck constant in erg s.
	Planck = 6.62607015e-27
	// ElementaryCharge in statC (esu).
	ElementaryCharge = 4.803204712570263e-10
	// ElectronRestEnergy mₑc² in erg.
	ElectronRestEnergy = ElectronMass * SpeedOfLight * SpeedOfLight
	// ComptonWavelength h/(mₑc) in cm.
	ComptonWavelength = Planck / (ElectronMass * SpeedOfLight)
	// CriticalField is the quantum critical magnetic field in G.
	CriticalField = 4.414e13
	// Megaparsec in cm.
	Megaparsec = 3.0856775814913673e24
)
