// Package core holds the shared foundation of the SED engine: Gaussian-cgs
// physical constants, the error taxonomy every package wraps, photon
// frequency/energy conversions and small numeric helpers.
//
// All quantities are plain float64 values in cgs units (Hz, cm, G, erg).
// Dimensionless photon energies are expressed in electron rest-mass units,
// ε = hν / mₑc².
package core
