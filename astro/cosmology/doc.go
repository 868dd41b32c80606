// Package cosmology converts between redshift and luminosity distance in a
// flat ΛCDM universe.
//
// Only the distance-redshift relation needed to place an emission region is
// provided. Radiation density is neglected, so Ω_Λ = 1 − Ω_m.
package cosmology
