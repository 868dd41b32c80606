// Package region describes the spherical emission region ("blob") whose
// electrons radiate: radius, redshift, Doppler and bulk Lorentz factors,
// magnetic field, and the electron distribution it contains.
//
// A [Blob] is validated once at construction and read-only afterwards. It
// also owns the log-spaced Lorentz factor grid the radiative integrators
// sample the distribution on.
package region
