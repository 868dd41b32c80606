// Package sed computes summary statistics of a sampled spectral energy
// distribution νFν(ν): peak position, integrated flux, width, and spectral
// indices.
//
// Frequencies must be positive and ascending. Statistics are computed in
// log-log space, where synchrotron spectra are close to piecewise linear.
package sed
