// Package reference reads sampled reference spectra and measures how far a
// computed spectrum deviates from them.
//
// Reference files hold two columns, frequency in Hz and νFν in
// erg cm⁻² s⁻¹, separated by a comma or whitespace. Blank lines and lines
// starting with '#' are ignored.
//
// # Usage
//
//	ref, _ := reference.Load("synch_ssa_pwl.txt")
//	got, _ := synch.SEDFlux(ref.Nu)
//	ok, _ := reference.WithinBounds(ref.Nu, ref.SED, got, 0, 0.05,
//	    reference.Band{Min: 1e11, Max: 1e19})
//
// The deviation of a point is |1 − got/ref|.
package reference
