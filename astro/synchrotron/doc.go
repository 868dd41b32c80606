// Package synchrotron computes the synchrotron spectral energy distribution
// of the electrons in an emission region, optionally self-absorbed.
//
// The emissivity of a blob-frame photon energy ε′ (in units of mₑc²) is
//
//	ε′ j(ε′) = √3 e³ B ε′ / h · ∫ n(γ) R(x) dγ,   x = ε′ / ε_c(γ, B)
//
// and the self-absorption coefficient reuses the same kernel against the
// distribution's γ² ∂/∂γ[n/γ²] moment:
//
//	κ(ε′) = −1/(8π mₑ ε′²) (λ_c/c)³ · √3 e³ B / h · ∫ γ² ∂γ(n/γ²) R(x) dγ
//
// Both integrals use the trapezoid rule on the blob's log-spaced γ grid. The
// per-node weights and distribution samples are computed once in [New]; an
// evaluation only scales the grid, evaluates the kernel, and takes two dot
// products.
//
// The observed νFν follows from boosting by δ_D⁴ and diluting over 4π d_L²,
// with ε′ = (1+z) ε / δ_D. With self-absorption enabled the flux is
// multiplied by the uniform-sphere escape factor [Attenuation] of the
// optical depth τ = 2 κ R_b.
//
// Evaluations are pure: a [Synchrotron] may be shared between goroutines,
// and [WithWorkers] splits the frequency grid across goroutines with
// results identical to a sequential run.
package synchrotron
