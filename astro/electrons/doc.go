// Package electrons models the energy distribution n(γ) of the radiating
// electrons, in cm⁻³ per unit Lorentz factor.
//
// Shapes implement [Distribution]: point evaluation, the analytic
// self-absorption integrand γ² ∂/∂γ[n(γ)/γ²], and the finite support
// [γ_min, γ_max]. Three shapes ship with the package:
//
//   - [PowerLaw]:       n = k γ^−p
//   - [BrokenPowerLaw]: n = k γ^−p1 below γ_b, k γ_b^(p2−p1) γ^−p2 above
//   - [LogParabola]:    n = k (γ/γ0)^−(p + q log10(γ/γ0))
//
// Every shape is zero outside its support, so integrators never see values
// from beyond γ_min or γ_max.
//
// A [Spec] names a shape by its [Kind], carries its [Params] and a
// normalization; [Build] resolves the constant k from the normalization.
// New shapes are added by registering a [Factory]; the synchrotron
// integrators only depend on the [Distribution] interface.
package electrons
