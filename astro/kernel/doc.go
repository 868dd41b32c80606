// Package kernel evaluates the pitch-angle-averaged single-electron
// synchrotron kernel R(x), where x = ε/ε_c is the photon energy in units of
// the electron's critical energy ε_c = (3/2)(B/B_cr)γ².
//
// Three evaluators share the [Func] signature:
//
//   - [Approx]:    closed-form fit of Aharonian, Kelner & Prosekin (2010),
//     within 0.2% of the exact kernel; the default and the fastest
//   - [Exact]:     the modified-Bessel-function expression, integrated
//     numerically on every call; a reference, not for hot loops
//   - [Tabulated]: log-log Hermite table of [Exact] built once on first use
//
// All evaluators return 0 for arguments outside (0, [MaxArg]], including
// NaN and ±Inf, so integrands never pick up NaN or Inf from the kernel.
//
// Building with the fastmath tag swaps the elementary functions of [Approx]
// for the approximations of github.com/meko-christian/algo-approx.
package kernel
