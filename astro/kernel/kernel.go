package kernel

// Func evaluates a synchrotron kernel at x = ε/ε_c.
type Func func(x float64) float64

// MaxArg is the largest kernel argument that yields a non-zero value.
// Beyond it e^−x drops under the smallest normal float64.
const MaxArg = 700.0

func inDomain(x float64) bool {
	// NaN compares false and is rejected along with x ≤ 0.
	return x > 0 && x <= MaxArg
}

// Approx returns the closed-form approximation of R(x):
//
//	R(x) ≈ 1.808 x^{1/3} / sqrt(1 + 3.4 x^{2/3})
//	       · (1 + 2.21 x^{2/3} + 0.347 x^{4/3}) / (1 + 1.353 x^{2/3} + 0.217 x^{4/3})
//	       · e^{−x}
func Approx(x float64) float64 {
	if !inDomain(x) {
		return 0
	}

	x13 := cbrt(x)
	x23 := x13 * x13
	x43 := x23 * x23

	rise := 1.808 * x13 / sqrt(1+3.4*x23)
	shape := (1 + 2.21*x23 + 0.347*x43) / (1 + 1.353*x23 + 0.217*x43)

	return rise * shape * expNeg(x)
}

// Evaluate fills dst[i] = Approx(x[i]).
// dst and x must have equal length; dst may alias x.
func Evaluate(dst, x []float64) {
	EvaluateWith(Approx, dst, x)
}

// EvaluateWith fills dst[i] = f(x[i]).
// dst and x must have equal length; dst may alias x.
func EvaluateWith(f Func, dst, x []float64) {
	if len(dst) != len(x) {
		panic("kernel: dst and x must have same length")
	}
	for i, v := range x {
		dst[i] = f(v)
	}
}
