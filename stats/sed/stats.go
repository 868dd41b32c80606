package sed

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/internal/quad"
)

// Stats holds summary statistics of a sampled SED.
type Stats struct {
	Points int
	// PeakIndex is the sample with the largest νFν.
	PeakIndex int
	// PeakFrequency in Hz and PeakFlux in erg cm⁻² s⁻¹, refined by a
	// parabola through the three samples around the peak in log-log space.
	PeakFrequency float64
	PeakFlux      float64
	// IntegratedFlux is ∫ Fν dν = ∫ νFν d ln ν in erg cm⁻² s⁻¹.
	IntegratedFlux float64
	// Centroid is the flux-weighted mean frequency in log space, in Hz.
	Centroid float64
	// Width is the extent in decades over which νFν stays above half its
	// peak.
	Width float64
	// LowIndex and HighIndex are the log-log slopes d ln νFν / d ln ν
	// between the two lowest and the two highest samples with non-zero
	// flux.
	LowIndex  float64
	HighIndex float64
}

// Calculate computes all statistics of the SED sampled at nu. An all-zero
// SED yields zero statistics with NaN indices.
func Calculate(nu, sed []float64) (Stats, error) {
	if err := validate(nu, sed); err != nil {
		return Stats{}, err
	}

	s := Stats{Points: len(nu), LowIndex: math.NaN(), HighIndex: math.NaN()}
	if len(nu) == 0 {
		return s, nil
	}

	s.PeakIndex = peakIndex(sed)
	if sed[s.PeakIndex] == 0 {
		return s, nil
	}

	s.PeakFrequency, s.PeakFlux = refinePeak(nu, sed, s.PeakIndex)
	s.IntegratedFlux = integrated(nu, sed)
	s.Centroid = centroid(nu, sed)
	s.Width = width(nu, sed, s.PeakIndex)
	s.LowIndex, s.HighIndex = edgeIndices(nu, sed)

	return s, nil
}

// Peak returns the refined peak frequency and flux.
func Peak(nu, sed []float64) (frequency, flux float64, err error) {
	if err := validate(nu, sed); err != nil {
		return 0, 0, err
	}
	if len(nu) == 0 {
		return 0, 0, nil
	}
	i := peakIndex(sed)
	if sed[i] == 0 {
		return 0, 0, nil
	}
	frequency, flux = refinePeak(nu, sed, i)
	return frequency, flux, nil
}

// IntegratedFlux returns ∫ νFν d ln ν with the trapezoid rule in ln ν.
func IntegratedFlux(nu, sed []float64) (float64, error) {
	if err := validate(nu, sed); err != nil {
		return 0, err
	}
	return integrated(nu, sed), nil
}

// Slope returns the log-log slope of the SED between nu1 and nu2, reading
// νFν at each end by linear interpolation in log-log space. It returns NaN
// if either end lies outside the sampled range or sits on zero flux.
func Slope(nu, sed []float64, nu1, nu2 float64) float64 {
	if validate(nu, sed) != nil || len(nu) < 2 || nu1 == nu2 {
		return math.NaN()
	}
	f1 := logInterp(nu, sed, nu1)
	f2 := logInterp(nu, sed, nu2)
	if !(f1 > 0) || !(f2 > 0) {
		return math.NaN()
	}
	return math.Log(f2/f1) / math.Log(nu2/nu1)
}

func validate(nu, sed []float64) error {
	if len(nu) != len(sed) {
		return fmt.Errorf("sed: %w: %d frequencies but %d flux values", core.ErrDomain, len(nu), len(sed))
	}
	if err := core.CheckPositive("nu", nu); err != nil {
		return fmt.Errorf("sed: %w", err)
	}
	for i := 1; i < len(nu); i++ {
		if !(nu[i] > nu[i-1]) {
			return fmt.Errorf("sed: %w: frequencies must ascend at index %d", core.ErrDomain, i)
		}
	}
	for i, v := range sed {
		if !(v >= 0) || math.IsInf(v, 1) {
			return fmt.Errorf("sed: %w: flux[%d] = %v must be non-negative and finite", core.ErrDomain, i, v)
		}
	}
	return nil
}

func peakIndex(sed []float64) int {
	best := 0
	for i, v := range sed {
		if v > sed[best] {
			best = i
		}
	}
	return best
}

// refinePeak fits ln F = a u² + b u + c through the samples around i, with
// u = ln ν, and returns the vertex when it is a maximum inside the bracket.
func refinePeak(nu, sed []float64, i int) (float64, float64) {
	if i == 0 || i == len(nu)-1 || sed[i-1] == 0 || sed[i+1] == 0 {
		return nu[i], sed[i]
	}

	u0, u1, u2 := math.Log(nu[i-1]), math.Log(nu[i]), math.Log(nu[i+1])
	y0, y1, y2 := math.Log(sed[i-1]), math.Log(sed[i]), math.Log(sed[i+1])

	d01 := (y1 - y0) / (u1 - u0)
	d12 := (y2 - y1) / (u2 - u1)
	a := (d12 - d01) / (u2 - u0)
	if !(a < 0) {
		return nu[i], sed[i]
	}
	b := d01 - a*(u0+u1)

	u := core.Clamp(-b/(2*a), u0, u2)
	y := y1 + (u-u1)*(d01+a*(u-u0))

	return math.Exp(u), math.Exp(y)
}

func integrated(nu, sed []float64) float64 {
	if len(nu) < 2 {
		return 0
	}
	u := make([]float64, len(nu))
	for i, v := range nu {
		u[i] = math.Log(v)
	}
	return quad.Trapezoid(u, sed)
}

// centroid is exp(∫ ln ν · νFν d ln ν / ∫ νFν d ln ν).
func centroid(nu, sed []float64) float64 {
	if len(nu) < 2 {
		return nu[0]
	}
	u := make([]float64, len(nu))
	uf := make([]float64, len(nu))
	for i, v := range nu {
		u[i] = math.Log(v)
		uf[i] = u[i] * sed[i]
	}
	w := quad.TrapezoidWeights(u)
	total := quad.Sum(w, sed)
	if total == 0 {
		return 0
	}
	return math.Exp(quad.Sum(w, uf) / total)
}

// width walks out from the peak to the half-maximum crossings, interpolated
// in log-log space, and returns their separation in decades.
func width(nu, sed []float64, peak int) float64 {
	half := sed[peak] / 2

	lo := math.Log10(nu[0])
	for i := peak; i >= 1; i-- {
		if sed[i-1] <= half && sed[i] > half {
			lo = crossing(nu[i-1], nu[i], sed[i-1], sed[i], half)
			break
		}
	}

	hi := math.Log10(nu[len(nu)-1])
	for i := peak; i < len(nu)-1; i++ {
		if sed[i+1] <= half && sed[i] > half {
			hi = crossing(nu[i], nu[i+1], sed[i], sed[i+1], half)
			break
		}
	}

	return hi - lo
}

// crossing returns log10 ν where the log-log segment reaches level.
func crossing(nu0, nu1, f0, f1, level float64) float64 {
	l0, l1 := math.Log10(nu0), math.Log10(nu1)
	if f0 <= 0 || f1 <= 0 {
		// A zero end has no logarithm; fall back to linear flux.
		return l0 + (level-f0)/(f1-f0)*(l1-l0)
	}
	t := math.Log(level/f0) / math.Log(f1/f0)
	return l0 + t*(l1-l0)
}

func edgeIndices(nu, sed []float64) (low, high float64) {
	low, high = math.NaN(), math.NaN()

	var pos []int
	for i, v := range sed {
		if v > 0 {
			pos = append(pos, i)
		}
	}
	if len(pos) < 2 {
		return low, high
	}

	a, b := pos[0], pos[1]
	low = math.Log(sed[b]/sed[a]) / math.Log(nu[b]/nu[a])
	a, b = pos[len(pos)-2], pos[len(pos)-1]
	high = math.Log(sed[b]/sed[a]) / math.Log(nu[b]/nu[a])

	return low, high
}

// logInterp reads νFν at x by linear interpolation in log-log space.
// Returns NaN outside [nu[0], nu[n−1]].
func logInterp(nu, sed []float64, x float64) float64 {
	n := len(nu)
	if !(x >= nu[0] && x <= nu[n-1]) {
		return math.NaN()
	}
	i := 1
	for i < n-1 && nu[i] < x {
		i++
	}
	f0, f1 := sed[i-1], sed[i]
	if x == nu[i] {
		return f1
	}
	if x == nu[i-1] {
		return f0
	}
	if f0 <= 0 || f1 <= 0 {
		return 0
	}
	t := math.Log(x/nu[i-1]) / math.Log(nu[i]/nu[i-1])
	return f0 * math.Exp(t*math.Log(f1/f0))
}
