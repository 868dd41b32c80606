package cosmology

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/astro/core"
)

const (
	// distanceIntervals is the Simpson interval count of the comoving
	// distance integral.
	distanceIntervals = 1000
	// maxRedshift bounds the inverse search.
	maxRedshift = 1000.0
	bisectIters = 200
	speedKmS    = core.SpeedOfLight / 1e5
)

// FlatLambdaCDM is a flat universe with matter and a cosmological constant.
type FlatLambdaCDM struct {
	// H0 is the Hubble constant in km s⁻¹ Mpc⁻¹.
	H0 float64 `yaml:"h0" json:"h0"`
	// Om0 is the present-day matter density parameter.
	Om0 float64 `yaml:"om0" json:"om0"`
}

// Planck15 holds the Planck 2015 parameters.
var Planck15 = FlatLambdaCDM{H0: 67.74, Om0: 0.3075}

// Validate reports an error wrapping core.ErrConfiguration for a
// non-physical parameter set.
func (c FlatLambdaCDM) Validate() error {
	if !(c.H0 > 0) || math.IsInf(c.H0, 1) {
		return fmt.Errorf("cosmology: %w: H0 = %v must be positive and finite", core.ErrConfiguration, c.H0)
	}
	if !(c.Om0 >= 0 && c.Om0 <= 1) {
		return fmt.Errorf("cosmology: %w: Om0 = %v must lie in [0, 1]", core.ErrConfiguration, c.Om0)
	}
	return nil
}

// HubbleDistance returns c/H0 in cm.
func (c FlatLambdaCDM) HubbleDistance() float64 {
	return speedKmS / c.H0 * core.Megaparsec
}

// E returns the dimensionless Hubble parameter H(z)/H0.
func (c FlatLambdaCDM) E(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(c.Om0*zp1*zp1*zp1 + 1 - c.Om0)
}

// ComovingDistance returns the line-of-sight comoving distance to z in cm.
// Non-positive z yields 0.
func (c FlatLambdaCDM) ComovingDistance(z float64) float64 {
	if !(z > 0) {
		return 0
	}

	h := z / distanceIntervals
	sum := 1/c.E(0) + 1/c.E(z)
	for i := 1; i < distanceIntervals; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4
		}
		sum += w / c.E(float64(i)*h)
	}

	return c.HubbleDistance() * sum * h / 3
}

// LuminosityDistance returns d_L = (1+z)·D_C in cm.
func (c FlatLambdaCDM) LuminosityDistance(z float64) float64 {
	return (1 + z) * c.ComovingDistance(z)
}

// RedshiftAtDistance inverts LuminosityDistance by bisection.
// Returns an error wrapping core.ErrDomain for a non-positive distance or
// one beyond z = 1000.
func (c FlatLambdaCDM) RedshiftAtDistance(d float64) (float64, error) {
	if !(d > 0) || math.IsInf(d, 1) {
		return 0, fmt.Errorf("cosmology: %w: distance %v must be positive and finite", core.ErrDomain, d)
	}
	if d > c.LuminosityDistance(maxRedshift) {
		return 0, fmt.Errorf("cosmology: %w: distance %v lies beyond z = %v", core.ErrDomain, d, maxRedshift)
	}

	lo, hi := 0.0, maxRedshift
	for range bisectIters {
		mid := 0.5 * (lo + hi)
		if c.LuminosityDistance(mid) < d {
			lo = mid
		} else {
			hi = mid
		}
		if core.NearlyEqual(lo, hi, 1e-15) {
			break
		}
	}

	return 0.5 * (lo + hi), nil
}
