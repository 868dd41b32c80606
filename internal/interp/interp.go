// Package interp provides the interpolation used by tabulated kernels.
package interp

import "math"

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Table holds samples of a smooth function on a uniform grid
// u_i = start + i·step and interpolates between them with Hermite4.
type Table struct {
	start float64
	step  float64
	y     []float64
}

// NewTable wraps samples y taken at start, start+step, ... .
// It panics if fewer than two samples are given or step is not positive.
func NewTable(start, step float64, y []float64) *Table {
	if len(y) < 2 {
		panic("interp: table needs at least two samples")
	}
	if !(step > 0) {
		panic("interp: table step must be positive")
	}
	return &Table{start: start, step: step, y: y}
}

// Bounds returns the first and last grid abscissa.
func (t *Table) Bounds() (lo, hi float64) {
	return t.start, t.start + t.step*float64(len(t.y)-1)
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.y)
}

// At interpolates the table at u. Arguments outside Bounds are clamped to
// the nearest end sample. Neighbors missing at the edges are replaced by
// linear extrapolation so the end intervals stay cubic-consistent.
func (t *Table) At(u float64) float64 {
	n := len(t.y)
	pos := (u - t.start) / t.step
	if math.IsNaN(pos) {
		return math.NaN()
	}
	if pos <= 0 {
		return t.y[0]
	}
	if pos >= float64(n-1) {
		return t.y[n-1]
	}

	i := int(pos)
	frac := pos - float64(i)

	y0 := t.y[i]
	y1 := t.y[i+1]

	var ym1, y2 float64
	if i > 0 {
		ym1 = t.y[i-1]
	} else {
		ym1 = 2*y0 - y1
	}
	if i+2 < n {
		y2 = t.y[i+2]
	} else {
		y2 = 2*y1 - y0
	}

	return Hermite4(frac, ym1, y0, y1, y2)
}
