package kernel

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-sed/internal/interp"
)

const (
	tableMinX      = 1e-10
	tableMaxX      = 200.0
	tablePerDecade = 48
)

var (
	tableOnce sync.Once
	logTable  *interp.Table
	// lowCoef continues the table below tableMinX as lowCoef·x^{1/3}.
	lowCoef float64
	// highScale continues the table above tableMaxX as highScale·Approx(x).
	highScale float64
)

func buildTable() {
	lo := math.Log(tableMinX)
	hi := math.Log(tableMaxX)
	n := int(math.Ceil(math.Log10(tableMaxX/tableMinX)*tablePerDecade)) + 1
	step := (hi - lo) / float64(n-1)

	// One guard node past each end keeps the outer intervals on true
	// neighbors instead of extrapolated ones.
	start := lo - step
	y := make([]float64, n+2)
	for i := range y {
		y[i] = math.Log(Exact(math.Exp(start + step*float64(i))))
	}
	logTable = interp.NewTable(start, step, y)

	lowCoef = Exact(tableMinX) / math.Cbrt(tableMinX)
	highScale = Exact(tableMaxX) / Approx(tableMaxX)
}

// Tabulated returns R(x) interpolated from a table of [Exact] sampled
// evenly in ln x over [1e-10, 200]. Below the table the kernel follows its
// x^{1/3} asymptote, above it the closed form rescaled to meet the table.
// The table is built on first use and is safe for concurrent readers.
func Tabulated(x float64) float64 {
	if !inDomain(x) {
		return 0
	}
	tableOnce.Do(buildTable)

	switch {
	case x < tableMinX:
		return lowCoef * math.Cbrt(x)
	case x > tableMaxX:
		return highScale * Approx(x)
	}
	return math.Exp(logTable.At(math.Log(x)))
}
