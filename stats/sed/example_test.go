package sed_test

import (
	"fmt"

	"github.com/cwbudde/algo-sed/stats/sed"
)

func ExampleSlope() {
	nu := []float64{1e9, 1e10, 1e11}
	flux := []float64{1e-14, 1e-13, 1e-12}
	fmt.Printf("index=%.2f\n", sed.Slope(nu, flux, 1e9, 1e11))

	// Output:
	// index=1.00
}
