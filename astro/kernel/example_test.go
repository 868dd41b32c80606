package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-sed/astro/kernel"
)

func ExampleApprox() {
	for _, x := range []float64{0.01, 0.229, 1, 10} {
		fmt.Printf("R(%g) = %.4f\n", x, kernel.Approx(x))
	}

	// Output:
	// R(0.01) = 0.3719
	// R(0.229) = 0.7123
	// R(1) = 0.4389
	// R(10) = 0.0001
}
