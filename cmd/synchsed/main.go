// Command synchsed computes synchrotron spectral energy distributions of a
// relativistic blob.
//
// Usage:
//
//	synchsed [--config run.yaml] <command> [flags]
//
// Examples:
//
//	synchsed sed --points 25
//	synchsed sed --no-ssa --csv --output sed.csv
//	synchsed peak --b 0.1 --gamma 1e4
//	synchsed kernel --x-min 1e-4 --x-max 30
//	synchsed compare reference.txt --upper 0.05 --nu-min 1e11 --nu-max 1e19
package main

import (
	"os"

	"github.com/cwbudde/algo-sed/cmd/synchsed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
