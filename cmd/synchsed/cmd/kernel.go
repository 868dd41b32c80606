package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/kernel"
	"github.com/spf13/cobra"
)

func newKernelCommand(*app) *cobra.Command {
	var (
		xMin, xMax float64
		points     int
	)

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Compare the synchrotron kernel approximations with the exact kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(xMin > 0) || !(xMax > xMin) || points < 2 {
				return fmt.Errorf("%w: need 0 < x-min < x-max and at least 2 points", core.ErrDomain)
			}

			x := core.LogSpace(xMin, xMax, points)
			exact := make([]float64, len(x))
			approx := make([]float64, len(x))
			table := make([]float64, len(x))
			kernel.EvaluateWith(kernel.Exact, exact, x)
			kernel.Evaluate(approx, x)
			kernel.EvaluateWith(kernel.Tabulated, table, x)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "x\texact\tapprox\trel.dev\ttabulated\trel.dev\n")
			for i := range x {
				fmt.Fprintf(tw, "%.4e\t%.6e\t%.6e\t%.2e\t%.6e\t%.2e\n",
					x[i], exact[i],
					approx[i], relDev(approx[i], exact[i]),
					table[i], relDev(table[i], exact[i]))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&xMin, "x-min", 1e-4, "smallest kernel argument")
	cmd.Flags().Float64Var(&xMax, "x-max", 30, "largest kernel argument")
	cmd.Flags().IntVar(&points, "points", 15, "number of log-spaced arguments")

	return cmd
}

func relDev(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got/want - 1)
}
