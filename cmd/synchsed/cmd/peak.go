package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-sed/astro/core"
	"github.com/cwbudde/algo-sed/astro/synchrotron"
	"github.com/spf13/cobra"
)

func newPeakCommand(a *app) *cobra.Command {
	var b, gamma float64

	cmd := &cobra.Command{
		Use:   "peak",
		Short: "Print the characteristic synchrotron frequency of one electron",
		Long: `peak prints nu_synch_peak(B, gamma) = eB/(2 pi m_e c) gamma^2, the
field in units of the critical field, and the critical photon energy.
Without flags, B comes from the configuration and gamma is the break or
pivot Lorentz factor of the electron distribution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("b") {
				b = a.cfg.Blob.B
			}
			if !cmd.Flags().Changed("gamma") {
				gamma = characteristicGamma(a)
			}
			if !(b >= 0) || !(gamma > 0) {
				return fmt.Errorf("%w: need B >= 0 and gamma > 0", core.ErrDomain)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "B [G]\t%.4g\n", b)
			fmt.Fprintf(tw, "gamma\t%.4g\n", gamma)
			fmt.Fprintf(tw, "nu_synch_peak [Hz]\t%.6e\n", synchrotron.NuSynchPeak(b, gamma))
			fmt.Fprintf(tw, "epsilon_B\t%.6e\n", synchrotron.EpsilonB(b))
			epsC := synchrotron.CriticalEnergy(b, gamma)
			fmt.Fprintf(tw, "epsilon_c\t%.6e\n", epsC)
			fmt.Fprintf(tw, "nu_c [Hz]\t%.6e\n", core.FrequencyFromEnergy(epsC))
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&b, "b", 1, "magnetic field in G")
	cmd.Flags().Float64Var(&gamma, "gamma", 100, "electron Lorentz factor")

	return cmd
}

// characteristicGamma picks the distribution's own scale: the break, the
// pivot, or the geometric mean of the support.
func characteristicGamma(a *app) float64 {
	p := a.cfg.Electrons.Params
	switch {
	case p.GammaB > 0:
		return p.GammaB
	case p.Gamma0 > 0:
		return p.Gamma0
	case p.GammaMin > 0 && p.GammaMax > 0:
		return math.Sqrt(p.GammaMin * p.GammaMax)
	}
	return 100
}
