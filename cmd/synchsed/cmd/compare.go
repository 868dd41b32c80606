package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-sed/measure/reference"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrOutOfBounds reports a computed SED deviating from its reference by more
// than the allowed bounds.
var ErrOutOfBounds = errors.New("deviation outside bounds")

func newCompareCommand(a *app) *cobra.Command {
	var (
		lower, upper float64
		band         reference.Band
	)

	cmd := &cobra.Command{
		Use:   "compare <reference-file>",
		Short: "Compare the configured SED with a sampled reference spectrum",
		Long: `compare evaluates the configured SED at the frequencies of a two-column
reference file and checks that every deviation |1 - computed/reference|
inside the frequency band lies within [lower, upper].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := reference.Load(args[0])
			if err != nil {
				return err
			}
			synch, err := a.cfg.NewSynchrotron()
			if err != nil {
				return err
			}
			got, err := synch.SEDFlux(ref.Nu)
			if err != nil {
				return err
			}

			report, err := reference.Compare(ref.Nu, ref.SED, got, band)
			if err != nil {
				return err
			}
			ok, err := reference.WithinBounds(ref.Nu, ref.SED, got, lower, upper, band)
			if err != nil {
				return err
			}
			a.log.Debug("comparison done",
				zap.String("reference", args[0]),
				zap.Int("points", report.Points),
				zap.Float64("max_deviation", report.MaxDeviation),
			)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "points in band\t%d of %d\n", report.Points, ref.Len())
			fmt.Fprintf(tw, "mean deviation\t%.4f\n", report.MeanDeviation)
			if report.MaxIndex >= 0 {
				fmt.Fprintf(tw, "max deviation\t%.4f at %.4e Hz\n", report.MaxDeviation, ref.Nu[report.MaxIndex])
			}
			fmt.Fprintf(tw, "within [%g, %g]\t%t\n", lower, upper, ok)
			if err := tw.Flush(); err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("%w: max deviation %.4f", ErrOutOfBounds, report.MaxDeviation)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lower, "lower", 0, "smallest allowed deviation")
	cmd.Flags().Float64Var(&upper, "upper", 0.05, "largest allowed deviation")
	cmd.Flags().Float64Var(&band.Min, "nu-min", 0, "lower band edge in Hz (0 = open)")
	cmd.Flags().Float64Var(&band.Max, "nu-max", 0, "upper band edge in Hz (0 = open)")

	return cmd
}
