package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-sed/measure/reference"
	sedstats "github.com/cwbudde/algo-sed/stats/sed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sedOptions struct {
	ssa     bool
	noSSA   bool
	kernel  string
	nuMin   float64
	nuMax   float64
	points  int
	workers int
	csv     bool
	stats   bool
	output  string
}

func newSEDCommand(a *app) *cobra.Command {
	var o sedOptions

	cmd := &cobra.Command{
		Use:   "sed",
		Short: "Compute the synchrotron SED on a frequency grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSED(cmd, o)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.ssa, "ssa", false, "enable synchrotron self-absorption")
	f.BoolVar(&o.noSSA, "no-ssa", false, "disable synchrotron self-absorption")
	f.StringVar(&o.kernel, "kernel", "", "kernel: approx, tabulated or exact")
	f.Float64Var(&o.nuMin, "nu-min", 0, "lowest frequency in Hz")
	f.Float64Var(&o.nuMax, "nu-max", 0, "highest frequency in Hz")
	f.IntVar(&o.points, "points", 0, "number of log-spaced frequencies")
	f.IntVar(&o.workers, "workers", -1, "goroutines per evaluation (0 = GOMAXPROCS)")
	f.BoolVar(&o.csv, "csv", false, "print comma-separated values instead of a table")
	f.BoolVar(&o.stats, "stats", false, "print peak, integrated flux and spectral indices")
	f.StringVarP(&o.output, "output", "o", "", "write the SED to a file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("ssa", "no-ssa")

	return cmd
}

// apply copies the flags that were set onto the configuration.
func (o sedOptions) apply(a *app) error {
	s := &a.cfg.Synchrotron
	switch {
	case o.ssa:
		s.SSA = true
	case o.noSSA:
		s.SSA = false
	}
	if o.kernel != "" {
		s.Kernel = o.kernel
	}
	if o.workers >= 0 {
		s.Workers = o.workers
	}

	g := &a.cfg.Grid
	if o.nuMin > 0 {
		g.NuMin = o.nuMin
	}
	if o.nuMax > 0 {
		g.NuMax = o.nuMax
	}
	if o.points > 0 {
		g.Points = o.points
	}

	return a.cfg.Validate()
}

func (a *app) runSED(cmd *cobra.Command, o sedOptions) error {
	if err := o.apply(a); err != nil {
		return err
	}

	synch, err := a.cfg.NewSynchrotron()
	if err != nil {
		return err
	}
	a.log.Debug("blob ready", zap.Stringer("blob", synch.Blob()), zap.Bool("ssa", synch.SSA()))

	nu := a.cfg.Frequencies()
	start := time.Now()
	flux, err := synch.SEDFlux(nu)
	if err != nil {
		return err
	}
	a.log.Info("sed computed",
		zap.Int("points", len(nu)),
		zap.Bool("ssa", synch.SSA()),
		zap.String("kernel", a.cfg.Synchrotron.Kernel),
		zap.Duration("elapsed", time.Since(start)),
	)

	w := cmd.OutOrStdout()
	if o.output != "" {
		file, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if o.csv || o.output != "" {
		err = reference.Write(w, nu, flux)
	} else {
		err = writeTable(w, nu, flux)
	}
	if err != nil {
		return err
	}

	if o.stats {
		return writeStats(cmd.OutOrStdout(), nu, flux)
	}
	return nil
}

func writeTable(w io.Writer, nu, flux []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "nu [Hz]\tnuFnu [erg cm-2 s-1]\n")
	fmt.Fprintf(tw, "-------\t--------------------\n")
	for i := range nu {
		fmt.Fprintf(tw, "%.4e\t%.6e\n", nu[i], flux[i])
	}
	return tw.Flush()
}

func writeStats(w io.Writer, nu, flux []float64) error {
	s, err := sedstats.Calculate(nu, flux)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "peak frequency [Hz]\t%.4e\n", s.PeakFrequency)
	fmt.Fprintf(tw, "peak nuFnu [erg cm-2 s-1]\t%.4e\n", s.PeakFlux)
	fmt.Fprintf(tw, "integrated flux [erg cm-2 s-1]\t%.4e\n", s.IntegratedFlux)
	fmt.Fprintf(tw, "width above half peak [dex]\t%.3f\n", s.Width)
	fmt.Fprintf(tw, "low-frequency index\t%.3f\n", s.LowIndex)
	fmt.Fprintf(tw, "high-frequency index\t%.3f\n", s.HighIndex)
	return tw.Flush()
}
