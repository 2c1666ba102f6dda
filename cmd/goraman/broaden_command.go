package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ramanchem/goraman/ramanplot"
	"github.com/ramanchem/goraman/spectrum"
	"github.com/spf13/cobra"
)

func newBroadenCommand(cfgPath *string) *cobra.Command {
	var (
		out     string
		plot    string
		weights []float64
	)
	cmd := &cobra.Command{
		Use:   "broaden <file> [file...]",
		Short: "Broaden discrete modes into a continuous spectrum",
		Long:  "Broaden reads one or more Gaussian log files (or frequency,intensity CSV\nfiles), synthesizes a Lorentzian-broadened spectrum from each, and combines\nthem with the given weights (e.g. Boltzmann populations of conformers). The\nresult is written as x,y CSV lines.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if len(weights) == 0 {
				weights = make([]float64, len(args))
				for i := range weights {
					weights[i] = 1
				}
			}
			if len(weights) != len(args) {
				return fmt.Errorf("%d input files but %d weights given", len(args), len(weights))
			}
			spectra := make([]*spectrum.Spectrum, len(args))
			for i, filename := range args {
				table, _, err := loadModes(filename, cfg.kind())
				if err != nil {
					return err
				}
				spectra[i], err = spectrum.Broaden(table, cfg.grid(), cfg.Width, cfg.Scale)
				if err != nil {
					return err
				}
			}
			result, err := spectrum.Combine(spectra, weights)
			if err != nil {
				return err
			}
			result, err = cfg.applyNormalize(result)
			if err != nil {
				return err
			}
			if plot != "" {
				if err := ramanplot.PlotSpectrum(result, nil, strings.Join(args, " + "), plot); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			for i := 0; i < result.Len(); i++ {
				fmt.Fprintf(w, "%.4f,%.6f\n", result.X(i), result.Y(i))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the spectrum to this file instead of stdout")
	cmd.Flags().StringVar(&plot, "plot", "", "also save a PNG plot under this name")
	cmd.Flags().Float64SliceVarP(&weights, "weights", "w", nil, "combination weight per input file (default all 1)")
	return cmd
}
