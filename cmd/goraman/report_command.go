package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ramanchem/goraman/ramanplot"
	"github.com/ramanchem/goraman/spectrum"
	"github.com/spf13/cobra"
)

func newReportCommand(cfgPath *string) *cobra.Command {
	var (
		dir      string
		nAtoms   int
		withPlot bool
	)
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Write a markdown peak-assignment report",
		Long:  "Report reads a Gaussian frequency log and writes a markdown report with one\nsection per peak: frequency, intensity and the atoms that move the most in\nthe mode, plus an overview plot of the broadened spectrum.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			table, symbols, err := loadModes(args[0], cfg.kind())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if withPlot {
				s, err := spectrum.Broaden(table, cfg.grid(), cfg.Width, cfg.Scale)
				if err != nil {
					return err
				}
				if err := ramanplot.PlotSpectrum(s, table, args[0], filepath.Join(dir, "spectrum")); err != nil {
					return err
				}
			}
			f, err := os.Create(filepath.Join(dir, "report.md"))
			if err != nil {
				return err
			}
			defer f.Close()
			fmt.Fprintf(f, "# Peak Assignment Report\n\n")
			fmt.Fprintf(f, "%d peaks found in %s at %s\n\n", table.Len(), args[0], time.Now().Format(time.RFC1123))
			if withPlot {
				fmt.Fprintf(f, "![spectrum](spectrum.png)\n\n")
			}
			if im := table.Imaginary(); len(im) > 0 {
				fmt.Fprintf(f, "**Warning**: imaginary frequencies at mode indexes %v, the structure is not a minimum.\n\n", im)
			}
			for i := 0; i < table.Len(); i++ {
				m := table.Mode(i)
				fmt.Fprintf(f, "## Peak #%d: %.2f 1/cm\n\n", i, m.Frequency)
				fmt.Fprintf(f, "%s intensity: %.4f\n\n", strings.ToUpper(string(cfg.kind())), m.Intensity)
				dom := m.DominantAtoms(nAtoms)
				if len(dom) == 0 {
					continue
				}
				w := m.AtomWeights()
				fmt.Fprintf(f, "Dominant atoms:\n\n")
				for _, a := range dom {
					sym := "?"
					if symbols != nil && a < len(symbols) {
						sym = symbols[a]
					}
					fmt.Fprintf(f, "- atom %d (%s), displacement %.4f\n", a, sym, w[a])
				}
				fmt.Fprintf(f, "\n")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", filepath.Join(dir, "report.md"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "peak_report", "directory to write the report into")
	cmd.Flags().IntVarP(&nAtoms, "atoms", "n", 3, "number of dominant atoms to list per peak")
	cmd.Flags().BoolVar(&withPlot, "plot", true, "include a rendered spectrum in the report")
	return cmd
}
