package main

import (
	"encoding/json"
	"fmt"

	"github.com/ramanchem/goraman/assign"
	"github.com/spf13/cobra"
)

func newCompareCommand(cfgPath *string) *cobra.Command {
	var (
		threshold float64
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Match the modes of two calculations by displacement overlap",
		Long:  "Compare reads the vibrational modes of two related calculations and finds,\nfor each mode of the first, the mode of the second with the most similar\nmotion pattern, regardless of how the frequencies reordered. Modes without an\nacceptable partner are listed as unmatched.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = threshold
			}
			ta, _, err := loadModes(args[0], cfg.kind())
			if err != nil {
				return err
			}
			tb, _, err := loadModes(args[1], cfg.kind())
			if err != nil {
				return err
			}
			result, err := assign.Match(ta, tb, cfg.Threshold)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			rows := make([][]string, 0, len(result.Pairs))
			for _, p := range result.Pairs {
				rows = append(rows, []string{
					fmt.Sprintf("%d", p.A),
					fmt.Sprintf("%.2f", ta.Mode(p.A).Frequency),
					fmt.Sprintf("%d", p.B),
					fmt.Sprintf("%.2f", tb.Mode(p.B).Frequency),
					fmt.Sprintf("%.4f", p.Score),
				})
			}
			fmt.Fprintln(w, renderTable(
				[]string{"A", "freq A (1/cm)", "B", "freq B (1/cm)", "overlap"},
				rows,
			))
			if len(result.UnmatchedA) > 0 {
				fmt.Fprintf(w, "unmatched in %s: %v\n", args[0], result.UnmatchedA)
			}
			if len(result.UnmatchedB) > 0 {
				fmt.Fprintf(w, "unmatched in %s: %v\n", args[1], result.UnmatchedB)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", assign.DefaultThreshold, "minimum overlap to accept a match")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the assignment as JSON")
	return cmd
}
