package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:           "goraman",
		Short:         "Post-process vibrational-frequency calculations",
		Long:          "goraman broadens the discrete modes of a vibrational-frequency calculation\ninto continuous spectra, matches the modes of two related calculations by the\noverlap of their displacement vectors, and writes peak-assignment reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML configuration file")
	cmd.AddCommand(newBroadenCommand(&cfgPath))
	cmd.AddCommand(newCompareCommand(&cfgPath))
	cmd.AddCommand(newReportCommand(&cfgPath))
	return cmd
}
