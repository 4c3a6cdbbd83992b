package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosismo/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosismo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gosismo v%s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Build: %s (%s)\n", version.BuildTime, version.GitCommit)
		fmt.Fprintln(cmd.OutOrStdout(), "Response Spectrum Seismic Analysis Tool")
		fmt.Fprintln(cmd.OutOrStdout(), "Based on E.030 (Peruvian Seismic Design Standard)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
