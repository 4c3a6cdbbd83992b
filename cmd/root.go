package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosismo/internal/logger"
	"github.com/alexiusacademia/gosismo/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gosismo",
	Short: "Response Spectrum Seismic Analysis Tool",
	Long: `gosismo - Go Seismic Modal Analysis

A CLI tool for the seismic analysis of buildings by response-spectrum
modal superposition, following the Peruvian seismic design standard E.030.

Given the floor masses, modal periods and mode shapes of a structure,
this tool computes:
  - Spectral ordinates per mode (Cc, Cs, Sa, ω, Sd)
  - Modal participation factors
  - Modal displacements, lateral forces and story shears
  - ABS + SRSS combined design forces and shears

Mode shapes and periods come from your structural model; gosismo does
not assemble stiffness matrices.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosismo v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Seismic Modal Analysis                               ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for response-spectrum modal analysis of buildings")
		fmt.Println("  based on the Peruvian seismic design standard E.030.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • E.030 zone, soil, usage and reduction coefficients")
		fmt.Println("    • Design spectrum tabulation and plotting")
		fmt.Println("    • Modal forces and story shears with ABS + SRSS combination")
		fmt.Println("    • Excel, PDF and image export of the results")
		fmt.Println()
		fmt.Println("  Use 'gosismo --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace the analysis pipeline on stderr")
}
