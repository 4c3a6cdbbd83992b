package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosismo/internal/diagram"
	"github.com/alexiusacademia/gosismo/internal/e030"
)

var (
	spectrumSite      = e030.DefaultSite()
	spectrumTMax      float64
	spectrumStep      float64
	spectrumPlot      bool
	spectrumImageFile string
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Tabulate the E.030 design spectrum for a site",
	Long: `Evaluate the inelastic pseudo-acceleration spectrum Sa = ZUCcS/R · g
over a range of periods for the given site coefficients.

Spectral-shape coefficient (E.030 Article 14):
  T ≤ TP        Cc = 2.5
  TP < T ≤ TL   Cc = 2.5·TP/T
  T > TL        Cc = 2.5·TP/TL

Examples:
  # Zone 4, soil S1, common building
  gosismo spectrum --zone 4 --soil 1

  # Soft soil, essential building, plot Sa and save an image
  gosismo spectrum -z 3 -s 3 -u 1.5 --plot -o spectrum.png`,
	Run: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumCmd.Flags().IntVarP(&spectrumSite.Zone, "zone", "z", spectrumSite.Zone, "Seismic zone 1-4")
	spectrumCmd.Flags().IntVarP(&spectrumSite.Soil, "soil", "s", spectrumSite.Soil, "Soil profile 0-3 for S0-S3")
	spectrumCmd.Flags().Float64VarP(&spectrumSite.U, "usage", "u", spectrumSite.U, "Usage factor U")
	spectrumCmd.Flags().Float64Var(&spectrumSite.R0, "r0", spectrumSite.R0, "Basic reduction coefficient R0")
	spectrumCmd.Flags().Float64Var(&spectrumSite.Ia, "ia", spectrumSite.Ia, "Height irregularity factor Ia")
	spectrumCmd.Flags().Float64Var(&spectrumSite.Ip, "ip", spectrumSite.Ip, "Plan irregularity factor Ip")

	spectrumCmd.Flags().Float64Var(&spectrumTMax, "tmax", 3.0, "Largest period to evaluate (s)")
	spectrumCmd.Flags().Float64Var(&spectrumStep, "step", 0.1, "Period increment (s)")
	spectrumCmd.Flags().BoolVar(&spectrumPlot, "plot", false, "Show ASCII plot of Sa")
	spectrumCmd.Flags().StringVarP(&spectrumImageFile, "output", "o", "", "Export Sa plot to file (png, svg, pdf)")
}

func runSpectrum(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := spectrumSite.Parameters()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	curve, err := p.Curve(spectrumTMax, spectrumStep)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	printHeading(out, "E.030 DESIGN SPECTRUM")

	printSection(out, "SITE COEFFICIENTS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Z:\t%.2f\t(zone %d)\n", p.Z, spectrumSite.Zone)
	fmt.Fprintf(w, "  S:\t%.2f\t(%s)\n", p.S, soilName(spectrumSite.Soil))
	fmt.Fprintf(w, "  U:\t%.2f\n", p.U)
	fmt.Fprintf(w, "  R:\t%.2f\n", p.R)
	fmt.Fprintf(w, "  TP / TL:\t%.2f s / %.2f s\n", p.TP, p.TL)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "SPECTRUM")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  T (s)\tCc\tCs\tSa (m/s²)\tSd (cm)\t")
	for _, o := range curve {
		fmt.Fprintf(w, "  %.2f\t%.4f\t%.4f\t%.4f\t%.4f\t\n", o.Period, o.Cc, o.Cs, o.Sa, o.Sd)
	}
	w.Flush()
	fmt.Fprintln(out)

	periods := make([]float64, len(curve))
	sa := make([]float64, len(curve))
	for i, o := range curve {
		periods[i] = o.Period
		sa[i] = o.Sa
	}

	if spectrumPlot {
		fmt.Fprintln(out, diagram.PlotSpectrum(sa, fmt.Sprintf("Sa (m/s²) for T = %.2f..%.2f s", periods[0], periods[len(periods)-1])))
		fmt.Fprintln(out)
	}

	if spectrumImageFile != "" {
		if err := diagram.ExportSpectrumPlot(periods, sa, "Sa (m/s²)", spectrumImageFile); err != nil {
			fmt.Fprintf(out, "Error exporting plot: %v\n", err)
		} else {
			fmt.Fprintf(out, "  Plot exported to: %s\n", spectrumImageFile)
		}
	}
}
