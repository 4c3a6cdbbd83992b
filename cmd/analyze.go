package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosismo/internal/building"
	"github.com/alexiusacademia/gosismo/internal/diagram"
	"github.com/alexiusacademia/gosismo/internal/e030"
	"github.com/alexiusacademia/gosismo/internal/logger"
	"github.com/alexiusacademia/gosismo/internal/modal"
	"github.com/alexiusacademia/gosismo/internal/report"
)

var (
	// Input
	analyzeFile string
	analyzeUnit string

	// Code overrides
	analyzeZone int
	analyzeSoil int
	analyzeU    float64
	analyzeR0   float64

	// Output options
	analyzeDetail      bool
	analyzeShowDiagram bool
	analyzeImageFile   string
	analyzeExcelFile   string
	analyzePDFFile     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a response-spectrum modal analysis of a building",
	Long: `Compute modal forces, story shears and combined design values for a
building described in a JSON or TOML file.

The procedure follows E.030:
  - Article 14: Spectral-shape coefficient Cc
  - Article 29.2: Pseudo-acceleration spectrum Sa = ZUCcS/R · g
  - Article 29.3: Modal combination 0.25·Σ|r| + 0.75·√Σr²

Floors are listed from the first level up and every mode shape carries
one ordinate per floor. Use 'gosismo template' to create a starter file.

Examples:
  # Analyze a building file
  gosismo analyze --file building.json

  # Show modal displacement and force tables and an ASCII force diagram
  gosismo analyze -f building.toml --detail --diagram

  # Override the seismic zone and export results
  gosismo analyze -f building.json --zone 3 --excel report.xlsx --pdf report.pdf -o forces.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to building JSON or TOML file [required]")
	analyzeCmd.Flags().StringVar(&analyzeUnit, "unit", "tonf", "Force unit label for reports")

	// Code overrides
	analyzeCmd.Flags().IntVarP(&analyzeZone, "zone", "z", 4, "Seismic zone 1-4 (overrides file)")
	analyzeCmd.Flags().IntVarP(&analyzeSoil, "soil", "s", 1, "Soil profile 0-3 for S0-S3 (overrides file)")
	analyzeCmd.Flags().Float64VarP(&analyzeU, "usage", "u", 1.0, "Usage factor U (overrides file)")
	analyzeCmd.Flags().Float64Var(&analyzeR0, "r0", 8, "Basic reduction coefficient R0 (overrides file)")

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeDetail, "detail", false, "Show modal displacement and force tables")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII force and shear diagram")
	analyzeCmd.Flags().StringVarP(&analyzeImageFile, "output", "o", "", "Export force/shear diagram to file (png, svg, pdf)")
	analyzeCmd.Flags().StringVarP(&analyzeExcelFile, "excel", "x", "", "Export result tables to an Excel workbook")
	analyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Export a PDF report")

	analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	b, err := building.Load(analyzeFile)
	if err != nil {
		printAnalysisError(out, err)
		return
	}

	flags := cmd.Flags()
	if flags.Changed("zone") {
		b.Code.Zone = analyzeZone
	}
	if flags.Changed("soil") {
		b.Code.Soil = analyzeSoil
	}
	if flags.Changed("usage") {
		b.Code.U = analyzeU
	}
	if flags.Changed("r0") {
		b.Code.R0 = analyzeR0
	}

	result, err := b.Analyze()
	if err != nil {
		printAnalysisError(out, err)
		return
	}

	for _, m := range result.Modes {
		logger.Debug("mode analysed",
			zap.Int("mode", m.Mode),
			zap.Float64("T", m.Period),
			zap.Float64("Cc", m.Cc),
			zap.Float64("Sa", m.Sa),
			zap.Float64("gamma", m.Gamma),
		)
	}
	logger.Debug("combination complete", zap.Float64("base_shear", result.BaseShear()))

	meta := report.Meta{Name: b.Name, Unit: analyzeUnit, Height: b.TotalHeight()}
	meta.EstPeriod, _ = b.EstimatedPeriod()
	tables := report.Tables(result, analyzeUnit)

	printAnalysis(out, b, result, meta, tables)

	data := diagram.ForceShearData{
		Title:  b.Name,
		Forces: result.Force.Design,
		Shears: result.Shear.Design,
		Unit:   analyzeUnit,
	}

	if analyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIIForceShearDiagram(data))
		fmt.Fprintln(out, diagram.PlotShearProfile(data))
		fmt.Fprintln(out)
	}

	exportAnalysis(out, result, meta, tables, data)
}

func printAnalysis(out io.Writer, b *building.Building, result *modal.Result, meta report.Meta, tables []report.Table) {
	printHeading(out, "RESPONSE SPECTRUM MODAL ANALYSIS - E.030")

	// Input summary
	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if b.Name != "" {
		fmt.Fprintf(w, "  Building:\t%s\n", b.Name)
	}
	fmt.Fprintf(w, "  Floors:\t%d\n", result.NumFloors())
	fmt.Fprintf(w, "  Modes:\t%d\n", result.NumModes())
	fmt.Fprintf(w, "  Total height (H):\t%.2f m\n", meta.Height)
	if meta.EstPeriod > 0 {
		fmt.Fprintf(w, "  Estimated period (H/CT):\t%.4f s\n", meta.EstPeriod)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Code parameters
	p := result.Params
	printSection(out, "CODE PARAMETERS")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Zone factor (Z):\t%.2f\t(zone %d)\n", p.Z, b.Code.Zone)
	fmt.Fprintf(w, "  Soil factor (S):\t%.2f\t(%s)\n", p.S, soilName(b.Code.Soil))
	fmt.Fprintf(w, "  Usage factor (U):\t%.2f\n", p.U)
	fmt.Fprintf(w, "  Reduction (R = R0·Ia·Ip):\t%.2f\t(%.1f × %.2f × %.2f)\n", p.R, b.Code.R0, b.Code.Ia, b.Code.Ip)
	fmt.Fprintf(w, "  TP / TL:\t%.2f s / %.2f s\n", p.TP, p.TL)
	fmt.Fprintf(w, "  CT:\t%.0f\n", p.CT)
	w.Flush()
	fmt.Fprintln(out)

	for _, t := range tables {
		switch t.Name {
		case report.SheetDisplacements, report.SheetForces:
			if !analyzeDetail {
				continue
			}
		}
		printSection(out, t.Name)
		printTable(out, t)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("DESIGN BASE SHEAR", []string{
		fmt.Sprintf("V = %.2f %s", result.BaseShear(), meta.Unit),
		fmt.Sprintf("0.25·ABS + 0.75·SRSS scaled by %.2f·R", e030.DesignFactor),
	}))
	fmt.Fprintln(out)
}

func exportAnalysis(out io.Writer, result *modal.Result, meta report.Meta, tables []report.Table, data diagram.ForceShearData) {
	if analyzeImageFile != "" {
		if err := diagram.ExportForceShearDiagram(data, analyzeImageFile); err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		} else {
			fmt.Fprintf(out, "  Diagram exported to: %s\n", analyzeImageFile)
		}
	}

	if analyzeExcelFile != "" {
		if err := report.SaveWorkbook(analyzeExcelFile, tables); err != nil {
			fmt.Fprintf(out, "Error exporting workbook: %v\n", err)
		} else {
			fmt.Fprintf(out, "  Workbook exported to: %s\n", analyzeExcelFile)
		}
	}

	if analyzePDFFile != "" {
		if err := report.SavePDF(analyzePDFFile, result, meta, tables); err != nil {
			fmt.Fprintf(out, "Error exporting PDF: %v\n", err)
		} else {
			fmt.Fprintf(out, "  PDF report exported to: %s\n", analyzePDFFile)
		}
	}
}

func printAnalysisError(out io.Writer, err error) {
	fmt.Fprintf(out, "Error: %v\n", err)
	if errors.Is(err, modal.ErrDegenerateMass) {
		fmt.Fprintln(out, "  Complete the floor masses before running the analysis.")
	}
}

func soilName(soil int) string {
	if soil < 0 || soil >= len(e030.SoilNames) {
		return "custom"
	}
	return e030.SoilNames[soil]
}
