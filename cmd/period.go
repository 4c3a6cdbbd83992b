package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosismo/internal/e030"
	"github.com/alexiusacademia/gosismo/internal/logger"
)

var (
	periodHeight      float64
	periodStories     int
	periodStoryHeight float64
	periodCT          float64
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Estimate the fundamental period T = H/CT",
	Long: `Estimate the fundamental period of a building from its total height
(E.030 Article 28.4).

  CT = 35  Frames of concrete or steel without bracing
  CT = 45  Concrete frames with elevator shafts and stairwell walls, braced steel frames
  CT = 60  Masonry and dual / shear-wall concrete buildings

Examples:
  # 15 m tall frame building
  gosismo period --height 15 --ct 35

  # 8 stories of 3.2 m
  gosismo period --stories 8 --story-height 3.2 --ct 60`,
	Run: runPeriod,
}

func init() {
	rootCmd.AddCommand(periodCmd)

	periodCmd.Flags().Float64Var(&periodHeight, "height", 0, "Total building height H (m)")
	periodCmd.Flags().IntVarP(&periodStories, "stories", "n", 0, "Number of stories (used with --story-height)")
	periodCmd.Flags().Float64Var(&periodStoryHeight, "story-height", 3.0, "Height per story (m)")
	periodCmd.Flags().Float64Var(&periodCT, "ct", 35, "Period coefficient CT (35, 45 or 60)")
}

func runPeriod(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	h := periodHeight
	if h == 0 && periodStories > 0 {
		h = float64(periodStories) * periodStoryHeight
	}

	t, err := e030.EstimatePeriod(h, periodCT)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintln(out, "Provide --height or --stories with --story-height.")
		return
	}

	standard := false
	for _, ct := range e030.PeriodCoefficients {
		if ct == periodCT {
			standard = true
		}
	}

	if !standard {
		logger.Warn("non-standard period coefficient", zap.Float64("ct", periodCT), zap.Float64s("standard", e030.PeriodCoefficients))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Height (H):\t%.2f m\n", h)
	fmt.Fprintf(w, "  CT:\t%.0f", periodCT)
	if !standard {
		fmt.Fprintf(w, " ⚠ (not an E.030 value)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Period (T = H/CT):\t%.4f s\n", t)
	w.Flush()
}
