package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosismo/internal/building"
	"github.com/alexiusacademia/gosismo/internal/logger"
)

var (
	templateFile   string
	templateFloors int
	templateModes  int
	templateForce  bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a starter building file",
	Long: `Create a building file with the requested number of floors and modes.
The masses, periods and mode shapes are placeholders: replace them with
the results of your structural model before running 'gosismo analyze'.

The format is chosen from the extension (.json or .toml).

Examples:
  gosismo template --file building.json --floors 5 --modes 3
  gosismo template -f building.toml -n 8 -m 4`,
	Run: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateFile, "file", "f", "building.json", "Output path (.json or .toml)")
	templateCmd.Flags().IntVarP(&templateFloors, "floors", "n", 5, "Number of floors")
	templateCmd.Flags().IntVarP(&templateModes, "modes", "m", 3, "Number of modes")
	templateCmd.Flags().BoolVar(&templateForce, "force", false, "Overwrite an existing file")
}

func runTemplate(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	if templateFloors < 1 || templateModes < 1 {
		fmt.Fprintln(out, "Error: floors and modes must be at least 1")
		return
	}

	if _, err := os.Stat(templateFile); err == nil && !templateForce {
		fmt.Fprintf(out, "Error: %s already exists (use --force to overwrite)\n", templateFile)
		return
	}

	b := building.Template(templateFloors, templateModes)
	if err := b.Save(templateFile); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	logger.Info("template written",
		zap.String("path", templateFile),
		zap.Int("floors", templateFloors),
		zap.Int("modes", templateModes),
	)

	fmt.Fprintf(out, "  Building template written to: %s\n", templateFile)
	fmt.Fprintf(out, "  %d floors, %d modes (%s)\n", templateFloors, templateModes, building.FormatFromPath(templateFile))
}
