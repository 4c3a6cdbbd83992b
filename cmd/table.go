package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosismo/internal/report"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

// printTable prints a result table with aligned columns
func printTable(w io.Writer, t report.Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  %s\t\n", strings.Join(t.Header, "\t"))

	format := fmt.Sprintf("%%.%df", t.Decimals)
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Label)
		for _, v := range row.Values {
			cells = append(cells, fmt.Sprintf(format, v))
		}
		fmt.Fprintf(tw, "  %s\t\n", strings.Join(cells, "\t"))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
