package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/vendorsel/internal/output"
	"github.com/dotcommander/vendorsel/internal/scoring"
	"github.com/dotcommander/vendorsel/internal/types"
	"github.com/spf13/cobra"
)

var formulaCmd = &cobra.Command{
	Use:   "formula",
	Short: "Show the overall score formula and weight table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFormula(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(formulaCmd)
}

func runFormula(cmd *cobra.Command) error {
	weights := scoring.DefaultWeights()
	if err := weights.Validate(); err != nil {
		return err
	}

	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, bold.Render("Overall Supplier Score"))
	fmt.Fprintln(out, output.Formula(weights))
	fmt.Fprintln(out)
	fmt.Fprintln(out, dim.Render(fmt.Sprintf("%-28s %-28s %s", "Field", "Label", "Weight")))
	for _, fw := range weights {
		fmt.Fprintf(out, "%-28s %-28s %s\n", fw.Field, fw.Label, output.FormatNumber(fw.Weight))
	}
	fmt.Fprintf(out, "%-28s %-28s %s\n", "", "Total", output.FormatNumber(scoring.Round(weights.Sum(), scoring.Places)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Scores are %d-%d; the overall score is rounded half away from zero to %d places.\n",
		types.MinScore, types.MaxScore, scoring.Places)
	return nil
}
