package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/vendorsel/internal/evaluate"
)

// ConsoleFormatter formats an evaluation for terminal display.
type ConsoleFormatter struct {
	out        io.Writer
	verbose    bool
	outputFile string
}

// NewConsoleFormatter creates a new ConsoleFormatter. Verbose adds the
// per-supplier calculation breakdown.
func NewConsoleFormatter(out io.Writer, verbose bool, outputFile string) *ConsoleFormatter {
	return &ConsoleFormatter{out: out, verbose: verbose, outputFile: outputFile}
}

// Format renders res and writes it.
func (f *ConsoleFormatter) Format(res *evaluate.Result) error {
	text, err := f.Render(res)
	if err != nil {
		return err
	}
	return emit(f.out, f.outputFile, text)
}

// Render returns the styled text.
func (f *ConsoleFormatter) Render(res *evaluate.Result) (string, error) {
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bold := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	md := res.Metadata

	fmt.Fprintf(&b, "%s %d supplier(s), %d field(s) per record\n",
		bold.Render("Evaluated"), md.SupplierCount, md.FieldsPerRecord)

	for _, r := range md.Rejected {
		id := r.SupplierID
		if id == "" {
			id = "?"
		}
		fmt.Fprintf(&b, "%s record %d (%s): %s\n", red.Render("✗"), r.Index+1, id, r.Message)
	}
	for _, id := range md.DuplicateIDs {
		fmt.Fprintf(&b, "%s duplicate supplier_id %s\n", yellow.Render("!"), id)
	}
	b.WriteString("\n")

	w := weightsOf(res)
	width := len("Supplier")
	for _, r := range res.Ranked {
		width = max(width, len(r.Supplier.ID))
	}
	fmt.Fprintf(&b, "%s\n", dim.Render(fmt.Sprintf("%4s  %-*s  %s", "Rank", width, "Supplier", "Score")))
	for _, r := range res.Ranked {
		line := fmt.Sprintf("%4d  %-*s  %.2f", r.Position, width, r.Supplier.ID, r.Supplier.OverallScore)
		if r.Top {
			line = green.Render(line + "  ★")
		}
		b.WriteString(line + "\n")

		if f.verbose {
			for _, c := range w.Breakdown(r.Supplier.Scores()) {
				fmt.Fprintf(&b, "%s\n", dim.Render(fmt.Sprintf("        %s: (%s / 100) × %s = %s",
					c.Label, FormatNumber(c.Score), FormatNumber(c.Weight), FormatNumber(c.Value))))
			}
		}
	}
	b.WriteString("\n")

	if len(res.TopVendors) == 0 {
		b.WriteString(yellow.Render("No suppliers to rank") + "\n")
		return b.String(), nil
	}
	ids := make([]string, len(res.TopVendors))
	for i, s := range res.TopVendors {
		ids[i] = s.ID
	}
	fmt.Fprintf(&b, "%s %s (%.2f)\n",
		bold.Foreground(lipgloss.Color("10")).Render("✓ Top vendor(s):"),
		strings.Join(ids, ", "), res.TopScore)
	return b.String(), nil
}
