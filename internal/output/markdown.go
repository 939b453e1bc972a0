package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dotcommander/vendorsel/internal/evaluate"
	"github.com/dotcommander/vendorsel/internal/ranking"
	"github.com/dotcommander/vendorsel/internal/scoring"
	"github.com/dotcommander/vendorsel/internal/types"
)

// MarkdownFormatter formats an evaluation as the Markdown validation and ranking report.
type MarkdownFormatter struct {
	out        io.Writer
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. When outputFile is
// empty the report goes to out.
func NewMarkdownFormatter(out io.Writer, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{out: out, outputFile: outputFile}
}

// Format renders res and writes it.
func (f *MarkdownFormatter) Format(res *evaluate.Result) error {
	return emit(f.out, f.outputFile, RenderMarkdown(res))
}

// Render returns the report text.
func (f *MarkdownFormatter) Render(res *evaluate.Result) (string, error) {
	return RenderMarkdown(res), nil
}

// RenderMarkdown builds the full report. Supplier sections follow the ranked
// view, highest score first. Scores are read from res, never recomputed.
func RenderMarkdown(res *evaluate.Result) string {
	var b strings.Builder

	writeValidation(&b, res)

	b.WriteString("# Formulas Used:\n")
	b.WriteString("1. Overall Supplier Score Formula:\n")
	b.WriteString(Formula(weightsOf(res)))
	b.WriteString("\n\n")

	b.WriteString("# Supplier Evaluation Summary\n")
	fmt.Fprintf(&b, "Total Suppliers Evaluated: %d\n\n", len(res.Suppliers))

	b.WriteString("# Detailed Analysis for Each Supplier\n")
	for _, r := range res.Ranked {
		b.WriteString("\n")
		writeSupplier(&b, r, weightsOf(res))
	}
	b.WriteString("\n")

	b.WriteString("# Final Ranking\n")
	fmt.Fprintf(&b, "Top supplier(s) with overall score of %s:\n", FormatNumber(res.TopScore))
	for _, s := range res.TopVendors {
		fmt.Fprintf(&b, "- Supplier %s\n", s.ID)
	}
	b.WriteString("\n")

	b.WriteString("# Feedback Request\n")
	b.WriteString("Would you like detailed calculations for any specific supplier? Rate this analysis (1-5).\n")

	return b.String()
}

func writeValidation(b *strings.Builder, res *evaluate.Result) {
	md := res.Metadata

	b.WriteString("# Data Validation Report\n")
	b.WriteString("## 1. Data Structure Check:\n")
	fmt.Fprintf(b, "- Number of suppliers: %d\n", md.SupplierCount)
	fmt.Fprintf(b, "- Number of fields per record: %d\n\n", md.FieldsPerRecord)

	b.WriteString("## 2. Required Fields Check:\n")
	for _, fs := range md.RequiredFields {
		fmt.Fprintf(b, "- %s: %s\n", fs.Field, fs.Status)
	}
	b.WriteString("\n")

	b.WriteString("## 3. Data Type Validation:\n")
	for _, fs := range md.DataTypes {
		fmt.Fprintf(b, "- %s (positive number): %s\n", fs.Field, fs.Status)
	}
	b.WriteString("\n")

	if len(md.Rejected) > 0 {
		b.WriteString("## Rejected Records:\n")
		for _, r := range md.Rejected {
			id := r.SupplierID
			if id == "" {
				id = "unknown"
			}
			fmt.Fprintf(b, "- Record %d (%s): %s\n", r.Index+1, id, r.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Validation Summary:\n")
	if md.Mode == types.ModeTolerant && len(md.Rejected) > 0 {
		fmt.Fprintf(b, "Data validation completed with %d rejected record(s). Proceeding with analysis of valid records...\n\n", len(md.Rejected))
	} else {
		b.WriteString("Data validation is successful! Proceeding with analysis...\n\n")
	}
}

func writeSupplier(b *strings.Builder, r ranking.Ranked, w scoring.Weights) {
	s := r.Supplier
	components := w.Breakdown(s.Scores())

	fmt.Fprintf(b, "## Supplier %s\n", s.ID)
	b.WriteString("### Input Data:\n")
	for _, c := range components {
		fmt.Fprintf(b, "- %s: %s\n", c.Label, FormatNumber(c.Score))
	}
	b.WriteString("\n")

	b.WriteString("### Detailed Calculations:\n")
	b.WriteString("1. Sum the scores:\n")
	terms := make([]string, 0, len(components))
	for _, c := range components {
		fmt.Fprintf(b, "   - %s: (%s / 100) × %s = %s\n",
			c.Label, FormatNumber(c.Score), FormatNumber(c.Weight), FormatNumber(c.Value))
		terms = append(terms, FormatNumber(c.Value))
	}
	b.WriteString("2. Compute Overall Score:\n")
	fmt.Fprintf(b, "   $\\text{Overall Score} = %s = %s$\n\n",
		strings.Join(terms, " + "), FormatNumber(s.OverallScore))

	b.WriteString("### Ranking Status:\n")
	if r.Top {
		b.WriteString("- Selected as Top Vendor\n")
	} else {
		fmt.Fprintf(b, "- Rank: %d\n", r.Position)
	}
}

// Formula renders the weighted-sum formula in LaTeX display math.
func Formula(w scoring.Weights) string {
	terms := make([]string, 0, len(w))
	for _, fw := range w {
		terms = append(terms, fmt.Sprintf(`\left(\frac{\text{%s}}{100} \times %s \right)`,
			strings.ReplaceAll(fw.Field, "_", `\_`), FormatNumber(fw.Weight)))
	}
	return `$$\text{Overall Score} = ` + strings.Join(terms, " + ") + "$$"
}

// FormatNumber prints v in its shortest exact form, keeping a ".0" suffix on
// whole numbers so scores read as decimals.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func weightsOf(res *evaluate.Result) scoring.Weights {
	if len(res.Weights) == 0 {
		return scoring.DefaultWeights()
	}
	return res.Weights
}
