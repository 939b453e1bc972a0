// Package output renders evaluation results as Markdown, JSON, YAML or
// styled console text.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/vendorsel/internal/evaluate"
	"github.com/dotcommander/vendorsel/internal/scoring"
)

// Tool and Version identify the producer in structured reports.
const Tool = "vendorsel"

var Version = "1.0.0"

// Report is the structured form shared by the JSON and YAML formatters.
type Report struct {
	Header       ReportHeader      `json:"header" yaml:"header"`
	Validation   evaluate.Metadata `json:"validation" yaml:"validation"`
	Formula      string            `json:"formula" yaml:"formula"`
	Weights      []ReportWeight    `json:"weights" yaml:"weights"`
	Evaluated    int               `json:"total_suppliers_evaluated" yaml:"total_suppliers_evaluated"`
	Suppliers    []ReportSupplier  `json:"suppliers" yaml:"suppliers"`
	FinalRanking ReportRanking     `json:"final_ranking" yaml:"final_ranking"`
}

// ReportHeader contains report metadata.
type ReportHeader struct {
	Tool    string `json:"tool" yaml:"tool"`
	Version string `json:"version" yaml:"version"`
}

// ReportWeight is one row of the weight table.
type ReportWeight struct {
	Field  string  `json:"field" yaml:"field"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// ReportSupplier is one supplier with its calculation breakdown, in ranked order.
type ReportSupplier struct {
	scoring.Supplier `yaml:",inline"`
	Components       []scoring.Component `json:"components" yaml:"components"`
	Rank             int                 `json:"rank" yaml:"rank"`
	TopVendor        bool                `json:"top_vendor" yaml:"top_vendor"`
}

// ReportRanking lists the top cohort.
type ReportRanking struct {
	Policy     string   `json:"policy" yaml:"policy"`
	TopScore   float64  `json:"top_score" yaml:"top_score"`
	TopVendors []string `json:"top_vendors" yaml:"top_vendors"`
	Order      []string `json:"order" yaml:"order"`
}

// NewReport builds the structured report for res.
func NewReport(res *evaluate.Result) Report {
	w := weightsOf(res)
	r := Report{
		Header:     ReportHeader{Tool: Tool, Version: Version},
		Validation: res.Metadata,
		Formula:    Formula(w),
		Evaluated:  len(res.Suppliers),
		Suppliers:  make([]ReportSupplier, 0, len(res.Ranked)),
		FinalRanking: ReportRanking{
			Policy:     res.Policy,
			TopScore:   res.TopScore,
			TopVendors: make([]string, 0, len(res.TopVendors)),
			Order:      make([]string, 0, len(res.Ranked)),
		},
	}
	for _, fw := range w {
		r.Weights = append(r.Weights, ReportWeight{Field: fw.Field, Weight: fw.Weight})
	}
	for _, rk := range res.Ranked {
		r.Suppliers = append(r.Suppliers, ReportSupplier{
			Supplier:   rk.Supplier,
			Components: w.Breakdown(rk.Supplier.Scores()),
			Rank:       rk.Position,
			TopVendor:  rk.Top,
		})
	}
	for _, s := range res.TopVendors {
		r.FinalRanking.TopVendors = append(r.FinalRanking.TopVendors, s.ID)
	}
	for _, rk := range res.Ranked {
		r.FinalRanking.Order = append(r.FinalRanking.Order, rk.Supplier.ID)
	}
	return r
}

// emit writes content to outputFile, or to out when no file is set.
func emit(out io.Writer, outputFile, content string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	if out == nil {
		out = os.Stdout
	}
	_, err := io.WriteString(out, content)
	return err
}
