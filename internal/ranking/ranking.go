// Package ranking orders scored suppliers and selects the top vendors.
//
// Rankers never mutate their input; they return new slices.
package ranking

import (
	"sort"

	"github.com/dotcommander/vendorsel/internal/scoring"
)

// Policy decides which suppliers are reported as top vendors.
type Policy interface {
	// Name identifies the policy in reports and logs.
	Name() string

	// Select returns the top vendors among suppliers, in arrival order.
	Select(suppliers []scoring.Supplier) []scoring.Supplier
}

// TopCohort selects every supplier whose score equals the batch maximum.
// Ties at the top are all selected, not just the first one after sorting.
var TopCohort Policy = topCohort{}

type topCohort struct{}

func (topCohort) Name() string { return "top-cohort" }

func (topCohort) Select(suppliers []scoring.Supplier) []scoring.Supplier {
	if len(suppliers) == 0 {
		return nil
	}
	top := TopScore(suppliers)
	var out []scoring.Supplier
	for _, s := range suppliers {
		if s.OverallScore == top {
			out = append(out, s)
		}
	}
	return out
}

// Ranked is a supplier with its position in the ranked view.
type Ranked struct {
	Position int              `json:"position" yaml:"position"` // 1-based
	Supplier scoring.Supplier `json:"supplier" yaml:"supplier"`
	Top      bool             `json:"top" yaml:"top"` // part of the top cohort
}

// Rank returns suppliers ordered by overall score, highest first.
// Equal scores keep their arrival order.
func Rank(suppliers []scoring.Supplier) []Ranked {
	ordered := make([]scoring.Supplier, len(suppliers))
	copy(ordered, suppliers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OverallScore > ordered[j].OverallScore
	})

	top := TopScore(suppliers)
	ranked := make([]Ranked, len(ordered))
	for i, s := range ordered {
		ranked[i] = Ranked{
			Position: i + 1,
			Supplier: s,
			Top:      s.OverallScore == top,
		}
	}
	return ranked
}

// TopScore returns the maximum overall score, or 0 for an empty batch.
func TopScore(suppliers []scoring.Supplier) float64 {
	if len(suppliers) == 0 {
		return 0
	}
	top := suppliers[0].OverallScore
	for _, s := range suppliers[1:] {
		if s.OverallScore > top {
			top = s.OverallScore
		}
	}
	return top
}

// TopVendors applies the TopCohort policy.
func TopVendors(suppliers []scoring.Supplier) []scoring.Supplier {
	return TopCohort.Select(suppliers)
}
