package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/vendorsel/internal/types"
)

// weightTolerance is how far a weight table may drift from a sum of 1.0.
const weightTolerance = 0.001

// FieldWeight binds a score field to its weight in the composite.
type FieldWeight struct {
	Field  string
	Label  string // human-readable name used in reports
	Weight float64
}

// Weights is an ordered weight table. Order drives report layout.
type Weights []FieldWeight

// DefaultWeights returns the fixed 0.4 / 0.3 / 0.3 weight table.
func DefaultWeights() Weights {
	return Weights{
		{Field: types.FieldPriceScore, Label: "Price Score", Weight: 0.4},
		{Field: types.FieldDeliveryReliability, Label: "Delivery Reliability Score", Weight: 0.3},
		{Field: types.FieldQualityRating, Label: "Quality Rating Score", Weight: 0.3},
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var total float64
	for _, fw := range w {
		total += fw.Weight
	}
	return total
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("weight table is empty")
	}
	for _, fw := range w {
		if fw.Weight < 0 {
			return fmt.Errorf("negative weight for %s: %f", fw.Field, fw.Weight)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	return nil
}

// Lookup returns the weight entry for field.
func (w Weights) Lookup(field string) (FieldWeight, bool) {
	for _, fw := range w {
		if fw.Field == field {
			return fw, true
		}
	}
	return FieldWeight{}, false
}
