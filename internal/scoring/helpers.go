package scoring

import (
	"math"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places composite scores and components keep.
const Places int32 = 2

// Calculate returns round(sum((score/100) * weight), 2) over the table.
// Arithmetic is exact decimal; rounding is half away from zero, so a
// composite landing on x.xx5 always rounds up in magnitude. Missing fields
// count as zero. A NaN or infinite score yields NaN. Pure: identical inputs
// give identical results.
func (w Weights) Calculate(scores map[string]float64) float64 {
	total := decimal.Zero
	for _, fw := range w {
		score := scores[fw.Field]
		if !finite(score) {
			return math.NaN()
		}
		total = total.Add(weighted(score, fw.Weight))
	}
	return total.Round(Places).InexactFloat64()
}

// Breakdown returns each weighted component rounded to two places, in table
// order. Components of a non-finite score are NaN.
func (w Weights) Breakdown(scores map[string]float64) []Component {
	components := make([]Component, 0, len(w))
	for _, fw := range w {
		score := scores[fw.Field]
		value := math.NaN()
		if finite(score) {
			value = weighted(score, fw.Weight).Round(Places).InexactFloat64()
		}
		components = append(components, Component{
			Field:  fw.Field,
			Label:  fw.Label,
			Score:  score,
			Weight: fw.Weight,
			Value:  value,
		})
	}
	return components
}

// Overall scores a price/delivery/quality triple with the default weights.
// It returns NaN when any score is NaN or infinite.
func Overall(price, delivery, quality float64) float64 {
	return NewSupplier("", price, delivery, quality).OverallScore
}

// Breakdown returns the default-weight components for a supplier.
func Breakdown(s Supplier) []Component {
	return DefaultWeights().Breakdown(s.Scores())
}

// Round rounds v half away from zero to the given number of decimal places.
// NaN and ±Inf are returned unchanged.
func Round(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// weighted computes (score/100)*weight without binary rounding error.
// Score must be finite.
func weighted(score, weight float64) decimal.Decimal {
	return decimal.NewFromFloat(score).Shift(-2).Mul(decimal.NewFromFloat(weight))
}
