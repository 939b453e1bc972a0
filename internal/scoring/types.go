package scoring

import "github.com/dotcommander/vendorsel/internal/types"

// Supplier is a validated supplier with its composite score.
// Build it with NewSupplier so OverallScore is always derived from the inputs.
type Supplier struct {
	ID                       string  `json:"supplier_id" yaml:"supplier_id"`
	PriceScore               float64 `json:"price_score" yaml:"price_score"`
	DeliveryReliabilityScore float64 `json:"delivery_reliability_score" yaml:"delivery_reliability_score"`
	QualityRatingScore       float64 `json:"quality_rating_score" yaml:"quality_rating_score"`
	OverallScore             float64 `json:"overall_score" yaml:"overall_score"` // 0-1, 2 dp
}

// NewSupplier constructs a Supplier and computes its overall score with the default weights.
// Scores must already be validated to lie in [0, 100].
func NewSupplier(id string, price, delivery, quality float64) Supplier {
	s := Supplier{
		ID:                       id,
		PriceScore:               price,
		DeliveryReliabilityScore: delivery,
		QualityRatingScore:       quality,
	}
	s.OverallScore = DefaultWeights().Calculate(s.Scores())
	return s
}

// Scores returns the three input scores keyed by field name.
func (s Supplier) Scores() map[string]float64 {
	return map[string]float64{
		types.FieldPriceScore:          s.PriceScore,
		types.FieldDeliveryReliability: s.DeliveryReliabilityScore,
		types.FieldQualityRating:       s.QualityRatingScore,
	}
}

// Component is one weighted term of the composite score.
type Component struct {
	Field  string  `json:"field" yaml:"field"`
	Label  string  `json:"label" yaml:"label"`
	Score  float64 `json:"score" yaml:"score"`   // raw 0-100 input
	Weight float64 `json:"weight" yaml:"weight"` // fixed weight
	Value  float64 `json:"value" yaml:"value"`   // (score/100)*weight, 2 dp
}
