package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedOverall computes round(0.004p + 0.003d + 0.003q, 2) for integer
// inputs in integer arithmetic, rounding half away from zero.
func expectedOverall(p, d, q int) float64 {
	thousandths := 4*p + 3*d + 3*q
	cents := (thousandths + 5) / 10
	return float64(cents) / 100
}

func TestOverall_MatchesFormulaOverGrid(t *testing.T) {
	for p := 0; p <= 100; p += 5 {
		for d := 0; d <= 100; d += 7 {
			for q := 0; q <= 100; q += 3 {
				got := Overall(float64(p), float64(d), float64(q))
				require.Equalf(t, expectedOverall(p, d, q), got, "p=%d d=%d q=%d", p, d, q)
				require.GreaterOrEqual(t, got, 0.0)
				require.LessOrEqual(t, got, 1.0)
			}
		}
	}
}

func TestOverall_Idempotent(t *testing.T) {
	first := Overall(67, 90, 75)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Overall(67, 90, 75))
	}
}

func TestOverall_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name                     string
		price, delivery, quality float64
		want                     float64
	}{
		{"0.285 rounds up", 0, 0, 95, 0.29},
		{"0.005 rounds up", 1.25, 0, 0, 0.01},
		{"0.004 rounds down", 1, 0, 0, 0.0},
		{"0.815 rounds up", 80, 85, 80, 0.82},
		{"0.8449 stays below", 84.49, 84.49, 84.49, 0.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overall(tt.price, tt.delivery, tt.quality))
		})
	}
}

func TestBreakdown(t *testing.T) {
	s := NewSupplier("s1", 78, 85, 80)
	components := Breakdown(s)

	require.Len(t, components, 3)
	assert.Equal(t, Component{Field: "price_score", Label: "Price Score", Score: 78, Weight: 0.4, Value: 0.31}, components[0])
	assert.Equal(t, Component{Field: "delivery_reliability_score", Label: "Delivery Reliability Score", Score: 85, Weight: 0.3, Value: 0.26}, components[1])
	assert.Equal(t, Component{Field: "quality_rating_score", Label: "Quality Rating Score", Score: 80, Weight: 0.3, Value: 0.24}, components[2])
}

func TestCalculate_MissingFieldCountsAsZero(t *testing.T) {
	got := DefaultWeights().Calculate(map[string]float64{"price_score": 50})
	assert.Equal(t, 0.2, got)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.13, Round(0.125, 2))
	assert.Equal(t, -0.13, Round(-0.125, 2))
	assert.Equal(t, 1.0, Round(0.999, 2))
	assert.Equal(t, 0.5, Round(0.5, 2))
}

func TestOverall_NonFiniteScores(t *testing.T) {
	tests := []struct {
		name                     string
		price, delivery, quality float64
	}{
		{"nan price", math.NaN(), 50, 50},
		{"positive infinity", 50, math.Inf(1), 50},
		{"negative infinity", 50, 50, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			require.NotPanics(t, func() { got = Overall(tt.price, tt.delivery, tt.quality) })
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestBreakdown_NonFiniteScore(t *testing.T) {
	var components []Component
	require.NotPanics(t, func() { components = Breakdown(NewSupplier("s1", math.Inf(1), 85, 80)) })

	require.Len(t, components, 3)
	assert.True(t, math.IsNaN(components[0].Value))
	assert.Equal(t, 0.26, components[1].Value)
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.Equal(t, math.Inf(-1), Round(math.Inf(-1), 2))
}
