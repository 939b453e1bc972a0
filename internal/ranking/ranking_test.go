package ranking

import (
	"testing"

	"github.com/dotcommander/vendorsel/internal/scoring"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supplier(id string, score float64) scoring.Supplier {
	return scoring.Supplier{ID: id, OverallScore: score}
}

func ids(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Supplier.ID
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name      string
		input     []scoring.Supplier
		wantOrder []string
		wantTop   []string
	}{
		{
			name:      "descending by score",
			input:     []scoring.Supplier{supplier("a", 0.5), supplier("b", 0.9), supplier("c", 0.7)},
			wantOrder: []string{"b", "c", "a"},
			wantTop:   []string{"b"},
		},
		{
			name:      "ties keep arrival order",
			input:     []scoring.Supplier{supplier("a", 0.6), supplier("b", 0.85), supplier("c", 0.6), supplier("d", 0.85)},
			wantOrder: []string{"b", "d", "a", "c"},
			wantTop:   []string{"b", "d"},
		},
		{
			name:      "all equal",
			input:     []scoring.Supplier{supplier("x", 0.3), supplier("y", 0.3), supplier("z", 0.3)},
			wantOrder: []string{"x", "y", "z"},
			wantTop:   []string{"x", "y", "z"},
		},
		{
			name:      "single supplier",
			input:     []scoring.Supplier{supplier("only", 0)},
			wantOrder: []string{"only"},
			wantTop:   []string{"only"},
		},
		{
			name:      "empty batch",
			input:     nil,
			wantOrder: []string{},
			wantTop:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.input)
			if diff := cmp.Diff(tt.wantOrder, ids(ranked)); diff != "" {
				t.Errorf("Rank() order mismatch (-want +got):\n%s", diff)
			}

			var gotTop []string
			for _, s := range TopVendors(tt.input) {
				gotTop = append(gotTop, s.ID)
			}
			if diff := cmp.Diff(tt.wantTop, gotTop); diff != "" {
				t.Errorf("TopVendors() mismatch (-want +got):\n%s", diff)
			}

			for i, r := range ranked {
				assert.Equal(t, i+1, r.Position)
			}
		})
	}
}

func TestRank_TopFlagMatchesCohort(t *testing.T) {
	input := []scoring.Supplier{
		supplier("s1", 0.81), supplier("s2", 0.91), supplier("s3", 0.91), supplier("s4", 0.9),
	}
	for _, r := range Rank(input) {
		assert.Equal(t, r.Supplier.OverallScore == 0.91, r.Top, r.Supplier.ID)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := []scoring.Supplier{supplier("a", 0.1), supplier("b", 0.9)}
	snapshot := append([]scoring.Supplier(nil), input...)

	_ = Rank(input)
	assert.Equal(t, snapshot, input)
}

func TestTopScore(t *testing.T) {
	assert.Equal(t, 0.0, TopScore(nil))
	assert.Equal(t, 0.92, TopScore([]scoring.Supplier{supplier("a", 0.4), supplier("b", 0.92), supplier("c", 0.1)}))
}

func TestTopCohortPolicy(t *testing.T) {
	require.Equal(t, "top-cohort", TopCohort.Name())

	// The cohort is every maximum, never just the first after sorting.
	input := []scoring.Supplier{supplier("late", 0.85), supplier("low", 0.2), supplier("also", 0.85)}
	got := TopCohort.Select(input)
	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
	assert.Equal(t, "also", got[1].ID)
}
