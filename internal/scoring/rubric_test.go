package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetmed/research-day/internal/domain"
)

func uniformCriteria(v int) domain.ScoreCriteria {
	return domain.ScoreCriteria{
		ContentWhy:       v,
		ContentWhatHow:   v,
		ContentNextSteps: v,
		PresentationFlow: v,
		Preparedness:     v,
		VerbalComm:       v,
		VisualAids:       v,
	}
}

func TestWeightedTotal(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.ScoreCriteria
		expected int
	}{
		{
			name:     "all fives reach the rubric maximum",
			criteria: uniformCriteria(5),
			expected: domain.MaxWeightedScore,
		},
		{
			name:     "all ones reach the rubric minimum",
			criteria: uniformCriteria(1),
			expected: domain.MinWeightedScore,
		},
		{
			name:     "all threes land at the midpoint",
			criteria: uniformCriteria(3),
			expected: 60,
		},
		{
			name: "mixed ratings apply per-criterion weights",
			criteria: domain.ScoreCriteria{
				ContentWhy:       5, // 20
				ContentWhatHow:   4, // 20
				ContentNextSteps: 3, // 6
				PresentationFlow: 2, // 6
				Preparedness:     5, // 10
				VerbalComm:       1, // 2
				VisualAids:       4, // 8
			},
			expected: 72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeightedTotal(tt.criteria))
		})
	}
}

func TestWeightedTotal_RangeOverAllUniformRatings(t *testing.T) {
	// Ratings in [1,5] keep the total inside [20,100].
	for v := 1; v <= 5; v++ {
		total := WeightedTotal(uniformCriteria(v))
		assert.GreaterOrEqual(t, total, domain.MinWeightedScore)
		assert.LessOrEqual(t, total, domain.MaxWeightedScore)
	}
}

func TestBreakdown(t *testing.T) {
	criteria := domain.ScoreCriteria{
		ContentWhy:       3,
		ContentWhatHow:   4,
		ContentNextSteps: 2,
		PresentationFlow: 5,
		Preparedness:     1,
		VerbalComm:       3,
		VisualAids:       2,
	}

	rows := Breakdown(criteria)
	require.Len(t, rows, domain.NumCriteria)

	sum := 0
	for _, row := range rows {
		assert.Equal(t, row.RawScore*row.Weight, row.Weighted)
		sum += row.Weighted
	}
	assert.Equal(t, WeightedTotal(criteria), sum,
		"breakdown rows must sum to the weighted total")
}
