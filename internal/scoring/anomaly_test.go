package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetmed/research-day/internal/domain"
)

func sheetWith(criteria domain.ScoreCriteria) domain.Score {
	return domain.Score{
		ID:            "p1-judge",
		PresenterID:   "p1",
		JudgeName:     "judge",
		JudgeID:       "judge",
		Criteria:      criteria,
		WeightedTotal: WeightedTotal(criteria),
	}
}

func countByType(anomalies []domain.Anomaly, typ domain.AnomalyType) int {
	n := 0
	for _, a := range anomalies {
		if a.Type == typ {
			n++
		}
	}
	return n
}

func TestDetectAnomalies(t *testing.T) {
	t.Run("all fives flag rubber-stamping at medium severity", func(t *testing.T) {
		anomalies := DetectAnomalies([]domain.Score{sheetWith(uniformCriteria(5))})
		require.Equal(t, 1, countByType(anomalies, domain.AnomalyAllFives))
		for _, a := range anomalies {
			if a.Type == domain.AnomalyAllFives {
				assert.Equal(t, domain.SeverityMedium, a.Severity)
				assert.Equal(t, "p1-judge", a.ScoreID)
			}
		}
		// A uniform non-neutral sheet also trips the variance check.
		assert.Equal(t, 1, countByType(anomalies, domain.AnomalyLowVariance))
	})

	t.Run("all ones flag at high severity", func(t *testing.T) {
		anomalies := DetectAnomalies([]domain.Score{sheetWith(uniformCriteria(1))})
		require.Equal(t, 1, countByType(anomalies, domain.AnomalyAllOnes))
		assert.Equal(t, 0, countByType(anomalies, domain.AnomalyAllFives))
	})

	t.Run("uniform threes are neutral and raise nothing", func(t *testing.T) {
		anomalies := DetectAnomalies([]domain.Score{sheetWith(uniformCriteria(3))})
		assert.Empty(t, anomalies)
	})

	t.Run("uniform fours flag only low variance", func(t *testing.T) {
		anomalies := DetectAnomalies([]domain.Score{sheetWith(uniformCriteria(4))})
		require.Len(t, anomalies, 1)
		assert.Equal(t, domain.AnomalyLowVariance, anomalies[0].Type)
		assert.Equal(t, domain.SeverityLow, anomalies[0].Severity)
	})

	t.Run("a varied sheet raises nothing", func(t *testing.T) {
		anomalies := DetectAnomalies([]domain.Score{sheetWith(domain.ScoreCriteria{
			ContentWhy:       5,
			ContentWhatHow:   3,
			ContentNextSteps: 4,
			PresentationFlow: 2,
			Preparedness:     5,
			VerbalComm:       4,
			VisualAids:       3,
		})})
		assert.Empty(t, anomalies)
	})

	t.Run("no-show sheets are skipped entirely", func(t *testing.T) {
		s := sheetWith(uniformCriteria(5))
		s.IsNoShow = true
		assert.Empty(t, DetectAnomalies([]domain.Score{s}))
	})
}

func TestPopulationVariance(t *testing.T) {
	// Mean squared deviation with divisor 7.
	values := [domain.NumCriteria]int{5, 5, 5, 5, 5, 5, 4}
	mean := (5.0*6 + 4.0) / 7.0
	want := (6*(5.0-mean)*(5.0-mean) + (4.0-mean)*(4.0-mean)) / 7.0
	assert.InDelta(t, want, populationVariance(values), 1e-12)

	// A single one-step deviation already clears the threshold, so
	// only strictly uniform sheets flag as low variance.
	assert.Greater(t, populationVariance(values), lowVarianceThreshold)
}
