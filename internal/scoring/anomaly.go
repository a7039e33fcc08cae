package scoring

import (
	"fmt"

	"github.com/vetmed/research-day/internal/domain"
)

// lowVarianceThreshold is the population-variance cutoff below which a
// non-neutral sheet is flagged as suspiciously uniform.
const lowVarianceThreshold = 0.1

// DetectAnomalies scans raw score sheets for statistical red flags:
// straight 5s (possible rubber-stamping), straight 1s (possible
// data-entry error or a genuine problem), and near-zero variance on a
// non-neutral sheet. No-show sheets are skipped. The output is
// advisory only; it never alters scores, normalization, or winners.
func DetectAnomalies(scores []domain.Score) []domain.Anomaly {
	var anomalies []domain.Anomaly

	for _, score := range scores {
		if score.IsNoShow {
			continue
		}
		values := score.Criteria.Values()

		if allEqual(values, 5) {
			anomalies = append(anomalies, domain.Anomaly{
				Type:        domain.AnomalyAllFives,
				Description: fmt.Sprintf("Judge %s gave all 5s to presenter %s", score.JudgeName, score.PresenterID),
				ScoreID:     score.ID,
				Severity:    domain.SeverityMedium,
			})
		}

		if allEqual(values, 1) {
			anomalies = append(anomalies, domain.Anomaly{
				Type:        domain.AnomalyAllOnes,
				Description: fmt.Sprintf("Judge %s gave all 1s to presenter %s", score.JudgeName, score.PresenterID),
				ScoreID:     score.ID,
				Severity:    domain.SeverityHigh,
			})
		}

		// Uniform-but-not-neutral sheets: population variance
		// (divisor 7) below threshold and the first criterion away
		// from the scale midpoint.
		if populationVariance(values) < lowVarianceThreshold && values[0] != 3 {
			anomalies = append(anomalies, domain.Anomaly{
				Type:        domain.AnomalyLowVariance,
				Description: fmt.Sprintf("Judge %s gave nearly identical scores across all criteria", score.JudgeName),
				ScoreID:     score.ID,
				Severity:    domain.SeverityLow,
			})
		}
	}
	return anomalies
}

func allEqual(values [domain.NumCriteria]int, want int) bool {
	for _, v := range values {
		if v != want {
			return false
		}
	}
	return true
}

// populationVariance is the mean squared deviation from the mean with
// divisor len(values), not len(values)-1.
func populationVariance(values [domain.NumCriteria]int) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return sq / float64(len(values))
}
