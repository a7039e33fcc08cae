package scoring

import "github.com/vetmed/research-day/internal/domain"

// JudgeAverage returns the mean weighted total over a judge's
// non-no-show scores: the judge's leniency baseline. A judge with no
// qualifying scores averages 0, which callers must treat as
// "undefined"; dividing by it yields a 0 normalized score rather than
// an error.
func JudgeAverage(scores []domain.Score, judgeID string) float64 {
	var sum, n int
	for _, s := range scores {
		if s.JudgeID != judgeID || s.IsNoShow {
			continue
		}
		sum += s.WeightedTotal
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Normalize expresses one score relative to its judge's own mean.
// A value of 1.0 means exactly that judge's average, which is the
// device that makes a harsh judge's sheet comparable with a lenient
// one's: each normalized value reflects standing within the judge's
// own distribution, not absolute magnitude.
func Normalize(s domain.Score, judgeAverage float64) domain.NormalizedScore {
	var value float64
	if judgeAverage > 0 {
		value = float64(s.WeightedTotal) / judgeAverage
	}
	return domain.NormalizedScore{
		ScoreID:       s.ID,
		PresenterID:   s.PresenterID,
		JudgeID:       s.JudgeID,
		JudgeName:     s.JudgeName,
		WeightedTotal: s.WeightedTotal,
		JudgeAverage:  judgeAverage,
		Value:         value,
	}
}

// AllNormalizedScores computes each distinct judge's average once and
// maps every non-no-show score through Normalize. Judges are
// discovered by scanning the score set itself, so a judge with zero
// submitted scores never appears. Deterministic for a given snapshot.
func AllNormalizedScores(scores []domain.Score) []domain.NormalizedScore {
	averages := make(map[string]float64)
	for _, s := range scores {
		if _, ok := averages[s.JudgeID]; !ok {
			averages[s.JudgeID] = JudgeAverage(scores, s.JudgeID)
		}
	}

	out := make([]domain.NormalizedScore, 0, len(scores))
	for _, s := range scores {
		if s.IsNoShow {
			continue
		}
		out = append(out, Normalize(s, averages[s.JudgeID]))
	}
	return out
}
