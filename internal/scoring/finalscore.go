package scoring

import "github.com/vetmed/research-day/internal/domain"

// Per-judge weighting coefficients for final-score composition.
// Two-judge schemes weight each judge at 50. Three-judge schemes use
// 33.33 per judge, so three exactly-average judges compose to 99.99,
// not 100. That 0.01 loss is the event's published behavior and is
// preserved as-is; see the composition tests.
const (
	twoJudgeWeight   = 50.0
	threeJudgeWeight = 33.33
)

// ComposeFinal combines a presenter's normalized scores into one final
// score. Each assigned judge slot is resolved by case-insensitive name
// match against the normalized set; unassigned slots are skipped.
// Final stays nil unless every required slot resolves: two for oral
// and regular posters, all three for undergrad posters. Always
// recomputed from scratch over the full normalized set, never
// incrementally.
func ComposeFinal(p domain.Presenter, normalized []domain.NormalizedScore) domain.FinalScore {
	fs := domain.FinalScore{
		PresenterID: p.ID,
		Presenter:   p,
		Judge1Score: findSlot(p, p.Judge1, normalized),
		Judge2Score: findSlot(p, p.Judge2, normalized),
		Judge3Score: findSlot(p, p.Judge3, normalized),
	}

	if p.PresentationType == domain.PresentationUndergradPoster {
		if fs.Judge1Score != nil && fs.Judge2Score != nil && fs.Judge3Score != nil {
			v := fs.Judge1Score.Value*threeJudgeWeight +
				fs.Judge2Score.Value*threeJudgeWeight +
				fs.Judge3Score.Value*threeJudgeWeight
			fs.Final = &v
		}
		return fs
	}

	if fs.Judge1Score != nil && fs.Judge2Score != nil {
		v := fs.Judge1Score.Value*twoJudgeWeight + fs.Judge2Score.Value*twoJudgeWeight
		fs.Final = &v
	}
	return fs
}

// findSlot resolves one assigned judge slot to that judge's normalized
// score for the presenter, or nil when the slot is unassigned or the
// judge has not scored yet.
func findSlot(p domain.Presenter, judgeName string, normalized []domain.NormalizedScore) *domain.NormalizedScore {
	if judgeName == "" {
		return nil
	}
	for i := range normalized {
		ns := &normalized[i]
		if ns.PresenterID == p.ID && sameJudge(ns.JudgeName, judgeName) {
			out := *ns
			return &out
		}
	}
	return nil
}

// AllFinalScores runs normalization and composition for every
// presenter over a snapshot. Pure and idempotent: two calls on the
// same snapshot yield identical results.
func AllFinalScores(presenters []domain.Presenter, scores []domain.Score) []domain.FinalScore {
	normalized := AllNormalizedScores(scores)
	out := make([]domain.FinalScore, len(presenters))
	for i, p := range presenters {
		out[i] = ComposeFinal(p, normalized)
	}
	return out
}
