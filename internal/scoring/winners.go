package scoring

import (
	"sort"

	"github.com/vetmed/research-day/internal/domain"
)

// MatchesCategory reports whether a presenter belongs to an award
// category: exact presentation-type match, and for each of research
// type and stage either an empty (wildcard) constraint or equality.
func MatchesCategory(p domain.Presenter, cat domain.AwardCategory) bool {
	if p.PresentationType != cat.PresentationType {
		return false
	}
	if cat.ResearchType != "" && p.ResearchType != cat.ResearchType {
		return false
	}
	if cat.ResearchStage != "" && p.ResearchStage != cat.ResearchStage {
		return false
	}
	return true
}

// PresentersInCategory filters a presenter list down to one category's
// members.
func PresentersInCategory(presenters []domain.Presenter, cat domain.AwardCategory) []domain.Presenter {
	var out []domain.Presenter
	for _, p := range presenters {
		if MatchesCategory(p, cat) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryWinners ranks one category: complete final scores matching
// the category, stable-sorted descending, top Places entries with
// 1-based place numbers. The sort is stable, so exact ties keep the
// caller's original order; there is no secondary tie-break key.
// A category with no complete matching score yields an empty list.
func CategoryWinners(cat domain.AwardCategory, finalScores []domain.FinalScore) []domain.CategoryWinner {
	var ranked []domain.FinalScore
	for _, fs := range finalScores {
		if fs.Final == nil {
			continue
		}
		if !MatchesCategory(fs.Presenter, cat) {
			continue
		}
		ranked = append(ranked, fs)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Final > *ranked[j].Final
	})

	n := cat.Places
	if len(ranked) < n {
		n = len(ranked)
	}
	winners := make([]domain.CategoryWinner, 0, n)
	for i := 0; i < n; i++ {
		winners = append(winners, domain.CategoryWinner{
			Category:   cat.Name,
			Place:      i + 1,
			Presenter:  ranked[i].Presenter,
			FinalScore: *ranked[i].Final,
		})
	}
	return winners
}

// AllCategoryWinners computes winners for every configured category,
// keyed by category id. This is the single authoritative winners map
// consumed by result displays.
func AllCategoryWinners(categories []domain.AwardCategory, presenters []domain.Presenter, scores []domain.Score) map[string][]domain.CategoryWinner {
	finalScores := AllFinalScores(presenters, scores)
	winners := make(map[string][]domain.CategoryWinner, len(categories))
	for _, cat := range categories {
		winners[cat.ID] = CategoryWinners(cat, finalScores)
	}
	return winners
}
