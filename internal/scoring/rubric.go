package scoring

import "github.com/vetmed/research-day/internal/domain"

// WeightedTotal turns one judge's seven raw criterion ratings into the
// weighted rubric sum. With ratings in [1,5] the result lands in
// [domain.MinWeightedScore, domain.MaxWeightedScore]. Out-of-range
// ratings propagate silently; range enforcement is a boundary concern.
func WeightedTotal(c domain.ScoreCriteria) int {
	return c.ContentWhy*domain.WeightContentWhy +
		c.ContentWhatHow*domain.WeightContentWhatHow +
		c.ContentNextSteps*domain.WeightContentNextSteps +
		c.PresentationFlow*domain.WeightPresentationFlow +
		c.Preparedness*domain.WeightPreparedness +
		c.VerbalComm*domain.WeightVerbalComm +
		c.VisualAids*domain.WeightVisualAids
}

// CriterionBreakdown is one row of the audit view: a raw rating, its
// weight, and their product.
type CriterionBreakdown struct {
	Criterion string `json:"criterion"`
	RawScore  int    `json:"rawScore"`
	Weight    int    `json:"weight"`
	Weighted  int    `json:"weightedScore"`
}

// Breakdown expands a score sheet into per-criterion rows for audit
// display. Purely a derived view of WeightedTotal's inputs.
func Breakdown(c domain.ScoreCriteria) []CriterionBreakdown {
	return []CriterionBreakdown{
		{Criterion: "Content - WHY (hypothesis/problem)", RawScore: c.ContentWhy, Weight: domain.WeightContentWhy, Weighted: c.ContentWhy * domain.WeightContentWhy},
		{Criterion: "Content - WHAT/HOW (methods/results)", RawScore: c.ContentWhatHow, Weight: domain.WeightContentWhatHow, Weighted: c.ContentWhatHow * domain.WeightContentWhatHow},
		{Criterion: "Content - Next Steps", RawScore: c.ContentNextSteps, Weight: domain.WeightContentNextSteps, Weighted: c.ContentNextSteps * domain.WeightContentNextSteps},
		{Criterion: "Presentation - Logical Flow", RawScore: c.PresentationFlow, Weight: domain.WeightPresentationFlow, Weighted: c.PresentationFlow * domain.WeightPresentationFlow},
		{Criterion: "Presentation - Preparedness", RawScore: c.Preparedness, Weight: domain.WeightPreparedness, Weighted: c.Preparedness * domain.WeightPreparedness},
		{Criterion: "Presentation - Verbal Communication", RawScore: c.VerbalComm, Weight: domain.WeightVerbalComm, Weighted: c.VerbalComm * domain.WeightVerbalComm},
		{Criterion: "Presentation - Visual Aids", RawScore: c.VisualAids, Weight: domain.WeightVisualAids, Weighted: c.VisualAids * domain.WeightVisualAids},
	}
}
