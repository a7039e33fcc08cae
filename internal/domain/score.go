package domain

import "time"

// Rubric weights per criterion. The weights sum to 20, so a sheet of
// straight 5s totals MaxWeightedScore.
const (
	WeightContentWhy       = 4
	WeightContentWhatHow   = 5
	WeightContentNextSteps = 2
	WeightPresentationFlow = 3
	WeightPreparedness     = 2
	WeightVerbalComm       = 2
	WeightVisualAids       = 2

	// MaxWeightedScore is the weighted total of an all-fives sheet.
	MaxWeightedScore = 100

	// MinWeightedScore is the weighted total of an all-ones sheet.
	MinWeightedScore = 20
)

// NumCriteria is the number of rubric dimensions on a score sheet.
const NumCriteria = 7

// ScoreCriteria holds one judge's seven raw rubric ratings for a
// single presenter. Each rating is expected in [1,5]; the engine does
// not enforce the range, callers validate at the boundary.
type ScoreCriteria struct {
	ContentWhy       int `json:"contentWhy" yaml:"content_why" validate:"min=1,max=5"`
	ContentWhatHow   int `json:"contentWhatHow" yaml:"content_what_how" validate:"min=1,max=5"`
	ContentNextSteps int `json:"contentNextSteps" yaml:"content_next_steps" validate:"min=1,max=5"`
	PresentationFlow int `json:"presentationFlow" yaml:"presentation_flow" validate:"min=1,max=5"`
	Preparedness     int `json:"preparedness" yaml:"preparedness" validate:"min=1,max=5"`
	VerbalComm       int `json:"verbalComm" yaml:"verbal_comm" validate:"min=1,max=5"`
	VisualAids       int `json:"visualAids" yaml:"visual_aids" validate:"min=1,max=5"`
}

// Values returns the seven ratings in rubric order.
func (c ScoreCriteria) Values() [NumCriteria]int {
	return [NumCriteria]int{
		c.ContentWhy,
		c.ContentWhatHow,
		c.ContentNextSteps,
		c.PresentationFlow,
		c.Preparedness,
		c.VerbalComm,
		c.VisualAids,
	}
}

// Score is one judge's submitted sheet for one presenter. Identity is
// the (presenter, judge) pair, so re-submission overwrites rather than
// duplicates.
type Score struct {
	// ID is "<presenterID>-<judgeID>".
	ID          string    `json:"id"`
	PresenterID string    `json:"presenterId"`
	JudgeName   string    `json:"judgeName"`
	JudgeID     string    `json:"judgeId"`
	Timestamp   time.Time `json:"timestamp"`

	Criteria ScoreCriteria `json:"criteria"`

	// WeightedTotal is the derived rubric sum; 0 when IsNoShow.
	WeightedTotal int `json:"weightedTotal"`

	// IsNoShow records that the presenter did not appear. No-show
	// sheets are exempt from criteria requirements and excluded from
	// normalization, but still count as submitted for completion
	// tracking.
	IsNoShow bool `json:"isNoShow"`
}

// NormalizedScore is a raw weighted total expressed relative to the
// scoring judge's own mean. Derived, never persisted.
type NormalizedScore struct {
	ScoreID     string `json:"scoreId"`
	PresenterID string `json:"presenterId"`
	JudgeID     string `json:"judgeId"`
	JudgeName   string `json:"judgeName"`

	WeightedTotal int     `json:"weightedTotal"`
	JudgeAverage  float64 `json:"judgeAverage"`

	// Value is weightedTotal / judgeAverage; 1.0 means exactly this
	// judge's own average, 0 when the judge has no qualifying scores.
	Value float64 `json:"normalizedScore"`
}

// FinalScore composes a presenter's normalized scores from their
// assigned judges. Final stays nil until every assigned slot has a
// matching normalized score.
type FinalScore struct {
	PresenterID string    `json:"presenterId"`
	Presenter   Presenter `json:"presenter"`

	Judge1Score *NormalizedScore `json:"judge1Score,omitempty"`
	Judge2Score *NormalizedScore `json:"judge2Score,omitempty"`
	Judge3Score *NormalizedScore `json:"judge3Score,omitempty"`

	Final *float64 `json:"finalScore,omitempty"`
}

// DepartmentScore is the department-level aggregate used for the
// Golden Pipette award.
type DepartmentScore struct {
	Department     string  `json:"department"`
	AverageScore   float64 `json:"averageScore"`
	PresenterCount int     `json:"presenterCount"`
}

// Feedback is a free-text comment for a presenter from a judge or
// attendee. It never affects scoring.
type Feedback struct {
	ID                  string    `json:"id"`
	PresenterID         string    `json:"presenterId"`
	PresenterName       string    `json:"presenterName"`
	SubmitterType       string    `json:"submitterType"`
	SubmitterName       string    `json:"submitterName"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areasForImprovement"`
	Timestamp           time.Time `json:"timestamp"`
}
