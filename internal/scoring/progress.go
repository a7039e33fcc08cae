package scoring

import "github.com/vetmed/research-day/internal/domain"

// ScoreStatus summarizes how far along one presenter's scoring is.
type ScoreStatus string

const (
	StatusPending  ScoreStatus = "pending"
	StatusPartial  ScoreStatus = "partial"
	StatusComplete ScoreStatus = "complete"
	StatusNoShow   ScoreStatus = "no-show"
)

// PresenterScoreStatus pairs a presenter with their current status and
// the judges still outstanding. Judge lists are assigned names, in
// slot order.
type PresenterScoreStatus struct {
	PresenterID   string      `json:"presenterId"`
	Status        ScoreStatus `json:"status"`
	JudgesScored  []string    `json:"judgesScored"`
	JudgesMissing []string    `json:"judgesMissing"`
}

// CategoryComplete reports whether every presenter in the category has
// collected their required number of non-no-show scores. An empty
// category is never complete.
func CategoryComplete(cat domain.AwardCategory, presenters []domain.Presenter, scores []domain.Score) bool {
	members := PresentersInCategory(presenters, cat)
	for _, p := range members {
		if countQualifying(p.ID, scores) < p.PresentationType.RequiredJudges() {
			return false
		}
	}
	return len(members) > 0
}

// CategoryCompletion returns the category's progress as a percentage:
// received non-no-show scores over required scores, with each
// presenter's received count capped at their requirement. An empty
// category reports 0.
func CategoryCompletion(cat domain.AwardCategory, presenters []domain.Presenter, scores []domain.Score) float64 {
	members := PresentersInCategory(presenters, cat)
	if len(members) == 0 {
		return 0
	}

	var required, received int
	for _, p := range members {
		need := p.PresentationType.RequiredJudges()
		required += need
		got := countQualifying(p.ID, scores)
		if got > need {
			got = need
		}
		received += got
	}
	if required == 0 {
		return 0
	}
	return float64(received) / float64(required) * 100
}

// OverallCompletion aggregates completion across the whole presenter
// list, with the same per-presenter cap as CategoryCompletion.
func OverallCompletion(presenters []domain.Presenter, scores []domain.Score) float64 {
	if len(presenters) == 0 {
		return 0
	}
	var required, received int
	for _, p := range presenters {
		need := p.PresentationType.RequiredJudges()
		required += need
		got := countQualifying(p.ID, scores)
		if got > need {
			got = need
		}
		received += got
	}
	if required == 0 {
		return 0
	}
	return float64(received) / float64(required) * 100
}

// StatusFor classifies one presenter's scoring state. A presenter with
// any no-show sheet is reported as a no-show; otherwise pending,
// partial, or complete by received count against the requirement.
func StatusFor(p domain.Presenter, scores []domain.Score) PresenterScoreStatus {
	status := PresenterScoreStatus{PresenterID: p.ID}

	noShow := false
	for _, s := range scores {
		if s.PresenterID != p.ID {
			continue
		}
		if s.IsNoShow {
			noShow = true
		}
	}

	assigned := p.AssignedJudges()
	for _, judge := range assigned {
		if hasScoreFrom(p.ID, judge, scores) {
			status.JudgesScored = append(status.JudgesScored, judge)
		} else {
			status.JudgesMissing = append(status.JudgesMissing, judge)
		}
	}

	switch {
	case noShow:
		status.Status = StatusNoShow
	case len(status.JudgesScored) == 0:
		status.Status = StatusPending
	case countQualifying(p.ID, scores) >= p.PresentationType.RequiredJudges():
		status.Status = StatusComplete
	default:
		status.Status = StatusPartial
	}
	return status
}

func countQualifying(presenterID string, scores []domain.Score) int {
	n := 0
	for _, s := range scores {
		if s.PresenterID == presenterID && !s.IsNoShow {
			n++
		}
	}
	return n
}

func hasScoreFrom(presenterID, judgeName string, scores []domain.Score) bool {
	for _, s := range scores {
		if s.PresenterID == presenterID && !s.IsNoShow && sameJudge(s.JudgeName, judgeName) {
			return true
		}
	}
	return false
}
