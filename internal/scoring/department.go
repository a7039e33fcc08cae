package scoring

import (
	"sort"

	"github.com/vetmed/research-day/internal/domain"
)

// DepartmentScores groups complete final scores by department and
// returns per-department means, sorted descending by average. The
// "Other" bucket and presenters without a final score are excluded.
// Fully recomputed from the final-score set on every call.
func DepartmentScores(finalScores []domain.FinalScore) []domain.DepartmentScore {
	type acc struct {
		sum   float64
		count int
	}
	totals := make(map[string]*acc)
	var order []string

	for _, fs := range finalScores {
		if fs.Final == nil {
			continue
		}
		dept := fs.Presenter.Department
		if dept == domain.DepartmentOther {
			continue
		}
		a, ok := totals[dept]
		if !ok {
			a = &acc{}
			totals[dept] = a
			order = append(order, dept)
		}
		a.sum += *fs.Final
		a.count++
	}

	out := make([]domain.DepartmentScore, 0, len(order))
	for _, dept := range order {
		a := totals[dept]
		out = append(out, domain.DepartmentScore{
			Department:     dept,
			AverageScore:   a.sum / float64(a.count),
			PresenterCount: a.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageScore > out[j].AverageScore
	})
	return out
}

// TopDepartment returns the department award winner: the top entry of
// the department ranking, or nil while no department has a qualifying
// presenter yet.
func TopDepartment(presenters []domain.Presenter, scores []domain.Score) *domain.DepartmentScore {
	deptScores := DepartmentScores(AllFinalScores(presenters, scores))
	if len(deptScores) == 0 {
		return nil
	}
	top := deptScores[0]
	return &top
}
