package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetmed/research-day/internal/domain"
)

func completeFinal(p domain.Presenter, value float64) domain.FinalScore {
	v := value
	return domain.FinalScore{PresenterID: p.ID, Presenter: p, Final: &v}
}

func categoryPresenter(id string) domain.Presenter {
	return domain.Presenter{
		ID:               id,
		PresentationType: domain.PresentationOral,
		ResearchType:     domain.ResearchFoundational,
		ResearchStage:    domain.StageEarly,
	}
}

var foundEarlyOral = domain.AwardCategory{
	ID:               "oral-found-early",
	Name:             "Foundational Research, Early Stage, Oral",
	ResearchType:     domain.ResearchFoundational,
	ResearchStage:    domain.StageEarly,
	PresentationType: domain.PresentationOral,
	Places:           3,
}

func TestMatchesCategory(t *testing.T) {
	tests := []struct {
		name      string
		presenter domain.Presenter
		category  domain.AwardCategory
		expected  bool
	}{
		{
			name:      "exact match on all three axes",
			presenter: categoryPresenter("p1"),
			category:  foundEarlyOral,
			expected:  true,
		},
		{
			name:      "presentation type must match exactly",
			presenter: domain.Presenter{PresentationType: domain.PresentationPoster, ResearchType: domain.ResearchFoundational, ResearchStage: domain.StageEarly},
			category:  foundEarlyOral,
			expected:  false,
		},
		{
			name:      "research type mismatch excludes",
			presenter: domain.Presenter{PresentationType: domain.PresentationOral, ResearchType: domain.ResearchClinical, ResearchStage: domain.StageEarly},
			category:  foundEarlyOral,
			expected:  false,
		},
		{
			name:      "empty stage constraint is a wildcard",
			presenter: domain.Presenter{PresentationType: domain.PresentationUndergradPoster, ResearchType: domain.ResearchPedagogy},
			category: domain.AwardCategory{
				ID: "undergrad-ped", Name: "Pedagogy Research, Undergrad Poster",
				ResearchType: domain.ResearchPedagogy, PresentationType: domain.PresentationUndergradPoster, Places: 3,
			},
			expected: true,
		},
		{
			name:      "staged presenter still matches a wildcard-stage category",
			presenter: domain.Presenter{PresentationType: domain.PresentationUndergradPoster, ResearchType: domain.ResearchFoundational, ResearchStage: domain.StageEarly},
			category: domain.AwardCategory{
				ID: "undergrad-found", Name: "Foundational Research, Undergrad Poster",
				ResearchType: domain.ResearchFoundational, PresentationType: domain.PresentationUndergradPoster, Places: 3,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesCategory(tt.presenter, tt.category))
		})
	}
}

func TestCategoryWinners(t *testing.T) {
	t.Run("five qualifying presenters yield exactly three winners, descending", func(t *testing.T) {
		finals := []domain.FinalScore{
			completeFinal(categoryPresenter("p1"), 90),
			completeFinal(categoryPresenter("p2"), 110),
			completeFinal(categoryPresenter("p3"), 85),
			completeFinal(categoryPresenter("p4"), 120),
			completeFinal(categoryPresenter("p5"), 95),
		}
		winners := CategoryWinners(foundEarlyOral, finals)
		require.Len(t, winners, 3)

		assert.Equal(t, "p4", winners[0].Presenter.ID)
		assert.Equal(t, "p2", winners[1].Presenter.ID)
		assert.Equal(t, "p5", winners[2].Presenter.ID)
		for i, w := range winners {
			assert.Equal(t, i+1, w.Place)
			assert.Equal(t, foundEarlyOral.Name, w.Category)
		}

		// No winner may score below any non-winner in the category.
		lowest := winners[len(winners)-1].FinalScore
		assert.GreaterOrEqual(t, lowest, 90.0)
		assert.GreaterOrEqual(t, lowest, 85.0)
	})

	t.Run("incomplete final scores never rank", func(t *testing.T) {
		finals := []domain.FinalScore{
			{PresenterID: "p1", Presenter: categoryPresenter("p1")}, // nil final
			completeFinal(categoryPresenter("p2"), 100),
		}
		winners := CategoryWinners(foundEarlyOral, finals)
		require.Len(t, winners, 1)
		assert.Equal(t, "p2", winners[0].Presenter.ID)
	})

	t.Run("presenters outside the category never rank", func(t *testing.T) {
		other := categoryPresenter("p9")
		other.ResearchStage = domain.StageAdvanced
		finals := []domain.FinalScore{completeFinal(other, 150)}
		assert.Empty(t, CategoryWinners(foundEarlyOral, finals))
	})

	t.Run("empty match set yields an empty list, not an error", func(t *testing.T) {
		assert.Empty(t, CategoryWinners(foundEarlyOral, nil))
	})

	t.Run("exact ties keep insertion order", func(t *testing.T) {
		finals := []domain.FinalScore{
			completeFinal(categoryPresenter("first"), 100),
			completeFinal(categoryPresenter("second"), 100),
			completeFinal(categoryPresenter("third"), 100),
			completeFinal(categoryPresenter("fourth"), 100),
		}
		winners := CategoryWinners(foundEarlyOral, finals)
		require.Len(t, winners, 3)
		assert.Equal(t, "first", winners[0].Presenter.ID)
		assert.Equal(t, "second", winners[1].Presenter.ID)
		assert.Equal(t, "third", winners[2].Presenter.ID)
	})

	t.Run("fewer qualifiers than places awards what exists", func(t *testing.T) {
		finals := []domain.FinalScore{completeFinal(categoryPresenter("p1"), 100)}
		winners := CategoryWinners(foundEarlyOral, finals)
		require.Len(t, winners, 1)
		assert.Equal(t, 1, winners[0].Place)
	})
}

func TestAllCategoryWinners(t *testing.T) {
	presenters := []domain.Presenter{
		{ID: "p1", PresentationType: domain.PresentationOral, ResearchType: domain.ResearchFoundational, ResearchStage: domain.StageEarly, Judge1: "smith", Judge2: "jones"},
		{ID: "p2", PresentationType: domain.PresentationOral, ResearchType: domain.ResearchFoundational, ResearchStage: domain.StageEarly, Judge1: "smith", Judge2: "jones"},
	}
	scores := []domain.Score{
		makeScore("p1", "smith", 90),
		makeScore("p2", "smith", 70),
		makeScore("p1", "jones", 85),
		makeScore("p2", "jones", 75),
	}

	winners := AllCategoryWinners(domain.AwardCategories, presenters, scores)

	// Every configured category is present in the map, scored or not.
	require.Len(t, winners, len(domain.AwardCategories))

	ranked := winners["oral-found-early"]
	require.Len(t, ranked, 2)
	assert.Equal(t, "p1", ranked[0].Presenter.ID)
	assert.Equal(t, "p2", ranked[1].Presenter.ID)

	assert.Empty(t, winners["poster-ped"])
}
