package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetmed/research-day/internal/domain"
)

func oralPresenter(id, judge1, judge2 string) domain.Presenter {
	return domain.Presenter{
		ID:               id,
		PresentationType: domain.PresentationOral,
		Judge1:           judge1,
		Judge2:           judge2,
	}
}

func undergradPresenter(id, judge1, judge2, judge3 string) domain.Presenter {
	return domain.Presenter{
		ID:               id,
		PresentationType: domain.PresentationUndergradPoster,
		Judge1:           judge1,
		Judge2:           judge2,
		Judge3:           judge3,
	}
}

func normalizedFor(presenterID, judgeName string, value float64) domain.NormalizedScore {
	return domain.NormalizedScore{
		ScoreID:     presenterID + "-" + judgeName,
		PresenterID: presenterID,
		JudgeID:     judgeName,
		JudgeName:   judgeName,
		Value:       value,
	}
}

func TestComposeFinal_TwoJudge(t *testing.T) {
	t.Run("normalized 1.2 and 0.8 compose to 100", func(t *testing.T) {
		p := oralPresenter("p1", "Smith", "Jones")
		normalized := []domain.NormalizedScore{
			normalizedFor("p1", "Smith", 1.2),
			normalizedFor("p1", "Jones", 0.8),
		}
		fs := ComposeFinal(p, normalized)
		require.NotNil(t, fs.Final)
		assert.InDelta(t, 100.0, *fs.Final, 1e-9)
	})

	t.Run("exactly representable values compose to exactly 100", func(t *testing.T) {
		p := oralPresenter("p1", "Smith", "Jones")
		normalized := []domain.NormalizedScore{
			normalizedFor("p1", "Smith", 1.25),
			normalizedFor("p1", "Jones", 0.75),
		}
		fs := ComposeFinal(p, normalized)
		require.NotNil(t, fs.Final)
		assert.Equal(t, 100.0, *fs.Final)
	})

	t.Run("missing one of two judge scores leaves the final nil", func(t *testing.T) {
		p := oralPresenter("p1", "Smith", "Jones")
		normalized := []domain.NormalizedScore{
			normalizedFor("p1", "Smith", 1.0),
		}
		fs := ComposeFinal(p, normalized)
		assert.Nil(t, fs.Final)
		assert.NotNil(t, fs.Judge1Score)
		assert.Nil(t, fs.Judge2Score)
	})

	t.Run("judge names match case-insensitively", func(t *testing.T) {
		p := oralPresenter("p1", "DR. SMITH", "jones")
		normalized := []domain.NormalizedScore{
			normalizedFor("p1", "dr. smith", 1.0),
			normalizedFor("p1", "Jones", 1.0),
		}
		fs := ComposeFinal(p, normalized)
		require.NotNil(t, fs.Final)
		assert.InDelta(t, 100.0, *fs.Final, 1e-9)
	})

	t.Run("another presenter's score never fills a slot", func(t *testing.T) {
		p := oralPresenter("p1", "Smith", "Jones")
		normalized := []domain.NormalizedScore{
			normalizedFor("p1", "Smith", 1.0),
			normalizedFor("p2", "Jones", 1.0),
		}
		fs := ComposeFinal(p, normalized)
		assert.Nil(t, fs.Final)
	})
}

func TestComposeFinal_ThreeJudge(t *testing.T) {
	t.Run("three exactly-average judges compose to 99.99, not 100", func(t *testing.T) {
		p := undergradPresenter("u1", "A", "B", "C")
		normalized := []domain.NormalizedScore{
			normalizedFor("u1", "A", 1.0),
			normalizedFor("u1", "B", 1.0),
			normalizedFor("u1", "C", 1.0),
		}
		fs := ComposeFinal(p, normalized)
		require.NotNil(t, fs.Final)
		assert.InDelta(t, 99.99, *fs.Final, 1e-9)
		assert.Less(t, *fs.Final, 100.0)
	})

	t.Run("two of three judge scores leave the final nil", func(t *testing.T) {
		p := undergradPresenter("u1", "A", "B", "C")
		normalized := []domain.NormalizedScore{
			normalizedFor("u1", "A", 1.0),
			normalizedFor("u1", "B", 1.0),
		}
		fs := ComposeFinal(p, normalized)
		assert.Nil(t, fs.Final)
	})
}

func TestAllFinalScores(t *testing.T) {
	presenters := []domain.Presenter{
		oralPresenter("p1", "smith", "jones"),
		oralPresenter("p2", "smith", "jones"),
	}
	scores := []domain.Score{
		makeScore("p1", "smith", 80),
		makeScore("p2", "smith", 80),
		makeScore("p1", "jones", 60),
		makeScore("p2", "jones", 60),
	}

	t.Run("every sheet at the judge's mean composes to 100", func(t *testing.T) {
		finals := AllFinalScores(presenters, scores)
		require.Len(t, finals, 2)
		for _, fs := range finals {
			require.NotNil(t, fs.Final)
			assert.InDelta(t, 100.0, *fs.Final, 1e-9)
		}
	})

	t.Run("idempotent over the same snapshot", func(t *testing.T) {
		first := AllFinalScores(presenters, scores)
		second := AllFinalScores(presenters, scores)
		assert.Equal(t, first, second)
	})
}
