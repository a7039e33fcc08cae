package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetmed/research-day/infrastructure/storage"
	"github.com/vetmed/research-day/internal/domain"
	"github.com/vetmed/research-day/internal/ports"
	"github.com/vetmed/research-day/internal/scoring"
)

// captureLeaderboard records every publish for assertions.
type captureLeaderboard struct {
	mu        sync.Mutex
	published map[string][]ports.StandingsEntry
}

func newCaptureLeaderboard() *captureLeaderboard {
	return &captureLeaderboard{published: make(map[string][]ports.StandingsEntry)}
}

func (c *captureLeaderboard) PublishStandings(_ context.Context, categoryID string, entries []ports.StandingsEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published[categoryID] = entries
	return nil
}

func oralPresenter(id, department string) domain.Presenter {
	return domain.Presenter{
		ID:               id,
		FirstName:        "Ada",
		LastName:         "Lovelace",
		ResearchStage:    domain.StageEarly,
		ResearchType:     domain.ResearchFoundational,
		Department:       department,
		PresentationType: domain.PresentationOral,
		Judge1:           "Jane Smith",
		Judge2:           "Bob Jones",
	}
}

func uniformCriteria(rating int) domain.ScoreCriteria {
	return domain.ScoreCriteria{
		ContentWhy:       rating,
		ContentWhatHow:   rating,
		ContentNextSteps: rating,
		PresentationFlow: rating,
		Preparedness:     rating,
		VerbalComm:       rating,
		VisualAids:       rating,
	}
}

func newTestService(t *testing.T, lb ports.Leaderboard, presenters ...domain.Presenter) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if len(presenters) > 0 {
		require.NoError(t, store.PutPresenters(context.Background(), presenters))
	}
	return NewService(store, store, store, lb, nil), store
}

func TestSubmitScoreDerivesSheet(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"))
	ctx := context.Background()

	score, err := svc.SubmitScore(ctx, SubmitScoreRequest{
		PresenterID: "1A-1",
		JudgeName:   "  Jane SMITH ",
		Criteria:    uniformCriteria(4),
	})
	require.NoError(t, err)

	assert.Equal(t, "1A-1-jane-smith", score.ID)
	assert.Equal(t, "jane-smith", score.JudgeID)
	assert.Equal(t, "  Jane SMITH ", score.JudgeName)
	assert.Equal(t, 80, score.WeightedTotal)
	assert.False(t, score.Timestamp.IsZero())
}

func TestSubmitScoreResubmissionOverwrites(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"))
	ctx := context.Background()

	_, err := svc.SubmitScore(ctx, SubmitScoreRequest{PresenterID: "1A-1", JudgeName: "Jane Smith", Criteria: uniformCriteria(5)})
	require.NoError(t, err)
	// Same judge under different capitalization replaces the sheet.
	_, err = svc.SubmitScore(ctx, SubmitScoreRequest{PresenterID: "1A-1", JudgeName: "JANE SMITH", Criteria: uniformCriteria(3)})
	require.NoError(t, err)

	scores, err := svc.Scores(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 60, scores[0].WeightedTotal)
}

func TestSubmitScoreNoShow(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"))

	score, err := svc.SubmitScore(context.Background(), SubmitScoreRequest{
		PresenterID: "1A-1",
		JudgeName:   "Jane Smith",
		IsNoShow:    true,
	})
	require.NoError(t, err)
	assert.True(t, score.IsNoShow)
	assert.Zero(t, score.WeightedTotal)
}

func TestSubmitScoreUnknownPresenter(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"))

	_, err := svc.SubmitScore(context.Background(), SubmitScoreRequest{
		PresenterID: "missing",
		JudgeName:   "Jane Smith",
		Criteria:    uniformCriteria(3),
	})
	assert.ErrorIs(t, err, domain.ErrPresenterNotFound)
}

func submitBoth(t *testing.T, svc *Service, presenterID string, rating int) {
	t.Helper()
	ctx := context.Background()
	for _, judge := range []string{"Jane Smith", "Bob Jones"} {
		_, err := svc.SubmitScore(ctx, SubmitScoreRequest{
			PresenterID: presenterID,
			JudgeName:   judge,
			Criteria:    uniformCriteria(rating),
		})
		require.NoError(t, err)
	}
}

func TestComputeResults(t *testing.T) {
	strong := oralPresenter("1A-1", "Clinical Sciences")
	weak := oralPresenter("1A-2", "Pathobiology")
	svc, _ := newTestService(t, nil, strong, weak)

	submitBoth(t, svc, "1A-1", 5)
	submitBoth(t, svc, "1A-2", 3)

	res, err := svc.ComputeResults(context.Background())
	require.NoError(t, err)

	winners := res.Winners["oral-found-early"]
	require.Len(t, winners, 2)
	assert.Equal(t, "1A-1", winners[0].Presenter.ID)
	assert.Equal(t, 1, winners[0].Place)
	assert.Equal(t, "1A-2", winners[1].Presenter.ID)

	require.NotNil(t, res.TopDepartment)
	assert.Equal(t, "Clinical Sciences", res.TopDepartment.Department)
	assert.InDelta(t, 100.0, res.OverallCompletion, 1e-9)
}

func TestComputeProgress(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"), oralPresenter("1A-2", "Pathobiology"))

	submitBoth(t, svc, "1A-1", 4)

	progress, err := svc.ComputeProgress(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, progress.Overall, 1e-9)
	require.Len(t, progress.Presenters, 2)
	assert.Equal(t, scoring.StatusComplete, progress.Presenters[0].Status)
	assert.Equal(t, scoring.StatusPending, progress.Presenters[1].Status)

	byID := make(map[string]CategoryProgress)
	for _, cp := range progress.Categories {
		byID[cp.CategoryID] = cp
	}
	early := byID["oral-found-early"]
	assert.Equal(t, 2, early.TotalPresenters)
	assert.InDelta(t, 50.0, early.PercentComplete, 1e-9)
	assert.False(t, early.IsComplete)
}

func TestResultExport(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"), oralPresenter("1A-2", "Pathobiology"))
	submitBoth(t, svc, "1A-1", 4)

	rows, err := svc.ResultExport(context.Background())
	require.NoError(t, err)

	byID := make(map[string]ExportRow)
	for _, r := range rows {
		byID[r.PresenterID] = r
	}
	complete := byID["1A-1"]
	require.NotNil(t, complete.FinalScore)
	assert.Equal(t, 1, complete.Rank)

	incomplete := byID["1A-2"]
	assert.Nil(t, incomplete.FinalScore)
	assert.Zero(t, incomplete.Rank)
}

func TestPublishStandingsOnSubmit(t *testing.T) {
	lb := newCaptureLeaderboard()
	svc, _ := newTestService(t, lb, oralPresenter("1A-1", "Clinical Sciences"))

	submitBoth(t, svc, "1A-1", 4)

	entries := lb.published["oral-found-early"]
	require.Len(t, entries, 1)
	assert.Equal(t, "1A-1", entries[0].PresenterID)
	assert.InDelta(t, 100.0, entries[0].FinalScore, 1e-9)
}

func TestReassignJudgesPropagatesNotFound(t *testing.T) {
	svc, _ := newTestService(t, nil, oralPresenter("1A-1", "Clinical Sciences"))

	err := svc.ReassignJudges(context.Background(), "missing", "a", "b", "")
	assert.ErrorIs(t, err, domain.ErrPresenterNotFound)

	require.NoError(t, svc.ReassignJudges(context.Background(), "1A-1", "Carol White", "Dan Black", ""))
	presenters, err := svc.Presenters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Carol White", presenters[0].Judge1)
}

func TestRosterReport(t *testing.T) {
	p := oralPresenter("1A-1", "Clinical Sciences")
	p.Judge2 = "Jane Smyth"
	svc, _ := newTestService(t, nil, p)

	report, err := svc.Roster(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Judges, 2)
	require.Len(t, report.SimilarNames, 1)
	assert.Equal(t, 1, report.SimilarNames[0].Distance)
}
