package application

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vetmed/research-day/internal/domain"
	"github.com/vetmed/research-day/internal/ports"
	"github.com/vetmed/research-day/internal/roster"
	"github.com/vetmed/research-day/internal/scoring"
)

// Service wires the stores to the scoring pipeline. It keeps no
// derived state: every read recomputes from the full current snapshot,
// so concurrent calls are safe and results are always consistent with
// the latest submitted sheet.
type Service struct {
	presenters  ports.PresenterStore
	scores      ports.ScoreStore
	feedback    ports.FeedbackStore
	leaderboard ports.Leaderboard // optional, may be nil
	categories  []domain.AwardCategory
	tracer      trace.Tracer
}

// NewService builds a Service over the given stores. leaderboard may
// be nil to disable the live standings mirror. An empty category list
// falls back to the built-in award structure.
func NewService(
	presenters ports.PresenterStore,
	scores ports.ScoreStore,
	feedback ports.FeedbackStore,
	leaderboard ports.Leaderboard,
	categories []domain.AwardCategory,
) *Service {
	if len(categories) == 0 {
		categories = domain.AwardCategories
	}
	return &Service{
		presenters:  presenters,
		scores:      scores,
		feedback:    feedback,
		leaderboard: leaderboard,
		categories:  categories,
		tracer:      otel.Tracer("scoring-service"),
	}
}

// Categories returns the effective award structure.
func (s *Service) Categories() []domain.AwardCategory { return s.categories }

// snapshot loads presenters and scores concurrently. The stores
// guarantee fully materialized lists, never partial writes.
func (s *Service) snapshot(ctx context.Context) ([]domain.Presenter, []domain.Score, error) {
	var (
		presenters []domain.Presenter
		scores     []domain.Score
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		presenters, err = s.presenters.ListPresenters(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		scores, err = s.scores.ListScores(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	return presenters, scores, nil
}

// SubmitScoreRequest is a judge's sheet as received at the boundary.
type SubmitScoreRequest struct {
	PresenterID string
	JudgeName   string
	Criteria    domain.ScoreCriteria
	IsNoShow    bool
}

// SubmitScore derives the stored sheet from a submission and upserts
// it. The judge id is the normalized name, so the sheet's identity is
// stable across capitalization variants; resubmission overwrites.
// A judge name matching no assigned slot is accepted as-is: it simply
// never resolves during composition, which is the documented matching
// rule. When a leaderboard is configured, standings are republished
// best-effort after the write.
func (s *Service) SubmitScore(ctx context.Context, req SubmitScoreRequest) (domain.Score, error) {
	ctx, span := s.tracer.Start(ctx, "Service.SubmitScore",
		trace.WithAttributes(
			attribute.String("presenter.id", req.PresenterID),
			attribute.Bool("score.no_show", req.IsNoShow),
		),
	)
	defer span.End()

	presenters, err := s.presenters.ListPresenters(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.Score{}, fmt.Errorf("load presenters: %w", err)
	}
	if !hasPresenter(presenters, req.PresenterID) {
		return domain.Score{}, fmt.Errorf("%w: %s", domain.ErrPresenterNotFound, req.PresenterID)
	}

	judgeID := roster.JudgeID(req.JudgeName)
	score := domain.Score{
		ID:          req.PresenterID + "-" + judgeID,
		PresenterID: req.PresenterID,
		JudgeName:   req.JudgeName,
		JudgeID:     judgeID,
		Timestamp:   time.Now().UTC(),
		Criteria:    req.Criteria,
		IsNoShow:    req.IsNoShow,
	}
	if !req.IsNoShow {
		score.WeightedTotal = scoring.WeightedTotal(req.Criteria)
	}

	if err := s.scores.UpsertScore(ctx, score); err != nil {
		span.RecordError(err)
		return domain.Score{}, fmt.Errorf("upsert score: %w", err)
	}

	if s.leaderboard != nil {
		// Display mirror only; a publish failure must not fail the
		// submission.
		if err := s.publishStandings(ctx); err != nil {
			span.RecordError(err)
		}
	}
	return score, nil
}

// Presenters returns the presenter population in import order.
func (s *Service) Presenters(ctx context.Context) ([]domain.Presenter, error) {
	return s.presenters.ListPresenters(ctx)
}

// ImportPresenters replaces the presenter population with a freshly
// parsed import. Existing scores are kept: identity is the
// (presenter, judge) pair, so sheets for re-imported presenters keep
// counting.
func (s *Service) ImportPresenters(ctx context.Context, presenters []domain.Presenter) error {
	if err := s.presenters.PutPresenters(ctx, presenters); err != nil {
		return fmt.Errorf("put presenters: %w", err)
	}
	if s.leaderboard != nil {
		_ = s.publishStandings(ctx)
	}
	return nil
}

// Scores returns every submitted sheet.
func (s *Service) Scores(ctx context.Context) ([]domain.Score, error) {
	return s.scores.ListScores(ctx)
}

// Results is the full award report for the current snapshot.
type Results struct {
	Winners           map[string][]domain.CategoryWinner `json:"winners"`
	Departments       []domain.DepartmentScore           `json:"departments"`
	TopDepartment     *domain.DepartmentScore            `json:"topDepartment,omitempty"`
	OverallCompletion float64                            `json:"overallCompletion"`
}

// ComputeResults recomputes winners, the department ranking, and
// overall completion from the current snapshot.
func (s *Service) ComputeResults(ctx context.Context) (*Results, error) {
	ctx, span := s.tracer.Start(ctx, "Service.ComputeResults")
	defer span.End()

	presenters, scores, err := s.snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	finals := scoring.AllFinalScores(presenters, scores)
	winners := make(map[string][]domain.CategoryWinner, len(s.categories))
	for _, cat := range s.categories {
		winners[cat.ID] = scoring.CategoryWinners(cat, finals)
	}
	departments := scoring.DepartmentScores(finals)

	res := &Results{
		Winners:           winners,
		Departments:       departments,
		OverallCompletion: scoring.OverallCompletion(presenters, scores),
	}
	if len(departments) > 0 {
		top := departments[0]
		res.TopDepartment = &top
	}

	span.SetAttributes(
		attribute.Int("results.presenters", len(presenters)),
		attribute.Int("results.scores", len(scores)),
		attribute.Float64("results.completion", res.OverallCompletion),
	)
	return res, nil
}

// ExportRow is one line of the results export: a presenter's category,
// final score, and awarded place if any.
type ExportRow struct {
	PresenterID   string
	PresenterName string
	Category      string
	FinalScore    *float64
	// Rank is the awarded place, 0 when outside the awarded places.
	Rank int
}

// ResultExport flattens the awards report for the CSV download. Every
// presenter appears once per matching category; incomplete presenters
// are included so the organizers can chase missing sheets from the
// same file.
func (s *Service) ResultExport(ctx context.Context) ([]ExportRow, error) {
	presenters, scores, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	finals := scoring.AllFinalScores(presenters, scores)

	finalByID := make(map[string]domain.FinalScore, len(finals))
	for _, fs := range finals {
		finalByID[fs.PresenterID] = fs
	}

	var rows []ExportRow
	for _, cat := range s.categories {
		rank := make(map[string]int)
		for _, w := range scoring.CategoryWinners(cat, finals) {
			rank[w.Presenter.ID] = w.Place
		}
		for _, p := range scoring.PresentersInCategory(presenters, cat) {
			row := ExportRow{
				PresenterID:   p.ID,
				PresenterName: p.Name(),
				Category:      cat.Name,
				Rank:          rank[p.ID],
			}
			if fs, ok := finalByID[p.ID]; ok && fs.Final != nil {
				v := *fs.Final
				row.FinalScore = &v
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// CategoryProgress reports one category's scoring progress for the
// live monitor.
type CategoryProgress struct {
	CategoryID      string                  `json:"categoryId"`
	CategoryName    string                  `json:"categoryName"`
	TotalPresenters int                     `json:"totalPresenters"`
	PercentComplete float64                 `json:"percentComplete"`
	IsComplete      bool                    `json:"isComplete"`
	Winners         []domain.CategoryWinner `json:"winners"`
}

// Progress reports per-category and overall completion plus each
// presenter's score status.
type Progress struct {
	Overall    float64                        `json:"overall"`
	Categories []CategoryProgress             `json:"categories"`
	Presenters []scoring.PresenterScoreStatus `json:"presenters"`
}

// ComputeProgress builds the monitor view from the current snapshot.
func (s *Service) ComputeProgress(ctx context.Context) (*Progress, error) {
	ctx, span := s.tracer.Start(ctx, "Service.ComputeProgress")
	defer span.End()

	presenters, scores, err := s.snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	finals := scoring.AllFinalScores(presenters, scores)
	progress := &Progress{Overall: scoring.OverallCompletion(presenters, scores)}
	for _, cat := range s.categories {
		progress.Categories = append(progress.Categories, CategoryProgress{
			CategoryID:      cat.ID,
			CategoryName:    cat.Name,
			TotalPresenters: len(scoring.PresentersInCategory(presenters, cat)),
			PercentComplete: scoring.CategoryCompletion(cat, presenters, scores),
			IsComplete:      scoring.CategoryComplete(cat, presenters, scores),
			Winners:         scoring.CategoryWinners(cat, finals),
		})
	}
	for _, p := range presenters {
		progress.Presenters = append(progress.Presenters, scoring.StatusFor(p, scores))
	}
	return progress, nil
}

// Anomalies scans the current score set for audit flags.
func (s *Service) Anomalies(ctx context.Context) ([]domain.Anomaly, error) {
	scores, err := s.scores.ListScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	return scoring.DetectAnomalies(scores), nil
}

// RosterReport pairs the derived judge roster with its near-duplicate
// name audit.
type RosterReport struct {
	Judges       []domain.Judge       `json:"judges"`
	SimilarNames []roster.SimilarPair `json:"similarNames"`
}

// maxNameDistance is the edit-distance cutoff for flagging judge-name
// variants.
const maxNameDistance = 2

// Roster derives the judge roster from the current assignments and
// flags probable name variants.
func (s *Service) Roster(ctx context.Context) (*RosterReport, error) {
	presenters, err := s.presenters.ListPresenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("load presenters: %w", err)
	}
	judges := roster.Build(presenters)
	return &RosterReport{
		Judges:       judges,
		SimilarNames: roster.SimilarNames(judges, maxNameDistance),
	}, nil
}

// ReassignJudges overwrites a presenter's judge slots and republishes
// standings when a leaderboard is configured.
func (s *Service) ReassignJudges(ctx context.Context, presenterID, judge1, judge2, judge3 string) error {
	if err := s.presenters.ReassignJudges(ctx, presenterID, judge1, judge2, judge3); err != nil {
		return err
	}
	if s.leaderboard != nil {
		_ = s.publishStandings(ctx)
	}
	return nil
}

// AddFeedback stores a feedback entry.
func (s *Service) AddFeedback(ctx context.Context, fb domain.Feedback) error {
	return s.feedback.AddFeedback(ctx, fb)
}

// ListFeedback returns all stored feedback.
func (s *Service) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.ListFeedback(ctx)
}

// publishStandings mirrors each category's complete, ranked finals to
// the leaderboard.
func (s *Service) publishStandings(ctx context.Context) error {
	presenters, scores, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	finals := scoring.AllFinalScores(presenters, scores)

	for _, cat := range s.categories {
		var entries []ports.StandingsEntry
		for _, fs := range finals {
			if fs.Final == nil || !scoring.MatchesCategory(fs.Presenter, cat) {
				continue
			}
			entries = append(entries, ports.StandingsEntry{
				PresenterID: fs.PresenterID,
				Name:        fs.Presenter.Name(),
				FinalScore:  *fs.Final,
			})
		}
		if err := s.leaderboard.PublishStandings(ctx, cat.ID, entries); err != nil {
			return fmt.Errorf("publish standings for %s: %w", cat.ID, err)
		}
	}
	return nil
}

func hasPresenter(presenters []domain.Presenter, id string) bool {
	for _, p := range presenters {
		if p.ID == id {
			return true
		}
	}
	return false
}
