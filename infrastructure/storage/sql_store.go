package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vetmed/research-day/internal/domain"
	"github.com/vetmed/research-day/internal/ports"
)

// Compile-time checks that SQLStore satisfies the repository ports.
var (
	_ ports.PresenterStore = (*SQLStore)(nil)
	_ ports.ScoreStore     = (*SQLStore)(nil)
	_ ports.FeedbackStore  = (*SQLStore)(nil)
)

// SQLStore implements the repository ports over database/sql. Score
// identity is the (presenter_id, judge_id) primary key: concurrent
// submissions for the same pair resolve last-write-wins through the
// upsert, so list reads always see a fully materialized set.
type SQLStore struct {
	db     *sql.DB
	driver Driver
}

// NewSQLStore wraps an opened database.
func NewSQLStore(db *sql.DB, driver Driver) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) ListPresenters(ctx context.Context) ([]domain.Presenter, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, first_name, last_name, email, classification, research_stage,
       research_type, department, presentation_type, presentation_time,
       title, judge1, judge2, judge3
FROM presenters ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list presenters: %w", err)
	}
	defer rows.Close()

	var out []domain.Presenter
	for rows.Next() {
		var p domain.Presenter
		var stage, rtype, ptype string
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Classification,
			&stage, &rtype, &p.Department, &ptype, &p.PresentationTime,
			&p.Title, &p.Judge1, &p.Judge2, &p.Judge3,
		); err != nil {
			return nil, fmt.Errorf("scan presenter: %w", err)
		}
		p.ResearchStage = domain.ResearchStage(stage)
		p.ResearchType = domain.ResearchType(rtype)
		p.PresentationType = domain.PresentationType(ptype)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutPresenters(ctx context.Context, presenters []domain.Presenter) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM presenters`); err != nil {
		return fmt.Errorf("clear presenters: %w", err)
	}

	insert := rebind(s.driver, `
INSERT INTO presenters (
  id, position, first_name, last_name, email, classification,
  research_stage, research_type, department, presentation_type,
  presentation_time, title, judge1, judge2, judge3
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, p := range presenters {
		if _, err := tx.ExecContext(ctx, insert,
			p.ID, i, p.FirstName, p.LastName, p.Email, p.Classification,
			string(p.ResearchStage), string(p.ResearchType), p.Department,
			string(p.PresentationType), p.PresentationTime, p.Title,
			p.Judge1, p.Judge2, p.Judge3,
		); err != nil {
			return fmt.Errorf("insert presenter %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) ReassignJudges(ctx context.Context, presenterID, judge1, judge2, judge3 string) error {
	res, err := s.db.ExecContext(ctx, rebind(s.driver, `
UPDATE presenters SET judge1 = ?, judge2 = ?, judge3 = ? WHERE id = ?`),
		judge1, judge2, judge3, presenterID)
	if err != nil {
		return fmt.Errorf("reassign judges: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPresenterNotFound, presenterID)
	}
	return nil
}

func (s *SQLStore) ListScores(ctx context.Context) ([]domain.Score, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, presenter_id, judge_id, judge_name, submitted_at,
       content_why, content_what_how, content_next_steps,
       presentation_flow, preparedness, verbal_comm, visual_aids,
       weighted_total, is_no_show
FROM scores ORDER BY submitted_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var out []domain.Score
	for rows.Next() {
		var sc domain.Score
		var ts int64
		var noShow int
		if err := rows.Scan(
			&sc.ID, &sc.PresenterID, &sc.JudgeID, &sc.JudgeName, &ts,
			&sc.Criteria.ContentWhy, &sc.Criteria.ContentWhatHow,
			&sc.Criteria.ContentNextSteps, &sc.Criteria.PresentationFlow,
			&sc.Criteria.Preparedness, &sc.Criteria.VerbalComm,
			&sc.Criteria.VisualAids, &sc.WeightedTotal, &noShow,
		); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		sc.Timestamp = time.Unix(ts, 0).UTC()
		sc.IsNoShow = noShow != 0
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (s *SQLStore) UpsertScore(ctx context.Context, sc domain.Score) error {
	noShow := 0
	if sc.IsNoShow {
		noShow = 1
	}
	_, err := s.db.ExecContext(ctx, rebind(s.driver, `
INSERT INTO scores (
  presenter_id, judge_id, id, judge_name, submitted_at,
  content_why, content_what_how, content_next_steps, presentation_flow,
  preparedness, verbal_comm, visual_aids, weighted_total, is_no_show
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (presenter_id, judge_id) DO UPDATE SET
  id = excluded.id,
  judge_name = excluded.judge_name,
  submitted_at = excluded.submitted_at,
  content_why = excluded.content_why,
  content_what_how = excluded.content_what_how,
  content_next_steps = excluded.content_next_steps,
  presentation_flow = excluded.presentation_flow,
  preparedness = excluded.preparedness,
  verbal_comm = excluded.verbal_comm,
  visual_aids = excluded.visual_aids,
  weighted_total = excluded.weighted_total,
  is_no_show = excluded.is_no_show`),
		sc.PresenterID, sc.JudgeID, sc.ID, sc.JudgeName, sc.Timestamp.Unix(),
		sc.Criteria.ContentWhy, sc.Criteria.ContentWhatHow,
		sc.Criteria.ContentNextSteps, sc.Criteria.PresentationFlow,
		sc.Criteria.Preparedness, sc.Criteria.VerbalComm,
		sc.Criteria.VisualAids, sc.WeightedTotal, noShow)
	if err != nil {
		return fmt.Errorf("upsert score %s: %w", sc.ID, err)
	}
	return nil
}

func (s *SQLStore) AddFeedback(ctx context.Context, fb domain.Feedback) error {
	_, err := s.db.ExecContext(ctx, rebind(s.driver, `
INSERT INTO feedback (
  id, presenter_id, presenter_name, submitter_type, submitter_name,
  strengths, areas_for_improvement, submitted_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		fb.ID, fb.PresenterID, fb.PresenterName, fb.SubmitterType,
		fb.SubmitterName, fb.Strengths, fb.AreasForImprovement,
		fb.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("add feedback: %w", err)
	}
	return nil
}

func (s *SQLStore) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, presenter_id, presenter_name, submitter_type, submitter_name,
       strengths, areas_for_improvement, submitted_at
FROM feedback ORDER BY submitted_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		var ts int64
		if err := rows.Scan(
			&fb.ID, &fb.PresenterID, &fb.PresenterName, &fb.SubmitterType,
			&fb.SubmitterName, &fb.Strengths, &fb.AreasForImprovement, &ts,
		); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		fb.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, fb)
	}
	return out, rows.Err()
}
