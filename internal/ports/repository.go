// Package ports defines the interfaces between the scoring engine and
// its infrastructure adapters. The engine is reconstructed fresh from
// these stores on every call; it holds no state of its own.
package ports

import (
	"context"

	"github.com/vetmed/research-day/internal/domain"
)

// PresenterStore loads and maintains the presenter population.
// Presenters are created at import time and only their judge slots
// change afterwards.
type PresenterStore interface {
	// ListPresenters returns the full presenter population in import
	// order.
	ListPresenters(ctx context.Context) ([]domain.Presenter, error)

	// PutPresenters replaces the stored population, used by the CSV
	// import flow.
	PutPresenters(ctx context.Context, presenters []domain.Presenter) error

	// ReassignJudges overwrites one presenter's judge slots.
	// Returns domain.ErrPresenterNotFound for an unknown id.
	ReassignJudges(ctx context.Context, presenterID, judge1, judge2, judge3 string) error
}

// ScoreStore persists judge score sheets. Identity is the
// (presenter, judge) pair: concurrent submissions for the same pair
// resolve last-write-wins at this layer, so readers only ever see a
// fully materialized score list.
type ScoreStore interface {
	// ListScores returns every submitted sheet.
	ListScores(ctx context.Context) ([]domain.Score, error)

	// UpsertScore inserts or overwrites the sheet keyed on
	// (PresenterID, JudgeID).
	UpsertScore(ctx context.Context, score domain.Score) error
}

// FeedbackStore persists free-text presenter feedback.
type FeedbackStore interface {
	AddFeedback(ctx context.Context, fb domain.Feedback) error
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)
}

// StandingsEntry is one row of a published category leaderboard.
type StandingsEntry struct {
	PresenterID string
	Name        string
	FinalScore  float64
}

// Leaderboard mirrors category standings to an external display
// surface, e.g. the live monitor. Publishing is best-effort and never
// affects the authoritative winners computation.
type Leaderboard interface {
	PublishStandings(ctx context.Context, categoryID string, entries []StandingsEntry) error
}
