package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vetmed/research-day/internal/domain"
	"github.com/vetmed/research-day/internal/ports"
)

var (
	_ ports.PresenterStore = (*MemoryStore)(nil)
	_ ports.ScoreStore     = (*MemoryStore)(nil)
	_ ports.FeedbackStore  = (*MemoryStore)(nil)
)

// MemoryStore is a mutex-guarded in-memory implementation of the
// repository ports, used in tests and for dry runs without a database.
// Semantics match SQLStore: last-write-wins score upsert keyed on
// (presenter, judge), presenters kept in import order.
type MemoryStore struct {
	mu         sync.RWMutex
	presenters []domain.Presenter
	scores     map[string]domain.Score // key: presenterID + "\x00" + judgeID
	scoreOrder []string
	feedback   []domain.Feedback
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]domain.Score)}
}

func scoreKey(presenterID, judgeID string) string {
	return presenterID + "\x00" + judgeID
}

func (m *MemoryStore) ListPresenters(ctx context.Context) ([]domain.Presenter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Presenter, len(m.presenters))
	copy(out, m.presenters)
	return out, nil
}

func (m *MemoryStore) PutPresenters(ctx context.Context, presenters []domain.Presenter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presenters = make([]domain.Presenter, len(presenters))
	copy(m.presenters, presenters)
	return nil
}

func (m *MemoryStore) ReassignJudges(ctx context.Context, presenterID, judge1, judge2, judge3 string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.presenters {
		if m.presenters[i].ID == presenterID {
			m.presenters[i].Judge1 = judge1
			m.presenters[i].Judge2 = judge2
			m.presenters[i].Judge3 = judge3
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrPresenterNotFound, presenterID)
}

func (m *MemoryStore) ListScores(ctx context.Context) ([]domain.Score, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Score, 0, len(m.scores))
	for _, key := range m.scoreOrder {
		out = append(out, m.scores[key])
	}
	return out, nil
}

func (m *MemoryStore) UpsertScore(ctx context.Context, sc domain.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := scoreKey(sc.PresenterID, sc.JudgeID)
	if _, exists := m.scores[key]; !exists {
		m.scoreOrder = append(m.scoreOrder, key)
	}
	m.scores[key] = sc
	return nil
}

func (m *MemoryStore) AddFeedback(ctx context.Context, fb domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, fb)
	return nil
}

func (m *MemoryStore) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Feedback, len(m.feedback))
	copy(out, m.feedback)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
