package memory

import (
	"context"
	"sync"

	"quiz-trainer/internal/domain"
)

// ScoreStore is an in-memory implementation of app.ScoreRepository.
type ScoreStore struct {
	mu      sync.RWMutex
	results []domain.SessionResult
}

func NewScoreStore(seed ...domain.SessionResult) *ScoreStore {
	return &ScoreStore{results: append([]domain.SessionResult(nil), seed...)}
}

func (s *ScoreStore) Append(_ context.Context, result domain.SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *ScoreStore) List(_ context.Context) ([]domain.SessionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SessionResult, len(s.results))
	copy(out, s.results)
	return out, nil
}
