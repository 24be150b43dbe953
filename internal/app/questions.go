package app

import (
	"context"
	"log"
	"sort"

	"quiz-trainer/internal/domain"
)

// QuestionRepository loads the question bank (file, cache, etc).
type QuestionRepository interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionStore turns repository failures into an empty bank.
type QuestionStore struct {
	repo QuestionRepository
}

func NewQuestionStore(repo QuestionRepository) *QuestionStore {
	return &QuestionStore{repo: repo}
}

// Load returns every question in the bank. On failure it logs, returns an
// empty slice and the error; the error is informational and never fatal.
func (s *QuestionStore) Load(ctx context.Context) ([]domain.Question, error) {
	questions, err := s.repo.LoadQuestions(ctx)
	if err != nil {
		log.Printf("load questions: %v", err)
		return []domain.Question{}, err
	}
	return questions, nil
}

// Filter keeps the questions whose topic and difficulty match exactly, in order.
func Filter(questions []domain.Question, topic, difficulty string) []domain.Question {
	filtered := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if q.Topic == topic && q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// Topics returns the distinct topics, sorted.
func Topics(questions []domain.Question) []string {
	return distinct(questions, func(q domain.Question) string { return q.Topic })
}

// Difficulties returns the distinct difficulties, sorted.
func Difficulties(questions []domain.Question) []string {
	return distinct(questions, func(q domain.Question) string { return q.Difficulty })
}

func distinct(questions []domain.Question, field func(domain.Question) string) []string {
	seen := make(map[string]struct{}, len(questions))
	values := make([]string, 0, len(questions))
	for _, q := range questions {
		v := field(q)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
