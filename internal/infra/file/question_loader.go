package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quiz-trainer/internal/domain"
)

// QuestionLoader reads the question bank from a JSON or YAML file.
type QuestionLoader struct {
	path string
}

func NewQuestionLoader(path string) *QuestionLoader {
	return &QuestionLoader{path: path}
}

func (l *QuestionLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var questions []domain.Question
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &questions)
	default:
		err = json.Unmarshal(data, &questions)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.path, err)
	}

	for i := range questions {
		if err := normalize(&questions[i]); err != nil {
			return nil, fmt.Errorf("question %d in %s: %w", i+1, l.path, err)
		}
	}
	return questions, nil
}

// normalize uppercases the correct answer and enforces the question shape.
func normalize(q *domain.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: empty text", domain.ErrInvalidQuestion)
	}
	if len(q.Options) != domain.OptionCount {
		return fmt.Errorf("%w: want %d options, got %d", domain.ErrInvalidQuestion, domain.OptionCount, len(q.Options))
	}
	letter, ok := domain.ParseLetter(string(q.CorrectAnswer))
	if !ok {
		return fmt.Errorf("%w: correct answer %q is not one of A-D", domain.ErrInvalidQuestion, q.CorrectAnswer)
	}
	q.CorrectAnswer = letter
	return nil
}
