package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"quiz-trainer/internal/domain"
	"quiz-trainer/internal/ui"
)

// ScoreRepository abstracts where session results are persisted (flat file, memory).
// List returns results in the order they were appended; a missing store is empty.
type ScoreRepository interface {
	Append(ctx context.Context, result domain.SessionResult) error
	List(ctx context.Context) ([]domain.SessionResult, error)
}

// Scoreboard is the append-only leaderboard of every completed attempt.
type Scoreboard struct {
	store  ScoreRepository
	styles ui.Styles
}

func NewScoreboard(store ScoreRepository, styles ui.Styles) *Scoreboard {
	return &Scoreboard{store: store, styles: styles}
}

// Append records one result. Existing records are never touched.
func (s *Scoreboard) Append(ctx context.Context, name string, score float64) error {
	if err := s.store.Append(ctx, domain.SessionResult{Name: name, Score: score}); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// Ranking returns every stored result by descending score; ties keep stored order.
func (s *Scoreboard) Ranking(ctx context.Context) ([]domain.RankedResult, error) {
	results, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	sorted := make([]domain.SessionResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	ranked := make([]domain.RankedResult, 0, len(sorted))
	for i, r := range sorted {
		ranked = append(ranked, domain.RankedResult{Rank: i + 1, SessionResult: r})
	}
	return ranked, nil
}

// Render prints the ranking as a numbered list.
func (s *Scoreboard) Render(ctx context.Context, w io.Writer) error {
	ranked, err := s.Ranking(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", s.styles.Heading("### RANKING ###"))
	if len(ranked) == 0 {
		fmt.Fprintln(w, s.styles.Muted("No results yet."))
		return nil
	}
	for _, r := range ranked {
		fmt.Fprintf(w, "%d. %s - %.2f%%\n", r.Rank, r.Name, r.Score)
	}
	return nil
}
