package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"quiz-trainer/internal/domain"
	"quiz-trainer/internal/ui"
)

// MaxNameLength caps participant names, in runes, so scoreboard lines stay short.
const MaxNameLength = 64

// DefaultTimeLimits are the per-question limits offered when none are configured.
var DefaultTimeLimits = []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second, 20 * time.Second}

// Console is the interactive input the runner needs.
type Console interface {
	Ask(ctx context.Context, label string) (string, error)
	Answer(ctx context.Context, timeout time.Duration) (domain.Letter, bool, error)
	Choose(ctx context.Context, title, label string, options []string) (int, error)
}

// SessionRunner drives one quiz attempt from name entry to the saved score.
type SessionRunner struct {
	questions  *QuestionStore
	scoreboard *Scoreboard
	console    Console
	out        io.Writer
	styles     ui.Styles
	timeLimits []time.Duration
}

func NewSessionRunner(questions *QuestionStore, scoreboard *Scoreboard, console Console, out io.Writer, styles ui.Styles, timeLimits []time.Duration) *SessionRunner {
	if len(timeLimits) == 0 {
		timeLimits = DefaultTimeLimits
	}
	return &SessionRunner{
		questions:  questions,
		scoreboard: scoreboard,
		console:    console,
		out:        out,
		styles:     styles,
		timeLimits: timeLimits,
	}
}

// Run plays one attempt. It returns nil without error when the attempt was
// aborted before scoring (no questions, empty selection).
func (r *SessionRunner) Run(ctx context.Context) (*domain.SessionResult, error) {
	name, err := r.console.Ask(ctx, "\nEnter your name: ")
	if err != nil {
		return nil, err
	}
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = strings.TrimSpace(string(runes[:MaxNameLength]))
	}

	all, err := r.questions.Load(ctx)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", r.styles.Failure("Error loading questions:"), err)
	}
	if len(all) == 0 {
		fmt.Fprintln(r.out, r.styles.Failure("No questions available."))
		return nil, nil
	}

	topics := Topics(all)
	idx, err := r.console.Choose(ctx, "Topic options", "Select a topic", topics)
	if err != nil {
		return nil, err
	}
	topic := topics[idx]

	difficulties := Difficulties(all)
	if idx, err = r.console.Choose(ctx, "Difficulty options", "Select a difficulty", difficulties); err != nil {
		return nil, err
	}
	difficulty := difficulties[idx]

	limit, err := r.chooseTimeLimit(ctx)
	if err != nil {
		return nil, err
	}

	selected := Filter(all, topic, difficulty)
	if len(selected) == 0 {
		fmt.Fprintln(r.out, r.styles.Failure("No questions for that combination."))
		return nil, nil
	}

	correct := 0
	for _, q := range selected {
		r.showQuestion(q)
		answer, ok, err := r.console.Answer(ctx, limit)
		if err != nil {
			return nil, err
		}
		switch {
		case !ok:
			fmt.Fprintln(r.out, r.styles.Failure(fmt.Sprintf("Correct answer: %s", q.CorrectAnswer)))
		case q.IsCorrect(answer):
			fmt.Fprintln(r.out, r.styles.Success("Correct!"))
			correct++
		default:
			fmt.Fprintln(r.out, r.styles.Failure(fmt.Sprintf("Incorrect. Correct answer: %s", q.CorrectAnswer)))
		}
	}

	score := Percentage(correct, len(selected))
	r.showResults(correct, len(selected), score)

	log.Printf("attempt finished: name=%q topic=%q difficulty=%q score=%.2f", name, topic, difficulty, score)
	if err := r.scoreboard.Append(ctx, name, score); err != nil {
		fmt.Fprintf(r.out, "%s %v\n", r.styles.Failure("Could not save your result:"), err)
		return nil, err
	}
	return &domain.SessionResult{Name: name, Score: score}, nil
}

func (r *SessionRunner) chooseTimeLimit(ctx context.Context) (time.Duration, error) {
	labels := make([]string, len(r.timeLimits))
	for i, d := range r.timeLimits {
		labels[i] = ui.FormatLimit(d)
	}
	idx, err := r.console.Choose(ctx, "Time limit per question", "Select a time limit", labels)
	if err != nil {
		return 0, err
	}
	return r.timeLimits[idx], nil
}

func (r *SessionRunner) showQuestion(q domain.Question) {
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Heading(q.Text))
	for _, option := range q.Options {
		fmt.Fprintln(r.out, option)
	}
}

func (r *SessionRunner) showResults(correct, total int, score float64) {
	tier := Grade(correct, total)
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Heading("### RESULTS ###"))
	fmt.Fprintf(r.out, "Total questions: %d\n", total)
	fmt.Fprintf(r.out, "Correct answers: %d\n", correct)
	fmt.Fprintf(r.out, "Score: %.2f%%\n", score)
	fmt.Fprintln(r.out, r.styles.Tier(tier, tier.Message()))
}
