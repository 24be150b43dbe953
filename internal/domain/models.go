package domain

import "strings"

// Letter labels one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the valid option labels in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// OptionCount is the number of options every question carries.
const OptionCount = 4

// ParseLetter trims and uppercases raw input and reports whether it names a valid option.
func ParseLetter(raw string) (Letter, bool) {
	candidate := Letter(strings.ToUpper(strings.TrimSpace(raw)))
	for _, l := range Letters {
		if candidate == l {
			return l, true
		}
	}
	return "", false
}

// Question models a multiple-choice question with four labelled options.
type Question struct {
	Topic         string   `json:"topic" yaml:"topic"`
	Difficulty    string   `json:"difficulty" yaml:"difficulty"`
	Text          string   `json:"text" yaml:"text"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer Letter   `json:"correct_answer" yaml:"correct_answer"`
}

// IsCorrect compares an answer against the correct letter, ignoring case.
func (q Question) IsCorrect(answer Letter) bool {
	return strings.EqualFold(string(answer), string(q.CorrectAnswer))
}

// SessionResult is the outcome of one completed attempt.
type SessionResult struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"` // percentage in [0,100], two decimals
}

// RankedResult is a scoreboard row ready for display.
type RankedResult struct {
	Rank int `json:"rank"`
	SessionResult
}

// Tier buckets a score into a feedback message.
type Tier string

const (
	TierTop  Tier = "top"
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Message returns the feedback shown to the participant for the tier.
func (t Tier) Message() string {
	switch t {
	case TierTop:
		return "Perfect! Excellent work!"
	case TierHigh:
		return "Very good!"
	case TierMid:
		return "Good, but you can improve."
	default:
		return "You need more practice."
	}
}
