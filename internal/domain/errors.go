package domain

import "errors"

var (
	// ErrNoQuestions is returned when the question bank holds nothing usable.
	ErrNoQuestions = errors.New("no questions available")
	// ErrInvalidQuestion marks a question record that breaks the data model.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrMalformedRecord marks a scoreboard line that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed scoreboard record")
)
