package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"quiz-trainer/internal/domain"
)

// Styles decorates console text. The zero value renders plain text.
type Styles struct {
	enabled bool
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	notice  lipgloss.Style
	muted   lipgloss.Style
}

// New returns colored styles, or plain ones when color is false.
func New(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		enabled: true,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		muted:   lipgloss.NewStyle().Faint(true),
	}
}

func (s Styles) Heading(text string) string { return s.render(s.heading, text) }
func (s Styles) Success(text string) string { return s.render(s.success, text) }
func (s Styles) Failure(text string) string { return s.render(s.failure, text) }
func (s Styles) Notice(text string) string  { return s.render(s.notice, text) }
func (s Styles) Muted(text string) string   { return s.render(s.muted, text) }

// Tier colors a feedback message by how well the participant did.
func (s Styles) Tier(tier domain.Tier, text string) string {
	switch tier {
	case domain.TierTop, domain.TierHigh:
		return s.Success(text)
	case domain.TierMid:
		return s.Notice(text)
	default:
		return s.Failure(text)
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// FormatLimit renders a time limit as whole seconds when it is one, e.g. "5 seconds".
func FormatLimit(d time.Duration) string {
	if d > 0 && d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	}
	return d.String()
}
