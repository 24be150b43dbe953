package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"quiz-trainer/internal/domain"
	"quiz-trainer/internal/ui"
)

func TestAnswerTimesOutWithoutInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	console := NewConsole(pr, &out, ui.Styles{})

	start := time.Now()
	letter, ok, err := console.Answer(context.Background(), 30*time.Millisecond)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if ok || letter != "" {
		t.Fatalf("expected no answer, got %q ok=%v", letter, ok)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("answer blocked for %s", elapsed)
	}
	if !strings.Contains(out.String(), "Time's up.") {
		t.Fatalf("expected timeout notice, got %q", out.String())
	}
}

func TestAnswerNormalizesAndValidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Letter
		ok    bool
	}{
		{name: "lowercase letter", input: "b\n", want: domain.LetterB, ok: true},
		{name: "padded letter", input: "  d  \r\n", want: domain.LetterD, ok: true},
		{name: "invalid letter", input: "Z\n", ok: false},
		{name: "free text", input: "paris\n", ok: false},
		{name: "no trailing newline", input: "a", want: domain.LetterA, ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			console := NewConsole(strings.NewReader(tc.input), io.Discard, ui.Styles{})
			letter, ok, err := console.Answer(context.Background(), time.Second)
			if err != nil {
				t.Fatalf("answer: %v", err)
			}
			if ok != tc.ok || letter != tc.want {
				t.Fatalf("Answer(%q) = (%q, %v), want (%q, %v)", tc.input, letter, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLateLineIsNotUsedForNextPrompt(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	console := NewConsole(pr, io.Discard, ui.Styles{})

	if _, ok, err := console.Answer(context.Background(), 20*time.Millisecond); err != nil || ok {
		t.Fatalf("expected first prompt to time out, ok=%v err=%v", ok, err)
	}

	go func() {
		time.Sleep(5 * time.Millisecond)
		_, _ = pw.Write([]byte("a\n"))
		_, _ = pw.Write([]byte("c\n"))
	}()

	letter, ok, err := console.Answer(context.Background(), 2*time.Second)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !ok || letter != domain.LetterC {
		t.Fatalf("expected C after the late line was dropped, got %q ok=%v", letter, ok)
	}
}

func TestLateLineFinishedBeforeNextPromptIsDropped(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	console := NewConsole(pr, io.Discard, ui.Styles{})

	if _, ok, err := console.Answer(context.Background(), 20*time.Millisecond); err != nil || ok {
		t.Fatalf("expected first prompt to time out, ok=%v err=%v", ok, err)
	}

	// the abandoned read consumes this line before the next prompt exists
	if _, err := pw.Write([]byte("a\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	go func() {
		time.Sleep(5 * time.Millisecond)
		_, _ = pw.Write([]byte("b\n"))
	}()

	letter, ok, err := console.Answer(context.Background(), 2*time.Second)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !ok || letter != domain.LetterB {
		t.Fatalf("expected B, got %q ok=%v", letter, ok)
	}
}

func TestAnswerHonorsContext(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	console := NewConsole(pr, io.Discard, ui.Styles{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := console.Answer(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChooseRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("x\n0\n3\n2\n"), &out, ui.Styles{})

	idx, err := console.Choose(context.Background(), "Topic options", "Select a topic", []string{"history", "math"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if got := strings.Count(out.String(), "Invalid option."); got != 3 {
		t.Fatalf("expected 3 rejections, got %d in %q", got, out.String())
	}
	if !strings.Contains(out.String(), "1. history\n2. math\n") {
		t.Fatalf("expected numbered list, got %q", out.String())
	}
}

func TestAskReportsEndOfInput(t *testing.T) {
	console := NewConsole(strings.NewReader(""), io.Discard, ui.Styles{})
	if _, err := console.Ask(context.Background(), "Name: "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
