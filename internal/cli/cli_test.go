package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-trainer/internal/domain"
)

const bankJSON = `[
  {"topic": "math", "difficulty": "easy", "text": "What is 2 + 2?", "options": ["A) 4", "B) 3", "C) 5", "D) 22"], "correct_answer": "A"},
  {"topic": "math", "difficulty": "easy", "text": "What is 10 / 2?", "options": ["A) 2", "B) 20", "C) 5", "D) 8"], "correct_answer": "C"},
  {"topic": "history", "difficulty": "hard", "text": "Capital of France?", "options": ["A) Berlin", "B) Paris", "C) Rome", "D) Madrid"], "correct_answer": "B"}
]`

func TestMenuPlaysAndRanks(t *testing.T) {
	dir := t.TempDir()
	questions := writeTemp(t, dir, "questions.json", bankJSON)
	scoreboard := filepath.Join(dir, "scoreboard.txt")

	input := strings.Join([]string{
		"9",   // invalid menu entry
		"2",   // empty ranking
		"1",   // start quiz
		"Ana", // name
		"2",   // topic: math
		"1",   // difficulty: easy
		"1",   // 5 seconds
		"a",
		"c",
		"2", // ranking
		"3", // exit
	}, "\n") + "\n"

	out, err := execute(t, input, "--config", filepath.Join(dir, "absent.yaml"), "--questions", questions, "--scoreboard", scoreboard, "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, want := range []string{
		"Invalid option.",
		"No results yet.",
		"Score: 100.00%",
		domain.TierTop.Message(),
		"1. Ana - 100.00%",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(scoreboard)
	if err != nil {
		t.Fatalf("read scoreboard: %v", err)
	}
	if string(data) != "Ana,100.00\n" {
		t.Fatalf("scoreboard = %q", string(data))
	}
}

func TestMenuExitsOnEndOfInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "", "play", "--config", filepath.Join(dir, "absent.yaml"), "--no-color"); err != nil {
		t.Fatalf("expected clean exit on closed input, got %v", err)
	}
}

func TestMenuSurvivesMissingQuestionFile(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "1\nBob\n3\n", "--config", filepath.Join(dir, "absent.yaml"), "--questions", filepath.Join(dir, "absent.json"), "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "No questions available.") || !strings.Contains(out, "Goodbye!") {
		t.Fatalf("expected graceful recovery:\n%s", out)
	}
}

func TestLeaderboardCommand(t *testing.T) {
	dir := t.TempDir()
	scoreboard := writeTemp(t, dir, "scoreboard.txt", "Bob,40.00\nAna,87.50\nBob,87.50\n")

	out, err := execute(t, "", "leaderboard", "--config", filepath.Join(dir, "absent.yaml"), "--scoreboard", scoreboard, "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "1. Ana - 87.50%\n2. Bob - 87.50%\n3. Bob - 40.00%\n"
	if !strings.Contains(out, want) {
		t.Fatalf("output %q does not contain %q", out, want)
	}
}

func TestLeaderboardCommandMalformed(t *testing.T) {
	dir := t.TempDir()
	scoreboard := writeTemp(t, dir, "scoreboard.txt", "Ana,87.50\nbroken\n")

	_, err := execute(t, "", "leaderboard", "--config", filepath.Join(dir, "absent.yaml"), "--scoreboard", scoreboard, "--no-color")
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestTopicsCommand(t *testing.T) {
	dir := t.TempDir()
	questions := writeTemp(t, dir, "questions.json", bankJSON)

	out, err := execute(t, "", "topics", "--config", filepath.Join(dir, "absent.yaml"), "--questions", questions, "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "history / hard: 1\nmath / easy: 2\n") {
		t.Fatalf("unexpected topics output:\n%s", out)
	}
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
