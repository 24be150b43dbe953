package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"quiz-trainer/internal/domain"
)

// maxRecordBytes bounds one scoreboard line when reading.
const maxRecordBytes = 1 << 20

// ScoreStore persists session results as "name,score" lines in a text file.
// Writes are plain appends without locking; one process at a time is assumed.
type ScoreStore struct {
	path string
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

func (s *ScoreStore) Append(_ context.Context, result domain.SessionResult) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open scoreboard: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s,%.2f\n", result.Name, result.Score); err != nil {
		_ = f.Close()
		return fmt.Errorf("append scoreboard: %w", err)
	}
	return f.Close()
}

// List returns every record in file order. A missing file is an empty board.
// The first malformed line fails the whole read.
func (s *ScoreStore) List(_ context.Context) ([]domain.SessionResult, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scoreboard: %w", err)
	}
	defer f.Close()

	var results []domain.SessionResult
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, lineNo, err)
		}
		results = append(results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan scoreboard: %w", err)
	}
	return results, nil
}

// parseRecord splits on the last comma so names may contain commas.
func parseRecord(line string) (domain.SessionResult, error) {
	sep := strings.LastIndex(line, ",")
	if sep < 0 {
		return domain.SessionResult{}, fmt.Errorf("%w: %q has no score", domain.ErrMalformedRecord, line)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(line[sep+1:]), 64)
	if err != nil {
		return domain.SessionResult{}, fmt.Errorf("%w: %q: %v", domain.ErrMalformedRecord, line, err)
	}
	return domain.SessionResult{Name: strings.TrimSpace(line[:sep]), Score: score}, nil
}
