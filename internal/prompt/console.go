package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"quiz-trainer/internal/domain"
	"quiz-trainer/internal/ui"
)

var errNoOptions = errors.New("nothing to choose from")

type lineResult struct {
	line string
	err  error
}

// Console reads line-based answers from in and writes prompts to out.
//
// Every read runs in its own goroutine that delivers into a one-slot channel,
// so a read can be raced against a timer. A read that loses the race is not
// cancelled: it stays in flight and whatever it returns later is discarded.
// At most one read is ever in flight on the input stream. A Console is
// driven by a single goroutine.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles ui.Styles

	pending chan lineResult
	stale   bool
}

func NewConsole(in io.Reader, out io.Writer, styles ui.Styles) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Ask prints label and blocks until one line arrives. The line is trimmed.
func (c *Console) Ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, _, err := c.readLine(ctx, 0)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Answer waits up to timeout for an option letter.
// It reports ok=false when the time runs out or the text is not A-D.
func (c *Console) Answer(ctx context.Context, timeout time.Duration) (domain.Letter, bool, error) {
	fmt.Fprintf(c.out, "Your answer (A, B, C, D) - you have %s: ", ui.FormatLimit(timeout))
	line, arrived, err := c.readLine(ctx, timeout)
	if err != nil {
		return "", false, err
	}
	if !arrived {
		fmt.Fprintln(c.out, "\n"+c.styles.Notice("Time's up."))
		return "", false, nil
	}
	letter, ok := domain.ParseLetter(line)
	return letter, ok, nil
}

// Choose prints a 1-based numbered list and asks until a listed number is entered.
// It returns the 0-based index of the selection.
func (c *Console) Choose(ctx context.Context, title, label string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errNoOptions
	}
	fmt.Fprintf(c.out, "\n%s:\n", c.styles.Heading(title))
	for i, option := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, option)
	}
	for {
		raw, err := c.Ask(ctx, label+" (number): ")
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(c.out, c.styles.Failure("Invalid option."))
	}
}

// readLine waits for the next line. A zero timeout waits indefinitely.
// arrived is false when the timer or ctx won the race.
func (c *Console) readLine(ctx context.Context, timeout time.Duration) (line string, arrived bool, err error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		slot, stale := c.nextSlot()
		select {
		case res := <-slot:
			c.pending, c.stale = nil, false
			if stale && res.err == nil {
				// late answer to an earlier prompt
				continue
			}
			return res.line, true, res.err
		case <-expired:
			c.stale = true
			return "", false, nil
		case <-ctx.Done():
			c.stale = true
			return "", false, ctx.Err()
		}
	}
}

// nextSlot returns the slot of the read in flight, starting one if needed.
// stale reports that the read was started by a prompt that has given up on
// it; its line must not be used. Only one goroutine reads c.in at a time.
func (c *Console) nextSlot() (slot chan lineResult, stale bool) {
	if c.pending != nil && c.stale {
		select {
		case <-c.pending:
			c.pending, c.stale = nil, false
		default:
			return c.pending, true
		}
	}

	if c.pending == nil {
		fresh := make(chan lineResult, 1)
		go func() {
			line, err := c.in.ReadString('\n')
			if errors.Is(err, io.EOF) && line != "" {
				err = nil
			}
			fresh <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
		}()
		c.pending = fresh
	}
	return c.pending, false
}

