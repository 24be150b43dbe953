package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"quiz-trainer/internal/app"
	"quiz-trainer/internal/prompt"
	"quiz-trainer/internal/ui"
)

// NewPlayCmd builds the CLI subcommand for the interactive menu.
func NewPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive quiz menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *options) error {
	c, err := buildComponents(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer c.close()

	out := cmd.OutOrStdout()
	console := prompt.NewConsole(cmd.InOrStdin(), out, c.styles)
	runner := app.NewSessionRunner(c.questions, c.scoreboard, console, out, c.styles, c.cfg.TimeLimits())
	m := &menu{
		console:    console,
		out:        out,
		styles:     c.styles,
		runner:     runner,
		scoreboard: c.scoreboard,
	}
	return m.loop(cmd.Context())
}

type menu struct {
	console    *prompt.Console
	out        io.Writer
	styles     ui.Styles
	runner     *app.SessionRunner
	scoreboard *app.Scoreboard
}

// loop dispatches menu choices until the user exits or input ends.
func (m *menu) loop(ctx context.Context) error {
	for {
		fmt.Fprintf(m.out, "\n%s\n", m.styles.Heading("### MENU ###"))
		fmt.Fprintln(m.out, "1 - Start quiz")
		fmt.Fprintln(m.out, "2 - View ranking")
		fmt.Fprintln(m.out, "3 - Exit")

		choice, err := m.console.Ask(ctx, "Select an option: ")
		if err != nil {
			return endOfSession(err)
		}

		switch choice {
		case "1":
			if _, err := m.runner.Run(ctx); err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return endOfSession(err)
				}
				log.Printf("attempt failed: %v", err)
			}
		case "2":
			if err := m.scoreboard.Render(ctx, m.out); err != nil {
				log.Printf("render ranking: %v", err)
				fmt.Fprintf(m.out, "%s %v\n", m.styles.Failure("Could not read the ranking:"), err)
			}
		case "3":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, m.styles.Failure("Invalid option."))
		}
	}
}

// endOfSession treats closed input and interrupts as a normal exit.
func endOfSession(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
