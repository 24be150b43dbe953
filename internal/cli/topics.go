package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quiz-trainer/internal/app"
)

// NewTopicsCmd lists the topic and difficulty pairs available in the question bank.
func NewTopicsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics and difficulties in the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildComponents(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer c.close()

			questions, err := c.questions.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.styles.Heading(c.cfg.Questions.Path))
			for _, topic := range app.Topics(questions) {
				for _, difficulty := range app.Difficulties(questions) {
					if n := len(app.Filter(questions, topic, difficulty)); n > 0 {
						fmt.Fprintf(out, "%s / %s: %d\n", topic, difficulty, n)
					}
				}
			}
			return nil
		},
	}
}
