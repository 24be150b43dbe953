package cli

import "github.com/spf13/cobra"

// NewLeaderboardCmd prints the ranking without entering the menu.
func NewLeaderboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"ranking"},
		Short:   "Show every recorded score, best first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildComponents(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer c.close()
			return c.scoreboard.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
