package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// options carries the persistent flags shared by every subcommand.
type options struct {
	configPath     string
	questionsPath  string
	scoreboardPath string
	noColor        bool
	verbose        bool
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	// Load .env file if it exists
	_ = godotenv.Load()
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	opts := &options{}
	cmd := &cobra.Command{
		Use:          "quiz-trainer",
		Short:        "Timed multiple-choice quiz trainer with a running leaderboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", envConfig, "path to YAML config")
	flags.StringVar(&opts.questionsPath, "questions", "", "question bank file (overrides config)")
	flags.StringVar(&opts.scoreboardPath, "scoreboard", "", "scoreboard file (overrides config)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.verbose, "verbose", false, "log diagnostics to stderr")

	cmd.AddCommand(NewPlayCmd(opts))
	cmd.AddCommand(NewLeaderboardCmd(opts))
	cmd.AddCommand(NewTopicsCmd(opts))
	return cmd
}
