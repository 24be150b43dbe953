package cli

import (
	"io"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"quiz-trainer/internal/app"
	"quiz-trainer/internal/config"
	"quiz-trainer/internal/infra/file"
	"quiz-trainer/internal/infra/memory"
	redisquestions "quiz-trainer/internal/infra/redis"
	"quiz-trainer/internal/ui"
)

// components is everything a subcommand needs, built from config and flags.
type components struct {
	cfg        config.Config
	styles     ui.Styles
	questions  *app.QuestionStore
	scoreboard *app.Scoreboard
	close      func()
}

func buildComponents(opts *options, logOut io.Writer) (*components, error) {
	configureLogging(opts.verbose, logOut)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.questionsPath != "" {
		cfg.Questions.Path = opts.questionsPath
	}
	if opts.scoreboardPath != "" {
		cfg.Scoreboard.Path = opts.scoreboardPath
	}

	styles := ui.New(!opts.noColor && !cfg.UI.NoColor)
	loader := file.NewQuestionLoader(cfg.Questions.Path)

	closeFn := func() {}
	var repo app.QuestionRepository
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closeFn = func() { _ = client.Close() }
		redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)
		repo = redisquestions.NewQuestionRepository(client, loader, cfg.Questions.Path, redisTTL)
		log.Printf("caching questions in redis at %s", cfg.Redis.Addr)
	} else {
		repo = memory.NewQuestionRepository(loader, config.TTLDuration(cfg.Questions.CacheTTL, 0))
	}

	return &components{
		cfg:        cfg,
		styles:     styles,
		questions:  app.NewQuestionStore(repo),
		scoreboard: app.NewScoreboard(file.NewScoreStore(cfg.Scoreboard.Path), styles),
		close:      closeFn,
	}, nil
}

func configureLogging(verbose bool, out io.Writer) {
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(out)
	log.SetPrefix("quiz-trainer: ")
}
