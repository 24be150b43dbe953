package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultQuestionsPath  = "questions.json"
	DefaultScoreboardPath = "scoreboard.txt"
)

// DefaultTimeLimits are the per-question limits, in seconds, offered by default.
var DefaultTimeLimits = []int{5, 10, 15, 20}

type Config struct {
	Questions struct {
		Path     string `yaml:"path"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"questions"`
	Scoreboard struct {
		Path string `yaml:"path"`
	} `yaml:"scoreboard"`
	Quiz struct {
		TimeLimits []int `yaml:"time_limits"`
	} `yaml:"quiz"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	UI struct {
		NoColor bool `yaml:"no_color"`
	} `yaml:"ui"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads YAML config from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the quiz cannot run with.
func (c Config) Validate() error {
	for _, limit := range c.Quiz.TimeLimits {
		if limit <= 0 {
			return fmt.Errorf("quiz.time_limits: %d is not a positive number of seconds", limit)
		}
	}
	return nil
}

// TimeLimits returns the configured limits as durations.
func (c Config) TimeLimits() []time.Duration {
	limits := make([]time.Duration, 0, len(c.Quiz.TimeLimits))
	for _, s := range c.Quiz.TimeLimits {
		limits = append(limits, time.Duration(s)*time.Second)
	}
	return limits
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func applyDefaults(cfg *Config) {
	if cfg.Questions.Path == "" {
		cfg.Questions.Path = DefaultQuestionsPath
	}
	if cfg.Scoreboard.Path == "" {
		cfg.Scoreboard.Path = DefaultScoreboardPath
	}
	if len(cfg.Quiz.TimeLimits) == 0 {
		cfg.Quiz.TimeLimits = append([]int(nil), DefaultTimeLimits...)
	}
}
