package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Player struct {
		Duration       time.Duration `env:"STORY_DURATION" env-default:"5s" env-description:"how long each story media item stays on screen"`
		TickInterval   time.Duration `env:"STORY_TICK_INTERVAL" env-default:"50ms" env-description:"progress update cadence"`
		SwipeThreshold float64       `env:"STORY_SWIPE_THRESHOLD" env-default:"50" env-description:"horizontal swipe distance in pixels"`
	}
	Feed struct {
		CurrentUserID string        `env:"FEED_CURRENT_USER_ID" env-default:"1"`
		ActionRate    int           `env:"FEED_ACTION_RATE" env-default:"20"`
		ActionPer     time.Duration `env:"FEED_ACTION_PER" env-default:"1s"`
		ActionBurst   int           `env:"FEED_ACTION_BURST" env-default:"20"`
	}
	Composer struct {
		Workers    int `env:"COMPOSER_WORKERS" env-default:"4"`
		MaxCaption int `env:"COMPOSER_MAX_CAPTION" env-default:"2200"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads the configuration from the environment without caching it.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	return c, nil
}
