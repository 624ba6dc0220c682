// Package config loads runtime configuration from BEE_MURAL_* environment
// variables. Every setting has a usable default so the app runs with an
// empty environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"bee-mural/internal/logger"
)

const envPrefix = "BEE_MURAL_"

type Config struct {
	// HoldDelay is how long a press must be held before it is promoted
	// to a hold (narration in learn mode, quiz start on the quiz button).
	HoldDelay time.Duration `env:"HOLD_DELAY" envDefault:"2s"`

	// AnswerWindow is the time allowed to answer a quiz question.
	AnswerWindow time.Duration `env:"ANSWER_WINDOW" envDefault:"10s"`

	// FlashInterval is the LED flash cadence during the answer window.
	FlashInterval time.Duration `env:"FLASH_INTERVAL" envDefault:"400ms"`

	// ResultFlash is how long answer feedback keeps flashing.
	ResultFlash time.Duration `env:"RESULT_FLASH" envDefault:"3s"`

	// QuizRounds is the number of questions per quiz run.
	QuizRounds int `env:"QUIZ_ROUNDS" envDefault:"5"`

	// InterruptAudio makes a new playback stop the current one.
	InterruptAudio bool `env:"INTERRUPT_AUDIO" envDefault:"true"`

	SoundsDir string `env:"SOUNDS_DIR"`
	ImagesDir string `env:"IMAGES_DIR"`

	Debug    bool `env:"DEBUG"`
	JSONLogs bool `env:"JSON_LOGS"`
}

// Load parses the environment and fills in directory defaults relative to
// the executable. Out-of-range values are clamped back to their defaults
// with a warning rather than refusing to start.
func Load(log logger.Logger) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, err
	}

	base := executableDir()
	if cfg.SoundsDir == "" {
		cfg.SoundsDir = filepath.Join(base, "sounds")
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = filepath.Join(base, "images")
	}

	cfg.clamp(log)
	return cfg, nil
}

func (c *Config) clamp(log logger.Logger) {
	warn := func(name string, value, fallback interface{}) {
		log.Warning("Config", "out-of-range value replaced with default", map[string]interface{}{
			"setting": name,
			"value":   value,
			"default": fallback,
		})
	}

	if c.HoldDelay <= 0 {
		warn("hold_delay", c.HoldDelay, 2*time.Second)
		c.HoldDelay = 2 * time.Second
	}
	if c.AnswerWindow <= 0 {
		warn("answer_window", c.AnswerWindow, 10*time.Second)
		c.AnswerWindow = 10 * time.Second
	}
	if c.FlashInterval <= 0 {
		warn("flash_interval", c.FlashInterval, 400*time.Millisecond)
		c.FlashInterval = 400 * time.Millisecond
	}
	if c.ResultFlash <= 0 {
		warn("result_flash", c.ResultFlash, 3*time.Second)
		c.ResultFlash = 3 * time.Second
	}
	if c.QuizRounds < 1 {
		warn("quiz_rounds", c.QuizRounds, 5)
		c.QuizRounds = 5
	}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
