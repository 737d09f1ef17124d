package config

import (
	"time"
)

// Config holds executable configuration loaded from environment variables
// Parsed with github.com/caarlos0/env; a .env file in the working directory is read first
type Config struct {
	// Loop timing
	TickInterval  time.Duration `env:"CRUNCH_TICK_INTERVAL" envDefault:"50ms"`
	FrameInterval time.Duration `env:"CRUNCH_FRAME_INTERVAL" envDefault:"16ms"`

	// Session
	Seed  int64  `env:"CRUNCH_SEED" envDefault:"0"` // 0 = time-based
	Scene string `env:"CRUNCH_SCENE"`               // empty = embedded office

	// Presentation
	Audio  bool    `env:"CRUNCH_AUDIO" envDefault:"true"`
	Volume float64 `env:"CRUNCH_VOLUME" envDefault:"0.6"` // SFX volume 0..1, +/- adjust at runtime
	Debug  bool    `env:"CRUNCH_DEBUG" envDefault:"false"`

	// Optional services, empty address disables
	MetricsAddr   string `env:"CRUNCH_METRICS_ADDR"`
	SpectatorAddr string `env:"CRUNCH_SPECTATOR_ADDR"`

	// Redis scoreboard
	RedisAddr     string `env:"CRUNCH_REDIS_ADDR"`
	RedisPassword string `env:"CRUNCH_REDIS_PASSWORD"`
	RedisRetries  int    `env:"CRUNCH_REDIS_RETRIES" envDefault:"5"`
}

// MetricsEnabled reports whether the Prometheus endpoint should be served
func (c *Config) MetricsEnabled() bool { return c.MetricsAddr != "" }

// SpectatorEnabled reports whether the websocket feed should be served
func (c *Config) SpectatorEnabled() bool { return c.SpectatorAddr != "" }

// RedisEnabled reports whether results go to Redis instead of memory
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }
