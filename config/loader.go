package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables
// files are .env paths tried in order; with none, ".env" in the working directory is used
// A missing file is not an error
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		logrus.Debug("config: no .env file found")
	} else {
		logrus.Info("config: loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overrides fields from command-line arguments
//
//	-seed N     fixed random seed
//	-scene PATH scene layout YAML
//	-debug      write logs to logs/crunch-time.log
//	-mute       disable audio
func (c *Config) ApplyFlags(args []string) error {
	fset := flag.NewFlagSet("crunch-time", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	seed := fset.Int64("seed", c.Seed, "random seed (0 = time-based)")
	scene := fset.String("scene", c.Scene, "scene layout YAML path")
	debug := fset.Bool("debug", c.Debug, "enable debug logging to file")
	mute := fset.Bool("mute", !c.Audio, "disable audio")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	c.Seed = *seed
	c.Scene = *scene
	c.Debug = *debug
	c.Audio = !*mute
	return nil
}

// Validate performs range checks after parsing
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid CRUNCH_TICK_INTERVAL: %v (must be positive)", c.TickInterval)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("invalid CRUNCH_FRAME_INTERVAL: %v (must be positive)", c.FrameInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("invalid CRUNCH_VOLUME: %v (must be between 0 and 1)", c.Volume)
	}
	if c.RedisRetries < 0 {
		return fmt.Errorf("invalid CRUNCH_REDIS_RETRIES: %d (must be non-negative)", c.RedisRetries)
	}
	return nil
}
