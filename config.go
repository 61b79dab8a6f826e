package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// envFile is read, when present, before the environment is consulted.
var envFile = ".env"

var envKeys = []string{
	"SNAKE_WIDTH", "SNAKE_HEIGHT", "SNAKE_MIN_VALUE", "SNAKE_MAX_VALUE",
	"SNAKE_TICK", "SNAKE_POLL", "SNAKE_SEED", "SNAKE_LOG",
}

type Config struct {
	Width        int
	Height       int
	TickInterval time.Duration
	PollTimeout  time.Duration
	MinValue     int
	MaxValue     int
	Seed         uint64
	LogFile      string
	JSON         bool
}

func defaultConfig() Config {
	return Config{
		Width:        50,
		Height:       15,
		TickInterval: 200 * time.Millisecond,
		PollTimeout:  time.Millisecond,
		MinValue:     1,
		MaxValue:     9,
	}
}

// LoadConfig builds the configuration from defaults, then SNAKE_* variables
// (optionally read from .env), then command line flags.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "load "+envFile)
	}

	cfg := defaultConfig()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Arena width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Arena height in cells")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between ticks (lower = faster)")
	fs.DurationVar(&cfg.PollTimeout, "poll", cfg.PollTimeout, "Upper bound on each input poll")
	fs.IntVar(&cfg.MinValue, "min-value", cfg.MinValue, "Smallest collectible reward")
	fs.IntVar(&cfg.MaxValue, "max-value", cfg.MaxValue, "Largest collectible reward")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for collectibles (0 = time based)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the session summary as JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return errors.Errorf("arena %dx%d is too small, need at least 3x3", c.Width, c.Height)
	case c.TickInterval <= 0:
		return errors.Errorf("tick interval must be positive, got %v", c.TickInterval)
	case c.PollTimeout <= 0 || c.PollTimeout >= c.TickInterval:
		return errors.Errorf("poll timeout %v must be positive and shorter than the tick %v", c.PollTimeout, c.TickInterval)
	case c.MinValue < 1 || c.MaxValue < c.MinValue:
		return errors.Errorf("bad collectible value range [%d, %d]", c.MinValue, c.MaxValue)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	ints := map[string]*int{
		"SNAKE_WIDTH":     &cfg.Width,
		"SNAKE_HEIGHT":    &cfg.Height,
		"SNAKE_MIN_VALUE": &cfg.MinValue,
		"SNAKE_MAX_VALUE": &cfg.MaxValue,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", key)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"SNAKE_TICK": &cfg.TickInterval,
		"SNAKE_POLL": &cfg.PollTimeout,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", key)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parse SNAKE_SEED")
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("SNAKE_LOG"); ok {
		cfg.LogFile = v
	}
	return nil
}
