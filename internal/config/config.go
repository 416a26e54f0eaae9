// Package config loads process configuration from the environment and
// optional .env files into a single Config value.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

var ErrNoDatabase = errors.New("DATABASE_URL or DB_HOST must be set")

// Load reads the given env files (missing ones are skipped) and then parses
// the process environment.
func Load(envFiles ...string) (*Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		logrus.WithField("files", envFiles).Info("Could not load .env file")
	} else if err := godotenv.Load(existing...); err != nil {
		return nil, err
	}
	return parse(env.Options{})
}

// FromMap parses configuration from vars instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.URL == "" && c.DB.Host == "" {
		return ErrNoDatabase
	}
	if c.App.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}
	return nil
}
