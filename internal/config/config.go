package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config only shapes logging. The rover itself has no settings.
type Config struct {
	Debug   bool `env:"ROVER_DEBUG" envDefault:"false"`
	LogJSON bool `env:"ROVER_LOG_JSON" envDefault:"false"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the config from the process environment only.
func Parse() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
