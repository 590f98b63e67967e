// Package config loads draftboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "DRAFTBOARD_"

// Config holds settings shared by the board and the ADP server.
// Command-line flags override values loaded here.
type Config struct {
	// Board
	ADPURL       string        `env:"ADP_URL" envDefault:"http://localhost:5000/adp"`
	FadeDelay    time.Duration `env:"FADE_DELAY" envDefault:"500ms"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	Title        string        `env:"TITLE" envDefault:"Half PPR ADP Data"`

	// Logging
	LogFile  string `env:"LOG_FILE" envDefault:"draftboard.log"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Server
	Addr    string `env:"ADDR" envDefault:":5000"`
	CSVPath string `env:"CSV_PATH" envDefault:"data/half_ppr_adp.csv"`
}

// Load parses DRAFTBOARD_* variables over the defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateBoard checks the settings the board command needs.
func (c Config) ValidateBoard() error {
	var errs []error
	if c.ADPURL == "" {
		errs = append(errs, errors.New("adp url is required"))
	}
	if c.FadeDelay < 0 {
		errs = append(errs, fmt.Errorf("fade delay must not be negative, got %s", c.FadeDelay))
	}
	if c.FetchTimeout < 0 {
		errs = append(errs, fmt.Errorf("fetch timeout must not be negative, got %s", c.FetchTimeout))
	}
	return errors.Join(errs...)
}

// ValidateServer checks the settings the serve command needs.
func (c Config) ValidateServer() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.CSVPath == "" {
		errs = append(errs, errors.New("csv path is required"))
	}
	return errors.Join(errs...)
}
