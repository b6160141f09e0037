// internal/config/config.go
//
// Runtime configuration loaded from the environment (and a `.env` file, which
// main loads first with godotenv). Command line flags override these values.
//
// Environment variables:
//   LOG_LEVEL=warn                  zerolog level (trace..panic, disabled)
//   MASTERMIND_MAX_TURNS=12         guesses before the game is lost
//   MASTERMIND_CODE_LENGTH=4        symbols per code
//   MASTERMIND_PALETTE_FILE=        YAML palette; empty uses the embedded default
//   MASTERMIND_DAILY_SALT=mastermind key for the daily secret (≤ 64 bytes)
//   MASTERMIND_COLOR=auto           auto | always | never

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MaxCodeLength bounds the code length accepted from configuration.
const MaxCodeLength = 10

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds the game settings.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL"               envDefault:"warn"`
	MaxTurns    int    `env:"MASTERMIND_MAX_TURNS"    envDefault:"12"`
	CodeLength  int    `env:"MASTERMIND_CODE_LENGTH"  envDefault:"4"`
	PaletteFile string `env:"MASTERMIND_PALETTE_FILE"`
	DailySalt   string `env:"MASTERMIND_DAILY_SALT"   envDefault:"mastermind"`
	Color       string `env:"MASTERMIND_COLOR"        envDefault:"auto"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max turns must be at least 1, got %d", ErrInvalid, c.MaxTurns)
	}
	if c.CodeLength < 1 || c.CodeLength > MaxCodeLength {
		return fmt.Errorf("%w: code length must be between 1 and %d, got %d", ErrInvalid, MaxCodeLength, c.CodeLength)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	if len(c.DailySalt) > 64 {
		return fmt.Errorf("%w: daily salt longer than 64 bytes", ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}
