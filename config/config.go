// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lexigrid/board"
	"github.com/katalvlaran/lexigrid/catalog"
)

// Environment variable names.
const (
	EnvLevelsDir   = "LEXIGRID_LEVELS_DIR"
	EnvLogLevel    = "LOG_LEVEL"
	EnvBoardWidth  = "LEXIGRID_BOARD_WIDTH"
	EnvBoardHeight = "LEXIGRID_BOARD_HEIGHT"
)

// DefaultLevelsDir is used when EnvLevelsDir is unset.
const DefaultLevelsDir = "assets/levels"

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the runtime settings.
type Config struct {
	LevelsDir string
	LogLevel  zerolog.Level
	Board     board.Bounds
}

// Load reads the given .env files, or ./.env when none are named, into the
// process environment and then calls FromEnv. A missing default .env is not
// an error; a missing named file is. Variables already set are not
// overridden.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		LevelsDir: getEnv(EnvLevelsDir, DefaultLevelsDir),
		Board:     board.DefaultBounds(),
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(getEnv(EnvLogLevel, "info")))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvLogLevel, err)
	}
	cfg.LogLevel = lvl

	if cfg.Board.Width, err = getPositive(EnvBoardWidth, cfg.Board.Width); err != nil {
		return Config{}, err
	}
	if cfg.Board.Height, err = getPositive(EnvBoardHeight, cfg.Board.Height); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Apply sets the global zerolog level.
func (c Config) Apply() {
	zerolog.SetGlobalLevel(c.LogLevel)
}

// Bounds returns the playable board rectangle.
func (c Config) Bounds() board.Bounds {
	return c.Board
}

// LoadCatalog loads the level catalog from LevelsDir with the configured
// bounds. Extra options are applied after the configured ones.
func (c Config) LoadCatalog(opts ...catalog.Option) (*catalog.Catalog, error) {
	all := append([]catalog.Option{catalog.WithBounds(c.Bounds())}, opts...)
	return catalog.LoadDir(c.LevelsDir, all...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getPositive(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}
