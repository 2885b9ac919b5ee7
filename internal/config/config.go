package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    slog.Level
	RawLogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Sessions
	RedisURL   string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Chronicle archive
	ArchivePath          string        `env:"ARCHIVE_PATH" envDefault:"data/chronicles.db"`
	ArchiveRetention     time.Duration `env:"ARCHIVE_RETENTION" envDefault:"720h"`
	ArchivePruneSchedule string        `env:"ARCHIVE_PRUNE_SCHEDULE" envDefault:"@daily"`

	// Generation
	DefaultEmpireName string `env:"DEFAULT_EMPIRE_NAME" envDefault:"玩家帝国"`
	MaxUploadBytes    int64  `env:"MAX_UPLOAD_BYTES" envDefault:"67108864"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.RawLogLevel)

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
