package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "data/chronicles.db", cfg.ArchivePath)
	assert.Equal(t, 720*time.Hour, cfg.ArchiveRetention)
	assert.Equal(t, "@daily", cfg.ArchivePruneSchedule)
	assert.Equal(t, "玩家帝国", cfg.DefaultEmpireName)
	assert.Equal(t, int64(64<<20), cfg.MaxUploadBytes)
}

func TestParse_FromEnvironment(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"PORT":                "9090",
		"ENVIRONMENT":         "production",
		"LOG_LEVEL":           "WARNING",
		"SESSION_TTL":         "90m",
		"DEFAULT_EMPIRE_NAME": "人类联邦",
		"MAX_UPLOAD_BYTES":    "1024",
	}})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "人类联邦", cfg.DefaultEmpireName)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad duration":   {"SESSION_TTL": "soon"},
		"zero ttl":       {"SESSION_TTL": "0s"},
		"negative limit": {"MAX_UPLOAD_BYTES": "-1"},
		"not a number":   {"MAX_UPLOAD_BYTES": "lots"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(env.Options{Environment: vars})
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}
