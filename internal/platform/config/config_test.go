package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "https://searx.be", cfg.SearXNG.BaseURL)
	assert.Equal(t, "onboarding@resend.dev", cfg.Email.From)
	assert.Equal(t, EmailProviderResend, cfg.Email.Provider)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.DemoRefreshTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("SEARXNG_URL", "http://searx.local")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("RESEARCH_RATE_PER_MINUTE", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, ,http://localhost:3000")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.DB.SQLitePath)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, "http://searx.local", cfg.SearXNG.BaseURL)
	assert.Equal(t, EmailProviderSES, cfg.Email.Provider)
	assert.Equal(t, "eu-west-1", cfg.Email.SES.Region)
	assert.Equal(t, 5, cfg.RateLimit.ResearchPerMinute)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown db driver", key: "DB_DRIVER", val: "mysql"},
		{name: "unknown email provider", key: "EMAIL_PROVIDER", val: "smtp"},
		{name: "zero access ttl", key: "JWT_ACCESS_TTL", val: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := FromViper(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: \"7070\"\ngemini_model: gemini-test\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "gemini-test", cfg.Gemini.Model)
}

func TestLog_NewLogger(t *testing.T) {
	logger := Log{Level: "debug", Format: "text"}.NewLogger()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = Log{Level: "warn", Format: "json"}.NewLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
