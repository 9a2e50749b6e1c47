// Package config は環境変数・.env・config.yamlからアプリケーション設定を読み込みます。
//
// 優先順位は 環境変数 > config.yaml > デフォルト値 です。
// .envは起動時に環境変数として読み込まれ、既存の環境変数は上書きしません。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"marketer_backend/internal/platform/db"
	"marketer_backend/internal/platform/externalapi/resend"
	"marketer_backend/internal/platform/externalapi/searxng"
	"marketer_backend/internal/platform/externalapi/ses"
	"marketer_backend/internal/platform/redis"
)

const (
	EmailProviderResend = "resend"
	EmailProviderSES    = "ses"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Server    Server
	Log       Log
	DB        db.Config
	Redis     redis.Config
	JWT       JWT
	SearXNG   searxng.Config
	Email     Email
	Gemini    Gemini
	Vision    Vision
	RateLimit RateLimit
}

// Server はHTTPサーバーの設定です。
type Server struct {
	Port                   string
	GinMode                string
	SessionCleanupInterval time.Duration // 期限切れセッションの掃除間隔
	CORSAllowedOrigins     []string      // 空ならCORSを無効化
}

// Log はslogの設定です。
type Log struct {
	Level  string // debug | info | warn | error
	Format string // json | text
}

// JWT はトークン発行の設定です。
type JWT struct {
	Secret         string
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	DemoRefreshTTL time.Duration
	MaxSessions    int
}

// Email は送信プロバイダーの設定です。
type Email struct {
	Provider        string // resend | ses
	From            string
	RateLimit       int // RateInterval あたりの最大送信数
	RateInterval    time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	Resend          resend.Config
	SES             ses.Config
}

// Gemini はメール文面生成の設定です。APIKeyが空の場合、生成機能は無効です。
type Gemini struct {
	APIKey string
	Model  string
}

// Vision はロゴ検出の設定です。
type Vision struct {
	Enabled bool
}

// RateLimit は調査系エンドポイントのIP単位レート制限です。
type RateLimit struct {
	ResearchPerMinute int
	ResearchBurst     int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("session_cleanup_interval", time.Hour)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("db_driver", db.DriverPostgres)
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "marketer")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("sqlite_path", "marketer.db")
	v.SetDefault("db_connect_timeout", 30*time.Second)
	v.SetDefault("run_migrations", true)

	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_access_ttl", time.Hour)
	v.SetDefault("jwt_refresh_ttl", 7*24*time.Hour)
	v.SetDefault("jwt_demo_refresh_ttl", 30*24*time.Hour)
	v.SetDefault("jwt_max_sessions", 5)

	v.SetDefault("searxng_url", searxng.DefaultBaseURL)
	v.SetDefault("searxng_timeout", searxng.DefaultTimeout)

	v.SetDefault("email_provider", EmailProviderResend)
	v.SetDefault("email_from", "onboarding@resend.dev")
	v.SetDefault("email_rate_limit", 10)
	v.SetDefault("email_rate_interval", time.Second)
	v.SetDefault("email_breaker_failures", 5)
	v.SetDefault("email_breaker_timeout", 30*time.Second)
	v.SetDefault("resend_api_key", "")
	v.SetDefault("resend_base_url", resend.DefaultBaseURL)
	v.SetDefault("resend_timeout", resend.DefaultTimeout)
	v.SetDefault("aws_region", "us-east-1")

	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("vision_enabled", false)

	v.SetDefault("research_rate_per_minute", 30)
	v.SetDefault("research_rate_burst", 10)
}

// Load は.envを読み込んだ上で設定を組み立てます。
// config.yamlはカレントディレクトリと./configsから探し、無ければ無視します。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	return FromViper(v)
}

// FromViper はviperインスタンスから設定を組み立てます。環境変数はここで結び付けます。
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: Server{
			Port:                   v.GetString("port"),
			GinMode:                v.GetString("gin_mode"),
			SessionCleanupInterval: v.GetDuration("session_cleanup_interval"),
			CORSAllowedOrigins:     splitList(v.GetString("cors_allowed_origins")),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
		DB: db.Config{
			Driver:         v.GetString("db_driver"),
			URL:            v.GetString("database_url"),
			Host:           v.GetString("db_host"),
			Port:           v.GetString("db_port"),
			User:           v.GetString("db_user"),
			Password:       v.GetString("db_password"),
			Name:           v.GetString("db_name"),
			SSLMode:        v.GetString("db_sslmode"),
			SQLitePath:     v.GetString("sqlite_path"),
			ConnectTimeout: v.GetDuration("db_connect_timeout"),
			RunMigrations:  v.GetBool("run_migrations"),
		},
		Redis: redis.Config{
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		JWT: JWT{
			Secret:         v.GetString("jwt_secret"),
			AccessTTL:      v.GetDuration("jwt_access_ttl"),
			RefreshTTL:     v.GetDuration("jwt_refresh_ttl"),
			DemoRefreshTTL: v.GetDuration("jwt_demo_refresh_ttl"),
			MaxSessions:    v.GetInt("jwt_max_sessions"),
		},
		SearXNG: searxng.Config{
			BaseURL: v.GetString("searxng_url"),
			Timeout: v.GetDuration("searxng_timeout"),
		},
		Email: Email{
			Provider:        strings.ToLower(v.GetString("email_provider")),
			From:            v.GetString("email_from"),
			RateLimit:       v.GetInt("email_rate_limit"),
			RateInterval:    v.GetDuration("email_rate_interval"),
			BreakerFailures: v.GetUint32("email_breaker_failures"),
			BreakerTimeout:  v.GetDuration("email_breaker_timeout"),
			Resend: resend.Config{
				APIKey:  v.GetString("resend_api_key"),
				BaseURL: v.GetString("resend_base_url"),
				Timeout: v.GetDuration("resend_timeout"),
			},
			SES: ses.Config{Region: v.GetString("aws_region")},
		},
		Gemini: Gemini{
			APIKey: v.GetString("gemini_api_key"),
			Model:  v.GetString("gemini_model"),
		},
		Vision: Vision{Enabled: v.GetBool("vision_enabled")},
		RateLimit: RateLimit{
			ResearchPerMinute: v.GetInt("research_rate_per_minute"),
			ResearchBurst:     v.GetInt("research_rate_burst"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.Email.Provider {
	case EmailProviderResend, EmailProviderSES:
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER %q", c.Email.Provider)
	}
	if c.JWT.AccessTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL must be positive")
	}
	return nil
}

// NewLogger はLog設定に従ったslog.Loggerを返します。
func (l Log) NewLogger() *slog.Logger {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// splitList はカンマ区切りの値を空要素を除いて分割します。
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
