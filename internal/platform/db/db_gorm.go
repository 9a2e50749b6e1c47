// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定を保持します。
// URLが設定されている場合は個別項目より優先されます。
type Config struct {
	Driver         string        // "postgres" | "sqlite"
	URL            string        // DATABASE_URL（postgres://...）
	Host           string        // DB_HOST
	Port           string        // DB_PORT
	User           string        // DB_USER
	Password       string        // DB_PASSWORD
	Name           string        // DB_NAME
	SSLMode        string        // DB_SSLMODE（デフォルト disable）
	SQLitePath     string        // SQLITE_PATH（Driver=sqlite の場合）
	ConnectTimeout time.Duration // 接続リトライの上限時間
	RunMigrations  bool          // RUN_MIGRATIONS
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN はpostgres接続用のDSNを組み立てます。
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// ConnectWithRetry はtimeoutに達するまで一定間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open は設定に応じたドライバで接続し、必要であればマイグレーションを実行します。
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.Driver {
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "marketer.db"
		}
		database, err = gorm.Open(sqlite.Open(path), gcfg)
	case DriverPostgres, "":
		database, err = ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(database, models...); err != nil {
			return nil, err
		}
	}
	return database, nil
}

// Migrate はモデルのテーブルを作成・更新します。
func Migrate(database *gorm.DB, models ...any) error {
	if len(models) == 0 {
		return errors.New("no models to migrate")
	}
	if err := database.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	slog.Info("database migrated", "tables", len(models))
	return nil
}
