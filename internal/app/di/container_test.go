package di

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketer_backend/internal/platform/config"
	"marketer_backend/internal/platform/session"
)

func setup(t *testing.T) (*config.Config, *gorm.DB) {
	t.Helper()

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)
	cfg.JWT.Secret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))
	return cfg, db
}

func TestBuild(t *testing.T) {
	cfg, db := setup(t)

	app, err := Build(context.Background(), cfg, db, nil)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.NotNil(t, app.Handlers.Auth)
	assert.NotNil(t, app.Handlers.Research)
	assert.NotNil(t, app.Handlers.Companies)
	assert.NotNil(t, app.Handlers.Contacts)
	assert.NotNil(t, app.Handlers.Campaigns)
	assert.NotNil(t, app.Handlers.Email)
	assert.NotNil(t, app.Sessions)
}

func TestBuild_UnsupportedEmailProvider(t *testing.T) {
	cfg, db := setup(t)
	cfg.Email.Provider = "smtp"

	_, err := Build(context.Background(), cfg, db, nil)
	assert.Error(t, err)
}

func TestNewSessionRepository(t *testing.T) {
	_, db := setup(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	_, isRedis := NewSessionRepository(rdb, db).(*session.SessionRedis)
	assert.True(t, isRedis)

	_, isRedis = NewSessionRepository(nil, db).(*session.SessionRedis)
	assert.False(t, isRedis)
}
