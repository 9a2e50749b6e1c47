// Package di はアプリケーションのコンポーネントを組み立てるファクトリを提供します。
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "marketer_backend/internal/feature/auth/adapters"
	"marketer_backend/internal/feature/auth/usecase"
	"marketer_backend/internal/platform/session"
)

const sessionKeyPrefix = "session"

// NewSessionRepository はSessionRepositoryの実装を返します。
// Redisが使える場合はRedis実装、使えない場合はSQL実装にフォールバックします。
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, sessionKeyPrefix)
	}
	return authadapters.NewSessionRepository(db)
}
