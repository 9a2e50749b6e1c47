package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/auth/domain/entity"
	"marketer_backend/internal/feature/auth/usecase"
)

// sessionRepository はSessionRepositoryのSQL実装です。Redisが使えない環境で使います。
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.SessionRepository = (*sessionRepository)(nil)

// NewSessionRepository はsessionRepositoryの新しいインスタンスを生成します。
func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// active は有効なセッションに絞り込みます。
func (r *sessionRepository) active(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, r.now())
}

// Create はセッションを保存します。
func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(SessionModelFromEntity(session)).Error
}

// FindByID はリフレッシュトークンでセッションを取得します。
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Revoke はセッションを失効させます。既に失効済みでも成功します。
func (r *sessionRepository) Revoke(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", id).
		Update("revoked_at", r.now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// RevokeAllByUserID はユーザーの有効なセッションをすべて失効させます。
func (r *sessionRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", r.now()).Error
}

// DeleteExpired は期限切れのセッションを削除し、削除件数を返します。
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", r.now()).
		Delete(&SessionModel{})
	return res.RowsAffected, res.Error
}

// CountByUserID はユーザーの有効なセッション数を返します。
func (r *sessionRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.active(ctx, userID).Count(&count).Error
	return count, err
}

// DeleteOldestByUserID はユーザーの最も古い有効なセッションを削除します。
func (r *sessionRepository) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	var oldest SessionModel
	if err := r.active(ctx, userID).Order("created_at ASC").First(&oldest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", oldest.ID).Error
}
