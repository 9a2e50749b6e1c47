// Package adapters はcontactsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/contacts/domain/entity"
	"marketer_backend/internal/feature/contacts/usecase"
)

// contactRepository はContactRepositoryインターフェースのGORM実装です。
type contactRepository struct {
	db *gorm.DB
}

var _ usecase.ContactRepository = (*contactRepository)(nil)

// NewContactRepository は指定されたDB接続でcontactRepositoryの新しいインスタンスを生成します。
func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

// Create は担当者をデータベースに追加します。
func (r *contactRepository) Create(ctx context.Context, c *entity.Contact) error {
	m := ContactModelFromEntity(c)
	if err := r.db.WithContext(ctx).Omit("Company").Create(m).Error; err != nil {
		return err
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByID はユーザーの担当者を所属企業と一緒に取得します。
func (r *contactRepository) FindByID(ctx context.Context, userID uint, id string) (*entity.Contact, error) {
	var m ContactModel
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContactNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ListByUser は作成日時の新しい順にユーザーの担当者を返します。
func (r *contactRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Contact, error) {
	var models []ContactModel
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Contact, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// Update は担当者レコード全体を保存します。
func (r *contactRepository) Update(ctx context.Context, c *entity.Contact) error {
	m := ContactModelFromEntity(c)
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Select("*").Omit("id", "user_id", "created_at", "Company").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContactNotFound
	}
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete はユーザーの担当者を削除します。
func (r *contactRepository) Delete(ctx context.Context, userID uint, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ContactModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContactNotFound
	}
	return nil
}
