// Package adapters はcompaniesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/companies/domain/entity"
	"marketer_backend/internal/feature/companies/usecase"
)

// companyRepository はCompanyRepositoryインターフェースのGORM実装です。
// PostgreSQLとSQLiteのどちらでも動作します。
type companyRepository struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyRepository)(nil)

// NewCompanyRepository は指定されたDB接続でcompanyRepositoryの新しいインスタンスを生成します。
func NewCompanyRepository(db *gorm.DB) *companyRepository {
	return &companyRepository{db: db}
}

// Create は企業をデータベースに追加し、採番されたタイムスタンプをエンティティに戻します。
func (r *companyRepository) Create(ctx context.Context, c *entity.Company) error {
	m := CompanyModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByID はユーザーが所有する企業を取得します。
// 見つからない場合（他ユーザーの企業を含む）はusecase.ErrCompanyNotFoundを返します。
func (r *companyRepository) FindByID(ctx context.Context, userID uint, id string) (*entity.Company, error) {
	var m CompanyModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ListByUser は作成日時の新しい順にユーザーの企業を返します。
func (r *companyRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Company, error) {
	var models []CompanyModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Company, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// Update は企業レコード全体を保存します。
func (r *companyRepository) Update(ctx context.Context, c *entity.Company) error {
	m := CompanyModelFromEntity(c)
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&CompanyModel{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCompanyNotFound
	}
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete はユーザーの企業を削除します。
func (r *companyRepository) Delete(ctx context.Context, userID uint, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&CompanyModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCompanyNotFound
	}
	return nil
}
