// Package adapters はcampaignsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/campaigns/domain/entity"
	"marketer_backend/internal/feature/campaigns/usecase"
)

// campaignRepository はCampaignRepositoryインターフェースのGORM実装です。
type campaignRepository struct {
	db *gorm.DB
}

var _ usecase.CampaignRepository = (*campaignRepository)(nil)

// NewCampaignRepository は指定されたDB接続でcampaignRepositoryの新しいインスタンスを生成します。
func NewCampaignRepository(db *gorm.DB) *campaignRepository {
	return &campaignRepository{db: db}
}

// Create はキャンペーンをデータベースに追加します。
func (r *campaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	m := CampaignModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByID はユーザーのキャンペーンを取得します。
func (r *campaignRepository) FindByID(ctx context.Context, userID uint, id string) (*entity.Campaign, error) {
	var m CampaignModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCampaignNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ListByUser は作成日時の新しい順にユーザーのキャンペーンを返します。
func (r *campaignRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Campaign, error) {
	var models []CampaignModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Campaign, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// ListEmails はキャンペーンの送信記録を作成順に返します。
func (r *campaignRepository) ListEmails(ctx context.Context, campaignID string) ([]entity.CampaignEmail, error) {
	var models []CampaignEmailModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.CampaignEmail, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToEntity())
	}
	return out, nil
}

// ClaimLaunch はdraft/pausedのキャンペーンを条件付きUPDATEでactiveにします。
// 初回配信日時は最初の確保時のみ記録します。
func (r *campaignRepository) ClaimLaunch(ctx context.Context, userID uint, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&CampaignModel{}).
		Where("id = ? AND user_id = ? AND status IN ?", id, userID,
			[]string{string(entity.StatusDraft), string(entity.StatusPaused)}).
		Updates(map[string]any{
			"status":      string(entity.StatusActive),
			"launched_at": gorm.Expr("COALESCE(launched_at, ?)", at),
			"updated_at":  at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return usecase.ErrNotLaunchable
	}
	return nil
}

// RecordLaunch は集計を加算し、送信記録と合わせてトランザクションで保存します。
func (r *campaignRepository) RecordLaunch(ctx context.Context, userID uint, id string, tally entity.LaunchResult, emails []entity.CampaignEmail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CampaignModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{
				"target_count":  gorm.Expr("target_count + ?", tally.Total),
				"emails_sent":   gorm.Expr("emails_sent + ?", tally.Successful),
				"emails_failed": gorm.Expr("emails_failed + ?", tally.Failed),
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCampaignNotFound
		}

		if len(emails) == 0 {
			return nil
		}
		rows := make([]CampaignEmailModel, len(emails))
		for i := range emails {
			rows[i] = campaignEmailModelFromEntity(&emails[i])
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}
