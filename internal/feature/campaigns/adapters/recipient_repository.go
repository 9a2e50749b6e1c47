package adapters

import (
	"context"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/campaigns/domain/entity"
	"marketer_backend/internal/feature/campaigns/usecase"
	contactadapters "marketer_backend/internal/feature/contacts/adapters"
	contactentity "marketer_backend/internal/feature/contacts/domain/entity"
)

// recipientRepository は担当者テーブルと企業テーブルから送信先を組み立てます。
type recipientRepository struct {
	db *gorm.DB
}

var _ usecase.RecipientRepository = (*recipientRepository)(nil)

// NewRecipientRepository はrecipientRepositoryの新しいインスタンスを生成します。
func NewRecipientRepository(db *gorm.DB) *recipientRepository {
	return &recipientRepository{db: db}
}

// FindRecipients はユーザーのアクティブな担当者を、指定されたIDの順序で返します。
// 存在しないID・他ユーザーの担当者・active以外の担当者は黙って除外します。
func (r *recipientRepository) FindRecipients(ctx context.Context, userID uint, contactIDs []string) ([]entity.Recipient, error) {
	if len(contactIDs) == 0 {
		return []entity.Recipient{}, nil
	}

	var models []contactadapters.ContactModel
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Where("user_id = ? AND status = ? AND id IN ?", userID, string(contactentity.StatusActive), contactIDs).
		Find(&models).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*contactadapters.ContactModel, len(models))
	for i := range models {
		byID[models[i].ID] = &models[i]
	}

	out := make([]entity.Recipient, 0, len(models))
	seen := make(map[string]bool, len(contactIDs))
	for _, id := range contactIDs {
		m, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, toRecipient(m))
	}
	return out, nil
}

func toRecipient(m *contactadapters.ContactModel) entity.Recipient {
	r := entity.Recipient{
		ContactID: m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Title:     m.Title,
	}
	if m.Company != nil {
		r.CompanyName = m.Company.Name
		r.Industry = m.Company.Industry
		r.RecentNews = m.Company.RecentNews
	}
	return r
}
