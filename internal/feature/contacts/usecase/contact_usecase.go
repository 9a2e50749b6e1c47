// Package usecase はcontactsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	companyentity "marketer_backend/internal/feature/companies/domain/entity"
	companyusecase "marketer_backend/internal/feature/companies/usecase"
	"marketer_backend/internal/feature/contacts/domain/entity"
	researchentity "marketer_backend/internal/feature/research/domain/entity"
)

// ContactRepository は担当者エンティティの永続化層を抽象化します。
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	// FindByID は所属企業名を解決した担当者を返します。存在しない場合はErrContactNotFoundを返します。
	FindByID(ctx context.Context, userID uint, id string) (*entity.Contact, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, userID uint, id string) error
}

// CompanyLookup は所属企業の存在確認に使います（companies.CompanyUsecase が実装）。
type CompanyLookup interface {
	Get(ctx context.Context, userID uint, id string) (*companyentity.Company, error)
}

// ContactEnricher は担当者情報の補完を行うコンポーネントです（research.ResearchUsecase が実装）。
// 補完は失敗しません。検索エラー時は空の結果が返ります。
type ContactEnricher interface {
	EnrichContact(ctx context.Context, name, company, email string) researchentity.ContactEnrichment
}

// ContactUsecase は担当者の登録・参照・削除と、検索による情報補完を提供します。
type ContactUsecase struct {
	contacts  ContactRepository
	companies CompanyLookup
	enricher  ContactEnricher
}

// NewContactUsecase はContactUsecaseの新しいインスタンスを生成します。
func NewContactUsecase(contacts ContactRepository, companies CompanyLookup, enricher ContactEnricher) *ContactUsecase {
	return &ContactUsecase{contacts: contacts, companies: companies, enricher: enricher}
}

// Create は担当者を登録します。ステータス未指定の場合はactiveになります。
func (u *ContactUsecase) Create(ctx context.Context, contact *entity.Contact) error {
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	if contact.Email == "" {
		return ErrEmailRequired
	}

	if contact.CompanyID != "" {
		company, err := u.companies.Get(ctx, contact.UserID, contact.CompanyID)
		if err != nil {
			if errors.Is(err, companyusecase.ErrCompanyNotFound) {
				return ErrInvalidCompany
			}
			return fmt.Errorf("lookup company: %w", err)
		}
		contact.CompanyName = company.Name
	}

	contact.ID = uuid.NewString()
	if contact.Status == "" {
		contact.Status = entity.StatusActive
	}
	if contact.Tags == nil {
		contact.Tags = []string{}
	}
	return u.contacts.Create(ctx, contact)
}

// List はユーザーの担当者を新しい順に返します。
func (u *ContactUsecase) List(ctx context.Context, userID uint) ([]entity.Contact, error) {
	return u.contacts.ListByUser(ctx, userID)
}

// Get はユーザーの担当者を1件返します。
func (u *ContactUsecase) Get(ctx context.Context, userID uint, id string) (*entity.Contact, error) {
	return u.contacts.FindByID(ctx, userID, id)
}

// Delete はユーザーの担当者を削除します。
func (u *ContactUsecase) Delete(ctx context.Context, userID uint, id string) error {
	return u.contacts.Delete(ctx, userID, id)
}

// Enrich は氏名・所属企業名・メールアドレスで検索し、未入力の項目だけを補完します。
// ユーザーが入力した値は上書きしません。補完できる項目がなければ保存しません。
func (u *ContactUsecase) Enrich(ctx context.Context, userID uint, id string) (*entity.Contact, error) {
	contact, err := u.contacts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	found := u.enricher.EnrichContact(ctx, contact.FullName(), contact.CompanyName, contact.Email)
	if !fillUnset(contact, found) {
		slog.Info("contact enrichment found nothing new", "contact_id", id)
		return contact, nil
	}

	if err := u.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// fillUnset は空のフィールドだけを埋め、変更があったかを返します。
func fillUnset(c *entity.Contact, e researchentity.ContactEnrichment) bool {
	changed := false
	set := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
			changed = true
		}
	}
	set(&c.Title, e.Title)
	set(&c.LinkedInURL, e.LinkedInURL)
	set(&c.TwitterURL, e.TwitterURL)
	set(&c.Bio, e.Bio)
	return changed
}
