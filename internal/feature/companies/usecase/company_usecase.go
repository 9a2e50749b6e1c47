// Package usecase はcompaniesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketer_backend/internal/feature/companies/domain/entity"
	researchentity "marketer_backend/internal/feature/research/domain/entity"
)

// CompanyRepository は企業エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	// FindByID はユーザーが所有する企業を取得します。存在しない場合はErrCompanyNotFoundを返します。
	FindByID(ctx context.Context, userID uint, id string) (*entity.Company, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, userID uint, id string) error
}

// CompanyResearcher は企業調査を行うコンポーネントです（research.ResearchUsecase が実装）。
type CompanyResearcher interface {
	ResearchCompany(ctx context.Context, input string) (*researchentity.CompanyProfile, error)
}

// CompanyUsecase は企業の登録・参照・削除と、検索による情報補完を提供します。
type CompanyUsecase struct {
	companies  CompanyRepository
	researcher CompanyResearcher
	now        func() time.Time
}

// NewCompanyUsecase はCompanyUsecaseの新しいインスタンスを生成します。
func NewCompanyUsecase(companies CompanyRepository, researcher CompanyResearcher) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, researcher: researcher, now: time.Now}
}

// Create は企業を登録します。IDはここで採番します。
func (u *CompanyUsecase) Create(ctx context.Context, company *entity.Company) error {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return fmt.Errorf("company name is required")
	}
	company.ID = uuid.NewString()
	company.Domain = strings.ToLower(strings.TrimSpace(company.Domain))
	if company.RecentNews == nil {
		company.RecentNews = []string{}
	}
	return u.companies.Create(ctx, company)
}

// List はユーザーの企業を新しい順に返します。
func (u *CompanyUsecase) List(ctx context.Context, userID uint) ([]entity.Company, error) {
	return u.companies.ListByUser(ctx, userID)
}

// Get はユーザーの企業を1件返します。
func (u *CompanyUsecase) Get(ctx context.Context, userID uint, id string) (*entity.Company, error) {
	return u.companies.FindByID(ctx, userID, id)
}

// Delete はユーザーの企業を削除します。
func (u *CompanyUsecase) Delete(ctx context.Context, userID uint, id string) error {
	return u.companies.Delete(ctx, userID, id)
}

// Enrich は企業調査を実行し、その結果を企業レコードに反映します。
//
// 説明・業種・ドメインは未入力の場合のみ補完し、ユーザーが入力した値は上書きしません。
// SNSリンクは見つかった場合に更新し、最新ニュースは毎回置き換えます。
func (u *CompanyUsecase) Enrich(ctx context.Context, userID uint, id string) (*entity.Company, error) {
	company, err := u.companies.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	profile, err := u.researcher.ResearchCompany(ctx, company.ResearchInput())
	if err != nil {
		slog.Error("company enrichment failed", "company_id", id, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
	}

	applyProfile(company, profile)
	enrichedAt := u.now()
	company.LastEnrichedAt = &enrichedAt

	if err := u.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func applyProfile(c *entity.Company, p *researchentity.CompanyProfile) {
	if c.Description == "" {
		c.Description = p.Description
	}
	if c.Industry == "" {
		c.Industry = p.Industry
	}
	if c.Domain == "" && strings.Contains(p.Website, ".") {
		c.Domain = p.Website
	}
	if p.SocialLinks.LinkedIn != "" {
		c.LinkedInURL = p.SocialLinks.LinkedIn
	}
	if p.SocialLinks.Twitter != "" {
		c.TwitterURL = p.SocialLinks.Twitter
	}
	c.RecentNews = append([]string{}, p.RecentNews...)
}
