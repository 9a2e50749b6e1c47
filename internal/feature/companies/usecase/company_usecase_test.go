package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketer_backend/internal/feature/companies/domain/entity"
	researchdomain "marketer_backend/internal/feature/research/domain"
	researchentity "marketer_backend/internal/feature/research/domain/entity"
)

// mockCompanyRepository はCompanyRepositoryのモック実装です。
type mockCompanyRepository struct {
	CreateFunc     func(ctx context.Context, c *entity.Company) error
	FindByIDFunc   func(ctx context.Context, userID uint, id string) (*entity.Company, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Company, error)
	UpdateFunc     func(ctx context.Context, c *entity.Company) error
	DeleteFunc     func(ctx context.Context, userID uint, id string) error

	updateCalls int
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, userID uint, id string) (*entity.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, id)
	}
	return nil, ErrCompanyNotFound
}

func (m *mockCompanyRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Company, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []entity.Company{}, nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, userID uint, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// mockResearcher はCompanyResearcherのモック実装です。
type mockResearcher struct {
	inputs  []string
	profile *researchentity.CompanyProfile
	err     error
}

func (m *mockResearcher) ResearchCompany(_ context.Context, input string) (*researchentity.CompanyProfile, error) {
	m.inputs = append(m.inputs, input)
	return m.profile, m.err
}

func fixedNow() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }

// TestCompanyUsecase_Create は名前の検証とID採番を検証します。
func TestCompanyUsecase_Create(t *testing.T) {
	t.Parallel()

	var stored *entity.Company
	repo := &mockCompanyRepository{CreateFunc: func(_ context.Context, c *entity.Company) error {
		stored = c
		return nil
	}}
	uc := NewCompanyUsecase(repo, &mockResearcher{})

	c := &entity.Company{UserID: 1, Name: "  Acme  ", Domain: " ACME.com "}
	require.NoError(t, uc.Create(context.Background(), c))
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Acme", stored.Name)
	assert.Equal(t, "acme.com", stored.Domain)
	assert.NotNil(t, stored.RecentNews)

	err := uc.Create(context.Background(), &entity.Company{UserID: 1, Name: "   "})
	assert.Error(t, err)
}

// TestCompanyUsecase_Enrich は調査結果の反映ルールを検証します。
func TestCompanyUsecase_Enrich(t *testing.T) {
	t.Parallel()

	profile := &researchentity.CompanyProfile{
		CompanyName: "acme",
		Website:     "acme.com",
		Description: "Acme builds rockets",
		Industry:    "Manufacturing",
		RecentNews:  []string{"Acme launches", "Acme hires"},
		SocialLinks: researchentity.SocialLinks{
			LinkedIn: "https://linkedin.com/company/acme",
			Twitter:  "https://twitter.com/acme",
		},
	}

	tests := []struct {
		name       string
		stored     entity.Company
		wantInput  string
		wantDesc   string
		wantInd    string
		wantDomain string
	}{
		{
			name:       "empty fields are filled and domain is used as research input",
			stored:     entity.Company{ID: "c-1", UserID: 1, Name: "Acme", Domain: "acme.com"},
			wantInput:  "acme.com",
			wantDesc:   "Acme builds rockets",
			wantInd:    "Manufacturing",
			wantDomain: "acme.com",
		},
		{
			name:       "user-entered values are kept and name is used when no domain",
			stored:     entity.Company{ID: "c-1", UserID: 1, Name: "Acme", Industry: "Aerospace", Description: "ours"},
			wantInput:  "Acme",
			wantDesc:   "ours",
			wantInd:    "Aerospace",
			wantDomain: "acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stored := tt.stored
			repo := &mockCompanyRepository{FindByIDFunc: func(_ context.Context, userID uint, id string) (*entity.Company, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, "c-1", id)
				return &stored, nil
			}}
			researcher := &mockResearcher{profile: profile}
			uc := NewCompanyUsecase(repo, researcher)
			uc.now = fixedNow

			got, err := uc.Enrich(context.Background(), 1, "c-1")
			require.NoError(t, err)

			assert.Equal(t, []string{tt.wantInput}, researcher.inputs)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.Equal(t, tt.wantInd, got.Industry)
			assert.Equal(t, tt.wantDomain, got.Domain)
			assert.Equal(t, "https://linkedin.com/company/acme", got.LinkedInURL)
			assert.Equal(t, "https://twitter.com/acme", got.TwitterURL)
			assert.Equal(t, []string{"Acme launches", "Acme hires"}, got.RecentNews)
			require.NotNil(t, got.LastEnrichedAt)
			assert.Equal(t, fixedNow(), *got.LastEnrichedAt)
			assert.Equal(t, 1, repo.updateCalls)
		})
	}
}

// TestCompanyUsecase_Enrich_ResearchFailure は調査失敗時にErrEnrichmentFailedを返し、保存しないことを検証します。
func TestCompanyUsecase_Enrich_ResearchFailure(t *testing.T) {
	t.Parallel()

	repo := &mockCompanyRepository{FindByIDFunc: func(context.Context, uint, string) (*entity.Company, error) {
		return &entity.Company{ID: "c-1", UserID: 1, Name: "Acme"}, nil
	}}
	researcher := &mockResearcher{err: &researchdomain.ResearchError{Cause: errors.New("boom")}}
	uc := NewCompanyUsecase(repo, researcher)

	got, err := uc.Enrich(context.Background(), 1, "c-1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrEnrichmentFailed)
	assert.ErrorIs(t, err, researchdomain.ErrResearchFailed)
	assert.Equal(t, 0, repo.updateCalls)
}

// TestCompanyUsecase_Enrich_NotFound は存在しない企業では調査を実行しないことを検証します。
func TestCompanyUsecase_Enrich_NotFound(t *testing.T) {
	t.Parallel()

	researcher := &mockResearcher{}
	uc := NewCompanyUsecase(&mockCompanyRepository{}, researcher)

	_, err := uc.Enrich(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Empty(t, researcher.inputs)
}

// TestCompanyUsecase_Enrich_KeepsSocialLinksWhenMissing はSNSリンクが見つからない場合に既存値を残すことを検証します。
func TestCompanyUsecase_Enrich_KeepsSocialLinksWhenMissing(t *testing.T) {
	t.Parallel()

	repo := &mockCompanyRepository{FindByIDFunc: func(context.Context, uint, string) (*entity.Company, error) {
		return &entity.Company{ID: "c-1", UserID: 1, Name: "Acme", LinkedInURL: "https://linkedin.com/company/old"}, nil
	}}
	researcher := &mockResearcher{profile: &researchentity.CompanyProfile{
		CompanyName: "Acme",
		Website:     "Acme",
		Description: "Information about Acme",
		Industry:    "Technology",
		RecentNews:  []string{},
	}}
	uc := NewCompanyUsecase(repo, researcher)

	got, err := uc.Enrich(context.Background(), 1, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/company/old", got.LinkedInURL)
	assert.Empty(t, got.Domain, "a bare name is not a domain")
	assert.Equal(t, []string{}, got.RecentNews)
}
