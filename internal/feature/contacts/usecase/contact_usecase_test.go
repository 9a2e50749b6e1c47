package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyentity "marketer_backend/internal/feature/companies/domain/entity"
	companyusecase "marketer_backend/internal/feature/companies/usecase"
	"marketer_backend/internal/feature/contacts/domain/entity"
	researchentity "marketer_backend/internal/feature/research/domain/entity"
)

// mockContactRepository はContactRepositoryのモック実装です。
type mockContactRepository struct {
	stored      map[string]*entity.Contact
	createCalls int
	updateCalls int
	createErr   error
}

func newMockRepo(contacts ...*entity.Contact) *mockContactRepository {
	m := &mockContactRepository{stored: map[string]*entity.Contact{}}
	for _, c := range contacts {
		m.stored[c.ID] = c
	}
	return m
}

func (m *mockContactRepository) Create(_ context.Context, c *entity.Contact) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.stored[c.ID] = c
	return nil
}

func (m *mockContactRepository) FindByID(_ context.Context, userID uint, id string) (*entity.Contact, error) {
	c, ok := m.stored[id]
	if !ok || c.UserID != userID {
		return nil, ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockContactRepository) ListByUser(_ context.Context, userID uint) ([]entity.Contact, error) {
	out := []entity.Contact{}
	for _, c := range m.stored {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockContactRepository) Update(_ context.Context, c *entity.Contact) error {
	m.updateCalls++
	m.stored[c.ID] = c
	return nil
}

func (m *mockContactRepository) Delete(_ context.Context, userID uint, id string) error {
	if c, ok := m.stored[id]; !ok || c.UserID != userID {
		return ErrContactNotFound
	}
	delete(m.stored, id)
	return nil
}

// mockCompanyLookup はCompanyLookupのモック実装です。
type mockCompanyLookup struct {
	GetFunc func(ctx context.Context, userID uint, id string) (*companyentity.Company, error)
}

func (m *mockCompanyLookup) Get(ctx context.Context, userID uint, id string) (*companyentity.Company, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, id)
	}
	return nil, companyusecase.ErrCompanyNotFound
}

// mockEnricher はContactEnricherのモック実装です。
type mockEnricher struct {
	result researchentity.ContactEnrichment
	calls  [][3]string
}

func (m *mockEnricher) EnrichContact(_ context.Context, name, company, email string) researchentity.ContactEnrichment {
	m.calls = append(m.calls, [3]string{name, company, email})
	return m.result
}

func TestContactUsecase_Create(t *testing.T) {
	t.Parallel()

	acme := &mockCompanyLookup{GetFunc: func(_ context.Context, userID uint, id string) (*companyentity.Company, error) {
		if userID == 1 && id == "co-1" {
			return &companyentity.Company{ID: "co-1", Name: "Acme"}, nil
		}
		return nil, companyusecase.ErrCompanyNotFound
	}}

	tests := []struct {
		name       string
		in         entity.Contact
		lookup     CompanyLookup
		wantErr    error
		wantStatus entity.Status
	}{
		{
			name:       "defaults status to active",
			in:         entity.Contact{UserID: 1, FirstName: "John", LastName: "Smith", Email: " John@Acme.com "},
			lookup:     acme,
			wantStatus: entity.StatusActive,
		},
		{
			name:       "keeps explicit status and resolves company",
			in:         entity.Contact{UserID: 1, CompanyID: "co-1", Email: "a@acme.com", Status: entity.StatusUnsubscribed},
			lookup:     acme,
			wantStatus: entity.StatusUnsubscribed,
		},
		{
			name:    "rejects company of another user",
			in:      entity.Contact{UserID: 2, CompanyID: "co-1", Email: "a@acme.com"},
			lookup:  acme,
			wantErr: ErrInvalidCompany,
		},
		{
			name:    "rejects missing email",
			in:      entity.Contact{UserID: 1, FirstName: "No", LastName: "Mail"},
			lookup:  acme,
			wantErr: ErrEmailRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newMockRepo()
			uc := NewContactUsecase(repo, tt.lookup, &mockEnricher{})
			in := tt.in

			err := uc.Create(context.Background(), &in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, repo.createCalls)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, in.ID)
			assert.Equal(t, tt.wantStatus, in.Status)
			assert.NotNil(t, in.Tags)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.in.Email)), in.Email, "email should be normalized")
		})
	}
}

// TestContactUsecase_Create_LookupFailure は企業の参照がDBエラーで失敗した場合にErrInvalidCompanyと区別されることを検証します。
func TestContactUsecase_Create_LookupFailure(t *testing.T) {
	t.Parallel()

	lookup := &mockCompanyLookup{GetFunc: func(context.Context, uint, string) (*companyentity.Company, error) {
		return nil, errors.New("connection reset")
	}}
	uc := NewContactUsecase(newMockRepo(), lookup, &mockEnricher{})

	err := uc.Create(context.Background(), &entity.Contact{UserID: 1, CompanyID: "co-1", Email: "a@b.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCompany)
}

// TestContactUsecase_Enrich は未入力の項目だけが補完されることを検証します。
func TestContactUsecase_Enrich(t *testing.T) {
	t.Parallel()

	found := researchentity.ContactEnrichment{
		Title:       "Chief Executive Officer",
		LinkedInURL: "https://linkedin.com/in/johnsmith",
		TwitterURL:  "https://twitter.com/johnsmith",
		Bio:         "John Smith - CEO at Acme",
	}

	tests := []struct {
		name        string
		stored      entity.Contact
		result      researchentity.ContactEnrichment
		wantTitle   string
		wantTwitter string
		wantUpdates int
	}{
		{
			name:        "fills empty fields",
			stored:      entity.Contact{ID: "ct-1", UserID: 1, FirstName: "John", LastName: "Smith", Email: "john@acme.com", CompanyName: "Acme"},
			result:      found,
			wantTitle:   "Chief Executive Officer",
			wantTwitter: "https://twitter.com/johnsmith",
			wantUpdates: 1,
		},
		{
			name:        "never overwrites user-entered data",
			stored:      entity.Contact{ID: "ct-1", UserID: 1, FirstName: "John", LastName: "Smith", Email: "john@acme.com", CompanyName: "Acme", Title: "VP of Marketing", TwitterURL: "https://x.com/js"},
			result:      found,
			wantTitle:   "VP of Marketing",
			wantTwitter: "https://x.com/js",
			wantUpdates: 1,
		},
		{
			name:        "nothing found leaves the record untouched",
			stored:      entity.Contact{ID: "ct-1", UserID: 1, FirstName: "John", LastName: "Smith", Email: "john@acme.com", CompanyName: "Acme"},
			result:      researchentity.ContactEnrichment{},
			wantTitle:   "",
			wantTwitter: "",
			wantUpdates: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stored := tt.stored
			repo := newMockRepo(&stored)
			enricher := &mockEnricher{result: tt.result}
			uc := NewContactUsecase(repo, &mockCompanyLookup{}, enricher)

			got, err := uc.Enrich(context.Background(), 1, "ct-1")
			require.NoError(t, err)

			require.Len(t, enricher.calls, 1)
			assert.Equal(t, [3]string{"John Smith", "Acme", "john@acme.com"}, enricher.calls[0])
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantTwitter, got.TwitterURL)
			assert.Equal(t, tt.wantUpdates, repo.updateCalls)
		})
	}
}

func TestContactUsecase_Enrich_NotFound(t *testing.T) {
	t.Parallel()

	enricher := &mockEnricher{}
	uc := NewContactUsecase(newMockRepo(), &mockCompanyLookup{}, enricher)

	_, err := uc.Enrich(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.Empty(t, enricher.calls)
}

func TestContactUsecase_Delete(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(&entity.Contact{ID: "ct-1", UserID: 1})
	uc := NewContactUsecase(repo, &mockCompanyLookup{}, &mockEnricher{})

	assert.ErrorIs(t, uc.Delete(context.Background(), 2, "ct-1"), ErrContactNotFound)
	require.NoError(t, uc.Delete(context.Background(), 1, "ct-1"))

	list, err := uc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
