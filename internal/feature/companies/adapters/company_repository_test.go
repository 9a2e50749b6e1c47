package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketer_backend/internal/feature/companies/domain/entity"
	"marketer_backend/internal/feature/companies/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&CompanyModel{}), "failed to migrate table")
	return db
}

// seedCompany はテスト用の企業データをリポジトリ経由で作成します。
func seedCompany(t *testing.T, repo *companyRepository, userID uint, id, name string) *entity.Company {
	t.Helper()

	c := &entity.Company{ID: id, UserID: userID, Name: name, RecentNews: []string{}}
	require.NoError(t, repo.Create(context.Background(), c), "failed to seed company")
	return c
}

func TestNewCompanyRepository(t *testing.T) {
	t.Parallel()

	repo := NewCompanyRepository(setupTestDB(t))
	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

// TestCompanyRepository_CreateAndFind は作成した企業をID・ユーザーで取得できることを検証します。
func TestCompanyRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewCompanyRepository(setupTestDB(t))
	ctx := context.Background()

	in := &entity.Company{
		ID:         "c-1",
		UserID:     1,
		Name:       "Acme Corporation",
		Domain:     "acme.com",
		Industry:   "Technology",
		RecentNews: []string{"Acme raises Series B"},
	}
	require.NoError(t, repo.Create(ctx, in))
	assert.False(t, in.CreatedAt.IsZero(), "CreatedAt should be populated")

	got, err := repo.FindByID(ctx, 1, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", got.Name)
	assert.Equal(t, "acme.com", got.Domain)
	assert.Equal(t, []string{"Acme raises Series B"}, got.RecentNews)
	assert.Nil(t, got.LastEnrichedAt)
}

// TestCompanyRepository_FindByID_NotFound は存在しない企業・他ユーザーの企業でErrCompanyNotFoundを返すことを検証します。
func TestCompanyRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewCompanyRepository(setupTestDB(t))
	seedCompany(t, repo, 1, "c-1", "Acme")

	tests := []struct {
		name   string
		userID uint
		id     string
	}{
		{"unknown id", 1, "missing"},
		{"other user's company", 2, "c-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindByID(context.Background(), tt.userID, tt.id)
			assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
		})
	}
}

// TestCompanyRepository_ListByUser はユーザー単位で新しい順に返すことを検証します。
func TestCompanyRepository_ListByUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	older := &entity.Company{ID: "c-old", UserID: 1, Name: "Old", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Company{ID: "c-new", UserID: 1, Name: "New", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	seedCompany(t, repo, 2, "c-other", "Other")

	got, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-new", got[0].ID)
	assert.Equal(t, "c-old", got[1].ID)

	empty, err := repo.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

// TestCompanyRepository_Update は補完結果を含む全フィールドが保存されることを検証します。
func TestCompanyRepository_Update(t *testing.T) {
	t.Parallel()

	repo := NewCompanyRepository(setupTestDB(t))
	ctx := context.Background()
	c := seedCompany(t, repo, 1, "c-1", "Acme")

	enrichedAt := time.Now().UTC().Truncate(time.Second)
	c.Description = "Acme builds rockets"
	c.LinkedInURL = "https://linkedin.com/company/acme"
	c.RecentNews = []string{"one", "two"}
	c.LastEnrichedAt = &enrichedAt
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.FindByID(ctx, 1, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme builds rockets", got.Description)
	assert.Equal(t, "https://linkedin.com/company/acme", got.LinkedInURL)
	assert.Equal(t, []string{"one", "two"}, got.RecentNews)
	require.NotNil(t, got.LastEnrichedAt)
	assert.True(t, enrichedAt.Equal(*got.LastEnrichedAt))

	// 他ユーザーとして更新しても反映されない
	c.UserID = 2
	assert.ErrorIs(t, repo.Update(ctx, c), usecase.ErrCompanyNotFound)
}

// TestCompanyRepository_Delete は所有者のみ削除できることを検証します。
func TestCompanyRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewCompanyRepository(setupTestDB(t))
	ctx := context.Background()
	seedCompany(t, repo, 1, "c-1", "Acme")

	assert.ErrorIs(t, repo.Delete(ctx, 2, "c-1"), usecase.ErrCompanyNotFound)
	require.NoError(t, repo.Delete(ctx, 1, "c-1"))
	_, err := repo.FindByID(ctx, 1, "c-1")
	assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
}
