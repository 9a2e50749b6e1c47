package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
)

// mockLogoDetector はLogoDetectorインターフェースのモック実装です。
type mockLogoDetector struct {
	DetectLogosFunc  func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
	DetectLogosCalls int
}

func (m *mockLogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	m.DetectLogosCalls++
	return m.DetectLogosFunc(ctx, imageData)
}

// mockCompanyResearcher はCompanyResearcherインターフェースのモック実装です。
type mockCompanyResearcher struct {
	ResearchCompanyFunc func(ctx context.Context, input string) (*entity.CompanyProfile, error)
	Inputs              []string
}

func (m *mockCompanyResearcher) ResearchCompany(ctx context.Context, input string) (*entity.CompanyProfile, error) {
	m.Inputs = append(m.Inputs, input)
	return m.ResearchCompanyFunc(ctx, input)
}

func TestLogoResearchUsecase_ResearchFromLogo(t *testing.T) {
	t.Parallel()

	image := []byte("fake-image")

	t.Run("researches the most confident logo", func(t *testing.T) {
		t.Parallel()

		detector := &mockLogoDetector{DetectLogosFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
			return []entity.DetectedLogo{{Name: "Globex", Confidence: 0.4}, {Name: "Acme", Confidence: 0.9}}, nil
		}}
		researcher := &mockCompanyResearcher{ResearchCompanyFunc: func(ctx context.Context, input string) (*entity.CompanyProfile, error) {
			return &entity.CompanyProfile{CompanyName: input}, nil
		}}
		uc := NewLogoResearchUsecase(detector, researcher)

		got, err := uc.ResearchFromLogo(context.Background(), image)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Logo.Name)
		assert.Equal(t, "Acme", got.Profile.CompanyName)
		assert.Equal(t, []string{"Acme"}, researcher.Inputs)
	})

	t.Run("no logo detected", func(t *testing.T) {
		t.Parallel()

		detector := &mockLogoDetector{DetectLogosFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
			return nil, nil
		}}
		uc := NewLogoResearchUsecase(detector, &mockCompanyResearcher{})

		_, err := uc.ResearchFromLogo(context.Background(), image)
		assert.ErrorIs(t, err, domain.ErrNoLogoDetected)
	})

	t.Run("detector error", func(t *testing.T) {
		t.Parallel()

		detector := &mockLogoDetector{DetectLogosFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
			return nil, errors.New("vision unavailable")
		}}
		uc := NewLogoResearchUsecase(detector, &mockCompanyResearcher{})

		_, err := uc.ResearchFromLogo(context.Background(), image)
		assert.Error(t, err)
	})

	t.Run("research error is propagated", func(t *testing.T) {
		t.Parallel()

		detector := &mockLogoDetector{DetectLogosFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
			return []entity.DetectedLogo{{Name: "Acme", Confidence: 0.9}}, nil
		}}
		researcher := &mockCompanyResearcher{ResearchCompanyFunc: func(ctx context.Context, input string) (*entity.CompanyProfile, error) {
			return nil, &domain.ResearchError{Cause: errors.New("down")}
		}}
		uc := NewLogoResearchUsecase(detector, researcher)

		_, err := uc.ResearchFromLogo(context.Background(), image)
		assert.ErrorIs(t, err, domain.ErrResearchFailed)
	})

	t.Run("empty and oversized images are rejected", func(t *testing.T) {
		t.Parallel()

		detector := &mockLogoDetector{}
		uc := NewLogoResearchUsecase(detector, &mockCompanyResearcher{})

		_, err := uc.ResearchFromLogo(context.Background(), nil)
		assert.Error(t, err)
		_, err = uc.ResearchFromLogo(context.Background(), make([]byte, MaxImageSize+1))
		assert.Error(t, err)
		assert.Equal(t, 0, detector.DetectLogosCalls)
	})
}
