package usecase

import (
	"context"
	"fmt"

	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
)

// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
const MaxImageSize = 10 * 1024 * 1024

// LogoDetector は画像からロゴを検出するインターフェースです。
type LogoDetector interface {
	DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
}

// CompanyResearcher is satisfied by ResearchUsecase.
type CompanyResearcher interface {
	ResearchCompany(ctx context.Context, input string) (*entity.CompanyProfile, error)
}

// LogoResearchUsecase は画像内のロゴから企業を特定し、その企業を調査します。
type LogoResearchUsecase struct {
	detector   LogoDetector
	researcher CompanyResearcher
}

// NewLogoResearchUsecase はLogoResearchUsecaseの新しいインスタンスを生成します。
func NewLogoResearchUsecase(detector LogoDetector, researcher CompanyResearcher) *LogoResearchUsecase {
	return &LogoResearchUsecase{detector: detector, researcher: researcher}
}

// ResearchFromLogo は最も信頼度の高いロゴの企業名で ResearchCompany を実行します。
// ロゴが見つからない場合は domain.ErrNoLogoDetected を返します。
func (u *LogoResearchUsecase) ResearchFromLogo(ctx context.Context, imageData []byte) (*entity.LogoResearch, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	logos, err := u.detector.DetectLogos(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("detect logos: %w", err)
	}
	if len(logos) == 0 {
		return nil, domain.ErrNoLogoDetected
	}

	best := logos[0]
	for _, l := range logos[1:] {
		if l.Confidence > best.Confidence {
			best = l
		}
	}

	profile, err := u.researcher.ResearchCompany(ctx, best.Name)
	if err != nil {
		return nil, err
	}
	return &entity.LogoResearch{Logo: best, Profile: profile}, nil
}
