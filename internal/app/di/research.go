package di

import (
	"context"
	"log/slog"

	"marketer_backend/internal/feature/research/adapters/vision"
	"marketer_backend/internal/feature/research/usecase"
	"marketer_backend/internal/platform/config"
	"marketer_backend/internal/platform/externalapi/searxng"
	infrahttp "marketer_backend/internal/platform/http"
)

// NewResearchUsecase はSearXNGクライアントを使ったResearchUsecaseを生成します。
func NewResearchUsecase(cfg searxng.Config) *usecase.ResearchUsecase {
	cfg = cfg.WithDefaults()
	client := searxng.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	return usecase.NewResearchUsecase(client)
}

// NewLogoResearchUsecase はVision APIが有効な場合にLogoResearchUsecaseを生成します。
// 無効、またはクライアント生成に失敗した場合はnilを返し、ロゴ調査は503になります。
// 戻り値のcloseは常に呼び出し可能です。
func NewLogoResearchUsecase(ctx context.Context, cfg config.Vision, researcher usecase.CompanyResearcher) (*usecase.LogoResearchUsecase, func()) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop
	}
	detector, err := vision.NewLogoDetector(ctx)
	if err != nil {
		slog.Warn("logo research disabled", "error", err)
		return nil, noop
	}
	closeFn := func() {
		if err := detector.Close(); err != nil {
			slog.Warn("failed to close vision client", "error", err)
		}
	}
	return usecase.NewLogoResearchUsecase(detector, researcher), closeFn
}
