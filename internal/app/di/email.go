package di

import (
	"context"
	"fmt"

	"marketer_backend/internal/feature/email/adapters"
	"marketer_backend/internal/feature/email/usecase"
	"marketer_backend/internal/platform/config"
	"marketer_backend/internal/platform/externalapi/resend"
	"marketer_backend/internal/platform/externalapi/ses"
	infrahttp "marketer_backend/internal/platform/http"
	"marketer_backend/internal/shared/ratelimiter"
)

// NewSender は設定されたプロバイダーの送信クライアントをサーキットブレーカーで包んで返します。
func NewSender(ctx context.Context, cfg config.Email) (usecase.Sender, error) {
	var inner usecase.Sender
	switch cfg.Provider {
	case config.EmailProviderSES:
		client, err := ses.NewClient(ctx, cfg.SES)
		if err != nil {
			return nil, err
		}
		inner = client
	case config.EmailProviderResend:
		rc := cfg.Resend.WithDefaults()
		client, err := resend.NewClient(rc, infrahttp.NewHTTPClient(rc.Timeout))
		if err != nil {
			return nil, err
		}
		inner = client
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.Provider)
	}

	return adapters.NewBreakerSender(cfg.Provider, inner, adapters.BreakerConfig{
		MaxFailures: cfg.BreakerFailures,
		Timeout:     cfg.BreakerTimeout,
	}), nil
}

// NewEmailUsecase は送信ペースを制限したEmailUsecaseを生成します。
func NewEmailUsecase(ctx context.Context, cfg config.Email) (*usecase.EmailUsecase, error) {
	sender, err := NewSender(ctx, cfg)
	if err != nil {
		return nil, err
	}
	limiter := ratelimiter.NewRateLimiter("email:"+cfg.Provider, cfg.RateLimit, cfg.RateInterval)
	return usecase.NewEmailUsecase(sender, limiter, cfg.From), nil
}
