package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"marketer_backend/internal/app/seed"
	authadapters "marketer_backend/internal/feature/auth/adapters"
	authhandler "marketer_backend/internal/feature/auth/transport/handler"
	authusecase "marketer_backend/internal/feature/auth/usecase"
	campaignadapters "marketer_backend/internal/feature/campaigns/adapters"
	"marketer_backend/internal/feature/campaigns/adapters/gemini"
	campaignhandler "marketer_backend/internal/feature/campaigns/transport/handler"
	campaignusecase "marketer_backend/internal/feature/campaigns/usecase"
	companyadapters "marketer_backend/internal/feature/companies/adapters"
	companyhandler "marketer_backend/internal/feature/companies/transport/handler"
	companyusecase "marketer_backend/internal/feature/companies/usecase"
	contactadapters "marketer_backend/internal/feature/contacts/adapters"
	contacthandler "marketer_backend/internal/feature/contacts/transport/handler"
	contactusecase "marketer_backend/internal/feature/contacts/usecase"
	emailhandler "marketer_backend/internal/feature/email/transport/handler"
	researchhandler "marketer_backend/internal/feature/research/transport/handler"
	"marketer_backend/internal/platform/config"
	jwtmw "marketer_backend/internal/platform/jwt"
)

// Models はマイグレーション対象のGORMモデルです。
func Models() []any {
	return []any{
		&authadapters.UserModel{},
		&authadapters.SessionModel{},
		&companyadapters.CompanyModel{},
		&contactadapters.ContactModel{},
		&campaignadapters.CampaignModel{},
		&campaignadapters.CampaignEmailModel{},
	}
}

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Research  *researchhandler.ResearchHandler
	Companies *companyhandler.CompanyHandler
	Contacts  *contacthandler.ContactHandler
	Campaigns *campaignhandler.CampaignHandler
	Email     *emailhandler.EmailHandler
}

// App は組み立て済みのアプリケーションです。
type App struct {
	Handlers Handlers
	Sessions authusecase.SessionRepository
	closers  []func()
}

// Close は外部クライアントを解放します。
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
}

// Build は設定と接続済みのDB・Redisから全フィーチャーを組み立てます。rdbはnilでも構いません。
func Build(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{}

	// research
	research := NewResearchUsecase(cfg.SearXNG)
	var logos researchhandler.LogoResearchUsecase
	logoUC, closeVision := NewLogoResearchUsecase(ctx, cfg.Vision, research)
	app.closers = append(app.closers, closeVision)
	if logoUC != nil {
		logos = logoUC
	}

	// email
	emailUC, err := NewEmailUsecase(ctx, cfg.Email)
	if err != nil {
		return nil, err
	}

	// companies / contacts
	companyUC := companyusecase.NewCompanyUsecase(companyadapters.NewCompanyRepository(db), research)
	contactUC := contactusecase.NewContactUsecase(contactadapters.NewContactRepository(db), companyUC, research)

	// campaigns
	var writer campaignusecase.EmailWriter
	if cfg.Gemini.APIKey != "" {
		w, err := gemini.NewWriter(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		writer = w
	} else {
		slog.Warn("GEMINI_API_KEY is not set; campaign draft generation is disabled")
	}
	campaignUC := campaignusecase.NewCampaignUsecase(
		campaignadapters.NewCampaignRepository(db),
		campaignadapters.NewRecipientRepository(db),
		emailUC,
		writer,
	)

	// auth
	app.Sessions = NewSessionRepository(rdb, db)
	authUC := authusecase.NewAuthUsecase(
		authadapters.NewUserRepository(db),
		app.Sessions,
		jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL),
		seed.NewDemoSeeder(companyUC, contactUC, campaignUC),
		authusecase.Config{
			RefreshTTL:     cfg.JWT.RefreshTTL,
			DemoRefreshTTL: cfg.JWT.DemoRefreshTTL,
			MaxSessions:    cfg.JWT.MaxSessions,
		},
	)

	app.Handlers = Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Research:  researchhandler.NewResearchHandler(research, logos),
		Companies: companyhandler.NewCompanyHandler(companyUC),
		Contacts:  contacthandler.NewContactHandler(contactUC),
		Campaigns: campaignhandler.NewCampaignHandler(campaignUC),
		Email:     emailhandler.NewEmailHandler(emailUC),
	}
	return app, nil
}
