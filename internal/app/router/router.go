// Package router はHTTPルーティングを定義します。
package router

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketer_backend/internal/app/di"
	"marketer_backend/internal/platform/http/handler"
	"marketer_backend/internal/platform/http/middleware"
	jwtmw "marketer_backend/internal/platform/jwt"
	"marketer_backend/internal/platform/metrics"
)

// Options はルーター生成時の設定です。
type Options struct {
	JWTSecret     string
	ResearchRPM   int // 調査系エンドポイントのIP単位の毎分上限
	ResearchBurst int
	ReadyChecks   map[string]handler.Checker
	CORSOrigins   []string
}

// NewRouter はすべてのエンドポイントを登録したgin.Engineを返します。
// ctxはレートリミッターの掃除ゴルーチンの寿命に使います。
func NewRouter(ctx context.Context, h di.Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(opts.ReadyChecks))
	r.GET("/metrics", metrics.Handler())

	// 新規ユーザー登録・ログイン（JWT + リフレッシュトークン発行）
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/refresh", h.Auth.Refresh)
	r.POST("/logout", h.Auth.Logout)
	r.POST("/demo-login", h.Auth.DemoLogin)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		// 外部検索を叩くためIP単位で制限する
		limiter := middleware.NewIPRateLimiter(ctx, middleware.RateLimitConfig{
			RequestsPerMin: opts.ResearchRPM,
			Burst:          opts.ResearchBurst,
		})
		research := auth.Group("/research", limiter.Middleware())
		research.POST("/company", h.Research.ResearchCompany)
		research.POST("/contact", h.Research.EnrichContact)
		research.POST("/logo", h.Research.ResearchLogo)

		auth.GET("/companies", h.Companies.List)
		auth.POST("/companies", h.Companies.Create)
		auth.GET("/companies/:id", h.Companies.Get)
		auth.DELETE("/companies/:id", h.Companies.Delete)
		auth.POST("/companies/:id/enrich", h.Companies.Enrich)

		auth.GET("/contacts", h.Contacts.List)
		auth.POST("/contacts", h.Contacts.Create)
		auth.GET("/contacts/:id", h.Contacts.Get)
		auth.DELETE("/contacts/:id", h.Contacts.Delete)
		auth.POST("/contacts/:id/enrich", h.Contacts.Enrich)

		auth.GET("/campaigns", h.Campaigns.List)
		auth.POST("/campaigns", h.Campaigns.Create)
		auth.POST("/campaigns/draft", h.Campaigns.GenerateDraft)
		auth.GET("/campaigns/:id", h.Campaigns.Get)
		auth.GET("/campaigns/:id/emails", h.Campaigns.Emails)
		auth.POST("/campaigns/:id/launch", h.Campaigns.Launch)

		auth.POST("/emails/send", h.Email.Send)
	}

	return r
}
