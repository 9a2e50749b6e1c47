// Package handler はresearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
)

// ResearchUsecase は企業調査・担当者補完のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ResearchUsecase interface {
	ResearchCompany(ctx context.Context, input string) (*entity.CompanyProfile, error)
	EnrichContact(ctx context.Context, name, company, email string) entity.ContactEnrichment
}

// LogoResearchUsecase はロゴ画像からの企業調査を定義します。
type LogoResearchUsecase interface {
	ResearchFromLogo(ctx context.Context, imageData []byte) (*entity.LogoResearch, error)
}

// ResearchHandler は調査系のHTTPリクエストを処理します。
type ResearchHandler struct {
	research ResearchUsecase
	logos    LogoResearchUsecase
}

// NewResearchHandler はResearchHandlerの新しいインスタンスを生成します。
// logosがnilの場合、ロゴ調査エンドポイントは503を返します。
func NewResearchHandler(research ResearchUsecase, logos LogoResearchUsecase) *ResearchHandler {
	return &ResearchHandler{research: research, logos: logos}
}

// ResearchCompany は企業調査を実行します。
//
// エンドポイント: POST /research/company
// - バリデーションエラー時は400
// - 検索プロバイダーの失敗時は502（詳細はログのみ）
func (h *ResearchHandler) ResearchCompany(c *gin.Context) {
	var req api.CompanyResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("company research validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	profile, err := h.research.ResearchCompany(c.Request.Context(), req.Query)
	if err != nil {
		slog.Error("company research failed", "error", err, "query", req.Query)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "company research failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// EnrichContact は担当者情報を補完します。補完はベストエフォートのため常に200を返します。
//
// エンドポイント: POST /research/contact
func (h *ResearchHandler) EnrichContact(c *gin.Context) {
	var req api.ContactResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("contact enrichment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.research.EnrichContact(c.Request.Context(), req.Name, req.Company, req.Email))
}

// ResearchLogo はアップロードされた画像のロゴから企業を調査します。
//
// エンドポイント: POST /research/logo
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *ResearchHandler) ResearchLogo(c *gin.Context) {
	if h.logos == nil {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "logo research is not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("failed to read image form file", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open image file", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close image file", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read image data", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	result, err := h.logos.ResearchFromLogo(c.Request.Context(), imageData)
	switch {
	case errors.Is(err, domain.ErrNoLogoDetected):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no logo detected"})
		return
	case err != nil:
		slog.Error("logo research failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "logo research failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
