// Package handler はcompaniesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/companies/domain/entity"
	"marketer_backend/internal/feature/companies/usecase"
	jwtmw "marketer_backend/internal/platform/jwt"
)

// CompanyUsecase は企業管理のユースケースを定義します。
type CompanyUsecase interface {
	Create(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, userID uint) ([]entity.Company, error)
	Get(ctx context.Context, userID uint, id string) (*entity.Company, error)
	Delete(ctx context.Context, userID uint, id string) error
	Enrich(ctx context.Context, userID uint, id string) (*entity.Company, error)
}

// CompanyHandler は企業に関するHTTPリクエストを処理します。
// すべてのエンドポイントはjwtmw.AuthRequiredの後ろに配置されます。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler は新しいCompanyHandlerを作成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List はGET /companiesを処理します。
func (h *CompanyHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	companies, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list companies", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]api.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, toResponse(&companies[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はPOST /companiesを処理します。
func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create company validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	company := &entity.Company{
		UserID:      userID,
		Name:        req.Name,
		Domain:      req.Domain,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := h.uc.Create(c.Request.Context(), company); err != nil {
		slog.Error("failed to create company", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, toResponse(company))
}

// Get はGET /companies/:idを処理します。
func (h *CompanyHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	company, err := h.uc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(company))
}

// Delete はDELETE /companies/:idを処理します。
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Enrich はPOST /companies/:id/enrichを処理します。
// 検索プロバイダーの失敗は502で返します。
func (h *CompanyHandler) Enrich(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	company, err := h.uc.Enrich(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(company))
}

func (h *CompanyHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "company not found"})
	case errors.Is(err, usecase.ErrEnrichmentFailed):
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "company enrichment failed"})
	default:
		slog.Error("company request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

func toResponse(c *entity.Company) api.CompanyResponse {
	news := c.RecentNews
	if news == nil {
		news = []string{}
	}
	return api.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Domain:         c.Domain,
		Industry:       c.Industry,
		Size:           c.Size,
		Location:       c.Location,
		Description:    c.Description,
		LinkedInURL:    c.LinkedInURL,
		TwitterURL:     c.TwitterURL,
		RecentNews:     news,
		LastEnrichedAt: c.LastEnrichedAt,
		CreatedAt:      c.CreatedAt,
	}
}
