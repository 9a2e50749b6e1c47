// Package handler はcampaignsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/campaigns/domain/entity"
	"marketer_backend/internal/feature/campaigns/usecase"
	jwtmw "marketer_backend/internal/platform/jwt"
)

// CampaignUsecase はキャンペーン管理のユースケースを定義します。
type CampaignUsecase interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	List(ctx context.Context, userID uint) ([]entity.Campaign, error)
	Get(ctx context.Context, userID uint, id string) (*entity.Campaign, error)
	Emails(ctx context.Context, userID uint, id string) ([]entity.CampaignEmail, error)
	GenerateDraft(ctx context.Context, req entity.DraftRequest) (*entity.Draft, error)
	Launch(ctx context.Context, userID uint, campaignID string, req usecase.LaunchRequest) (*entity.LaunchResult, error)
}

// CampaignHandler はキャンペーンに関するHTTPリクエストを処理します。
type CampaignHandler struct {
	uc CampaignUsecase
}

// NewCampaignHandler は新しいCampaignHandlerを作成します。
func NewCampaignHandler(uc CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// List はGET /campaignsを処理します。
func (h *CampaignHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	campaigns, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]api.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toResponse(&campaigns[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はPOST /campaignsを処理します。
func (h *CampaignHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create campaign validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	campaign := &entity.Campaign{
		UserID:       userID,
		Name:         req.Name,
		EmailSubject: req.EmailSubject,
		EmailBody:    req.EmailBody,
		EmailTone:    req.EmailTone,
		ProductInfo:  req.ProductInfo,
	}
	if err := h.uc.Create(c.Request.Context(), campaign); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(campaign))
}

// Get はGET /campaigns/:idを処理します。
func (h *CampaignHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	campaign, err := h.uc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(campaign))
}

// Emails はGET /campaigns/:id/emailsを処理します。
func (h *CampaignHandler) Emails(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	emails, err := h.uc.Emails(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]api.CampaignEmailResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, api.CampaignEmailResponse{
			ID:           e.ID,
			ContactID:    e.ContactID,
			ToEmail:      e.ToEmail,
			Subject:      e.Subject,
			Status:       string(e.Status),
			ProviderID:   e.ProviderID,
			FailedReason: e.FailedReason,
			SentAt:       e.SentAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GenerateDraft はPOST /campaigns/draftを処理します。
func (h *CampaignHandler) GenerateDraft(c *gin.Context) {
	var req api.DraftEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("draft request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	draft, err := h.uc.GenerateDraft(c.Request.Context(), entity.DraftRequest{
		ProductInfo: req.ProductInfo,
		Tone:        req.Tone,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.DraftEmailResponse{Subject: draft.Subject, Body: draft.Body})
}

// Launch はPOST /campaigns/:id/launchを処理します。
// 一部の送信が失敗しても200で集計を返します。
func (h *CampaignHandler) Launch(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.LaunchCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("launch request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.uc.Launch(c.Request.Context(), userID, c.Param("id"), usecase.LaunchRequest{
		ContactIDs: req.ContactIDs,
		From:       string(req.From),
		SenderName: req.SenderName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.BatchSendResponse{
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
	})
}

func (h *CampaignHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCampaignNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "campaign not found"})
	case errors.Is(err, usecase.ErrNotLaunchable):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "campaign cannot be launched"})
	case errors.Is(err, usecase.ErrNoRecipients):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no active recipients"})
	case errors.Is(err, usecase.ErrWriterUnavailable):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "email writer is not configured"})
	case errors.Is(err, usecase.ErrDraftFailed):
		slog.Error("email draft generation failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "email draft generation failed"})
	default:
		slog.Error("campaign request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

func toResponse(c *entity.Campaign) api.CampaignResponse {
	return api.CampaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		Status:       string(c.Status),
		EmailSubject: c.EmailSubject,
		EmailBody:    c.EmailBody,
		EmailTone:    c.EmailTone,
		ProductInfo:  c.ProductInfo,
		TargetCount:  c.TargetCount,
		EmailsSent:   c.EmailsSent,
		EmailsFailed: c.EmailsFailed,
		LaunchedAt:   c.LaunchedAt,
		CreatedAt:    c.CreatedAt,
	}
}
