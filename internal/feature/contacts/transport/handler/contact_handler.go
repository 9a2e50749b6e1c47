// Package handler はcontactsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/contacts/domain/entity"
	"marketer_backend/internal/feature/contacts/usecase"
	jwtmw "marketer_backend/internal/platform/jwt"
)

// ContactUsecase は担当者管理のユースケースを定義します。
type ContactUsecase interface {
	Create(ctx context.Context, contact *entity.Contact) error
	List(ctx context.Context, userID uint) ([]entity.Contact, error)
	Get(ctx context.Context, userID uint, id string) (*entity.Contact, error)
	Delete(ctx context.Context, userID uint, id string) error
	Enrich(ctx context.Context, userID uint, id string) (*entity.Contact, error)
}

// ContactHandler は担当者に関するHTTPリクエストを処理します。
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler は新しいContactHandlerを作成します。
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List はGET /contactsを処理します。
func (h *ContactHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	contacts, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]api.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, toResponse(&contacts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はPOST /contactsを処理します。
func (h *ContactHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create contact validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	contact := &entity.Contact{
		UserID:    userID,
		CompanyID: req.CompanyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     string(req.Email),
		Phone:     req.Phone,
		Title:     req.Title,
		Status:    entity.Status(req.Status),
		Tags:      req.Tags,
	}
	if err := h.uc.Create(c.Request.Context(), contact); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(contact))
}

// Get はGET /contacts/:idを処理します。
func (h *ContactHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	contact, err := h.uc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(contact))
}

// Delete はDELETE /contacts/:idを処理します。
func (h *ContactHandler) Delete(c *gin.Context) {
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

// Enrich はPOST /contacts/:id/enrichを処理します。
// 補完はベストエフォートのため、検索が失敗しても200で現在の値を返します。
func (h *ContactHandler) Enrich(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	contact, err := h.uc.Enrich(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(contact))
}

func (h *ContactHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrContactNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "contact not found"})
	case errors.Is(err, usecase.ErrInvalidCompany):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid company"})
	case errors.Is(err, usecase.ErrEmailRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email is required"})
	default:
		slog.Error("contact request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

func toResponse(c *entity.Contact) api.ContactResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.ContactResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Title:       c.Title,
		LinkedInURL: c.LinkedInURL,
		TwitterURL:  c.TwitterURL,
		Bio:         c.Bio,
		Status:      string(c.Status),
		Tags:        tags,
		CreatedAt:   c.CreatedAt,
	}
}
