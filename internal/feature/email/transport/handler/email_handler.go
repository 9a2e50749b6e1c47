// Package handler はemailフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketer_backend/internal/api"
	"marketer_backend/internal/feature/email/domain/entity"
)

const sendTypeTest = "test"

// EmailUsecase はメール送信のユースケースを定義します。
type EmailUsecase interface {
	Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error)
	SendTest(ctx context.Context, to string, msg entity.Message) (*entity.Receipt, error)
}

// EmailHandler はメール送信のHTTPリクエストを処理します。
type EmailHandler struct {
	email EmailUsecase
}

// NewEmailHandler はEmailHandlerの新しいインスタンスを生成します。
func NewEmailHandler(email EmailUsecase) *EmailHandler {
	return &EmailHandler{email: email}
}

// Send はメールを送信します。
//
// エンドポイント: POST /emails/send
// - type が "test" の場合は最初の宛先にのみ、件名に [TEST] を付けて送信
// - プロバイダーの失敗時は500（詳細はログのみ）
func (h *EmailHandler) Send(c *gin.Context) {
	var req api.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("send email validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	msg := entity.Message{
		To:      req.To,
		From:    req.From,
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
		ReplyTo: req.ReplyTo,
	}

	var (
		receipt *entity.Receipt
		err     error
	)
	if req.Type == sendTypeTest {
		receipt, err = h.email.SendTest(c.Request.Context(), req.To[0], msg)
	} else {
		receipt, err = h.email.Send(c.Request.Context(), msg)
	}
	if err != nil {
		slog.Error("send email failed", "error", err, "type", req.Type, "recipients", len(req.To))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to send email"})
		return
	}

	c.JSON(http.StatusOK, api.SendEmailResponse{Success: true, Data: &api.EmailReceipt{ID: receipt.ID}})
}
