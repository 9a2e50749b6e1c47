package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	resendsdk "github.com/resend/resend-go/v2"

	"marketer_backend/internal/feature/email/domain/entity"
	"marketer_backend/internal/feature/email/usecase"
)

// Client はResend SDKでメールを送信するSender実装です。
type Client struct {
	cfg Config
	sdk *resendsdk.Client
}

// ClientがSenderを実装していることをコンパイル時に検証します。
var _ usecase.Sender = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) (*Client, error) {
	cfg = cfg.WithDefaults()

	// SDKは相対パスでエンドポイントを解決するため末尾のスラッシュを揃える
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}

	sdk := resendsdk.NewCustomClient(client, cfg.APIKey)
	sdk.BaseURL = base
	return &Client{cfg: cfg, sdk: sdk}, nil
}

// Send は POST /emails を呼び出し、受付IDを返します。
func (c *Client) Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error) {
	res, err := c.sdk.Emails.SendWithContext(ctx, &resendsdk.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return nil, fmt.Errorf("resend send failed: %w", err)
	}
	return &entity.Receipt{ID: res.Id}, nil
}
