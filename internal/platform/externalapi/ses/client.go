// Package ses はAmazon SESを使用したメール送信クライアントを提供します。
package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"marketer_backend/internal/feature/email/domain/entity"
	"marketer_backend/internal/feature/email/usecase"
)

const charset = "UTF-8"

// Config holds configuration for the SES client.
type Config struct {
	Region string // AWS region (e.g., "us-east-1")
}

// API is the subset of the SES client used here.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Client はSESのSendEmail APIでメールを送信するSender実装です。
type Client struct {
	api API
}

// ClientがSenderを実装していることをコンパイル時に検証します。
var _ usecase.Sender = (*Client)(nil)

// NewClient はデフォルトの認証情報チェーンを使用してClientを生成します。
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Client{api: ses.NewFromConfig(awsCfg)}, nil
}

// NewClientWithAPI wraps an existing SES API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// Send はメッセージをSESに渡し、MessageIdを受付IDとして返します。
func (c *Client) Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error) {
	out, err := c.api.SendEmail(ctx, toInput(msg))
	if err != nil {
		return nil, fmt.Errorf("ses send email: %w", err)
	}
	if out == nil || out.MessageId == nil {
		return nil, errors.New("ses send email: empty message id")
	}
	return &entity.Receipt{ID: aws.ToString(out.MessageId)}, nil
}

// toInput はドメインのメッセージをSESの入力に変換します。
func toInput(msg entity.Message) *ses.SendEmailInput {
	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)}
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String(charset)}
	}

	in := &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body:    body,
		},
	}
	if msg.ReplyTo != "" {
		in.ReplyToAddresses = []string{msg.ReplyTo}
	}
	return in
}
