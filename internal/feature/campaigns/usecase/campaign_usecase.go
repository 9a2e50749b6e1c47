// Package usecase はcampaignsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketer_backend/internal/feature/campaigns/domain/entity"
	emailentity "marketer_backend/internal/feature/email/domain/entity"
)

// CampaignRepository はキャンペーンと送信記録の永続化層を抽象化します。
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	FindByID(ctx context.Context, userID uint, id string) (*entity.Campaign, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Campaign, error)
	ListEmails(ctx context.Context, campaignID string) ([]entity.CampaignEmail, error)
	// ClaimLaunch はdraft/pausedのキャンペーンだけを条件付き更新でactiveにします。
	// 他の配信が先に確保していた場合はErrNotLaunchableを返します。
	ClaimLaunch(ctx context.Context, userID uint, id string, at time.Time) error
	// RecordLaunch は集計を加算し、送信記録を1トランザクションで保存します。
	RecordLaunch(ctx context.Context, userID uint, id string, tally entity.LaunchResult, emails []entity.CampaignEmail) error
}

// RecipientRepository は担当者と所属企業から送信先を組み立てます。
// 配信停止・非アクティブの担当者は含まれません。
type RecipientRepository interface {
	FindRecipients(ctx context.Context, userID uint, contactIDs []string) ([]entity.Recipient, error)
}

// Mailer は一括送信を行うコンポーネントです（email.EmailUsecase が実装）。
// 1通の失敗は他の送信を止めません。
type Mailer interface {
	SendBatch(ctx context.Context, msgs []emailentity.Message) emailentity.BatchResult
}

// EmailWriter はLLMで件名・本文のテンプレートを生成します。
type EmailWriter interface {
	DraftEmail(ctx context.Context, prompt string) (*entity.Draft, error)
}

// LaunchRequest はキャンペーン配信の入力です。
type LaunchRequest struct {
	ContactIDs []string
	From       string // 空ならメール送信側のデフォルト送信元
	SenderName string
}

// CampaignUsecase はキャンペーンの作成・下書き生成・配信を提供します。
type CampaignUsecase struct {
	campaigns  CampaignRepository
	recipients RecipientRepository
	mailer     Mailer
	writer     EmailWriter
	now        func() time.Time
}

// NewCampaignUsecase はCampaignUsecaseの新しいインスタンスを生成します。
// writerがnilの場合、GenerateDraftはErrWriterUnavailableを返します。
func NewCampaignUsecase(campaigns CampaignRepository, recipients RecipientRepository, mailer Mailer, writer EmailWriter) *CampaignUsecase {
	return &CampaignUsecase{
		campaigns:  campaigns,
		recipients: recipients,
		mailer:     mailer,
		writer:     writer,
		now:        time.Now,
	}
}

// Create はキャンペーンを下書き状態で登録します。
func (u *CampaignUsecase) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	campaign.ID = uuid.NewString()
	campaign.Status = entity.StatusDraft
	if campaign.EmailTone == "" {
		campaign.EmailTone = DefaultTone
	}
	return u.campaigns.Create(ctx, campaign)
}

// List はユーザーのキャンペーンを新しい順に返します。
func (u *CampaignUsecase) List(ctx context.Context, userID uint) ([]entity.Campaign, error) {
	return u.campaigns.ListByUser(ctx, userID)
}

// Get はユーザーのキャンペーンを1件返します。
func (u *CampaignUsecase) Get(ctx context.Context, userID uint, id string) (*entity.Campaign, error) {
	return u.campaigns.FindByID(ctx, userID, id)
}

// Emails はキャンペーンの送信記録を返します。
func (u *CampaignUsecase) Emails(ctx context.Context, userID uint, id string) ([]entity.CampaignEmail, error) {
	campaign, err := u.campaigns.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return u.campaigns.ListEmails(ctx, campaign.ID)
}

// GenerateDraft はLLMで件名・本文のテンプレートを生成します。
func (u *CampaignUsecase) GenerateDraft(ctx context.Context, req entity.DraftRequest) (*entity.Draft, error) {
	if u.writer == nil {
		return nil, ErrWriterUnavailable
	}

	draft, err := u.writer.DraftEmail(ctx, BuildDraftPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}
	draft.Subject = strings.TrimSpace(draft.Subject)
	draft.Body = strings.TrimSpace(draft.Body)
	if draft.Subject == "" || draft.Body == "" {
		return nil, fmt.Errorf("%w: empty subject or body", ErrDraftFailed)
	}
	return draft, nil
}

// Launch はキャンペーンを指定した担当者へ配信します。
//
// 送信前にキャンペーンをactiveとして確保するため、同じキャンペーンの同時配信は1件だけが送信します。
// 送信は全件の完了を待ち（1通の失敗で中断しない）、担当者ごとに送信記録を残します。
// 送信数・失敗数は既存の値に加算されます。
func (u *CampaignUsecase) Launch(ctx context.Context, userID uint, campaignID string, req LaunchRequest) (*entity.LaunchResult, error) {
	campaign, err := u.campaigns.FindByID(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.CanLaunch() {
		return nil, ErrNotLaunchable
	}

	recipients, err := u.recipients.FindRecipients(ctx, userID, req.ContactIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipients: %w", err)
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	if err := u.campaigns.ClaimLaunch(ctx, userID, campaign.ID, u.now()); err != nil {
		return nil, err
	}

	msgs := make([]emailentity.Message, len(recipients))
	emails := make([]entity.CampaignEmail, len(recipients))
	for i, r := range recipients {
		r.SenderName = req.SenderName
		subject := Personalize(campaign.EmailSubject, r)
		body := Personalize(campaign.EmailBody, r)

		msgs[i] = emailentity.Message{
			To:      []string{r.Email},
			From:    req.From,
			Subject: subject,
			HTML:    textToHTML(body),
			Text:    body,
		}
		emails[i] = entity.CampaignEmail{
			ID:         uuid.NewString(),
			CampaignID: campaign.ID,
			ContactID:  r.ContactID,
			ToEmail:    r.Email,
			Subject:    subject,
			Body:       body,
			Status:     entity.EmailPending,
		}
	}

	batch := u.mailer.SendBatch(ctx, msgs)

	now := u.now()
	for i, outcome := range batch.Results {
		if outcome.Succeeded() {
			emails[i].Status = entity.EmailSent
			emails[i].SentAt = &now
			if outcome.Receipt != nil {
				emails[i].ProviderID = outcome.Receipt.ID
			}
			continue
		}
		emails[i].Status = entity.EmailFailed
		emails[i].FailedReason = outcome.Err.Error()
	}

	tally := entity.LaunchResult{Total: batch.Total, Successful: batch.Successful, Failed: batch.Failed}
	if err := u.campaigns.RecordLaunch(ctx, userID, campaign.ID, tally, emails); err != nil {
		// 送信は完了済み。件数だけはログに残す
		slog.Error("failed to record campaign launch",
			"campaign_id", campaign.ID, "sent", batch.Successful, "failed", batch.Failed, "error", err)
		return nil, fmt.Errorf("record launch: %w", err)
	}

	slog.Info("campaign launched",
		"campaign_id", campaign.ID, "total", batch.Total, "sent", batch.Successful, "failed", batch.Failed)
	return &tally, nil
}

// textToHTML はプレーンテキスト本文をエスケープし、改行を<br>に変換します。
func textToHTML(body string) string {
	escaped := html.EscapeString(body)
	return strings.ReplaceAll(escaped, "\n", "<br>\n")
}
