// Package usecase はemailフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"marketer_backend/internal/feature/email/domain/entity"
	"marketer_backend/internal/shared/ratelimiter"
)

// Sender はメール送信プロバイダーを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/externalapi）ではなくコンシューマー（usecase）が定義します。
type Sender interface {
	// Send はメッセージをプロバイダーに渡し、受付IDを返します。
	Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error)
}

// EmailUsecase はメール送信（通常・テスト・一括）を提供します。
type EmailUsecase struct {
	sender      Sender
	rateLimiter ratelimiter.RateLimiterInterface
	defaultFrom string
}

// NewEmailUsecase はEmailUsecaseの新しいインスタンスを生成します。
// rateLimiterはプロバイダーのレート制限に合わせて送信間隔を調整します。
func NewEmailUsecase(sender Sender, rateLimiter ratelimiter.RateLimiterInterface, defaultFrom string) *EmailUsecase {
	return &EmailUsecase{sender: sender, rateLimiter: rateLimiter, defaultFrom: defaultFrom}
}

// Send は1通のメールを送信します。Fromが空の場合はデフォルトの送信元を使います。
func (u *EmailUsecase) Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error) {
	if len(msg.To) == 0 {
		return nil, ErrNoRecipients
	}
	if strings.TrimSpace(msg.From) == "" {
		msg.From = u.defaultFrom
	}

	if err := u.rateLimiter.WaitIfNeeded(ctx); err != nil {
		return nil, fmt.Errorf("wait for send slot: %w", err)
	}

	receipt, err := u.sender.Send(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("send email: %w", err)
	}
	return receipt, nil
}

// SendTest は件名に "[TEST] " を付け、宛先を1件に固定して送信します。
func (u *EmailUsecase) SendTest(ctx context.Context, to string, msg entity.Message) (*entity.Receipt, error) {
	msg.To = []string{to}
	msg.Subject = entity.TestSubjectPrefix + msg.Subject
	return u.Send(ctx, msg)
}

// SendBatch は全メッセージを並行に送信し、すべての完了を待って結果を集計します。
// 個々の失敗はバッチ全体を中断しません。
func (u *EmailUsecase) SendBatch(ctx context.Context, msgs []entity.Message) entity.BatchResult {
	results := make([]entity.SendOutcome, len(msgs))

	var wg sync.WaitGroup
	for i, msg := range msgs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receipt, err := u.Send(ctx, msg)
			results[i] = entity.SendOutcome{Receipt: receipt, Err: err}
		}()
	}
	wg.Wait()

	out := entity.BatchResult{Total: len(msgs), Results: results}
	for _, r := range results {
		if r.Succeeded() {
			out.Successful++
		} else {
			out.Failed++
		}
	}
	return out
}
