// Package adapters はemailフィーチャーの送信プロバイダー向けデコレーターを提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"marketer_backend/internal/feature/email/domain/entity"
	"marketer_backend/internal/feature/email/usecase"
	"marketer_backend/internal/platform/metrics"
)

// Default circuit breaker settings.
const (
	defaultMaxFailures uint32 = 5
	defaultOpenTimeout        = 30 * time.Second
	defaultInterval           = 60 * time.Second
)

// BreakerConfig configures BreakerSender. Zero values fall back to defaults.
type BreakerConfig struct {
	MaxFailures uint32        // 回路を開くまでの連続失敗回数
	Timeout     time.Duration // open から half-open に移るまでの時間
	Interval    time.Duration // closed 状態で失敗回数をリセットする周期
}

// BreakerSender は送信プロバイダーをサーキットブレーカーで保護するSender実装です。
// プロバイダーが連続して失敗すると以降の呼び出しを即座に失敗させ、一括送信時の無駄な呼び出しを防ぎます。
type BreakerSender struct {
	provider string
	inner    usecase.Sender
	breaker  *gobreaker.CircuitBreaker[*entity.Receipt]
}

// BreakerSenderがSenderを実装していることをコンパイル時に検証します。
var _ usecase.Sender = (*BreakerSender)(nil)

// NewBreakerSender はinnerをサーキットブレーカーでラップします。
func NewBreakerSender(provider string, inner usecase.Sender, cfg BreakerConfig) *BreakerSender {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultOpenTimeout
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = defaultInterval
	}

	cb := gobreaker.NewCircuitBreaker[*entity.Receipt](gobreaker.Settings{
		Name:        "email:" + provider,
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
		// 宛先不備などの呼び出し側エラーでは回路を開かない
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, usecase.ErrNoRecipients) || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerSender{provider: provider, inner: inner, breaker: cb}
}

// Send はブレーカー経由でinnerに送信を委譲し、結果をメトリクスに記録します。
func (s *BreakerSender) Send(ctx context.Context, msg entity.Message) (*entity.Receipt, error) {
	receipt, err := s.breaker.Execute(func() (*entity.Receipt, error) {
		return s.inner.Send(ctx, msg)
	})
	metrics.EmailsSent.WithLabelValues(s.provider, metrics.Outcome(err)).Inc()

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %w", usecase.ErrProviderUnavailable, s.provider, err)
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// State returns the current breaker state, used by health reporting.
func (s *BreakerSender) State() string {
	return s.breaker.State().String()
}
