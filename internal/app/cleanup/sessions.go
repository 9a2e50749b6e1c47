// Package cleanup は期限切れデータの定期削除を提供します。
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// ExpiredSessionDeleter は期限切れセッションを削除できる保存先です。
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// PurgeSessions は期限切れセッションを1回削除します。
func PurgeSessions(ctx context.Context, sessions ExpiredSessionDeleter) (int64, error) {
	n, err := sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired sessions deleted", "count", n)
	}
	return n, nil
}

// RunSessionCleanup はctxが終わるまでinterval毎にPurgeSessionsを実行します。
// 失敗はログに残して次の周期で再試行します。
func RunSessionCleanup(ctx context.Context, sessions ExpiredSessionDeleter, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := PurgeSessions(ctx, sessions); err != nil {
				slog.Error("session cleanup failed", "error", err)
			}
		}
	}
}
