// Package middleware はGin用の共通ミドルウェアを提供します。
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"marketer_backend/internal/api"
)

const (
	sweepInterval = time.Minute
	idleTTL       = 3 * time.Minute
)

// RateLimitConfig はIP単位のトークンバケット設定です。
type RateLimitConfig struct {
	RequestsPerMin int // 1分あたりの許可リクエスト数（0以下で無制限）
	Burst          int // バースト許容数
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter はクライアントIPごとのレートリミッターを保持します。
type IPRateLimiter struct {
	cfg      RateLimitConfig
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

// NewIPRateLimiter はIPRateLimiterを生成し、ctxが終わるまで古いエントリを掃除します。
func NewIPRateLimiter(ctx context.Context, cfg RateLimitConfig) *IPRateLimiter {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	l := &IPRateLimiter{cfg: cfg, visitors: make(map[string]*visitor), now: time.Now}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	return l
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerMin)/60.0, l.cfg.Burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

// sweep はidleTTL以上アクセスのないIPを削除します。
func (l *IPRateLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idleTTL)
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
}

// Middleware は上限を超えたリクエストに429を返します。
// IPはgin.Context.ClientIPで判定するため、信頼するプロキシはエンジン側で設定します。
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	if l.cfg.RequestsPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	retryAfter := strconv.Itoa(int((time.Minute / time.Duration(l.cfg.RequestsPerMin)).Seconds()) + 1)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiter(ip).Allow() {
			slog.Warn("rate limit exceeded", "remote_addr", ip, "path", c.FullPath())
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
