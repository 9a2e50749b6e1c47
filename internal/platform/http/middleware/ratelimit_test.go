package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(l *IPRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := newRouter(NewIPRateLimiter(ctx, RateLimitConfig{RequestsPerMin: 1, Burst: 2}))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234").Code)

	w := get(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
	assert.Equal(t, "61", w.Header().Get("Retry-After"))

	// 別のIPは独立してカウントされる
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1234").Code)
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := newRouter(NewIPRateLimiter(ctx, RateLimitConfig{}))

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234").Code)
	}
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewIPRateLimiter(ctx, RateLimitConfig{RequestsPerMin: 10, Burst: 1})
	now := time.Now()
	l.now = func() time.Time { return now }

	l.limiter("10.0.0.1")
	now = now.Add(2 * time.Minute)
	l.limiter("10.0.0.2")
	now = now.Add(2 * time.Minute)

	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}
