// Package searxng はSearXNG互換のメタ検索APIクライアントを提供します。
package searxng

import "time"

const (
	// DefaultBaseURL is the public instance used when SEARXNG_URL is unset.
	DefaultBaseURL = "https://searx.be"
	// DefaultTimeout bounds a single search call.
	DefaultTimeout = 10 * time.Second
	// UserAgent identifies this service to the search provider.
	UserAgent = "marketer-backend/1.0"
)

// Config holds configuration for the SearXNG client.
type Config struct {
	BaseURL string        // Base URL of the instance (e.g., "https://searx.be")
	Timeout time.Duration // HTTP request timeout
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
