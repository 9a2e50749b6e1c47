// Package resend provides a client for the Resend transactional email API.
package resend

import "time"

const (
	// DefaultBaseURL is the public Resend API endpoint.
	DefaultBaseURL = "https://api.resend.com"
	// DefaultTimeout bounds a single send call.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the Resend API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.resend.com")
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
