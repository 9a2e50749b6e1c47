// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DemoEmail is the address of the shared demo account.
const DemoEmail = "demo@example.com"

// User represents a registered user in the system.
type User struct {
	ID        uint
	Email     string
	Name      string
	Password  string // bcrypt hash, never plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientInfo はセッション発行時に記録するクライアント情報です。
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// TokenPair はログイン・リフレッシュ時に返すトークンの組です。
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // アクセストークンの有効秒数
}
