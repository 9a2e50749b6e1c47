package entity

import "time"

// Session はリフレッシュトークン1つに対応するログインセッションです。
type Session struct {
	ID        string // リフレッシュトークン（64文字の16進文字列）
	UserID    uint
	UserAgent string
	IPAddress string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // 失効していなければnil
}

// ValidAt reports whether the session can still be used at t.
func (s *Session) ValidAt(t time.Time) bool {
	return s.RevokedAt == nil && t.Before(s.ExpiresAt)
}

// IsValid is ValidAt(time.Now()).
func (s *Session) IsValid() bool {
	return s.ValidAt(time.Now())
}
