// Package jwtmw はアクセストークン(JWT)の発行と検証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, algorithm or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims はアクセストークンから取り出したユーザー情報です。
type Claims struct {
	UserID uint
	Email  string
}

// Generator signs and verifies HS256 access tokens with a shared secret.
type Generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// Expiration はアクセストークンの有効期間を返します（レスポンスのexpires_in用）。
func (g *Generator) Expiration() time.Duration {
	return g.expiration
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the token and returns its claims.
func (g *Generator) ParseToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, g.secret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// HMAC以外（noneを含む）は拒否する
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := mc["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	return &Claims{UserID: uint(sub), Email: email}, nil
}
