// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketer_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// DemoUserName はデモアカウントの表示名です。
	DemoUserName = "Demo User"

	// dummyHash はユーザー未検出時にも bcrypt 比較を行うためのハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化します。メール重複時はErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを取得します。存在しない場合はErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを取得します。存在しない場合はErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer はアクセストークン(JWT)を発行します（platform/jwt.Generator が実装）。
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
	Expiration() time.Duration
}

// DemoSeeder はデモユーザー作成時にサンプルデータを投入します。
type DemoSeeder interface {
	SeedDemoData(ctx context.Context, userID uint) error
}

// Config はセッションの有効期間と上限です。
type Config struct {
	RefreshTTL     time.Duration // 通常ログインのリフレッシュトークン有効期間
	DemoRefreshTTL time.Duration // デモログインのリフレッシュトークン有効期間
	MaxSessions    int           // ユーザーあたりの同時セッション数（0以下で無制限）
}

// WithDefaults は未設定の項目にデフォルト値を補います。
func (c Config) WithDefaults() Config {
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
	if c.DemoRefreshTTL <= 0 {
		c.DemoRefreshTTL = 30 * 24 * time.Hour
	}
	return c
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenIssuer
	seeder   DemoSeeder
	cfg      Config
	now      func() time.Time
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
// seederがnilの場合、デモユーザーはサンプルデータなしで作成されます。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenIssuer, seeder DemoSeeder, cfg Config) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		seeder:   seeder,
		cfg:      cfg.WithDefaults(),
		now:      time.Now,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *AuthUsecase) Signup(ctx context.Context, email, password, name string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Name:     strings.TrimSpace(name),
		Password: string(hashed),
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、アクセストークンとリフレッシュトークンを返します。
// ユーザーが存在しない場合でもbcrypt比較を実行し、応答時間からユーザーの存在を推測されないようにします。
func (u *AuthUsecase) Login(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issue(ctx, user, client, u.cfg.RefreshTTL)
}

// Refresh はリフレッシュトークンをローテーションし、新しいトークンの組を返します。
// 使用済みのリフレッシュトークンは失効します。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string, client entity.ClientInfo) (*entity.TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !session.ValidAt(u.now()) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("revoke session: %w", err)
	}

	// 残り有効期間を引き継ぐ
	return u.issue(ctx, user, client, session.ExpiresAt.Sub(u.now()))
}

// Logout はリフレッシュトークンを失効させます。未知のトークンでもエラーにしません。
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// DemoLogin はデモアカウントでログインします。
// 初回はデモユーザーを作成し、サンプルデータを投入します。セッションは30日間有効です。
func (u *AuthUsecase) DemoLogin(ctx context.Context, client entity.ClientInfo) (*entity.TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, entity.DemoEmail)
	if errors.Is(err, ErrUserNotFound) {
		user, err = u.createDemoUser(ctx)
	}
	if err != nil {
		return nil, err
	}

	return u.issue(ctx, user, client, u.cfg.DemoRefreshTTL)
}

func (u *AuthUsecase) createDemoUser(ctx context.Context) (*entity.User, error) {
	secret, err := randomToken()
	if err != nil {
		return nil, err
	}
	// デモユーザーはパスワードでログインできない
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: entity.DemoEmail, Name: DemoUserName, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			// 同時リクエストで先に作成された
			return u.users.FindByEmail(ctx, entity.DemoEmail)
		}
		return nil, err
	}

	if u.seeder != nil {
		if err := u.seeder.SeedDemoData(ctx, user.ID); err != nil {
			slog.Error("failed to seed demo data", "user_id", user.ID, "error", err)
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}
	slog.Info("demo user created", "user_id", user.ID)
	return user, nil
}

// issue はアクセストークンを署名し、リフレッシュ用セッションを作成します。
func (u *AuthUsecase) issue(ctx context.Context, user *entity.User, client entity.ClientInfo, ttl time.Duration) (*entity.TokenPair, error) {
	access, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if u.cfg.MaxSessions > 0 {
		count, err := u.sessions.CountByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if count >= int64(u.cfg.MaxSessions) {
			if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}
	now := u.now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: truncate(client.UserAgent, 512),
		IPAddress: truncate(client.IPAddress, 45),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(u.tokens.Expiration().Seconds()),
	}, nil
}

// randomToken は32バイトの乱数を16進文字列で返します。
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
