// Package domain はresearchフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrSearchFailed is matched by every SearchError.
	ErrSearchFailed = errors.New("search failed")

	// ErrResearchFailed is matched by every ResearchError.
	ErrResearchFailed = errors.New("company research failed")

	// ErrNoLogoDetected is returned when an uploaded image contains no recognizable logo.
	ErrNoLogoDetected = errors.New("no logo detected")
)

// SearchError は検索プロバイダー呼び出しの失敗を表します。
// プロバイダー固有の詳細はログにのみ出力し、Error() は常に汎用メッセージを返します。
type SearchError struct {
	Cause error
}

func (e *SearchError) Error() string { return ErrSearchFailed.Error() }

func (e *SearchError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrSearchFailed) match without string comparison.
func (e *SearchError) Is(target error) bool { return target == ErrSearchFailed }

// ResearchError は企業調査全体の失敗を表します。部分的な結果は返されません。
type ResearchError struct {
	Cause error
}

func (e *ResearchError) Error() string { return ErrResearchFailed.Error() }

func (e *ResearchError) Unwrap() error { return e.Cause }

func (e *ResearchError) Is(target error) bool { return target == ErrResearchFailed }
