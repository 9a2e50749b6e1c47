package usecase

import (
	"regexp"
	"strings"
)

// titlePattern captures the words following "at" or "@" up to a separator.
// Separators: "-", "•", "|".
var titlePattern = regexp.MustCompile(`(?i)(?:\bat|@)\s+([^-•|]+)`)

// ExtractTitle はLinkedInのスニペットから肩書きを抽出します。
// 抽出ルールはこの関数に閉じ込めており、呼び出し側に影響を与えずに差し替えられます。
func ExtractTitle(snippet string) (string, bool) {
	m := titlePattern.FindStringSubmatch(snippet)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}
