package usecase

import (
	"strings"

	"marketer_backend/internal/feature/research/domain/entity"
)

const (
	// DefaultIndustry はキーワードが一つも見つからなかった場合の業種です。
	DefaultIndustry = "Technology"

	industryScanLimit = 5  // 業種判定に使う上位結果の件数
	socialScanLimit   = 10 // SNSリンク抽出に使う上位結果の件数
	recentNewsLimit   = 5  // recentNewsの最大件数
)

// industryKeywords is checked in order; the first keyword present wins.
var industryKeywords = []string{
	"technology",
	"software",
	"saas",
	"fintech",
	"healthcare",
	"finance",
	"retail",
	"e-commerce",
	"manufacturing",
	"consulting",
	"marketing",
	"education",
	"real estate",
	"logistics",
	"telecommunications",
	"media",
	"entertainment",
	"energy",
	"automotive",
	"aerospace",
}

// ClassifyIndustry は上位5件のタイトルと本文を小文字化して連結し、
// キーワードリストの順に最初に含まれていたものを先頭大文字にして返します。
// 一致しなければDefaultIndustryを返すため、戻り値が空になることはありません。
func ClassifyIndustry(results []entity.SearchResult) string {
	parts := make([]string, 0, industryScanLimit)
	for _, r := range head(results, industryScanLimit) {
		parts = append(parts, r.Title+" "+r.Content)
	}
	text := strings.ToLower(strings.Join(parts, " "))

	for _, kw := range industryKeywords {
		if strings.Contains(text, kw) {
			return strings.ToUpper(kw[:1]) + kw[1:]
		}
	}
	return DefaultIndustry
}

// ExtractSocialLinks scans the first ten results in ranking order.
// A slot that is already filled is never overwritten by a later match.
func ExtractSocialLinks(results []entity.SearchResult) entity.SocialLinks {
	var links entity.SocialLinks
	for _, r := range head(results, socialScanLimit) {
		if links.LinkedIn == "" && strings.Contains(r.URL, "linkedin.com/company") {
			links.LinkedIn = r.URL
		}
		if links.Twitter == "" && isTwitterURL(r.URL) {
			links.Twitter = r.URL
		}
	}
	return links
}

// RecentNews returns up to five headlines in ranking order.
func RecentNews(results []entity.SearchResult) []string {
	top := head(results, recentNewsLimit)
	news := make([]string, 0, len(top))
	for _, r := range top {
		news = append(news, r.Title)
	}
	return news
}

func isTwitterURL(u string) bool {
	return strings.Contains(u, "twitter.com") || strings.Contains(u, "x.com")
}

func head(results []entity.SearchResult, n int) []entity.SearchResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}
