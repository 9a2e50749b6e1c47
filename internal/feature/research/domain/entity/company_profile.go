package entity

// SocialLinks holds the company's social profile URLs. Empty means not found.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// CompanyProfile は検索結果から組み立てた企業プロフィールです。
// 1回の調査ごとに生成され、生成後は変更されません。
type CompanyProfile struct {
	CompanyName string         `json:"companyName"`
	Website     string         `json:"website"` // スキームと先頭の "www." を含まないホスト名
	Description string         `json:"description"`
	Industry    string         `json:"industry"`
	RecentNews  []string       `json:"recentNews"` // 最大5件、ランキング順
	SocialLinks SocialLinks    `json:"socialLinks"`
	RawResults  []SearchResult `json:"rawResults"` // general → news の順に連結
}
