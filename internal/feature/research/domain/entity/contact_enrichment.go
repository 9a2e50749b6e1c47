package entity

// ContactEnrichment は担当者の公開プロフィールから得たベストエフォートの情報です。
// 空文字のフィールドは「見つからなかった」ことを意味し、エラーではありません。
type ContactEnrichment struct {
	Title       string `json:"title,omitempty"`
	LinkedInURL string `json:"linkedinUrl,omitempty"`
	TwitterURL  string `json:"twitterUrl,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// IsEmpty reports whether nothing was found.
func (c ContactEnrichment) IsEmpty() bool {
	return c == ContactEnrichment{}
}
