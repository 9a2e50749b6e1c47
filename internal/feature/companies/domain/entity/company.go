// Package entity はcompaniesフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Company はユーザーが管理する取引先企業です。
type Company struct {
	ID             string
	UserID         uint
	Name           string
	Domain         string
	Industry       string
	Size           string // 例: "500-1000 employees"
	Location       string
	Description    string
	LinkedInURL    string
	TwitterURL     string
	RecentNews     []string
	LastEnrichedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ResearchInput returns what should be handed to company research:
// the domain when known, otherwise the name.
func (c *Company) ResearchInput() string {
	if c.Domain != "" {
		return c.Domain
	}
	return c.Name
}
