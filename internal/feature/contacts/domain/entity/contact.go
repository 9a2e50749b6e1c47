// Package entity はcontactsフィーチャーのドメインモデルを定義します。
package entity

import (
	"strings"
	"time"
)

// Status は担当者の配信ステータスです。
type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusUnsubscribed Status = "unsubscribed"
)

// Contact は企業の担当者（メール送信先）です。
type Contact struct {
	ID          string
	UserID      uint
	CompanyID   string // 空の場合は企業未所属
	CompanyName string // 読み取り専用。companiesテーブルから解決される
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Title       string
	LinkedInURL string
	TwitterURL  string
	Bio         string
	Status      Status
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns "First Last" with surrounding blanks removed.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
