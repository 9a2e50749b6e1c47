// Package entity はcampaignsフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Status はキャンペーンの状態です。
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Campaign はメール配信キャンペーンです。件名・本文は{{firstName}}などの変数を含むテンプレートです。
type Campaign struct {
	ID           string
	UserID       uint
	Name         string
	Status       Status
	EmailSubject string
	EmailBody    string
	EmailTone    string
	ProductInfo  string
	TargetCount  int
	EmailsSent   int
	EmailsFailed int
	LaunchedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLaunch reports whether the campaign may be (re)launched.
func (c *Campaign) CanLaunch() bool {
	return c.Status == StatusDraft || c.Status == StatusPaused
}

// EmailStatus は送信記録の状態です。
type EmailStatus string

const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
)

// CampaignEmail はキャンペーンで送信した1通の記録です。
type CampaignEmail struct {
	ID           string
	CampaignID   string
	ContactID    string
	ToEmail      string
	Subject      string
	Body         string
	Status       EmailStatus
	ProviderID   string
	FailedReason string
	SentAt       *time.Time
	CreatedAt    time.Time
}

// Recipient は差し込み変数の値を持つ送信先です。
type Recipient struct {
	ContactID   string
	Email       string
	FirstName   string
	LastName    string
	Title       string
	CompanyName string
	Industry    string
	RecentNews  []string
	SenderName  string
}

// DraftRequest はLLMによる下書き生成の入力です。
type DraftRequest struct {
	ProductInfo string
	Tone        string
	CompanyName string
	Industry    string
}

// Draft は件名と本文のテンプレートです。
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// LaunchResult はキャンペーン配信の集計です。
type LaunchResult struct {
	Total      int
	Successful int
	Failed     int
}
