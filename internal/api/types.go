// Package api はHTTP APIのリクエスト/レスポンス型を定義します。
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse defines model for MessageResponse.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest defines model for SignupRequest.
type SignupRequest struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required,min=8"`
	Name     string              `json:"name" binding:"max=100"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required"`
}

// RefreshRequest defines model for RefreshRequest.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse defines model for TokenResponse.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// CompanyResearchRequest defines model for CompanyResearchRequest.
type CompanyResearchRequest struct {
	Query string `json:"query" binding:"required,max=255"`
}

// ContactResearchRequest defines model for ContactResearchRequest.
type ContactResearchRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Company string `json:"company" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// CreateCompanyRequest defines model for CreateCompanyRequest.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Domain      string `json:"domain" binding:"max=255"`
	Industry    string `json:"industry" binding:"max=100"`
	Size        string `json:"size" binding:"max=100"`
	Location    string `json:"location" binding:"max=255"`
	Description string `json:"description"`
}

// CompanyResponse defines model for CompanyResponse.
type CompanyResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Domain         string     `json:"domain,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	Size           string     `json:"size,omitempty"`
	Location       string     `json:"location,omitempty"`
	Description    string     `json:"description,omitempty"`
	LinkedInURL    string     `json:"linkedinUrl,omitempty"`
	TwitterURL     string     `json:"twitterUrl,omitempty"`
	RecentNews     []string   `json:"recentNews"`
	LastEnrichedAt *time.Time `json:"lastEnrichedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// CreateContactRequest defines model for CreateContactRequest.
type CreateContactRequest struct {
	FirstName string              `json:"firstName" binding:"required,max=100"`
	LastName  string              `json:"lastName" binding:"required,max=100"`
	Email     openapi_types.Email `json:"email" binding:"required,email"`
	Phone     string              `json:"phone" binding:"max=50"`
	Title     string              `json:"title" binding:"max=255"`
	CompanyID string              `json:"companyId" binding:"omitempty,uuid"`
	Status    string              `json:"status" binding:"omitempty,oneof=active inactive unsubscribed"`
	Tags      []string            `json:"tags"`
}

// ContactResponse defines model for ContactResponse.
type ContactResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Title       string    `json:"title,omitempty"`
	LinkedInURL string    `json:"linkedinUrl,omitempty"`
	TwitterURL  string    `json:"twitterUrl,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCampaignRequest defines model for CreateCampaignRequest.
type CreateCampaignRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	EmailSubject string `json:"emailSubject" binding:"max=255"`
	EmailBody    string `json:"emailBody"`
	EmailTone    string `json:"emailTone" binding:"omitempty,oneof=professional friendly casual formal"`
	ProductInfo  string `json:"productInfo"`
}

// CampaignResponse defines model for CampaignResponse.
type CampaignResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	EmailSubject string     `json:"emailSubject"`
	EmailBody    string     `json:"emailBody"`
	EmailTone    string     `json:"emailTone,omitempty"`
	ProductInfo  string     `json:"productInfo,omitempty"`
	TargetCount  int        `json:"targetCount"`
	EmailsSent   int        `json:"emailsSent"`
	EmailsFailed int        `json:"emailsFailed"`
	LaunchedAt   *time.Time `json:"launchedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CampaignEmailResponse defines model for CampaignEmailResponse.
type CampaignEmailResponse struct {
	ID           string     `json:"id"`
	ContactID    string     `json:"contactId"`
	ToEmail      string     `json:"toEmail"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	ProviderID   string     `json:"providerId,omitempty"`
	FailedReason string     `json:"failedReason,omitempty"`
	SentAt       *time.Time `json:"sentAt,omitempty"`
}

// DraftEmailRequest defines model for DraftEmailRequest.
type DraftEmailRequest struct {
	ProductInfo string `json:"productInfo" binding:"required"`
	Tone        string `json:"tone" binding:"omitempty,oneof=professional friendly casual formal"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
}

// DraftEmailResponse defines model for DraftEmailResponse.
type DraftEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// LaunchCampaignRequest defines model for LaunchCampaignRequest.
type LaunchCampaignRequest struct {
	ContactIDs []string            `json:"contactIds" binding:"required,min=1,dive,uuid"`
	From       openapi_types.Email `json:"from" binding:"omitempty,email"`
	SenderName string              `json:"senderName" binding:"max=255"`
}

// SendEmailRequest defines model for SendEmailRequest.
type SendEmailRequest struct {
	Type    string   `json:"type" binding:"omitempty,oneof=test regular"`
	To      []string `json:"to" binding:"required,min=1,dive,email"`
	From    string   `json:"from" binding:"omitempty,email"`
	Subject string   `json:"subject" binding:"required,max=998"`
	HTML    string   `json:"html" binding:"required"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"replyTo" binding:"omitempty,email"`
}

// EmailReceipt defines model for EmailReceipt.
type EmailReceipt struct {
	ID string `json:"id"`
}

// SendEmailResponse defines model for SendEmailResponse.
type SendEmailResponse struct {
	Success bool          `json:"success"`
	Data    *EmailReceipt `json:"data,omitempty"`
}

// BatchSendResponse defines model for BatchSendResponse.
type BatchSendResponse struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
