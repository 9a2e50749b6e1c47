package adapters

import (
	"time"

	"marketer_backend/internal/feature/campaigns/domain/entity"
)

// CampaignModel is the GORM model for the campaigns table.
type CampaignModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       uint   `gorm:"index;not null"`
	Name         string `gorm:"size:255;not null"`
	Status       string `gorm:"size:20;not null;default:draft;index"`
	EmailSubject string `gorm:"size:998"`
	EmailBody    string `gorm:"type:text"`
	EmailTone    string `gorm:"size:20"`
	ProductInfo  string `gorm:"type:text"`
	TargetCount  int    `gorm:"not null;default:0"`
	EmailsSent   int    `gorm:"not null;default:0"`
	EmailsFailed int    `gorm:"not null;default:0"`
	LaunchedAt   *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignEmailModel is the GORM model for the campaign_emails table.
type CampaignEmailModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	CampaignID   string `gorm:"size:36;index;not null"`
	ContactID    string `gorm:"size:36;index"`
	ToEmail      string `gorm:"size:255;not null"`
	Subject      string `gorm:"size:998"`
	Body         string `gorm:"type:text"`
	Status       string `gorm:"size:20;not null;index"`
	ProviderID   string `gorm:"size:255"`
	FailedReason string `gorm:"type:text"`
	SentAt       *time.Time
	CreatedAt    time.Time
}

// TableName returns the table name for GORM.
func (CampaignEmailModel) TableName() string {
	return "campaign_emails"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CampaignModel) ToEntity() *entity.Campaign {
	return &entity.Campaign{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Status:       entity.Status(m.Status),
		EmailSubject: m.EmailSubject,
		EmailBody:    m.EmailBody,
		EmailTone:    m.EmailTone,
		ProductInfo:  m.ProductInfo,
		TargetCount:  m.TargetCount,
		EmailsSent:   m.EmailsSent,
		EmailsFailed: m.EmailsFailed,
		LaunchedAt:   m.LaunchedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CampaignModelFromEntity converts a domain entity to a GORM model.
func CampaignModelFromEntity(c *entity.Campaign) *CampaignModel {
	return &CampaignModel{
		ID:           c.ID,
		UserID:       c.UserID,
		Name:         c.Name,
		Status:       string(c.Status),
		EmailSubject: c.EmailSubject,
		EmailBody:    c.EmailBody,
		EmailTone:    c.EmailTone,
		ProductInfo:  c.ProductInfo,
		TargetCount:  c.TargetCount,
		EmailsSent:   c.EmailsSent,
		EmailsFailed: c.EmailsFailed,
		LaunchedAt:   c.LaunchedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func campaignEmailModelFromEntity(e *entity.CampaignEmail) CampaignEmailModel {
	return CampaignEmailModel{
		ID:           e.ID,
		CampaignID:   e.CampaignID,
		ContactID:    e.ContactID,
		ToEmail:      e.ToEmail,
		Subject:      e.Subject,
		Body:         e.Body,
		Status:       string(e.Status),
		ProviderID:   e.ProviderID,
		FailedReason: e.FailedReason,
		SentAt:       e.SentAt,
		CreatedAt:    e.CreatedAt,
	}
}

// ToEntity converts the GORM model to a domain entity.
func (m *CampaignEmailModel) ToEntity() entity.CampaignEmail {
	return entity.CampaignEmail{
		ID:           m.ID,
		CampaignID:   m.CampaignID,
		ContactID:    m.ContactID,
		ToEmail:      m.ToEmail,
		Subject:      m.Subject,
		Body:         m.Body,
		Status:       entity.EmailStatus(m.Status),
		ProviderID:   m.ProviderID,
		FailedReason: m.FailedReason,
		SentAt:       m.SentAt,
		CreatedAt:    m.CreatedAt,
	}
}
