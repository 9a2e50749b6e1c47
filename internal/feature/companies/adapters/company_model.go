package adapters

import (
	"time"

	"marketer_backend/internal/feature/companies/domain/entity"
)

// CompanyModel is the GORM model for the companies table.
type CompanyModel struct {
	ID             string   `gorm:"primaryKey;size:36"`
	UserID         uint     `gorm:"index;not null"`
	Name           string   `gorm:"size:255;not null"`
	Domain         string   `gorm:"size:255;index"`
	Industry       string   `gorm:"size:100"`
	Size           string   `gorm:"size:100"`
	Location       string   `gorm:"size:255"`
	Description    string   `gorm:"type:text"`
	LinkedInURL    string   `gorm:"size:512"`
	TwitterURL     string   `gorm:"size:512"`
	RecentNews     []string `gorm:"type:text;serializer:json"`
	LastEnrichedAt *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	news := m.RecentNews
	if news == nil {
		news = []string{}
	}
	return &entity.Company{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Domain:         m.Domain,
		Industry:       m.Industry,
		Size:           m.Size,
		Location:       m.Location,
		Description:    m.Description,
		LinkedInURL:    m.LinkedInURL,
		TwitterURL:     m.TwitterURL,
		RecentNews:     news,
		LastEnrichedAt: m.LastEnrichedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CompanyModelFromEntity converts a domain entity to a GORM model.
func CompanyModelFromEntity(c *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		Domain:         c.Domain,
		Industry:       c.Industry,
		Size:           c.Size,
		Location:       c.Location,
		Description:    c.Description,
		LinkedInURL:    c.LinkedInURL,
		TwitterURL:     c.TwitterURL,
		RecentNews:     c.RecentNews,
		LastEnrichedAt: c.LastEnrichedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
