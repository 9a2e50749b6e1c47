package adapters

import (
	"time"

	companyadapters "marketer_backend/internal/feature/companies/adapters"
	"marketer_backend/internal/feature/contacts/domain/entity"
)

// ContactModel is the GORM model for the contacts table.
type ContactModel struct {
	ID          string                        `gorm:"primaryKey;size:36"`
	UserID      uint                          `gorm:"index;not null"`
	CompanyID   *string                       `gorm:"size:36;index"`
	Company     *companyadapters.CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
	FirstName   string                        `gorm:"size:100;not null"`
	LastName    string                        `gorm:"size:100;not null"`
	Email       string                        `gorm:"size:255;not null;index"`
	Phone       string                        `gorm:"size:50"`
	Title       string                        `gorm:"size:255"`
	LinkedInURL string                        `gorm:"size:512"`
	TwitterURL  string                        `gorm:"size:512"`
	Bio         string                        `gorm:"type:text"`
	Status      string                        `gorm:"size:20;not null;default:active"`
	Tags        []string                      `gorm:"type:text;serializer:json"`
	CreatedAt   time.Time                     `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts the GORM model to a domain entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	c := &entity.Contact{
		ID:          m.ID,
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		Title:       m.Title,
		LinkedInURL: m.LinkedInURL,
		TwitterURL:  m.TwitterURL,
		Bio:         m.Bio,
		Status:      entity.Status(m.Status),
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if m.CompanyID != nil {
		c.CompanyID = *m.CompanyID
	}
	if m.Company != nil {
		c.CompanyName = m.Company.Name
	}
	return c
}

// ContactModelFromEntity converts a domain entity to a GORM model.
// CompanyName is derived data and is not written back.
func ContactModelFromEntity(c *entity.Contact) *ContactModel {
	m := &ContactModel{
		ID:          c.ID,
		UserID:      c.UserID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Title:       c.Title,
		LinkedInURL: c.LinkedInURL,
		TwitterURL:  c.TwitterURL,
		Bio:         c.Bio,
		Status:      string(c.Status),
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CompanyID != "" {
		id := c.CompanyID
		m.CompanyID = &id
	}
	return m
}
