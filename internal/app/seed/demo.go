// Package seed はデモアカウント用のサンプルデータを投入します。
package seed

import (
	"context"
	"fmt"

	authusecase "marketer_backend/internal/feature/auth/usecase"
	campaignentity "marketer_backend/internal/feature/campaigns/domain/entity"
	companyentity "marketer_backend/internal/feature/companies/domain/entity"
	contactentity "marketer_backend/internal/feature/contacts/domain/entity"
)

type CompanyCreator interface {
	Create(ctx context.Context, company *companyentity.Company) error
}

type ContactCreator interface {
	Create(ctx context.Context, contact *contactentity.Contact) error
}

type CampaignCreator interface {
	Create(ctx context.Context, campaign *campaignentity.Campaign) error
}

// DemoSeeder はデモユーザーに企業1社・担当者3名・下書きキャンペーン1件を作成します。
type DemoSeeder struct {
	companies CompanyCreator
	contacts  ContactCreator
	campaigns CampaignCreator
}

var _ authusecase.DemoSeeder = (*DemoSeeder)(nil)

// NewDemoSeeder はDemoSeederの新しいインスタンスを生成します。
func NewDemoSeeder(companies CompanyCreator, contacts ContactCreator, campaigns CampaignCreator) *DemoSeeder {
	return &DemoSeeder{companies: companies, contacts: contacts, campaigns: campaigns}
}

var demoContacts = []contactentity.Contact{
	{FirstName: "John", LastName: "Smith", Email: "john.smith@acme.com", Title: "VP of Marketing"},
	{FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@acme.com", Title: "Director of Sales"},
	{FirstName: "Michael", LastName: "Chen", Email: "m.chen@acme.com", Title: "Product Manager"},
}

// SeedDemoData はuserIDの所有としてサンプルデータを作成します。
func (s *DemoSeeder) SeedDemoData(ctx context.Context, userID uint) error {
	company := &companyentity.Company{
		UserID:      userID,
		Name:        "Acme Corporation",
		Domain:      "acme.com",
		Industry:    "Technology",
		Size:        "500-1000 employees",
		Location:    "San Francisco, CA",
		Description: "Leading provider of enterprise software solutions",
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	for _, c := range demoContacts {
		contact := c
		contact.UserID = userID
		contact.CompanyID = company.ID
		contact.Status = contactentity.StatusActive
		if err := s.contacts.Create(ctx, &contact); err != nil {
			return fmt.Errorf("seed contact %s: %w", contact.Email, err)
		}
	}

	campaign := &campaignentity.Campaign{
		UserID:       userID,
		Name:         "Q1 2025 Product Launch",
		EmailSubject: "Introducing our new AI-powered solution",
		EmailBody:    "Hi {{firstName}},\n\nI wanted to reach out to share some exciting news about our latest product for {{companyName}}.\n\nBest,\n{{senderName}}",
		EmailTone:    "professional",
		ProductInfo:  "AI-powered analytics platform for enterprise businesses",
		TargetCount:  len(demoContacts),
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}
	return nil
}
