package usecase

import "errors"

var (
	// ErrContactNotFound is returned when a contact does not exist or belongs to another user.
	ErrContactNotFound = errors.New("contact not found")

	// ErrInvalidCompany is returned when a contact references a company the user does not own.
	ErrInvalidCompany = errors.New("invalid company")

	// ErrEmailRequired is returned when a contact is created without an email address.
	ErrEmailRequired = errors.New("contact email is required")
)
