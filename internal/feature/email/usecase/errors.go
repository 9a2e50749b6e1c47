package usecase

import "errors"

var (
	// ErrNoRecipients is returned when a message has no recipient.
	ErrNoRecipients = errors.New("email has no recipients")

	// ErrProviderUnavailable is returned while the provider circuit is open.
	ErrProviderUnavailable = errors.New("email provider unavailable")
)
