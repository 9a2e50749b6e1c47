package usecase

import "errors"

var (
	// ErrCampaignNotFound is returned when a campaign does not exist or belongs to another user.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrNotLaunchable is returned when launching a campaign that is neither draft nor paused.
	ErrNotLaunchable = errors.New("campaign cannot be launched in its current status")

	// ErrNoRecipients is returned when none of the requested contacts can receive email.
	ErrNoRecipients = errors.New("no active recipients")

	// ErrWriterUnavailable is returned when no LLM writer is configured.
	ErrWriterUnavailable = errors.New("email writer is not configured")

	// ErrDraftFailed is returned when the LLM writer fails or returns an unusable draft.
	ErrDraftFailed = errors.New("email draft generation failed")
)
