package usecase

import "errors"

var (
	// ErrCompanyNotFound is returned when a company does not exist or belongs to another user.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrEnrichmentFailed is returned when company research could not produce a profile.
	ErrEnrichmentFailed = errors.New("company enrichment failed")
)
