package service

import (
	"context"

	"unbored/internal/domain"
)

// SuggestionClient defines the interface for the remote activity lookup.
// The services depend only on this contract, not on transport details.
type SuggestionClient interface {
	// Suggest returns one activity satisfying the criteria, a no-match
	// error when nothing fits, or an external error on any fault.
	Suggest(ctx context.Context, criteria domain.FilterCriteria) (*domain.Activity, error)
}
