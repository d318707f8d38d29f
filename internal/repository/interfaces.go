package repository

import (
	"context"

	"unbored/internal/domain"
)

// ActivityRepository defines the interface for activity list persistence
type ActivityRepository interface {
	// Load retrieves the persisted activity list, in order. A missing
	// document yields an empty list; a malformed one is an error.
	Load(ctx context.Context) ([]domain.Activity, error)

	// Save replaces the persisted document with the given list
	Save(ctx context.Context, activities []domain.Activity) error
}
