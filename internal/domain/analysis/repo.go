package analysis

import (
	"context"

	"github.com/google/uuid"
)

// ListLimit caps how many records a single listing returns.
const ListLimit = 100

// Repository defines persistence for analysis records.
type Repository interface {
	// Create appends a new analysis record.
	Create(ctx context.Context, a *Analysis) error
	// ListByUser returns the user's analyses, newest first, at most
	// ListLimit of them.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Analysis, error)
}
