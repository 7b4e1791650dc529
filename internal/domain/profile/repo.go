package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for medical history records.
type Repository interface {
	// Replace removes any existing history for h.UserID and stores h.
	Replace(ctx context.Context, h *MedicalHistory) error
	// GetByUser returns the user's history, or nil when none exists.
	GetByUser(ctx context.Context, userID uuid.UUID) (*MedicalHistory, error)
}
