package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// RefinementRepository defines data access operations for refinement
// history. Records are append-only; there is no update or delete.
type RefinementRepository interface {
	// Create appends a refinement record
	Create(ctx context.Context, refinement *models.Refinement) error

	// ListBySection retrieves a section's refinements, newest first
	ListBySection(ctx context.Context, sectionID, userID string) ([]models.Refinement, error)
}
