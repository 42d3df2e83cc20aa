package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// SectionRepository defines data access operations for sections.
// Section lookups are scoped through the ownership chain
// (section -> project -> user).
type SectionRepository interface {
	// Create inserts a new section. A position already used within the
	// project is rejected with a validation error; the unique constraint
	// backs the ordering invariant.
	Create(ctx context.Context, section *models.Section) error

	// GetByID retrieves a section whose project is owned by the given user
	GetByID(ctx context.Context, id, userID string) (*models.Section, error)

	// GetByIDForUpdate is GetByID with a row lock; it must run inside a
	// transaction. The refinement orchestrator uses it to detect
	// interleaved writes before committing.
	GetByIDForUpdate(ctx context.Context, id, userID string) (*models.Section, error)

	// ListByProject retrieves a project's sections ordered by position ASC
	ListByProject(ctx context.Context, projectID, userID string) ([]models.Section, error)

	// UpdateContent replaces a section's content and bumps updated_at
	UpdateContent(ctx context.Context, id, userID, content string) error
}
