package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// ProjectRepository defines data access operations for projects.
// Every lookup is scoped to (id, userID); a project owned by someone else
// reads as not found.
type ProjectRepository interface {
	// Create inserts a new project and fills in its generated ID and timestamps
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project owned by the given user
	GetByID(ctx context.Context, id, userID string) (*models.Project, error)

	// List retrieves all projects for a user, ordered by updated_at DESC
	List(ctx context.Context, userID string) ([]models.Project, error)

	// Update updates a project's title, topic, structure and updated_at
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project; sections, refinements and feedback go with
	// it via cascading delete
	Delete(ctx context.Context, id, userID string) error
}
