package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// FeedbackRepository defines data access operations for section feedback.
// Append-only, like refinements.
type FeedbackRepository interface {
	// Create appends a feedback record
	Create(ctx context.Context, feedback *models.Feedback) error

	// ListBySection retrieves a section's feedback, newest first
	ListBySection(ctx context.Context, sectionID, userID string) ([]models.Feedback, error)
}
