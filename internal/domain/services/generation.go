package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// GenerationService drives content generation for sections.
type GenerationService interface {
	// GenerateSection generates content for one section and persists it.
	GenerateSection(ctx context.Context, sectionID, userID string) (*models.Section, error)

	// GenerateAll fills every empty section of a project, materializing
	// sections from the project structure first if none exist yet.
	// It returns one outcome per attempted section, in position order;
	// a failed section never aborts the rest of the batch.
	GenerateAll(ctx context.Context, projectID, userID string) ([]models.SectionOutcome, error)
}
