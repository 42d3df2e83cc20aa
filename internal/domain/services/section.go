package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CreateSectionRequest carries the input for creating a single section by
// hand, outside the bulk materialization path.
type CreateSectionRequest struct {
	ProjectID string `json:"-"`
	UserID    string `json:"-"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
}

// SectionService defines section-level operations.
type SectionService interface {
	CreateSection(ctx context.Context, req *CreateSectionRequest) (*models.Section, error)
	ListSections(ctx context.Context, projectID, userID string) ([]models.Section, error)
}
