package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// RefineSectionRequest carries a user's rewrite instruction for a section.
type RefineSectionRequest struct {
	SectionID string `json:"section_id"`
	UserID    string `json:"-"`
	Prompt    string `json:"prompt"`
}

// RefinementService rewrites section content on instruction, recording an
// immutable before/after history entry for every successful rewrite.
type RefinementService interface {
	RefineSection(ctx context.Context, req *RefineSectionRequest) (*models.Section, error)
	ListRefinements(ctx context.Context, sectionID, userID string) ([]models.Refinement, error)
}
