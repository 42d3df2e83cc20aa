package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// sectionService implements the SectionService interface
type sectionService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewSectionService creates a new section service
func NewSectionService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.SectionService {
	return &sectionService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// CreateSection adds a single section to a project at an explicit position.
// The position must be free; the repository rejects duplicates.
func (s *sectionService) CreateSection(ctx context.Context, req *services.CreateSectionRequest) (*models.Section, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Confirm the project exists and belongs to the caller before
	// touching sections.
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.UserID); err != nil {
		return nil, err
	}

	section := &models.Section{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Position:  req.Position,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	s.logger.Info("section created",
		"id", section.ID,
		"project_id", req.ProjectID,
		"position", section.Position,
	)

	return section, nil
}

// ListSections retrieves a project's sections in position order
func (s *sectionService) ListSections(ctx context.Context, projectID, userID string) ([]models.Section, error) {
	// A miss on the project must read as not-found rather than an empty
	// list, so resolve the project first.
	if _, err := s.projectRepo.GetByID(ctx, projectID, userID); err != nil {
		return nil, err
	}

	return s.sectionRepo.ListByProject(ctx, projectID, userID)
}

// validateCreateRequest validates a section creation request
func (s *sectionService) validateCreateRequest(req *services.CreateSectionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
		),
		validation.Field(&req.Position, validation.Min(0)),
	)
}
