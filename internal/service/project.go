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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	kind, err := models.ParseDocumentKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		UserID:    req.UserID,
		Title:     req.Title,
		Kind:      kind,
		Topic:     req.Topic,
		Structure: req.Structure,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"title", project.Title,
		"kind", project.Kind,
		"user_id", project.UserID,
	)

	return project, nil
}

// GetProject retrieves a project with its ordered sections
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*services.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return &services.ProjectDetail{
		Project:  *project,
		Sections: sections,
	}, nil
}

// ListProjects retrieves all projects for a user
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projectRepo.List(ctx, userID)
}

// UpdateProject applies a partial update. Kind is immutable after
// creation: generated content and export format both hang off it.
func (s *projectService) UpdateProject(ctx context.Context, id, userID string, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Topic != nil {
		project.Topic = *req.Topic
	}
	if req.Structure != nil {
		project.Structure = *req.Structure
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", "id", project.ID, "user_id", userID)

	return project, nil
}

// DeleteProject removes a project and everything under it
func (s *projectService) DeleteProject(ctx context.Context, id, userID string) error {
	if err := s.projectRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id, "user_id", userID)

	return nil
}

// validateCreateRequest validates a project creation request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
		),
		validation.Field(&req.Kind, validation.Required),
		validation.Field(&req.Topic,
			validation.Required,
			validation.Length(1, config.MaxTopicLength),
		),
	)
}

// validateUpdateRequest validates a partial project update
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	if req.Title != nil {
		if err := validation.Validate(*req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
		); err != nil {
			return fmt.Errorf("title: %v", err)
		}
	}
	if req.Topic != nil {
		if err := validation.Validate(*req.Topic,
			validation.Required,
			validation.Length(1, config.MaxTopicLength),
		); err != nil {
			return fmt.Errorf("topic: %v", err)
		}
	}
	return nil
}
