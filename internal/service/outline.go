package service

import (
	"context"
	"log/slog"
	"time"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// OutlinePlanner proposes section titles for a topic. Satisfied by
// llm.OutlinePlanner.
type OutlinePlanner interface {
	Outline(ctx context.Context, topic string, kind models.DocumentKind, count int) ([]string, error)
}

// outlineService implements the OutlineService interface
type outlineService struct {
	projectRepo repositories.ProjectRepository
	planner     OutlinePlanner
	logger      *slog.Logger
}

// NewOutlineService creates a new outline service
func NewOutlineService(
	projectRepo repositories.ProjectRepository,
	planner OutlinePlanner,
	logger *slog.Logger,
) services.OutlineService {
	return &outlineService{
		projectRepo: projectRepo,
		planner:     planner,
		logger:      logger,
	}
}

// PlanOutline asks the planner for section titles and persists them as the
// project's structure. Re-planning overwrites the previous structure but
// never touches sections that were already materialized.
func (s *outlineService) PlanOutline(ctx context.Context, req *services.PlanOutlineRequest) ([]string, error) {
	count := req.Count
	if count <= 0 {
		count = config.DefaultOutlineSections
	}
	if count > config.MaxOutlineSections {
		return nil, &domain.ValidationError{
			Message: "outline section count exceeds the maximum",
		}
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return nil, err
	}

	titles, err := s.planner.Outline(ctx, project.Topic, project.Kind, count)
	if err != nil {
		return nil, err
	}

	project.Structure = titles
	project.UpdatedAt = time.Now()
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("outline planned",
		"project_id", project.ID,
		"requested", count,
		"returned", len(titles),
	)

	return titles, nil
}
