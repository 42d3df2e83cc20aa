package service

import (
	"context"
	"log/slog"

	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/export"
)

// exportService implements the ExportService interface
type exportService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.ExportService {
	return &exportService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Export renders a project into its binary document. Sections with no
// content are exported with a placeholder; a project with no sections at
// all cannot be exported.
func (s *exportService) Export(ctx context.Context, projectID, userID string) (*services.ExportResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	data, err := export.Render(project, sections)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project exported",
		"project_id", projectID,
		"kind", project.Kind,
		"sections", len(sections),
		"bytes", len(data),
	)

	return &services.ExportResult{
		Data:      data,
		Filename:  export.Filename(project),
		MediaType: export.MediaType(project.Kind),
	}, nil
}
