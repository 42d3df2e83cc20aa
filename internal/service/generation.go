package service

import (
	"context"
	"log/slog"
	"time"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// ContentGenerator produces and rewrites section content. Satisfied by
// llm.ContentGenerator.
type ContentGenerator interface {
	Generate(ctx context.Context, topic, sectionTitle string, kind models.DocumentKind, extraContext string) (string, error)
	Refine(ctx context.Context, originalContent, instruction string, kind models.DocumentKind) (string, error)
}

// generationService implements the GenerationService interface
type generationService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	generator   ContentGenerator
	logger      *slog.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	generator ContentGenerator,
	logger *slog.Logger,
) services.GenerationService {
	return &generationService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		generator:   generator,
		logger:      logger,
	}
}

// GenerateSection generates content for one section and persists it.
// Existing content is overwritten; regeneration is an explicit user action
// here, unlike in the bulk path.
func (s *generationService) GenerateSection(ctx context.Context, sectionID, userID string) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, section.ProjectID, userID)
	if err != nil {
		return nil, err
	}

	content, err := s.generator.Generate(ctx, project.Topic, section.Title, project.Kind, "")
	if err != nil {
		return nil, err
	}

	if err := s.sectionRepo.UpdateContent(ctx, section.ID, userID, content); err != nil {
		return nil, err
	}

	section.Content = &content
	section.UpdatedAt = time.Now()

	s.logger.Info("section content generated",
		"section_id", section.ID,
		"project_id", project.ID,
		"chars", len(content),
	)

	return section, nil
}

// GenerateAll fills every empty section of a project. Sections are
// materialized from the project structure first if the project has none.
// Generation runs serially in position order; a failed section is recorded
// in its outcome and the batch moves on. Already-filled sections are
// skipped, so re-running the batch is safe.
func (s *generationService) GenerateAll(ctx context.Context, projectID, userID string) ([]models.SectionOutcome, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	if len(sections) == 0 {
		sections, err = s.materializeSections(ctx, project)
		if err != nil {
			return nil, err
		}
	}

	outcomes := make([]models.SectionOutcome, 0, len(sections))
	for i := range sections {
		section := &sections[i]
		if section.HasContent() {
			continue
		}

		outcome := models.SectionOutcome{
			SectionID: section.ID,
			Title:     section.Title,
			Success:   true,
		}

		content, err := s.generator.Generate(ctx, project.Topic, section.Title, project.Kind, "")
		if err == nil {
			err = s.sectionRepo.UpdateContent(ctx, section.ID, userID, content)
		}
		if err != nil {
			outcome.Success = false
			outcome.Error = err.Error()
			s.logger.Warn("section generation failed",
				"section_id", section.ID,
				"project_id", projectID,
				"error", err,
			)
		}

		outcomes = append(outcomes, outcome)
	}

	s.logger.Info("bulk generation finished",
		"project_id", projectID,
		"attempted", len(outcomes),
	)

	return outcomes, nil
}

// materializeSections creates one empty section per structure entry, with
// position equal to the entry's index. The structure must have been
// planned (or supplied) first.
func (s *generationService) materializeSections(ctx context.Context, project *models.Project) ([]models.Section, error) {
	if len(project.Structure) == 0 {
		return nil, &domain.PreconditionError{
			Message: "project has no sections and no structure to create them from",
		}
	}

	sections := make([]models.Section, 0, len(project.Structure))
	for i, title := range project.Structure {
		section := models.Section{
			ProjectID: project.ID,
			Title:     title,
			Position:  i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.sectionRepo.Create(ctx, &section); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	s.logger.Info("sections materialized",
		"project_id", project.ID,
		"count", len(sections),
	)

	return sections, nil
}
