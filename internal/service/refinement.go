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

// refinementService implements the RefinementService interface
type refinementService struct {
	projectRepo    repositories.ProjectRepository
	sectionRepo    repositories.SectionRepository
	refinementRepo repositories.RefinementRepository
	txManager      repositories.TransactionManager
	generator      ContentGenerator
	logger         *slog.Logger
}

// NewRefinementService creates a new refinement service
func NewRefinementService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	refinementRepo repositories.RefinementRepository,
	txManager repositories.TransactionManager,
	generator ContentGenerator,
	logger *slog.Logger,
) services.RefinementService {
	return &refinementService{
		projectRepo:    projectRepo,
		sectionRepo:    sectionRepo,
		refinementRepo: refinementRepo,
		txManager:      txManager,
		generator:      generator,
		logger:         logger,
	}
}

// RefineSection rewrites a section's content per the user's instruction.
//
// The section must already have content; refinement never invents a first
// draft. The external rewrite happens outside the transaction, then the
// history insert and content update commit together. Before writing, the
// section is re-read under a row lock and its content compared to the
// snapshot taken before the rewrite; a mismatch means someone else wrote
// in between, and the whole refinement is rejected as a conflict rather
// than silently clobbering their change.
func (s *refinementService) RefineSection(ctx context.Context, req *services.RefineSectionRequest) (*models.Section, error) {
	if err := s.validateRefineRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	section, err := s.sectionRepo.GetByID(ctx, req.SectionID, req.UserID)
	if err != nil {
		return nil, err
	}

	if !section.HasContent() {
		return nil, &domain.PreconditionError{
			Message: "section has no content to refine; generate content first",
		}
	}

	project, err := s.projectRepo.GetByID(ctx, section.ProjectID, req.UserID)
	if err != nil {
		return nil, err
	}

	oldContent := *section.Content
	newContent, err := s.generator.Refine(ctx, oldContent, req.Prompt, project.Kind)
	if err != nil {
		return nil, err
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		current, err := s.sectionRepo.GetByIDForUpdate(txCtx, req.SectionID, req.UserID)
		if err != nil {
			return err
		}

		if current.Content == nil || *current.Content != oldContent {
			return &domain.ConflictError{
				Message:      "section content changed while the refinement was running",
				ResourceType: "section",
				ResourceID:   req.SectionID,
			}
		}

		refinement := &models.Refinement{
			SectionID:  req.SectionID,
			Prompt:     req.Prompt,
			OldContent: oldContent,
			NewContent: newContent,
			CreatedAt:  time.Now(),
		}
		if err := s.refinementRepo.Create(txCtx, refinement); err != nil {
			return err
		}

		return s.sectionRepo.UpdateContent(txCtx, req.SectionID, req.UserID, newContent)
	})
	if err != nil {
		return nil, err
	}

	section.Content = &newContent
	section.UpdatedAt = time.Now()

	s.logger.Info("section refined",
		"section_id", req.SectionID,
		"project_id", section.ProjectID,
	)

	return section, nil
}

// ListRefinements retrieves a section's refinement history, newest first
func (s *refinementService) ListRefinements(ctx context.Context, sectionID, userID string) ([]models.Refinement, error) {
	// Resolve the section first so a miss reads as not-found rather than
	// an empty history.
	if _, err := s.sectionRepo.GetByID(ctx, sectionID, userID); err != nil {
		return nil, err
	}

	return s.refinementRepo.ListBySection(ctx, sectionID, userID)
}

// validateRefineRequest validates a refinement request
func (s *refinementService) validateRefineRequest(req *services.RefineSectionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Prompt,
			validation.Required,
			validation.Length(1, config.MaxInstructionLength),
		),
	)
}
