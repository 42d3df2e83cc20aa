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

// feedbackService implements the FeedbackService interface
type feedbackService struct {
	sectionRepo  repositories.SectionRepository
	feedbackRepo repositories.FeedbackRepository
	logger       *slog.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	sectionRepo repositories.SectionRepository,
	feedbackRepo repositories.FeedbackRepository,
	logger *slog.Logger,
) services.FeedbackService {
	return &feedbackService{
		sectionRepo:  sectionRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// AddFeedback records a reaction on a section the caller owns
func (s *feedbackService) AddFeedback(ctx context.Context, req *services.AddFeedbackRequest) (*models.Feedback, error) {
	kind, err := models.ParseFeedbackKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.Comment != nil {
		if err := validation.Validate(*req.Comment,
			validation.Length(0, config.MaxCommentLength),
		); err != nil {
			return nil, fmt.Errorf("%w: comment: %v", domain.ErrValidation, err)
		}
	}

	// Ownership check; a section owned by someone else reads as absent.
	if _, err := s.sectionRepo.GetByID(ctx, req.SectionID, req.UserID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		SectionID: req.SectionID,
		Kind:      kind,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info("feedback recorded",
		"id", feedback.ID,
		"section_id", req.SectionID,
		"kind", kind,
	)

	return feedback, nil
}

// ListFeedback retrieves a section's feedback, newest first
func (s *feedbackService) ListFeedback(ctx context.Context, sectionID, userID string) ([]models.Feedback, error) {
	if _, err := s.sectionRepo.GetByID(ctx, sectionID, userID); err != nil {
		return nil, err
	}

	return s.feedbackRepo.ListBySection(ctx, sectionID, userID)
}
