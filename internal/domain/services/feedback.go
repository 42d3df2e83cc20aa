package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// AddFeedbackRequest records a reaction on a section. Kind arrives raw and
// is validated by the service.
type AddFeedbackRequest struct {
	SectionID string  `json:"section_id"`
	UserID    string  `json:"-"`
	Kind      string  `json:"feedback_type"`
	Comment   *string `json:"comment,omitempty"`
}

// FeedbackService records and lists section feedback.
type FeedbackService interface {
	AddFeedback(ctx context.Context, req *AddFeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, sectionID, userID string) ([]models.Feedback, error)
}
