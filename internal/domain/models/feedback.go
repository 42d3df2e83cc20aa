package models

import (
	"fmt"
	"time"
)

// FeedbackKind is the closed set of feedback a user can leave on a section.
type FeedbackKind string

const (
	FeedbackLike    FeedbackKind = "like"
	FeedbackDislike FeedbackKind = "dislike"
	FeedbackComment FeedbackKind = "comment"
)

// ParseFeedbackKind validates a raw feedback kind string.
func ParseFeedbackKind(s string) (FeedbackKind, error) {
	switch FeedbackKind(s) {
	case FeedbackLike, FeedbackDislike, FeedbackComment:
		return FeedbackKind(s), nil
	default:
		return "", fmt.Errorf("unknown feedback kind %q", s)
	}
}

// Feedback is an append-only reaction to a section, independent of the
// refinement history.
type Feedback struct {
	ID        string       `json:"id" db:"id"`
	SectionID string       `json:"section_id" db:"section_id"`
	Kind      FeedbackKind `json:"kind" db:"kind"`
	Comment   *string      `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
