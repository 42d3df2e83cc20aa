package models

import (
	"strings"
	"time"
)

// Section is one titled, ordered unit of content within a project:
// a heading-and-body for prose, one slide for decks.
//
// Position is unique within a project and defines presentation and export
// order. Positions are assigned once when sections are created from the
// project structure and are never renumbered afterwards.
type Section struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	Position  int       `json:"position" db:"position"`
	Content   *string   `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasContent reports whether the section holds generated content.
// Whitespace-only content counts as empty.
func (s *Section) HasContent() bool {
	return s.Content != nil && strings.TrimSpace(*s.Content) != ""
}

// SectionOutcome is the per-section result of a bulk generation run.
// A failed section is data in the batch report, not a fault that aborts it.
type SectionOutcome struct {
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}
