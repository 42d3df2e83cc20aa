package models

import "time"

// Refinement is an immutable record of one user-directed rewrite of a
// section's content: the instruction plus before/after snapshots.
// Records are append-only and only disappear when their section is deleted.
type Refinement struct {
	ID         string    `json:"id" db:"id"`
	SectionID  string    `json:"section_id" db:"section_id"`
	Prompt     string    `json:"prompt" db:"prompt"`
	OldContent string    `json:"old_content" db:"old_content"`
	NewContent string    `json:"new_content" db:"new_content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
