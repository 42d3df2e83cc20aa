package models

import (
	"fmt"
	"time"
)

// DocumentKind is the closed set of document shapes a project can declare.
// It decides both the generation prompts (paragraphs vs. bullets) and the
// export format (.docx vs. .pptx).
type DocumentKind string

const (
	KindProse  DocumentKind = "prose"
	KindSlides DocumentKind = "slides"
)

// ParseDocumentKind validates a raw kind string. Unknown kinds are an
// input error, never a silent fall-through.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch DocumentKind(s) {
	case KindProse, KindSlides:
		return DocumentKind(s), nil
	default:
		return "", fmt.Errorf("unknown document kind %q (expected %q or %q)", s, KindProse, KindSlides)
	}
}

// Valid reports whether the kind is one of the declared variants.
func (k DocumentKind) Valid() bool {
	return k == KindProse || k == KindSlides
}

// Project is one user's request for a generated document.
// Structure holds the outline titles proposed by the planner; it is set
// once and consumed verbatim when sections are materialized.
type Project struct {
	ID        string       `json:"id" db:"id"`
	UserID    string       `json:"user_id" db:"user_id"`
	Title     string       `json:"title" db:"title"`
	Kind      DocumentKind `json:"kind" db:"kind"`
	Topic     string       `json:"topic" db:"topic"`
	Structure []string     `json:"structure,omitempty" db:"structure"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}
