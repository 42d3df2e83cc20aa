package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CreateProjectRequest carries the input for creating a project.
// Kind arrives as the raw string from the request body and is validated
// into a models.DocumentKind by the service.
type CreateProjectRequest struct {
	UserID    string   `json:"-"`
	Title     string   `json:"title"`
	Kind      string   `json:"kind"`
	Topic     string   `json:"topic"`
	Structure []string `json:"structure,omitempty"`
}

// UpdateProjectRequest carries a partial project update. Nil fields are
// left untouched.
type UpdateProjectRequest struct {
	Title     *string   `json:"title,omitempty"`
	Topic     *string   `json:"topic,omitempty"`
	Structure *[]string `json:"structure,omitempty"`
}

// ProjectDetail is a project together with its ordered sections.
type ProjectDetail struct {
	models.Project
	Sections []models.Section `json:"sections"`
}

// ProjectService defines project lifecycle operations.
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id, userID string) (*ProjectDetail, error)
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id, userID string, req *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id, userID string) error
}
