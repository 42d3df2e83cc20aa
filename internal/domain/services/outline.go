package services

import "context"

// PlanOutlineRequest asks the planner for section titles for a project's
// topic. Count defaults when zero; the planner may return fewer titles
// than requested but never pads.
type PlanOutlineRequest struct {
	ProjectID string `json:"-"`
	UserID    string `json:"-"`
	Count     int    `json:"count,omitempty"`
}

// OutlineService proposes an outline for a project and persists it as the
// project's structure.
type OutlineService interface {
	PlanOutline(ctx context.Context, req *PlanOutlineRequest) ([]string, error)
}
