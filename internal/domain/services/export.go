package services

import "context"

// ExportResult is a rendered document ready to stream to the client.
type ExportResult struct {
	Data      []byte
	Filename  string
	MediaType string
}

// ExportService renders a project's ordered sections into a binary
// document matching the project's declared kind.
type ExportService interface {
	Export(ctx context.Context, projectID, userID string) (*ExportResult, error)
}
