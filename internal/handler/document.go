package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// DocumentHandler handles generation, refinement, feedback and export
// HTTP requests
type DocumentHandler struct {
	generationService services.GenerationService
	refinementService services.RefinementService
	feedbackService   services.FeedbackService
	exportService     services.ExportService
	logger            *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	generationService services.GenerationService,
	refinementService services.RefinementService,
	feedbackService services.FeedbackService,
	exportService services.ExportService,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		generationService: generationService,
		refinementService: refinementService,
		feedbackService:   feedbackService,
		exportService:     exportService,
		logger:            logger,
	}
}

// GenerateSectionContent generates content for one section
// POST /api/documents/generate-section-content
func (h *DocumentHandler) GenerateSectionContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SectionID string `json:"section_id"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section_id is required")
		return
	}

	section, err := h.generationService.GenerateSection(r.Context(), req.SectionID, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// RefineSectionContent rewrites a section's content per the user's
// instruction
// POST /api/documents/refine-section-content
func (h *DocumentHandler) RefineSectionContent(w http.ResponseWriter, r *http.Request) {
	var req services.RefineSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section_id is required")
		return
	}
	req.UserID = httputil.GetUserID(r)

	section, err := h.refinementService.RefineSection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// ListRefinements retrieves a section's refinement history, newest first
// GET /api/documents/refinements/{section_id}
func (h *DocumentHandler) ListRefinements(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "section_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	refinements, err := h.refinementService.ListRefinements(r.Context(), sectionID, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, refinements)
}

// AddFeedback records a reaction on a section
// POST /api/documents/feedback
func (h *DocumentHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	var req services.AddFeedbackRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section_id is required")
		return
	}
	req.UserID = httputil.GetUserID(r)

	feedback, err := h.feedbackService.AddFeedback(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, feedback)
}

// ListFeedback retrieves a section's feedback, newest first
// GET /api/documents/feedback/{section_id}
func (h *DocumentHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "section_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := h.feedbackService.ListFeedback(r.Context(), sectionID, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, feedback)
}

// GenerateAllContent fills every empty section of a project
// POST /api/documents/generate-all-content/{project_id}
func (h *DocumentHandler) GenerateAllContent(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "project_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcomes, err := h.generationService.GenerateAll(r.Context(), projectID, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"results": outcomes})
}

// Export streams a project's rendered document as an attachment
// GET /api/documents/export/{project_id}
func (h *DocumentHandler) Export(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "project_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.exportService.Export(r.Context(), projectID, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
