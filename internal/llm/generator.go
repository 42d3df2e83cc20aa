package llm

import (
	"context"
	"strings"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/llm/prompts"
)

// ContentGenerator produces and rewrites section content through a
// CompletionClient. It builds kind-specific prompts and returns the
// trimmed completion verbatim; no retries, no post-processing beyond
// whitespace trimming.
type ContentGenerator struct {
	client  CompletionClient
	prompts *prompts.Registry
}

// NewContentGenerator creates a content generator on top of a completion
// client.
func NewContentGenerator(client CompletionClient, registry *prompts.Registry) *ContentGenerator {
	return &ContentGenerator{
		client:  client,
		prompts: registry,
	}
}

// Generate produces content for one section: 3-4 paragraphs for prose,
// 4-6 bullet lines for slides. The section title is never echoed back.
func (g *ContentGenerator) Generate(ctx context.Context, topic, sectionTitle string, kind models.DocumentKind, extraContext string) (string, error) {
	prompt, err := g.prompts.Generate(kind, prompts.GenerateData{
		Topic:        topic,
		SectionTitle: sectionTitle,
		Context:      extraContext,
	})
	if err != nil {
		return "", &domain.GenerationError{Message: "failed to build generation prompt", Err: err}
	}

	return g.complete(ctx, prompt, "failed to generate content")
}

// Refine rewrites existing content per the user's instruction, preserving
// the original shape (paragraphs vs. bullets).
func (g *ContentGenerator) Refine(ctx context.Context, originalContent, instruction string, kind models.DocumentKind) (string, error) {
	prompt, err := g.prompts.Refine(prompts.RefineData{
		OriginalContent: originalContent,
		Prompt:          instruction,
		Format:          formatName(kind),
	})
	if err != nil {
		return "", &domain.GenerationError{Message: "failed to build refinement prompt", Err: err}
	}

	return g.complete(ctx, prompt, "failed to refine content")
}

func (g *ContentGenerator) complete(ctx context.Context, prompt, failure string) (string, error) {
	completion, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return "", &domain.GenerationError{Message: failure, Err: err}
	}

	text := strings.TrimSpace(completion)
	if text == "" {
		return "", &domain.GenerationError{Message: failure + ": empty completion"}
	}

	return text, nil
}

// formatName is the human word for the shape a refinement must preserve.
func formatName(kind models.DocumentKind) string {
	if kind == models.KindSlides {
		return "bullet points"
	}
	return "paragraphs"
}
