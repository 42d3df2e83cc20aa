package llm

import (
	"context"
	"strings"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/llm/prompts"
)

// OutlinePlanner proposes an ordered list of section titles for a topic.
// One round trip, no retry; if the service yields fewer usable lines than
// requested the shorter list is returned as-is, never padded.
type OutlinePlanner struct {
	client  CompletionClient
	prompts *prompts.Registry
}

// NewOutlinePlanner creates an outline planner on top of a completion
// client.
func NewOutlinePlanner(client CompletionClient, registry *prompts.Registry) *OutlinePlanner {
	return &OutlinePlanner{
		client:  client,
		prompts: registry,
	}
}

// Outline returns up to count section titles for the topic, in the order
// the service produced them.
func (p *OutlinePlanner) Outline(ctx context.Context, topic string, kind models.DocumentKind, count int) ([]string, error) {
	prompt, err := p.prompts.Outline(kind, prompts.OutlineData{
		Topic: topic,
		Count: count,
	})
	if err != nil {
		return nil, &domain.GenerationError{Message: "failed to build outline prompt", Err: err}
	}

	completion, err := p.client.Complete(ctx, prompt)
	if err != nil {
		return nil, &domain.GenerationError{Message: "failed to generate outline", Err: err}
	}

	titles := parseTitles(completion, count)
	if len(titles) == 0 {
		return nil, &domain.GenerationError{Message: "failed to generate outline: empty completion"}
	}

	return titles, nil
}

// parseTitles extracts one trimmed title per non-empty line, stripping any
// numbering or bullet decoration the service added despite instructions,
// and truncates to count.
func parseTitles(completion string, count int) []string {
	var titles []string
	for _, line := range strings.Split(completion, "\n") {
		title := stripDecoration(line)
		if title == "" {
			continue
		}
		titles = append(titles, title)
		if len(titles) == count {
			break
		}
	}
	return titles
}

func stripDecoration(line string) string {
	s := strings.TrimSpace(line)

	// Leading bullet glyphs
	s = strings.TrimLeft(s, "-*•")
	s = strings.TrimSpace(s)

	// Leading enumeration like "1." or "2)"
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = s[i+1:]
	}

	return strings.TrimSpace(s)
}
