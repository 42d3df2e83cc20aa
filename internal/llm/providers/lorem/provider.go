// Package lorem is a mock completion provider that generates lorem ipsum
// text. Used for development and tests without requiring real API keys.
package lorem

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"
)

// Provider generates lorem ipsum completions shaped roughly like what the
// prompt asks for, so the rest of the pipeline behaves realistically.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// Complete returns lorem ipsum text. Outline prompts get one short title
// per line, slide prompts get bullet lines, everything else gets
// paragraphs.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case strings.Contains(prompt, "One title per line"):
		return p.lines(5, ""), nil
	case strings.Contains(prompt, "bullet point"):
		return p.lines(5, "- "), nil
	default:
		return p.paragraphs(3), nil
	}
}

func (p *Provider) lines(n int, prefix string) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(prefix)
		sb.WriteString(p.generator.Sentence(3, 6))
	}
	return sb.String()
}

func (p *Provider) paragraphs(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(p.generator.Paragraph(3, 5))
	}
	return sb.String()
}
