package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/llm/prompts"
)

// scriptedClient returns a canned completion (or error) and records the
// prompt it was asked to complete.
type scriptedClient struct {
	completion string
	err        error
	lastPrompt string
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.lastPrompt = prompt
	if c.err != nil {
		return "", c.err
	}
	return c.completion, nil
}

func (c *scriptedClient) Name() string { return "scripted" }

func newTestRegistry(t *testing.T) *prompts.Registry {
	t.Helper()
	registry, err := prompts.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func TestOutlineParsesTitles(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		count      int
		want       []string
	}{
		{
			name:       "plain lines",
			completion: "Introduction\nMarket Overview\nConclusion",
			count:      5,
			want:       []string{"Introduction", "Market Overview", "Conclusion"},
		},
		{
			name:       "numbered lines",
			completion: "1. Introduction\n2. Market Overview\n3. Conclusion",
			count:      5,
			want:       []string{"Introduction", "Market Overview", "Conclusion"},
		},
		{
			name:       "parenthesized numbering",
			completion: "1) Introduction\n2) Conclusion",
			count:      5,
			want:       []string{"Introduction", "Conclusion"},
		},
		{
			name:       "bulleted lines",
			completion: "- Introduction\n* Market Overview\n• Conclusion",
			count:      5,
			want:       []string{"Introduction", "Market Overview", "Conclusion"},
		},
		{
			name:       "blank lines and padding",
			completion: "\n  Introduction  \n\n  Conclusion \n\n",
			count:      5,
			want:       []string{"Introduction", "Conclusion"},
		},
		{
			name:       "truncated to count",
			completion: "A\nB\nC\nD\nE\nF\nG",
			count:      3,
			want:       []string{"A", "B", "C"},
		},
		{
			name:       "title starting with a number survives",
			completion: "2024 Highlights\nOutlook",
			count:      5,
			want:       []string{"2024 Highlights", "Outlook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{completion: tt.completion}
			planner := NewOutlinePlanner(client, newTestRegistry(t))

			got, err := planner.Outline(context.Background(), "the topic", models.KindProse, tt.count)
			if err != nil {
				t.Fatalf("Outline: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("titles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutlineEmptyCompletion(t *testing.T) {
	client := &scriptedClient{completion: "\n  \n"}
	planner := NewOutlinePlanner(client, newTestRegistry(t))

	_, err := planner.Outline(context.Background(), "the topic", models.KindProse, 5)
	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}

func TestOutlineClientFailure(t *testing.T) {
	upstream := errors.New("connection refused")
	client := &scriptedClient{err: upstream}
	planner := NewOutlinePlanner(client, newTestRegistry(t))

	_, err := planner.Outline(context.Background(), "the topic", models.KindProse, 5)
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("error = %v, want ErrGeneration", err)
	}
	// The upstream cause stays reachable for logs.
	if !errors.Is(err, upstream) {
		t.Error("upstream error not wrapped")
	}
}

func TestOutlinePromptMentionsTopic(t *testing.T) {
	client := &scriptedClient{completion: "Introduction"}
	planner := NewOutlinePlanner(client, newTestRegistry(t))

	if _, err := planner.Outline(context.Background(), "solar panel economics", models.KindSlides, 4); err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if client.lastPrompt == "" {
		t.Fatal("no prompt sent")
	}
	if !strings.Contains(client.lastPrompt, "solar panel economics") {
		t.Error("prompt does not mention the topic")
	}
}
