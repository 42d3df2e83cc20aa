package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
)

func TestGenerateTrimsCompletion(t *testing.T) {
	client := &scriptedClient{completion: "\n  Three solid paragraphs.  \n"}
	generator := NewContentGenerator(client, newTestRegistry(t))

	got, err := generator.Generate(context.Background(), "the topic", "Intro", models.KindProse, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Three solid paragraphs." {
		t.Errorf("content = %q", got)
	}
}

func TestGeneratePromptVariesByKind(t *testing.T) {
	client := &scriptedClient{completion: "content"}
	generator := NewContentGenerator(client, newTestRegistry(t))

	if _, err := generator.Generate(context.Background(), "the topic", "Intro", models.KindProse, ""); err != nil {
		t.Fatalf("Generate prose: %v", err)
	}
	prosePrompt := client.lastPrompt

	if _, err := generator.Generate(context.Background(), "the topic", "Intro", models.KindSlides, ""); err != nil {
		t.Fatalf("Generate slides: %v", err)
	}
	slidesPrompt := client.lastPrompt

	if prosePrompt == slidesPrompt {
		t.Error("prose and slides share one prompt")
	}
	if !strings.Contains(strings.ToLower(slidesPrompt), "bullet") {
		t.Error("slides prompt does not ask for bullets")
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	client := &scriptedClient{completion: "   \n  "}
	generator := NewContentGenerator(client, newTestRegistry(t))

	_, err := generator.Generate(context.Background(), "the topic", "Intro", models.KindProse, "")
	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}

func TestRefinePromptCarriesOriginal(t *testing.T) {
	client := &scriptedClient{completion: "rewritten"}
	generator := NewContentGenerator(client, newTestRegistry(t))

	got, err := generator.Refine(context.Background(), "the original draft", "make it formal", models.KindProse)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if got != "rewritten" {
		t.Errorf("content = %q", got)
	}
	if !strings.Contains(client.lastPrompt, "the original draft") {
		t.Error("prompt does not carry the original content")
	}
	if !strings.Contains(client.lastPrompt, "make it formal") {
		t.Error("prompt does not carry the instruction")
	}
}

func TestRefineClientFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("timeout")}
	generator := NewContentGenerator(client, newTestRegistry(t))

	_, err := generator.Refine(context.Background(), "draft", "shorter", models.KindSlides)
	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}
