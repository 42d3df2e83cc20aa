package service

import (
	"context"
	"errors"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/services"
)

func newRefinementFixture(t *testing.T) (*fakeProjectRepo, *fakeSectionRepo, *fakeRefinementRepo, *fakeGenerator, services.RefinementService) {
	t.Helper()
	projects := newFakeProjectRepo()
	sections := newFakeSectionRepo(projects)
	refinements := &fakeRefinementRepo{}
	generator := &fakeGenerator{}
	svc := NewRefinementService(projects, sections, refinements, &fakeTxManager{}, generator, testLogger())
	return projects, sections, refinements, generator, svc
}

func strptr(s string) *string { return &s }

func TestRefineSection(t *testing.T) {
	projects, sections, refinements, generator, svc := newRefinementFixture(t)
	project := seedProject(t, projects, "user-1", nil)
	section := seedSection(t, sections, project.ID, "Intro", 0, strptr("first draft"))

	generator.refineFn = func(originalContent, instruction string) (string, error) {
		if originalContent != "first draft" {
			t.Errorf("refine got original %q", originalContent)
		}
		if instruction != "make it shorter" {
			t.Errorf("refine got instruction %q", instruction)
		}
		return "second draft", nil
	}

	got, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
		SectionID: section.ID,
		UserID:    "user-1",
		Prompt:    "make it shorter",
	})
	if err != nil {
		t.Fatalf("RefineSection: %v", err)
	}
	if got.Content == nil || *got.Content != "second draft" {
		t.Errorf("content = %v, want second draft", got.Content)
	}

	stored, _ := sections.GetByID(context.Background(), section.ID, "user-1")
	if *stored.Content != "second draft" {
		t.Errorf("persisted content = %q", *stored.Content)
	}

	history, err := svc.ListRefinements(context.Background(), section.ID, "user-1")
	if err != nil {
		t.Fatalf("ListRefinements: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(history))
	}
	entry := history[0]
	if entry.OldContent != "first draft" || entry.NewContent != "second draft" {
		t.Errorf("history = old %q new %q", entry.OldContent, entry.NewContent)
	}
	if entry.Prompt != "make it shorter" {
		t.Errorf("history prompt = %q", entry.Prompt)
	}
	if len(refinements.refinements) != 1 {
		t.Errorf("stored history entries = %d, want 1", len(refinements.refinements))
	}
}

func TestRefineSectionEmptyContent(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{"nil content", nil},
		{"empty string", strptr("")},
		{"whitespace only", strptr("  \n\t ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, sections, refinements, generator, svc := newRefinementFixture(t)
			project := seedProject(t, projects, "user-1", nil)
			section := seedSection(t, sections, project.ID, "Intro", 0, tt.content)

			var called bool
			generator.refineFn = func(string, string) (string, error) {
				called = true
				return "should not happen", nil
			}

			_, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
				SectionID: section.ID,
				UserID:    "user-1",
				Prompt:    "polish it",
			})
			if !errors.Is(err, domain.ErrPrecondition) {
				t.Errorf("error = %v, want ErrPrecondition", err)
			}
			if called {
				t.Error("rewrite was attempted on empty content")
			}
			if len(refinements.refinements) != 0 {
				t.Error("history written despite precondition failure")
			}
		})
	}
}

func TestRefineSectionConflict(t *testing.T) {
	projects, sections, refinements, generator, svc := newRefinementFixture(t)
	project := seedProject(t, projects, "user-1", nil)
	section := seedSection(t, sections, project.ID, "Intro", 0, strptr("first draft"))

	// Another writer lands while the rewrite is in flight.
	generator.refineFn = func(string, string) (string, error) {
		sections.setContent(section.ID, "someone else's draft")
		return "refined draft", nil
	}

	_, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
		SectionID: section.ID,
		UserID:    "user-1",
		Prompt:    "polish it",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}

	var conflictErr *domain.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatal("error is not a *domain.ConflictError")
	}
	if conflictErr.ResourceID != section.ID {
		t.Errorf("conflict resource = %q, want %q", conflictErr.ResourceID, section.ID)
	}

	// The interleaved write survives, and no history is recorded.
	stored, _ := sections.GetByID(context.Background(), section.ID, "user-1")
	if *stored.Content != "someone else's draft" {
		t.Errorf("content = %q, want the concurrent writer's", *stored.Content)
	}
	if len(refinements.refinements) != 0 {
		t.Error("history written despite conflict")
	}
}

func TestRefineSectionGenerationFailure(t *testing.T) {
	projects, sections, refinements, generator, svc := newRefinementFixture(t)
	project := seedProject(t, projects, "user-1", nil)
	section := seedSection(t, sections, project.ID, "Intro", 0, strptr("first draft"))

	generator.refineFn = func(string, string) (string, error) {
		return "", &domain.GenerationError{Message: "provider unavailable"}
	}

	_, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
		SectionID: section.ID,
		UserID:    "user-1",
		Prompt:    "polish it",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}

	stored, _ := sections.GetByID(context.Background(), section.ID, "user-1")
	if *stored.Content != "first draft" {
		t.Errorf("content = %q, want untouched first draft", *stored.Content)
	}
	if len(refinements.refinements) != 0 {
		t.Error("history written despite generation failure")
	}
}

func TestRefineSectionValidation(t *testing.T) {
	projects, sections, _, _, svc := newRefinementFixture(t)
	project := seedProject(t, projects, "user-1", nil)
	section := seedSection(t, sections, project.ID, "Intro", 0, strptr("first draft"))

	_, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
		SectionID: section.ID,
		UserID:    "user-1",
		Prompt:    "",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestListRefinementsCrossUser(t *testing.T) {
	projects, sections, _, generator, svc := newRefinementFixture(t)
	project := seedProject(t, projects, "user-1", nil)
	section := seedSection(t, sections, project.ID, "Intro", 0, strptr("first draft"))

	generator.refineFn = func(string, string) (string, error) { return "second draft", nil }
	if _, err := svc.RefineSection(context.Background(), &services.RefineSectionRequest{
		SectionID: section.ID,
		UserID:    "user-1",
		Prompt:    "polish it",
	}); err != nil {
		t.Fatalf("RefineSection: %v", err)
	}

	_, err := svc.ListRefinements(context.Background(), section.ID, "user-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-user error = %v, want ErrNotFound", err)
	}
}
