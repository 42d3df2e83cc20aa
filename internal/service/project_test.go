package service

import (
	"context"
	"errors"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/services"
)

func newProjectFixture() (*fakeProjectRepo, *fakeSectionRepo, services.ProjectService) {
	projects := newFakeProjectRepo()
	sections := newFakeSectionRepo(projects)
	return projects, sections, NewProjectService(projects, sections, testLogger())
}

func TestCreateProject(t *testing.T) {
	tests := []struct {
		name    string
		req     services.CreateProjectRequest
		wantErr bool
	}{
		{
			name: "valid prose project",
			req:  services.CreateProjectRequest{UserID: "user-1", Title: "Report", Kind: "prose", Topic: "Q3 results"},
		},
		{
			name: "valid slides project",
			req:  services.CreateProjectRequest{UserID: "user-1", Title: "Deck", Kind: "slides", Topic: "Q3 results"},
		},
		{
			name:    "missing title",
			req:     services.CreateProjectRequest{UserID: "user-1", Kind: "prose", Topic: "Q3 results"},
			wantErr: true,
		},
		{
			name:    "missing topic",
			req:     services.CreateProjectRequest{UserID: "user-1", Title: "Report", Kind: "prose"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			req:     services.CreateProjectRequest{UserID: "user-1", Title: "Report", Kind: "spreadsheet", Topic: "Q3 results"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newProjectFixture()
			project, err := svc.CreateProject(context.Background(), &tt.req)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateProject: %v", err)
			}
			if project.ID == "" {
				t.Error("project has no ID")
			}
			if !project.Kind.Valid() {
				t.Errorf("kind = %q", project.Kind)
			}
		})
	}
}

func TestGetProjectWithSections(t *testing.T) {
	projects, sections, svc := newProjectFixture()
	project := seedProject(t, projects, "user-1", nil)
	seedSection(t, sections, project.ID, "Body", 1, nil)
	seedSection(t, sections, project.ID, "Intro", 0, nil)

	detail, err := svc.GetProject(context.Background(), project.ID, "user-1")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if len(detail.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(detail.Sections))
	}
	if detail.Sections[0].Title != "Intro" || detail.Sections[1].Title != "Body" {
		t.Errorf("section order = %q,%q, want Intro,Body",
			detail.Sections[0].Title, detail.Sections[1].Title)
	}
}

func TestGetProjectCrossUser(t *testing.T) {
	projects, _, svc := newProjectFixture()
	project := seedProject(t, projects, "user-1", nil)

	_, err := svc.GetProject(context.Background(), project.ID, "user-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-user error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	projects, _, svc := newProjectFixture()
	project := seedProject(t, projects, "user-1", []string{"Intro"})

	newTitle := "Renamed"
	updated, err := svc.UpdateProject(context.Background(), project.ID, "user-1", &services.UpdateProjectRequest{
		Title: &newTitle,
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %q", updated.Title)
	}
	// Untouched fields survive a partial update.
	if updated.Topic != project.Topic {
		t.Errorf("topic = %q, want %q", updated.Topic, project.Topic)
	}
	if len(updated.Structure) != 1 {
		t.Errorf("structure = %v", updated.Structure)
	}
}

func TestDeleteProject(t *testing.T) {
	projects, _, svc := newProjectFixture()
	project := seedProject(t, projects, "user-1", nil)

	if err := svc.DeleteProject(context.Background(), project.ID, "user-1"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := svc.GetProject(context.Background(), project.ID, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("after delete error = %v, want ErrNotFound", err)
	}
}

func TestCreateSectionDuplicatePosition(t *testing.T) {
	projects := newFakeProjectRepo()
	sections := newFakeSectionRepo(projects)
	svc := NewSectionService(projects, sections, testLogger())
	project := seedProject(t, projects, "user-1", nil)

	if _, err := svc.CreateSection(context.Background(), &services.CreateSectionRequest{
		ProjectID: project.ID,
		UserID:    "user-1",
		Title:     "Intro",
		Position:  0,
	}); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	_, err := svc.CreateSection(context.Background(), &services.CreateSectionRequest{
		ProjectID: project.ID,
		UserID:    "user-1",
		Title:     "Also position zero",
		Position:  0,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("duplicate position error = %v, want ErrValidation", err)
	}
}

func TestListSectionsMissingProject(t *testing.T) {
	projects := newFakeProjectRepo()
	sections := newFakeSectionRepo(projects)
	svc := NewSectionService(projects, sections, testLogger())

	_, err := svc.ListSections(context.Background(), "project-404", "user-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
