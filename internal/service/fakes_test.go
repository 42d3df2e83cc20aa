package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// testLogger discards everything; tests assert on behavior, not logs.
func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeProjectRepo is an in-memory ProjectRepository. Lookups are scoped to
// (id, userID) like the real one, so cross-user access reads as not found.
type fakeProjectRepo struct {
	projects map[string]*models.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	r.nextID++
	project.ID = fmt.Sprintf("project-%d", r.nextID)
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, userID string) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok || project.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	clone := *project
	return &clone, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, userID string) ([]models.Project, error) {
	projects := []models.Project{}
	for _, p := range r.projects {
		if p.UserID == userID {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	existing, ok := r.projects[project.ID]
	if !ok || existing.UserID != project.UserID {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, userID string) error {
	existing, ok := r.projects[id]
	if !ok || existing.UserID != userID {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

// fakeSectionRepo is an in-memory SectionRepository backed by the project
// repo for ownership checks. It enforces the unique position constraint.
type fakeSectionRepo struct {
	projects *fakeProjectRepo
	sections map[string]*models.Section
	nextID   int
}

func newFakeSectionRepo(projects *fakeProjectRepo) *fakeSectionRepo {
	return &fakeSectionRepo{
		projects: projects,
		sections: make(map[string]*models.Section),
	}
}

func (r *fakeSectionRepo) owner(projectID string) string {
	if p, ok := r.projects.projects[projectID]; ok {
		return p.UserID
	}
	return ""
}

func (r *fakeSectionRepo) Create(ctx context.Context, section *models.Section) error {
	if _, ok := r.projects.projects[section.ProjectID]; !ok {
		return fmt.Errorf("project %s: %w", section.ProjectID, domain.ErrNotFound)
	}
	for _, s := range r.sections {
		if s.ProjectID == section.ProjectID && s.Position == section.Position {
			return fmt.Errorf("position %d already used in project %s: %w",
				section.Position, section.ProjectID, domain.ErrValidation)
		}
	}
	r.nextID++
	section.ID = fmt.Sprintf("section-%d", r.nextID)
	clone := *section
	r.sections[section.ID] = &clone
	return nil
}

func (r *fakeSectionRepo) GetByID(ctx context.Context, id, userID string) (*models.Section, error) {
	section, ok := r.sections[id]
	if !ok || r.owner(section.ProjectID) != userID {
		return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	clone := *section
	if section.Content != nil {
		content := *section.Content
		clone.Content = &content
	}
	return &clone, nil
}

func (r *fakeSectionRepo) GetByIDForUpdate(ctx context.Context, id, userID string) (*models.Section, error) {
	return r.GetByID(ctx, id, userID)
}

func (r *fakeSectionRepo) ListByProject(ctx context.Context, projectID, userID string) ([]models.Section, error) {
	sections := []models.Section{}
	for _, s := range r.sections {
		if s.ProjectID == projectID && r.owner(projectID) == userID {
			sections = append(sections, *s)
		}
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})
	return sections, nil
}

func (r *fakeSectionRepo) UpdateContent(ctx context.Context, id, userID, content string) error {
	section, ok := r.sections[id]
	if !ok || r.owner(section.ProjectID) != userID {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	c := content
	section.Content = &c
	section.UpdatedAt = time.Now()
	return nil
}

// setContent writes section content directly, bypassing ownership checks.
// Tests use it to simulate concurrent writers.
func (r *fakeSectionRepo) setContent(id, content string) {
	if section, ok := r.sections[id]; ok {
		c := content
		section.Content = &c
	}
}

// fakeRefinementRepo is an in-memory append-only RefinementRepository.
type fakeRefinementRepo struct {
	refinements []models.Refinement
	nextID      int
}

func (r *fakeRefinementRepo) Create(ctx context.Context, refinement *models.Refinement) error {
	r.nextID++
	refinement.ID = fmt.Sprintf("refinement-%d", r.nextID)
	r.refinements = append(r.refinements, *refinement)
	return nil
}

func (r *fakeRefinementRepo) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Refinement, error) {
	out := []models.Refinement{}
	for i := len(r.refinements) - 1; i >= 0; i-- {
		if r.refinements[i].SectionID == sectionID {
			out = append(out, r.refinements[i])
		}
	}
	return out, nil
}

// fakeFeedbackRepo is an in-memory append-only FeedbackRepository.
type fakeFeedbackRepo struct {
	entries []models.Feedback
	nextID  int
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	r.nextID++
	feedback.ID = fmt.Sprintf("feedback-%d", r.nextID)
	r.entries = append(r.entries, *feedback)
	return nil
}

func (r *fakeFeedbackRepo) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Feedback, error) {
	out := []models.Feedback{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].SectionID == sectionID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

// fakeTxManager runs the function directly; the fakes have no real
// transactions to coordinate.
type fakeTxManager struct{}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeGenerator is a scripted ContentGenerator.
type fakeGenerator struct {
	generateFn func(topic, sectionTitle string) (string, error)
	refineFn   func(originalContent, instruction string) (string, error)
}

func (g *fakeGenerator) Generate(ctx context.Context, topic, sectionTitle string, kind models.DocumentKind, extraContext string) (string, error) {
	if g.generateFn != nil {
		return g.generateFn(topic, sectionTitle)
	}
	return "generated content for " + sectionTitle, nil
}

func (g *fakeGenerator) Refine(ctx context.Context, originalContent, instruction string, kind models.DocumentKind) (string, error) {
	if g.refineFn != nil {
		return g.refineFn(originalContent, instruction)
	}
	return "refined: " + originalContent, nil
}

// fakePlanner is a scripted OutlinePlanner.
type fakePlanner struct {
	titles []string
	err    error
}

func (p *fakePlanner) Outline(ctx context.Context, topic string, kind models.DocumentKind, count int) ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.titles) > count {
		return p.titles[:count], nil
	}
	return p.titles, nil
}
