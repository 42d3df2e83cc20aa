package export

import (
	"fmt"
	"strings"
	"testing"

	"draftdeck/internal/domain/models"
)

func slidesProject() *models.Project {
	return &models.Project{
		ID:     "project-1",
		UserID: "user-1",
		Title:  "Pitch Deck",
		Kind:   models.KindSlides,
		Topic:  "Series A fundraise",
	}
}

func TestRenderPptxTitleSlide(t *testing.T) {
	sections := []models.Section{{ID: "s1", ProjectID: "project-1", Title: "Problem", Position: 0}}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	slide1 := readPart(t, data, "ppt/slides/slide1.xml")
	if !strings.Contains(slide1, "Pitch Deck") {
		t.Error("title slide missing the project title")
	}
	if !strings.Contains(slide1, "Series A fundraise") {
		t.Error("title slide missing the topic subtitle")
	}
}

func TestRenderPptxOneSlidePerSection(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", ProjectID: "project-1", Title: "Problem", Position: 0, Content: strptr("- Point A")},
		{ID: "s2", ProjectID: "project-1", Title: "Solution", Position: 1, Content: strptr("- Point B")},
		{ID: "s3", ProjectID: "project-1", Title: "Ask", Position: 2},
	}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	names := archiveNames(t, data)
	slides := 0
	for _, name := range names {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") && !strings.Contains(name, "_rels") {
			slides++
		}
	}
	// Title slide plus one per section.
	if slides != 4 {
		t.Errorf("slides = %d, want 4", slides)
	}

	// Slides follow position order after the title slide.
	for i, wantTitle := range []string{"Problem", "Solution", "Ask"} {
		slide := readPart(t, data, fmt.Sprintf("ppt/slides/slide%d.xml", i+2))
		if !strings.Contains(slide, wantTitle) {
			t.Errorf("slide %d missing title %q", i+2, wantTitle)
		}
	}
}

func TestRenderPptxBullets(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", ProjectID: "project-1", Title: "Findings", Position: 0,
			Content: strptr("- Point A\n- Point B")},
	}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	slide := readPart(t, data, "ppt/slides/slide2.xml")
	if !strings.Contains(slide, "<a:t>Point A</a:t>") {
		t.Error("bullet Point A missing or still carries its dash")
	}
	if !strings.Contains(slide, "<a:t>Point B</a:t>") {
		t.Error("bullet Point B missing or still carries its dash")
	}
	if strings.Contains(slide, "<a:t>- Point A</a:t>") {
		t.Error("leading dash not stripped from bullet")
	}
}

func TestRenderPptxBulletGlyphVariants(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", ProjectID: "project-1", Title: "Findings", Position: 0,
			Content: strptr("• Alpha\n* Beta\n\n  - Gamma  ")},
	}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	slide := readPart(t, data, "ppt/slides/slide2.xml")
	for _, want := range []string{"<a:t>Alpha</a:t>", "<a:t>Beta</a:t>", "<a:t>Gamma</a:t>"} {
		if !strings.Contains(slide, want) {
			t.Errorf("slide missing %s", want)
		}
	}
}

func TestRenderPptxEmptySectionPlaceholder(t *testing.T) {
	sections := []models.Section{
		{ID: "s1", ProjectID: "project-1", Title: "Roadmap", Position: 0},
	}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	slide := readPart(t, data, "ppt/slides/slide2.xml")
	if !strings.Contains(slide, Placeholder) {
		t.Error("empty section slide missing the placeholder")
	}
}

func TestRenderPptxWidescreenGeometry(t *testing.T) {
	sections := []models.Section{{ID: "s1", ProjectID: "project-1", Title: "Problem", Position: 0}}

	data, err := Render(slidesProject(), sections)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	presentation := readPart(t, data, "ppt/presentation.xml")
	if !strings.Contains(presentation, `cx="12192000"`) || !strings.Contains(presentation, `cy="6858000"`) {
		t.Error("presentation is not 16:9 widescreen")
	}
}
