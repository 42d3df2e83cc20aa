// Package export renders a project's ordered sections into Office Open XML
// documents (.docx for prose, .pptx for slide decks). Documents are built
// as zip archives of hand-assembled OOXML parts; there is no third-party
// OOXML dependency.
package export

import (
	"sort"
	"strings"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
)

// Placeholder is emitted for sections whose content was never generated.
const Placeholder = "[Content not generated yet]"

// Media types and filename extensions per document kind.
const (
	mediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mediaTypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Render builds the binary document for a project. Sections are sorted by
// position ascending; at least one section is required.
func Render(project *models.Project, sections []models.Section) ([]byte, error) {
	if len(sections) == 0 {
		return nil, &domain.ValidationError{Message: "project has no sections to export"}
	}

	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	switch project.Kind {
	case models.KindProse:
		data, err := renderDocx(project, ordered)
		if err != nil {
			return nil, &domain.ExportError{Message: "failed to render document", Err: err}
		}
		return data, nil
	case models.KindSlides:
		data, err := renderPptx(project, ordered)
		if err != nil {
			return nil, &domain.ExportError{Message: "failed to render presentation", Err: err}
		}
		return data, nil
	default:
		return nil, &domain.ValidationError{Message: "unknown document kind " + string(project.Kind)}
	}
}

// Filename derives the download name from the project title and kind.
func Filename(project *models.Project) string {
	name := strings.ReplaceAll(project.Title, " ", "_")
	if project.Kind == models.KindSlides {
		return name + ".pptx"
	}
	return name + ".docx"
}

// MediaType returns the MIME type for a document kind.
func MediaType(kind models.DocumentKind) string {
	if kind == models.KindSlides {
		return mediaTypePptx
	}
	return mediaTypeDocx
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// esc escapes text for inclusion in an XML part.
func esc(s string) string {
	return xmlEscaper.Replace(s)
}

// contentLines splits section content into non-empty trimmed lines.
func contentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripBullet removes any leading bullet or dash glyphs from a line so the
// renderer can re-add structured bullet formatting.
func stripBullet(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "•-*")
	return strings.TrimSpace(s)
}
