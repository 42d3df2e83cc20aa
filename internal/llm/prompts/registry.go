// Package prompts holds the prompt templates sent to the generative text
// service, loaded from an embedded YAML file so wording changes never touch
// Go code.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"draftdeck/internal/domain/models"
)

//go:embed templates/prompts.yaml
var templateFiles embed.FS

// promptFile mirrors the YAML layout. generate/outline are keyed by
// document kind; refine is shared and parameterized by format.
type promptFile struct {
	Generate map[string]string `yaml:"generate"`
	Outline  map[string]string `yaml:"outline"`
	Refine   string            `yaml:"refine"`
}

// GenerateData feeds the content generation templates.
type GenerateData struct {
	Topic        string
	SectionTitle string
	Context      string
}

// OutlineData feeds the outline planning templates.
type OutlineData struct {
	Topic string
	Count int
}

// RefineData feeds the refinement template. Format names the shape to
// preserve ("paragraphs" or "bullet points").
type RefineData struct {
	OriginalContent string
	Prompt          string
	Format          string
}

// Registry holds the parsed prompt templates.
type Registry struct {
	generate map[models.DocumentKind]*template.Template
	outline  map[models.DocumentKind]*template.Template
	refine   *template.Template
}

// NewRegistry loads and parses the embedded prompt templates.
func NewRegistry() (*Registry, error) {
	data, err := templateFiles.ReadFile("templates/prompts.yaml")
	if err != nil {
		return nil, fmt.Errorf("read prompt templates: %w", err)
	}

	var file promptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal prompt templates: %w", err)
	}

	r := &Registry{
		generate: make(map[models.DocumentKind]*template.Template),
		outline:  make(map[models.DocumentKind]*template.Template),
	}

	for name, text := range file.Generate {
		kind, err := models.ParseDocumentKind(name)
		if err != nil {
			return nil, fmt.Errorf("generate templates: %w", err)
		}
		tmpl, err := template.New("generate-" + name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse generate template %q: %w", name, err)
		}
		r.generate[kind] = tmpl
	}

	for name, text := range file.Outline {
		kind, err := models.ParseDocumentKind(name)
		if err != nil {
			return nil, fmt.Errorf("outline templates: %w", err)
		}
		tmpl, err := template.New("outline-" + name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse outline template %q: %w", name, err)
		}
		r.outline[kind] = tmpl
	}

	r.refine, err = template.New("refine").Parse(file.Refine)
	if err != nil {
		return nil, fmt.Errorf("parse refine template: %w", err)
	}

	for _, kind := range []models.DocumentKind{models.KindProse, models.KindSlides} {
		if _, ok := r.generate[kind]; !ok {
			return nil, fmt.Errorf("missing generate template for kind %q", kind)
		}
		if _, ok := r.outline[kind]; !ok {
			return nil, fmt.Errorf("missing outline template for kind %q", kind)
		}
	}

	return r, nil
}

// Generate renders the content generation prompt for a kind.
func (r *Registry) Generate(kind models.DocumentKind, data GenerateData) (string, error) {
	tmpl, ok := r.generate[kind]
	if !ok {
		return "", fmt.Errorf("no generate template for kind %q", kind)
	}
	return render(tmpl, data)
}

// Outline renders the outline planning prompt for a kind.
func (r *Registry) Outline(kind models.DocumentKind, data OutlineData) (string, error) {
	tmpl, ok := r.outline[kind]
	if !ok {
		return "", fmt.Errorf("no outline template for kind %q", kind)
	}
	return render(tmpl, data)
}

// Refine renders the refinement prompt.
func (r *Registry) Refine(data RefineData) (string, error) {
	return render(r.refine, data)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}
