package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"strings"

	"draftdeck/internal/domain/models"
)

// renderDocx assembles a WordprocessingML document: the project title as a
// centered top-level heading, a topic line, then one heading plus body per
// section in order.
func renderDocx(project *models.Project, sections []models.Section) ([]byte, error) {
	parts := map[string]string{
		"[Content_Types].xml":          docxContentTypes,
		"_rels/.rels":                  docxRootRels,
		"word/_rels/document.xml.rels": docxDocumentRels,
		"word/styles.xml":              docxStyles,
		"word/document.xml":            buildDocumentXML(project, sections),
	}

	return writeArchive(parts)
}

// writeArchive packs named OOXML parts into a zip in memory.
func writeArchive(parts map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// [Content_Types].xml must exist; order of the rest is irrelevant but
	// a stable order keeps output deterministic.
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}

func buildDocumentXML(project *models.Project, sections []models.Section) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Title heading, centered like the original layout
	sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr>`)
	writeRun(&sb, project.Title)
	sb.WriteString(`</w:p>`)

	// Topic line and a blank spacer
	writeParagraph(&sb, "Topic: "+project.Topic)
	sb.WriteString(emptyParagraph)

	for _, section := range sections {
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>`)
		writeRun(&sb, section.Title)
		sb.WriteString(`</w:p>`)

		if section.HasContent() {
			for _, line := range strings.Split(*section.Content, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				writeParagraph(&sb, line)
			}
		} else {
			writeParagraph(&sb, Placeholder)
		}

		sb.WriteString(emptyParagraph)
	}

	sb.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraph(sb *strings.Builder, text string) {
	sb.WriteString(`<w:p>`)
	writeRun(sb, text)
	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, text string) {
	sb.WriteString(`<w:r><w:t xml:space="preserve">`)
	sb.WriteString(esc(text))
	sb.WriteString(`</w:t></w:r>`)
}

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	emptyParagraph = `<w:p/>`

	docxContentTypes = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
		`</Types>`

	docxRootRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	docxDocumentRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
		`</Relationships>`

	docxStyles = xmlHeader + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
		`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/>` +
		`<w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>` +
		`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
		`</w:styles>`
)
