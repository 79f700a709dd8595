package templates

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed cover_letter.html
var coverLetterTemplate string

// Resume section placeholder keys.
const (
	KeySummary     = "SUMMARY"
	KeyProjects    = "PROJECTS"
	KeyExperience  = "EXPERIENCE"
	KeySkillsTable = "SKILLS_TABLE"
	KeyCoverLetter = "COVER_LETTER"
)

// Load reads an HTML template from disk.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template %s", path),
			Cause:   err,
		}
	}
	return string(content), nil
}

// Fill replaces every {{KEY}} placeholder present in values. Substitution is
// plain string replacement: order-independent, no conditionals, no loops.
// Placeholders without a corresponding key are left untouched.
func Fill(html string, values map[string]string) string {
	for key, value := range values {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}
	return html
}

// Sections holds the generated prose that goes into the resume template.
type Sections struct {
	Summary     string
	Projects    string
	Experience  string
	SkillsTable string
}

// FillResume substitutes the identity placeholders and the generated sections
// into the resume template. Prose sections are trimmed, and multi-line
// sections have newlines converted to <br> so the prose survives HTML layout.
func FillResume(html string, identity map[string]string, sections Sections) string {
	html = Fill(html, identity)
	return Fill(html, map[string]string{
		KeySummary:     strings.TrimSpace(sections.Summary),
		KeyProjects:    asHTMLLines(sections.Projects),
		KeyExperience:  asHTMLLines(sections.Experience),
		KeySkillsTable: sections.SkillsTable,
	})
}

// BuildCoverLetter renders the cover letter body into the embedded letter
// template, with identity placeholders available to the template as well.
func BuildCoverLetter(body string, identity map[string]string) string {
	html := Fill(coverLetterTemplate, identity)
	return Fill(html, map[string]string{
		KeyCoverLetter: asHTMLLines(body),
	})
}

// asHTMLLines trims prose and converts newlines to line breaks.
func asHTMLLines(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", "<br>")
}
