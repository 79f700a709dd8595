// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the extracted job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.CompanyName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.JobTitle))
	sb.WriteString("\n")

	writeList(&sb, "Required Skills", profile.RequiredSkills)
	writeList(&sb, "Preferred Skills", profile.PreferredSkills)
	writeList(&sb, "Tools", profile.Tools)
	writeList(&sb, "Keywords", profile.Keywords)

	p.printBox("EXTRACTED JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilteredSkills outputs the retained skills per category.
func (p *Printer) PrintFilteredSkills(filtered *types.SkillsCatalog) {
	if filtered == nil || len(filtered.Categories) == 0 {
		p.printBox("FILTERED SKILLS", "(no skills retained)")
		return
	}

	var sb strings.Builder
	for _, category := range filtered.Categories {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", category.Name, len(category.Skills)))
		count := min(len(category.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", category.Skills[i]))
		}
		if len(category.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(category.Skills)-maxItemsToShow))
		}
	}

	p.printBox("FILTERED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDegradedExtraction surfaces a degraded extraction so the silent
// fallback is visible to the operator.
func (p *Printer) PrintDegradedExtraction(cause error) {
	content := "Extraction output was unusable; continuing with an\nempty job profile."
	if cause != nil {
		content += fmt.Sprintf("\nCause: %v", cause)
	}
	p.printBox("DEGRADED EXTRACTION", content)
}

// writeList appends a truncated bullet list section to sb.
func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
