// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// PrintDocument outputs a human-readable summary of a resume document.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(doc.Personal.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(doc.Personal.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(doc.Personal.Phone)))
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(doc.Experience)))
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(e.Title)))
			if e.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", e.Company))
			}
			sb.WriteString("\n")
			if dates := rendering.FormatDateRange(e.StartDate, e.EndDate); dates != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", dates))
			}
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(doc.Education)))
		count := min(len(doc.Education), 3)
		for i := 0; i < count; i++ {
			e := doc.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", orDash(e.Degree), orDash(e.School)))
		}
		if len(doc.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Education)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Projects: %d   Certifications: %d\n", len(doc.Projects), len(doc.Certifications)))

	if len(doc.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(doc.Skills, ", ")))
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissingFields outputs the required fields a submission is missing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingFields(missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL REQUIRED FIELDS PRESENT")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Missing %d required fields:\n\n", len(missing)))
	for _, field := range missing {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", field))
	}

	p.printBox("REQUIRED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs where an export was written and how large it is.
func (p *Printer) PrintExport(path, format, template string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:   %s\n", format))
	sb.WriteString(fmt.Sprintf("Template: %s\n", template))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", size))
	sb.WriteString(fmt.Sprintf("Output:   %s", path))

	p.printBox("EXPORT", sb.String())
}
