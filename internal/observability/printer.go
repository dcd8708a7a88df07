// Package observability provides Prometheus collectors for the engine and
// formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
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

// PrintValidationResult outputs a human-readable template validation report.
func (p *Printer) PrintValidationResult(templateID string, result *types.ValidationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Valid:    %t\n", result.IsValid))
	sb.WriteString("\n")

	if len(result.Errors) > 0 {
		sb.WriteString("Errors:\n")
		count := min(len(result.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Errors[i].Message))
		}
		if len(result.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Errors)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Warnings[i].Message))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("Template Validation: %s", templateID), strings.TrimRight(sb.String(), "\n"))
}

// PrintRenderMetadata outputs a summary of a completed render.
func (p *Printer) PrintRenderMetadata(metadata *types.RenderMetadata) {
	if metadata == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template:   %s\n", metadata.TemplateID))
	sb.WriteString(fmt.Sprintf("Render ID:  %s\n", metadata.RenderID))
	sb.WriteString(fmt.Sprintf("Checksum:   %s\n", metadata.Checksum))
	sb.WriteString(fmt.Sprintf("HTML size:  %d bytes\n", metadata.HTMLBytes))
	sb.WriteString(fmt.Sprintf("CSS size:   %d bytes\n", metadata.CSSBytes))
	sb.WriteString(fmt.Sprintf("Duration:   %s", metadata.RenderingTime))

	p.printBox("Render Complete", sb.String())
}

// PrintOptimizationResult outputs a human-readable summary of an ATS
// scoring report.
func (p *Printer) PrintOptimizationResult(result *types.ATSOptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:       %.1f/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Formatting:    %.1f\n", result.ScoreBreakdown.Formatting))
	sb.WriteString(fmt.Sprintf("Keywords:      %.1f\n", result.ScoreBreakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Structure:     %.1f\n", result.ScoreBreakdown.Structure))
	sb.WriteString(fmt.Sprintf("Readability:   %.1f\n", result.ScoreBreakdown.Readability))
	sb.WriteString(fmt.Sprintf("Completeness:  %.1f\n", result.ScoreBreakdown.Completeness))
	sb.WriteString(fmt.Sprintf("Relevance:     %.1f\n", result.ScoreBreakdown.Relevance))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("ATS compatibility: %.0f%%\n", result.Compatibility.OverallCompatibility*100))
	sb.WriteString("\n")

	if len(result.Optimizations) > 0 {
		sb.WriteString("Top Actions:\n")
		count := min(len(result.Optimizations), maxItemsToShow)
		for i := 0; i < count; i++ {
			action := result.Optimizations[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s (+%.0f)\n", action.Priority, action.Description, action.Impact))
		}
	}

	p.printBox("ATS Optimization", strings.TrimRight(sb.String(), "\n"))
}
