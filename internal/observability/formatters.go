// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-grader/internal/types"
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

// PrintGradeSummary outputs a human-readable summary of the grader pass.
func (p *Printer) PrintGradeSummary(grade *types.GradeResult, formatScore int) {
	if grade == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Category scores (0-5):\n")
	sb.WriteString(fmt.Sprintf("  Format:     %d\n", grade.Scores.Format))
	sb.WriteString(fmt.Sprintf("  Impact:     %d\n", grade.Scores.Impact))
	sb.WriteString(fmt.Sprintf("  Tech depth: %d\n", grade.Scores.TechDepth))
	sb.WriteString(fmt.Sprintf("  Projects:   %d\n", grade.Scores.Projects))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Format checklist score: %d/10\n", formatScore))

	if len(grade.FocusAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Focus areas: %s\n", strings.Join(grade.FocusAreas, ", ")))
	}

	if len(grade.WeakBullets) > 0 {
		sb.WriteString("\nWeak bullets:\n")
		count := min(len(grade.WeakBullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			wb := grade.WeakBullets[i]
			sb.WriteString(fmt.Sprintf("  • [%s #%d] %s\n", wb.Section, wb.Idx, wb.Reason))
		}
		if len(grade.WeakBullets) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(grade.WeakBullets)-maxItemsToShow))
		}
	}

	p.printBox("GRADER PASS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContextStats outputs the size and section makeup of the retrieved context.
func (p *Printer) PrintContextStats(contextText string) {
	if contextText == "" {
		p.printBox("RETRIEVED CONTEXT", "(empty; deep pass runs without retrieval)")
		return
	}

	var sections []string
	for _, line := range strings.Split(contextText, "\n") {
		if strings.HasPrefix(line, "<") && !strings.HasPrefix(line, "</") && strings.HasSuffix(line, ">") {
			sections = append(sections, strings.Trim(line, "<>"))
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Size: %d chars\n", len(contextText)))
	if len(sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range sections {
			sb.WriteString(fmt.Sprintf("  • %s\n", section))
		}
	}

	p.printBox("RETRIEVED CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFinalScores outputs the combined result of both passes.
func (p *Printer) PrintFinalScores(feedback types.Feedback, formatScore int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Readiness score: %.1f / 10\n", feedback.ReadinessScore))
	sb.WriteString(fmt.Sprintf("Format score:    %d / 10\n", formatScore))

	if len(feedback.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(feedback.Strengths), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", feedback.Strengths[i]))
		}
	}
	if len(feedback.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		count := min(len(feedback.Weaknesses), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", feedback.Weaknesses[i]))
		}
	}

	p.printBox("FINAL SCORES", strings.TrimSuffix(sb.String(), "\n"))
}
