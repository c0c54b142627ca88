// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-inspector/internal/analysis"
	"github.com/jonathan/ats-inspector/internal/ingestion"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSourceSummary outputs a summary of the fetched job posting.
func (p *Printer) PrintSourceSummary(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	if meta.URL != "" {
		sb.WriteString(fmt.Sprintf("URL:       %s\n", meta.URL))
	}
	if meta.Platform != "" {
		sb.WriteString(fmt.Sprintf("Platform:  %s\n", meta.Platform))
	}
	sb.WriteString(fmt.Sprintf("Characters: %d\n", meta.CharCount))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", meta.WordCount))
	sb.WriteString(fmt.Sprintf("Hash:       %s", meta.Hash))

	p.printBox("JOB POSTING SOURCE", sb.String())
}

// PrintBreakdown outputs the score breakdown of an analysis report.
func (p *Printer) PrintBreakdown(report *analysis.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected ATS:  %s\n", report.ATS))
	if report.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job title:     %s\n", report.JobTitle))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Contact:     %5.1f / 15\n", report.Breakdown.Contact))
	sb.WriteString(fmt.Sprintf("Title:       %5.1f / 15\n", report.Breakdown.Title))
	sb.WriteString(fmt.Sprintf("Keywords:    %5.1f / 40\n", report.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Length:      %5.1f / 10\n", report.Breakdown.Length))
	sb.WriteString(fmt.Sprintf("Formatting:  %5.1f / 10\n", report.Breakdown.Formatting))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("TOTAL SCORE: %d / 100", report.Score))

	p.printBox("CV SCORE", sb.String())
}

// PrintKeywords outputs the keywords extracted from the job posting.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTips outputs the improvement tips of an analysis report.
func (p *Printer) PrintTips(tips []string) {
	if len(tips) == 0 {
		return
	}

	var sb strings.Builder
	for i, tip := range tips {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, tip))
		if i < len(tips)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPROVEMENT TIPS", sb.String())
}
