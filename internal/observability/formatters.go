// Package observability renders analysis results for the terminal.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// boxWidth is the outer width of every box, borders included
	boxWidth = 72
	// maxItemsToShow caps keyword lists
	maxItemsToShow = 8
)

// Printer writes human-readable reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a titled box. Long lines wrap on word boundaries.
//
//nolint:errcheck // terminal output; nothing useful to do on failure
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %-*s │\n", inner, part)
		}
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult writes the score box followed by keywords, suggestions and warnings.
// Empty sections are left out.
func (p *Printer) PrintResult(label string, result *types.ATSAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if label != "" {
		sb.WriteString(fmt.Sprintf("Resume:      %s\n", label))
	}
	sb.WriteString(fmt.Sprintf("ATS score:   %.0f / 100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("Skills      %s %6.2f\n", bar(result.Breakdown.Skills), result.Breakdown.Skills))
	sb.WriteString(fmt.Sprintf("Experience  %s %6.2f\n", bar(result.Breakdown.Experience), result.Breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Keywords    %s %6.2f\n", bar(result.Breakdown.Keywords), result.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Education   %s %6.2f", bar(result.Breakdown.Education), result.Breakdown.Education))
	p.printBox("ATS ANALYSIS", sb.String())

	p.printKeywords(result)
	p.printList("SUGGESTIONS", "•", result.Suggestions)
	p.printList("WARNINGS", "⚠", result.Warnings)
}

func (p *Printer) printKeywords(result *types.ATSAnalysisResult) {
	if len(result.MatchedKeywords)+len(result.MissingKeywords)+len(result.OverusedKeywords) == 0 {
		return
	}
	var sb strings.Builder
	writeKeywords(&sb, "Matched", result.MatchedKeywords)
	writeKeywords(&sb, "Missing", result.MissingKeywords)
	writeKeywords(&sb, "Overused", result.OverusedKeywords)
	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeKeywords(sb *strings.Builder, label string, keywords []string) {
	if len(keywords) == 0 {
		return
	}
	shown := keywords[:min(len(keywords), maxItemsToShow)]
	sb.WriteString(fmt.Sprintf("%-9s %s", label+":", strings.Join(shown, ", ")))
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" ... and %d more", len(keywords)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func (p *Printer) printList(title, marker string, items []string) {
	if len(items) == 0 {
		return
	}
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s", marker, item))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(title, sb.String())
}

// BatchRow is one line of a batch summary
type BatchRow struct {
	Label string
	Score float64
	Err   error
}

// PrintBatchSummary writes one row per resume in the given order.
func (p *Printer) PrintBatchSummary(rows []BatchRow) {
	if len(rows) == 0 {
		return
	}
	var sb strings.Builder
	for i, row := range rows {
		label := truncate(row.Label, 48)
		if row.Err != nil {
			sb.WriteString(fmt.Sprintf("%-48s  error: %v", label, row.Err))
		} else {
			sb.WriteString(fmt.Sprintf("%-48s  %3.0f", label, row.Score))
		}
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("BATCH RESULTS (%d)", len(rows)), sb.String())
}

// bar draws a 20-cell gauge for a 0-100 value.
func bar(v float64) string {
	filled := int(max(0, min(100, v)) / 5)
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

func wrap(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}
	var out []string
	var current string
	for _, word := range strings.Fields(line) {
		for len([]rune(word)) > width {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			r := []rune(word)
			out = append(out, string(r[:width]))
			word = string(r[width:])
		}
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			out = append(out, current)
			current = word
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
