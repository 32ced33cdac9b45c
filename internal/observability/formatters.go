// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/admiralguff/majel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxReasonsToShow is the default number of reasons to display per trio
	maxReasonsToShow = 5
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

// PrintRecommendations outputs a human-readable summary of a recommendation
// run.
func (p *Printer) PrintRecommendations(intentKey string, recs []types.CrewRecommendation, names map[string]string) {
	if len(recs) == 0 {
		p.printBox("CREW RECOMMENDATIONS: "+intentKey, "No eligible trios.")
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s / %s / %s\n",
			i+1, displayName(names, rec.CaptainID), displayName(names, rec.Bridge1ID), displayName(names, rec.Bridge2ID)))
		sb.WriteString(fmt.Sprintf("    score %.2f  confidence %s\n", rec.TotalScore, rec.Confidence))

		count := min(len(rec.Reasons), maxReasonsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("    • %s\n", rec.Reasons[j]))
		}
		if len(rec.Reasons) > maxReasonsToShow {
			sb.WriteString(fmt.Sprintf("    ... and %d more\n", len(rec.Reasons)-maxReasonsToShow))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CREW RECOMMENDATIONS: "+intentKey, strings.TrimRight(sb.String(), "\n"))
}

// PrintFactors outputs the named score components of one recommendation.
func (p *Printer) PrintFactors(rec types.CrewRecommendation) {
	var sb strings.Builder
	for _, key := range []string{"captain_score", "bridge_score", "readiness_bonus", "reservation_penalty", "synergy_multiplier"} {
		if v, ok := rec.Factors[key]; ok {
			sb.WriteString(fmt.Sprintf("%-20s %8.2f\n", key, v))
		}
	}
	p.printBox("SCORE FACTORS", strings.TrimRight(sb.String(), "\n"))
}

func displayName(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return id
}
