package confidence

import (
	"fmt"
	"strings"
)

// FormatTable formats an analysis as a human-readable summary.
func FormatTable(a *Analysis) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Citations: %d   Confidence: %d/100 (%s)\n\n",
		a.TotalCitations, a.OverallConfidence.Overall, a.OverallConfidence.Status)

	rows := [][2]string{
		{"Recency", scoreBar(a.OverallConfidence.RecencyScore)},
		{"Coverage", scoreBar(a.OverallConfidence.CoverageScore)},
		{"Quality", scoreBar(a.OverallConfidence.QualityScore)},
		{"Diversity", scoreBar(a.OverallConfidence.DiversityScore)},
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-10s %s\n", row[0], row[1])
	}

	b := a.CitationBreakdown
	fmt.Fprintf(&sb, "\n  Recent %d / Acceptable %d / Dated %d / Outdated %d\n",
		b.Recent, b.Acceptable, b.Dated, b.Outdated)

	if len(a.OverallConfidence.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range a.OverallConfidence.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", w)
		}
	}
	if len(a.OverallConfidence.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range a.OverallConfidence.Suggestions {
			fmt.Fprintf(&sb, "  - %s\n", s)
		}
	}

	return sb.String()
}

// scoreBar renders a 0-100 score as a 20-char bar plus the numeric value.
func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score / 5
	return fmt.Sprintf("%-20s %3d", strings.Repeat("#", filled), score)
}
