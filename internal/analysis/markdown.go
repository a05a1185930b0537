package analysis

import (
	"fmt"
	"strings"
)

// Markdown renders the report exported from the results view. It is a pure
// function of the result: the same input always yields identical bytes.
func Markdown(r Result) string {
	var b strings.Builder

	b.WriteString("# CV Match Analysis Report\n\n")
	fmt.Fprintf(&b, "**Overall Score:** %d/100\n", r.OverallScore)
	fmt.Fprintf(&b, "**Summary:** %s\n\n", r.Summary)

	b.WriteString("## Key Strengths\n")
	for _, s := range r.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n## Requirements Matrix\n")
	b.WriteString("| Requirement | Evidence | Rating | Gap | Action |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, req := range r.Requirements {
		fmt.Fprintf(&b, "| %s | %s | %d/5 | %s | %s |\n",
			req.Requirement, req.Evidence, req.Rating, req.GapNotes, req.ActionToImprove)
	}

	b.WriteString("\n## Missing Keywords\n")
	b.WriteString(strings.Join(r.MissingKeywords, ", "))
	b.WriteString("\n")

	b.WriteString("\n## Prioritized Next Steps\n")
	for i, step := range r.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	return b.String()
}
