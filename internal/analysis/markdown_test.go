package analysis

import (
	"strings"
	"testing"
)

func sampleResult() Result {
	return Result{
		OverallScore: 82,
		Summary:      "Strong match for the backend role.",
		Strengths:    []string{"Python depth", "API design", "Team leadership"},
		Requirements: []Requirement{
			{Requirement: "Python", Evidence: "5 years backend", Rating: 5, GapNotes: "", ActionToImprove: "None"},
			{Requirement: "AWS", Evidence: "One Lambda project", Rating: 3, GapNotes: "Limited breadth", ActionToImprove: "Add an ECS or EKS deployment"},
		},
		MissingKeywords: []string{"Terraform", "GraphQL"},
		NextSteps:       []string{"Quantify achievements", "Add Terraform", "Tailor the summary"},
	}
}

func TestMarkdownIsDeterministic(t *testing.T) {
	result := sampleResult()
	first := Markdown(result)
	second := Markdown(result)
	if first != second {
		t.Fatalf("export is not byte-identical across calls")
	}
}

func TestMarkdownSections(t *testing.T) {
	doc := Markdown(sampleResult())

	for _, want := range []string{
		"# CV Match Analysis Report",
		"**Overall Score:** 82/100",
		"**Summary:** Strong match for the backend role.",
		"## Key Strengths",
		"- Python depth",
		"## Requirements Matrix",
		"| Requirement | Evidence | Rating | Gap | Action |",
		"|---|---|---|---|---|",
		"| Python | 5 years backend | 5/5 |  | None |",
		"| AWS | One Lambda project | 3/5 | Limited breadth | Add an ECS or EKS deployment |",
		"## Missing Keywords",
		"Terraform, GraphQL",
		"## Prioritized Next Steps",
		"1. Quantify achievements",
		"3. Tailor the summary",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("export missing %q in:\n%s", want, doc)
		}
	}
}

func TestMarkdownEmptyListsStillRender(t *testing.T) {
	doc := Markdown(Result{OverallScore: 10, Summary: "Weak match."})
	if !strings.Contains(doc, "## Key Strengths") {
		t.Fatalf("missing strengths header:\n%s", doc)
	}
	if !strings.Contains(doc, "## Prioritized Next Steps") {
		t.Fatalf("missing next steps header:\n%s", doc)
	}
}
