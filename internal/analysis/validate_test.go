package analysis

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func validPayload() string {
	return `{
		"overallScore": 78,
		"summary": "Solid backend match with cloud gaps.",
		"strengths": ["5 years Python", "API design", "Mentoring"],
		"requirements": [
			{"requirement": "Python", "evidence": "5 years backend", "rating": 5, "gapNotes": "", "actionToImprove": "None"},
			{"requirement": "Kubernetes", "evidence": "None", "rating": 1, "gapNotes": "No container orchestration", "actionToImprove": "Add a k8s project"}
		],
		"missingKeywords": ["Kubernetes", "Terraform"],
		"nextSteps": ["Add k8s project", "Quantify impact", "Mention Terraform"]
	}`
}

func TestParseResultAcceptsValidPayload(t *testing.T) {
	result, err := ParseResult([]byte(validPayload()))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if result.OverallScore != 78 {
		t.Fatalf("OverallScore = %d", result.OverallScore)
	}
	if len(result.Requirements) != 2 || result.Requirements[1].Rating != 1 {
		t.Fatalf("Requirements = %+v", result.Requirements)
	}
	if len(result.MissingKeywords) != 2 {
		t.Fatalf("MissingKeywords = %v", result.MissingKeywords)
	}
}

func TestParseResultRejectsMissingFields(t *testing.T) {
	fields := []string{"overallScore", "summary", "strengths", "requirements", "missingKeywords", "nextSteps"}
	for _, field := range fields {
		payload := strings.Replace(validPayload(), fmt.Sprintf("%q", field), fmt.Sprintf("\"_%s\"", field), 1)
		if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
			t.Fatalf("missing %s: err = %v, want ErrInvalidResult", field, err)
		}
	}
}

func TestParseResultRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseResult([]byte("not json at all")); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("err = %v, want ErrInvalidResult", err)
	}
	if _, err := ParseResult(nil); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("nil payload err = %v, want ErrInvalidResult", err)
	}
}

func TestParseResultRejectsOutOfRangeScore(t *testing.T) {
	payload := strings.Replace(validPayload(), `"overallScore": 78`, `"overallScore": 140`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("score 140 err = %v, want ErrInvalidResult", err)
	}
	payload = strings.Replace(validPayload(), `"overallScore": 78`, `"overallScore": -1`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("score -1 err = %v, want ErrInvalidResult", err)
	}
}

func TestParseResultRejectsOutOfRangeRating(t *testing.T) {
	payload := strings.Replace(validPayload(), `"rating": 5`, `"rating": 6`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("rating 6 err = %v, want ErrInvalidResult", err)
	}
	payload = strings.Replace(validPayload(), `"rating": 1`, `"rating": 0`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("rating 0 err = %v, want ErrInvalidResult", err)
	}
}

func TestParseResultRejectsFractionalIntegers(t *testing.T) {
	payload := strings.Replace(validPayload(), `"overallScore": 78`, `"overallScore": 78.5`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("fractional score err = %v, want ErrInvalidResult", err)
	}
	payload = strings.Replace(validPayload(), `"rating": 5`, `"rating": 4.5`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("fractional rating err = %v, want ErrInvalidResult", err)
	}
}

func TestParseResultRejectsMistypedFields(t *testing.T) {
	payload := strings.Replace(validPayload(), `"strengths": ["5 years Python", "API design", "Mentoring"]`, `"strengths": "not a list"`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("mistyped strengths err = %v, want ErrInvalidResult", err)
	}
	payload = strings.Replace(validPayload(), `"nextSteps": ["Add k8s project", "Quantify impact", "Mention Terraform"]`, `"nextSteps": null`, 1)
	if _, err := ParseResult([]byte(payload)); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("null nextSteps err = %v, want ErrInvalidResult", err)
	}
}
