package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"cvmatch-backend/internal/analysis"
	"cvmatch-backend/internal/shared/telemetry"
)

// Low temperature favors consistency over creativity.
const analysisTemperature float32 = 0.4

// Client implements analysis.Client against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini-backed analysis client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Analyze performs a single request/response round trip. The response schema
// is enforced server-side; the payload is still re-validated locally before
// anything downstream sees it.
func (c *Client) Analyze(ctx context.Context, cvText, jdText string) (analysis.Result, error) {
	if strings.TrimSpace(cvText) == "" || strings.TrimSpace(jdText) == "" {
		return analysis.Result{}, analysis.ErrEmptyInput
	}

	temperature := analysisTemperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   resultSchema(),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(BuildPrompt(cvText, jdText)), config)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}
	if resp == nil {
		return analysis.Result{}, fmt.Errorf("%w: nil response", analysis.ErrAnalysisFailed)
	}

	text := resp.Text()
	if text == "" {
		return analysis.Result{}, fmt.Errorf("%w: empty response text", analysis.ErrAnalysisFailed)
	}

	result, err := analysis.ParseResult([]byte(text))
	if err != nil {
		telemetry.Warn("gemini.schema_mismatch", map[string]any{"model": c.model, "error": err.Error()})
		return analysis.Result{}, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}

	telemetry.Info("gemini.analysis_complete", map[string]any{
		"model":        c.model,
		"score":        result.OverallScore,
		"requirements": len(result.Requirements),
	})
	return result, nil
}

// resultSchema mirrors the analysis.Result contract field for field.
func resultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallScore": {
				Type:        genai.TypeInteger,
				Description: "Overall match score from 0 to 100 based on ATS criteria.",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "A concise summary of the match analysis.",
			},
			"strengths": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 3-5 key strengths found in the CV relevant to the JD.",
			},
			"requirements": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"requirement":     {Type: genai.TypeString, Description: "The specific core requirement from the JD."},
						"evidence":        {Type: genai.TypeString, Description: "Evidence found in the CV (or 'None' if missing)."},
						"rating":          {Type: genai.TypeInteger, Description: "Match rating from 1 (No match) to 5 (Perfect match)."},
						"gapNotes":        {Type: genai.TypeString, Description: "Explanation of what is missing or weak."},
						"actionToImprove": {Type: genai.TypeString, Description: "Specific action to close the gap."},
					},
					Required: []string{"requirement", "evidence", "rating", "gapNotes", "actionToImprove"},
				},
				Description: "Analysis of 8-12 core requirements.",
			},
			"missingKeywords": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of important ATS keywords found in JD but missing in CV.",
			},
			"nextSteps": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Prioritized list of 3-5 steps to improve the application.",
			},
		},
		Required: []string{"overallScore", "summary", "strengths", "requirements", "missingKeywords", "nextSteps"},
	}
}

var _ analysis.Client = (*Client)(nil)
