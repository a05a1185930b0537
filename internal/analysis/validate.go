package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResult decodes and validates a raw model payload. The caller receives
// either a fully populated Result or an error wrapping ErrInvalidResult;
// partially populated results never escape.
func ParseResult(raw []byte) (Result, error) {
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("%w: empty payload", ErrInvalidResult)
	}

	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	if err := requireFields(top); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}

	// Typed decode. Integer fields reject fractional numbers here.
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	if err := result.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return result, nil
}

func requireFields(top map[string]any) error {
	required := []string{"overallScore", "summary", "strengths", "requirements", "missingKeywords", "nextSteps"}
	for _, key := range required {
		value, ok := top[key]
		if !ok {
			return fmt.Errorf("missing field: %s", key)
		}
		if value == nil {
			return fmt.Errorf("null field: %s", key)
		}
	}
	return nil
}

// Validate checks ranges and required content after a typed decode.
func (r Result) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("overallScore %d out of range [0,100]", r.OverallScore)
	}
	if strings.TrimSpace(r.Summary) == "" {
		return fmt.Errorf("summary is required")
	}
	for i, req := range r.Requirements {
		if req.Rating < 1 || req.Rating > 5 {
			return fmt.Errorf("requirements[%d].rating %d out of range [1,5]", i, req.Rating)
		}
		if strings.TrimSpace(req.Requirement) == "" {
			return fmt.Errorf("requirements[%d].requirement is required", i)
		}
	}
	return nil
}
