package analysis

import "errors"

var (
	// ErrEmptyInput blocks submission before any external call.
	ErrEmptyInput = errors.New("cv and job description text are required")
	// ErrAnalysisFailed covers transport errors, non-OK responses and
	// unparseable payloads. Callers never see a partial result.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrInvalidResult marks a payload that parsed but does not conform to
	// the result schema.
	ErrInvalidResult = errors.New("analysis result does not match schema")
)

const (
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeAnalysisFailed = "ANALYSIS_FAILED"
	ErrorCodeAuthFailed     = "AUTH_FAILED"
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeInFlight       = "ANALYSIS_IN_FLIGHT"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)
