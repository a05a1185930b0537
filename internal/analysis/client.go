package analysis

import (
	"context"
	"errors"
)

// Client abstracts the external generation service.
type Client interface {
	// Analyze sends both texts in a single request/response round trip and
	// returns a fully validated Result. Any transport or schema failure
	// wraps ErrAnalysisFailed; no retry or caching happens here.
	Analyze(ctx context.Context, cvText, jdText string) (Result, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("analysis client not configured")

// PlaceholderClient stands in where no provider is wired, e.g. CLI commands
// that never analyze.
type PlaceholderClient struct{}

// Analyze returns ErrNotConfigured.
func (PlaceholderClient) Analyze(ctx context.Context, cvText, jdText string) (Result, error) {
	_ = ctx
	return Result{}, ErrNotConfigured
}
