// Package search retrieves supplementary web context about an AI system
// before profiling. Retrieval is optional and injectable: the profiling
// pipeline accepts any Provider, and a no-op provider serves offline or
// disabled-search operation.
package search

import "context"

// Result is a single web search hit. Missing fields default to the empty
// string.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Provider performs a single web search. Implementations should return an
// error for transport failures; callers treat any error as "no results" for
// that query.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// NoopProvider is a Provider that never returns results. Used when search
// is disabled or unavailable.
type NoopProvider struct{}

// Search returns no results and no error.
func (NoopProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	return nil, nil
}
