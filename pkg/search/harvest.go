package search

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMaxResultsPerQuery bounds how many hits each query contributes.
const DefaultMaxResultsPerQuery = 3

// Harvester gathers supplementary context about an AI system by running a
// small, fixed set of independent queries against a Provider. Failures are
// isolated per query: a failing query is logged and skipped without
// aborting its siblings, and a fully failed harvest degrades to empty
// supplementary text.
type Harvester struct {
	provider   Provider
	maxResults int
	warnWriter io.Writer
}

// NewHarvester creates a Harvester over the given provider. A nil provider
// behaves like NoopProvider.
func NewHarvester(provider Provider) *Harvester {
	if provider == nil {
		provider = NoopProvider{}
	}
	return &Harvester{
		provider:   provider,
		maxResults: DefaultMaxResultsPerQuery,
		warnWriter: os.Stderr,
	}
}

// SetMaxResultsPerQuery overrides the per-query result bound. Values below
// one are ignored.
func (h *Harvester) SetMaxResultsPerQuery(n int) {
	if n >= 1 {
		h.maxResults = n
	}
}

// SetWarnWriter redirects harvest warnings. Defaults to stderr.
func (h *Harvester) SetWarnWriter(w io.Writer) {
	if w != nil {
		h.warnWriter = w
	}
}

// queries returns the fixed query templates for a system.
func queries(name, company string) []string {
	return []string{
		fmt.Sprintf("%s %s AI system", company, name),
		fmt.Sprintf("%s %s use case application", company, name),
	}
}

// Harvest runs the fixed queries for the named system and returns the
// formatted supplementary text plus the unique source URLs, deduplicated
// across queries in retrieval order. It never returns an error: retrieval
// failures degrade to empty results.
func (h *Harvester) Harvest(ctx context.Context, name, company string) (string, []string) {
	var collected []Result
	var sources []string
	seen := make(map[string]bool)

	for _, query := range queries(name, company) {
		results, err := h.provider.Search(ctx, query, h.maxResults)
		if err != nil {
			fmt.Fprintf(h.warnWriter, "warning: search query %q failed: %v\n", query, err)
			continue
		}
		for _, result := range results {
			if seen[result.URL] {
				continue
			}
			seen[result.URL] = true
			collected = append(collected, result)
			sources = append(sources, result.URL)
		}
	}

	return FormatResults(collected), sources
}

// FormatResults renders search results as "- Title: Snippet" lines for
// inclusion in the profiling corpus. Results without a snippet are omitted.
func FormatResults(results []Result) string {
	var lines []string
	for _, result := range results {
		if result.Snippet == "" {
			continue
		}
		title := result.Title
		if title == "" {
			title = "Source"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", title, result.Snippet))
	}
	return strings.Join(lines, "\n")
}
