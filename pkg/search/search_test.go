package search

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"
)

// fakeProvider returns canned results keyed by query substring and can fail
// selected queries.
type fakeProvider struct {
	results map[string][]Result
	failAll bool
}

func (f *fakeProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if f.failAll {
		return nil, errors.New("provider down")
	}
	for key, results := range f.results {
		if strings.Contains(query, key) {
			if maxResults > 0 && len(results) > maxResults {
				results = results[:maxResults]
			}
			return results, nil
		}
	}
	return nil, errors.New("no canned answer")
}

func TestHarvestDeduplicatesByURL(t *testing.T) {
	shared := Result{Title: "Shared", Snippet: "Seen twice", URL: "https://example.com/shared"}
	provider := &fakeProvider{results: map[string][]Result{
		"AI system":            {shared, {Title: "A", Snippet: "First only", URL: "https://example.com/a"}},
		"use case application": {shared, {Title: "B", Snippet: "Second only", URL: "https://example.com/b"}},
	}}

	harvester := NewHarvester(provider)
	harvester.SetWarnWriter(io.Discard)
	supplement, sources := harvester.Harvest(context.Background(), "Atlas", "Acme")

	wantSources := []string{"https://example.com/shared", "https://example.com/a", "https://example.com/b"}
	if !reflect.DeepEqual(sources, wantSources) {
		t.Errorf("sources = %v, want %v", sources, wantSources)
	}
	if strings.Count(supplement, "Seen twice") != 1 {
		t.Errorf("duplicate URL should be formatted once:\n%s", supplement)
	}
}

func TestHarvestSurvivesPartialFailure(t *testing.T) {
	provider := &fakeProvider{results: map[string][]Result{
		// Only the first query template has an answer; the second errors.
		"AI system": {{Title: "Only", Snippet: "Hit", URL: "https://example.com/only"}},
	}}

	var warnings bytes.Buffer
	harvester := NewHarvester(provider)
	harvester.SetWarnWriter(&warnings)
	supplement, sources := harvester.Harvest(context.Background(), "Atlas", "Acme")

	if len(sources) != 1 {
		t.Errorf("sources = %v, want the surviving query's hit", sources)
	}
	if supplement != "- Only: Hit" {
		t.Errorf("supplement = %q", supplement)
	}
	if !strings.Contains(warnings.String(), "warning: search query") {
		t.Errorf("expected a per-query warning, got %q", warnings.String())
	}
}

func TestHarvestTotalFailureDegradesToEmpty(t *testing.T) {
	harvester := NewHarvester(&fakeProvider{failAll: true})
	harvester.SetWarnWriter(io.Discard)

	supplement, sources := harvester.Harvest(context.Background(), "Atlas", "Acme")

	if supplement != "" || sources != nil {
		t.Errorf("total failure should degrade to empty, got %q %v", supplement, sources)
	}
}

func TestHarvestNilProviderIsNoop(t *testing.T) {
	harvester := NewHarvester(nil)

	supplement, sources := harvester.Harvest(context.Background(), "Atlas", "Acme")

	if supplement != "" || sources != nil {
		t.Errorf("nil provider should yield nothing, got %q %v", supplement, sources)
	}
}

func TestFormatResults(t *testing.T) {
	results := []Result{
		{Title: "First", Snippet: "One", URL: "u1"},
		{Title: "", Snippet: "Two", URL: "u2"},
		{Title: "NoSnippet", Snippet: "", URL: "u3"},
	}

	got := FormatResults(results)
	want := "- First: One\n- Source: Two"
	if got != want {
		t.Errorf("FormatResults = %q, want %q", got, want)
	}
}

// mockHTTPClient serves a fixed response body for any request.
type mockHTTPClient struct {
	status   int
	body     string
	err      error
	requests []*http.Request
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     make(http.Header),
	}, nil
}

const sampleResultsHTML = `
<html><body>
<div class="results">
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fmbux&amp;rut=abc">MBUX Assistant overview</a>
    </h2>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fmbux">Voice assistant for <b>drivers</b>.</a>
  </div>
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="https://example.com/direct">Direct link result</a>
    </h2>
    <div class="result__snippet">Second snippet.</div>
  </div>
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="https://example.com/third">Third</a>
    </h2>
  </div>
</div>
</body></html>`

func TestDuckDuckGoParsesResults(t *testing.T) {
	client := &mockHTTPClient{status: http.StatusOK, body: sampleResultsHTML}
	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{HTTPClient: client, RateLimit: time.Nanosecond})

	results, err := provider.Search(context.Background(), "Mercedes-Benz MBUX AI system", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(results), results)
	}

	first := results[0]
	if first.Title != "MBUX Assistant overview" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.URL != "https://example.com/mbux" {
		t.Errorf("redirect URL not unwrapped: %q", first.URL)
	}
	if first.Snippet != "Voice assistant for drivers." {
		t.Errorf("Snippet = %q", first.Snippet)
	}

	if results[1].URL != "https://example.com/direct" || results[1].Snippet != "Second snippet." {
		t.Errorf("second result = %+v", results[1])
	}
	if results[2].Snippet != "" {
		t.Errorf("snippetless result should keep empty snippet, got %q", results[2].Snippet)
	}

	if len(client.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(client.requests))
	}
	request := client.requests[0]
	if !strings.Contains(request.URL.RawQuery, "q=Mercedes-Benz+MBUX+AI+system") {
		t.Errorf("query not encoded: %s", request.URL.RawQuery)
	}
	if request.Header.Get("User-Agent") != DefaultUserAgent {
		t.Errorf("User-Agent = %q", request.Header.Get("User-Agent"))
	}
}

func TestDuckDuckGoMaxResults(t *testing.T) {
	client := &mockHTTPClient{status: http.StatusOK, body: sampleResultsHTML}
	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{HTTPClient: client, RateLimit: time.Nanosecond})

	results, err := provider.Search(context.Background(), "query", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected truncation to 2 results, got %d", len(results))
	}
}

func TestDuckDuckGoErrorStatuses(t *testing.T) {
	client := &mockHTTPClient{status: http.StatusTooManyRequests, body: ""}
	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{HTTPClient: client, RateLimit: time.Nanosecond})

	if _, err := provider.Search(context.Background(), "query", 3); err == nil {
		t.Error("expected error for non-200 status")
	}

	failing := &mockHTTPClient{err: errors.New("connection refused")}
	provider = NewDuckDuckGoProvider(DuckDuckGoConfig{HTTPClient: failing, RateLimit: time.Nanosecond})
	if _, err := provider.Search(context.Background(), "query", 3); err == nil {
		t.Error("expected error for transport failure")
	}
}

func TestNoopProvider(t *testing.T) {
	results, err := NoopProvider{}.Search(context.Background(), "anything", 3)
	if err != nil || results != nil {
		t.Errorf("NoopProvider = %v, %v", results, err)
	}
}

func TestRateLimitedClientSpacesRequests(t *testing.T) {
	client := &mockHTTPClient{status: http.StatusOK, body: "ok"}
	limited := NewRateLimitedHTTPClient(client, 30*time.Millisecond)

	request, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := limited.Do(request); err != nil {
			t.Fatalf("Do failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("three requests finished in %v, expected at least 60ms of spacing", elapsed)
	}
}
