package search

import (
	"net/http"
	"sync"
	"time"
)

// HTTPClient is the slice of *http.Client the scraper needs. Tests inject
// canned-response fakes; production wires the default client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedHTTPClient spaces requests at least one interval apart so the
// scraper stays polite toward the search engine. DuckDuckGo throttles
// aggressive clients, so every provider request goes through one of these.
type RateLimitedHTTPClient struct {
	next     HTTPClient
	interval time.Duration
	last     time.Time
	mu       sync.Mutex
}

// NewRateLimitedHTTPClient wraps next, enforcing a minimum interval between
// requests.
func NewRateLimitedHTTPClient(next HTTPClient, interval time.Duration) *RateLimitedHTTPClient {
	return &RateLimitedHTTPClient{
		next:     next,
		interval: interval,
	}
}

// Do sends the request, sleeping first if the previous request was too
// recent. Safe for concurrent use.
func (c *RateLimitedHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()

	if !c.last.IsZero() {
		if elapsed := time.Since(c.last); elapsed < c.interval {
			wait := c.interval - elapsed
			c.mu.Unlock()
			time.Sleep(wait)
			c.mu.Lock()
		}
	}

	c.last = time.Now()
	c.mu.Unlock()

	return c.next.Do(req)
}
