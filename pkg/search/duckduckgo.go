package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultUserAgent is the default User-Agent header sent with search requests.
const DefaultUserAgent = "aiact-search/1.0"

// DefaultRequestInterval is the default minimum interval between search
// requests.
const DefaultRequestInterval = time.Second

// duckDuckGoEndpoint is the HTML (non-JavaScript) search frontend.
const duckDuckGoEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGoConfig holds configuration for a DuckDuckGoProvider.
type DuckDuckGoConfig struct {
	// RateLimit is the minimum interval between HTTP requests.
	// Default: 1 second.
	RateLimit time.Duration

	// HTTPClient is the underlying HTTP client used for requests.
	// If nil, http.DefaultClient is used (wrapped with rate limiting).
	HTTPClient HTTPClient

	// UserAgent is the User-Agent header sent with requests.
	// Default: "aiact-search/1.0".
	UserAgent string
}

// DefaultDuckDuckGoConfig returns a DuckDuckGoConfig with sensible defaults.
func DefaultDuckDuckGoConfig() DuckDuckGoConfig {
	return DuckDuckGoConfig{
		RateLimit: DefaultRequestInterval,
		UserAgent: DefaultUserAgent,
	}
}

// DuckDuckGoProvider searches the web via the DuckDuckGo HTML endpoint,
// which requires no API key. Results are parsed out of the returned markup.
type DuckDuckGoProvider struct {
	httpClient HTTPClient
	userAgent  string
}

// NewDuckDuckGoProvider creates a provider with the given configuration.
// If config.HTTPClient is nil, http.DefaultClient is used and wrapped with
// rate limiting.
func NewDuckDuckGoProvider(config DuckDuckGoConfig) *DuckDuckGoProvider {
	underlyingClient := config.HTTPClient
	if underlyingClient == nil {
		underlyingClient = http.DefaultClient
	}

	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = DefaultRequestInterval
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &DuckDuckGoProvider{
		httpClient: NewRateLimitedHTTPClient(underlyingClient, rateLimit),
		userAgent:  userAgent,
	}
}

// Search runs one query and returns up to maxResults hits.
func (provider *DuckDuckGoProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	endpoint := duckDuckGoEndpoint + "?q=" + url.QueryEscape(query)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request for %q: %w", query, err)
	}
	request.Header.Set("User-Agent", provider.userAgent)

	response, err := provider.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("search request for %q failed: %w", query, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request for %q returned status %d", query, response.StatusCode)
	}

	document, err := html.Parse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search response for %q: %w", query, err)
	}

	results := parseResults(document)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// parseResults walks the parsed document collecting result anchors
// (class "result__a") and their sibling snippets (class "result__snippet").
func parseResults(document *html.Node) []Result {
	var results []Result

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "a" && hasClass(node, "result__a") {
			result := Result{
				Title: strings.TrimSpace(textContent(node)),
				URL:   resolveResultURL(attrValue(node, "href")),
			}
			if snippetNode := findSnippet(node); snippetNode != nil {
				result.Snippet = strings.TrimSpace(textContent(snippetNode))
			}
			results = append(results, result)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(document)

	return results
}

// findSnippet locates the snippet element within the same result block as
// the title anchor.
func findSnippet(anchor *html.Node) *html.Node {
	block := anchor.Parent
	for block != nil && !(block.Type == html.ElementNode && hasClass(block, "result")) {
		block = block.Parent
	}
	if block == nil {
		return nil
	}

	var snippet *html.Node
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if snippet != nil {
			return
		}
		if node.Type == html.ElementNode && hasClass(node, "result__snippet") {
			snippet = node
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(block)

	return snippet
}

// resolveResultURL unwraps DuckDuckGo's redirect links, which carry the
// destination in the uddg query parameter.
func resolveResultURL(href string) string {
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func hasClass(node *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(node, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(node *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}
