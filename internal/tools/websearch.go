package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	searchURL     = "https://html.duckduckgo.com/html/"
	searchTimeout = 15 * time.Second
	maxResults    = 3

	userAgent = "Mozilla/5.0 (compatible; helloagent/1.0)"
)

// WebSearchTool searches the web via DuckDuckGo's HTML endpoint and returns
// the top result titles and links.
type WebSearchTool struct {
	endpoint string
	client   *http.Client
}

// NewWebSearchTool creates a new web search tool.
func NewWebSearchTool() *WebSearchTool {
	return &WebSearchTool{
		endpoint: searchURL,
		client:   &http.Client{Timeout: searchTimeout},
	}
}

func (t *WebSearchTool) Name() string {
	return "websearch"
}

func (t *WebSearchTool) Description() string {
	return "Search the web via DuckDuckGo"
}

func (t *WebSearchTool) Execute(ctx context.Context, input string) string {
	req, err := http.NewRequestWithContext(ctx, "GET", t.endpoint+"?q="+url.QueryEscape(input), nil)
	if err != nil {
		return fmt.Sprintf("Web search error: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Sprintf("Web search error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Sprintf("Web search error: DuckDuckGo returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Web search error: %v", err)
	}

	results := parseResults(string(body), maxResults)
	if len(results) == 0 {
		return "No results."
	}
	return strings.Join(results, "\n")
}

// parseResults extracts up to max result links from a DuckDuckGo HTML page.
// Result links are anchors carrying the "result__a" class.
func parseResults(page string, max int) []string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var results []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= max {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			title := strings.TrimSpace(nodeText(n))
			href := cleanHref(attrValue(n, "href"))
			if title != "" && href != "" {
				results = append(results, fmt.Sprintf("- %s | %s", title, href))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

// cleanHref unwraps DuckDuckGo's redirect links (…/l/?uddg=<target>) into
// the target URL. Anything else is returned as-is.
func cleanHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
