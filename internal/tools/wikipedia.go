package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	wikiSearchURL    = "https://en.wikipedia.org/w/api.php"
	wikiSummaryURL   = "https://en.wikipedia.org/api/rest_v1/page/summary/"
	wikiTimeout      = 15 * time.Second
	summarySentences = 2
)

// WikipediaTool looks up a topic on Wikipedia and returns a short summary.
// It searches for the best-matching page title first, then fetches that
// page's summary from the REST API.
type WikipediaTool struct {
	searchURL  string
	summaryURL string
	client     *http.Client
}

// NewWikipediaTool creates a new Wikipedia lookup tool.
func NewWikipediaTool() *WikipediaTool {
	return &WikipediaTool{
		searchURL:  wikiSearchURL,
		summaryURL: wikiSummaryURL,
		client:     &http.Client{Timeout: wikiTimeout},
	}
}

func (t *WikipediaTool) Name() string {
	return "wikipedia"
}

func (t *WikipediaTool) Description() string {
	return "Get short summaries from Wikipedia"
}

func (t *WikipediaTool) Execute(ctx context.Context, input string) string {
	title, err := t.search(ctx, input)
	if err != nil {
		return fmt.Sprintf("Wikipedia error: %v", err)
	}
	if title == "" {
		return "No results."
	}

	page, err := t.summary(ctx, title)
	if err != nil {
		return fmt.Sprintf("Wikipedia error: %v", err)
	}

	return fmt.Sprintf("Title: %s\nSummary: %s\nURL: %s",
		page.Title, firstSentences(page.Extract, summarySentences), page.ContentURLs.Desktop.Page)
}

// search returns the title of the best-matching page, or "" when the query
// matches nothing.
func (t *WikipediaTool) search(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"1"},
		"format":   {"json"},
	}

	body, err := t.get(ctx, t.searchURL+"?"+params.Encode())
	if err != nil {
		return "", err
	}

	var result struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse search response: %w", err)
	}
	if len(result.Query.Search) == 0 {
		return "", nil
	}
	return result.Query.Search[0].Title, nil
}

type wikiPage struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func (t *WikipediaTool) summary(ctx context.Context, title string) (*wikiPage, error) {
	body, err := t.get(ctx, t.summaryURL+url.PathEscape(title))
	if err != nil {
		return nil, err
	}

	var page wikiPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}
	return &page, nil
}

func (t *WikipediaTool) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("wikipedia returned %d", resp.StatusCode)
	}
	return body, nil
}

// firstSentences returns the first n sentences of s. A sentence ends at
// '.', '!' or '?' followed by whitespace or end of text.
func firstSentences(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i, r := range s {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		next, _ := utf8.DecodeRuneInString(s[i+utf8.RuneLen(r):])
		if next != utf8.RuneError && !isSpace(next) {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(s[:i+utf8.RuneLen(r)])
		}
	}
	return strings.TrimSpace(s)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
