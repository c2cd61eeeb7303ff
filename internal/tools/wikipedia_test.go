package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newWikiServer(t *testing.T, searchTitle, extract string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("srsearch"); got == "" {
			t.Errorf("missing srsearch param")
		}
		if searchTitle == "" {
			fmt.Fprint(w, `{"query":{"search":[]}}`)
			return
		}
		fmt.Fprintf(w, `{"query":{"search":[{"title":%q}]}}`, searchTitle)
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		title := strings.TrimPrefix(r.URL.Path, "/api/rest_v1/page/summary/")
		fmt.Fprintf(w, `{"title":%q,"extract":%q,"content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/%s"}}}`,
			title, extract, url.PathEscape(title))
	})
	return httptest.NewServer(mux)
}

func newWikiTool(srv *httptest.Server) *WikipediaTool {
	t := NewWikipediaTool()
	t.searchURL = srv.URL + "/w/api.php"
	t.summaryURL = srv.URL + "/api/rest_v1/page/summary/"
	return t
}

func TestWikipedia_Summary(t *testing.T) {
	extract := "Marie Curie was a physicist and chemist. She pioneered research on radioactivity. She won two Nobel Prizes."
	srv := newWikiServer(t, "Marie Curie", extract)
	defer srv.Close()

	out := newWikiTool(srv).Execute(context.Background(), "marie curie")
	want := "Title: Marie Curie\n" +
		"Summary: Marie Curie was a physicist and chemist. She pioneered research on radioactivity.\n" +
		"URL: https://en.wikipedia.org/wiki/Marie%20Curie"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestWikipedia_NoResults(t *testing.T) {
	srv := newWikiServer(t, "", "")
	defer srv.Close()

	if out := newWikiTool(srv).Execute(context.Background(), "xyzzy"); out != "No results." {
		t.Fatalf("expected %q, got %q", "No results.", out)
	}
}

func TestWikipedia_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out := newWikiTool(srv).Execute(context.Background(), "anything")
	if !strings.HasPrefix(out, "Wikipedia error:") {
		t.Fatalf("expected error string, got %q", out)
	}
}

func TestFirstSentences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{
			"two of three",
			"First. Second. Third.",
			2,
			"First. Second.",
		},
		{
			"decimal points are not sentence ends",
			"Pi is 3.14. It is irrational. It is also transcendental.",
			2,
			"Pi is 3.14. It is irrational.",
		},
		{
			"fewer sentences than asked",
			"Only one sentence.",
			2,
			"Only one sentence.",
		},
		{
			"no terminator",
			"no punctuation at all",
			2,
			"no punctuation at all",
		},
		{
			"question and exclamation",
			"Really? Yes! Indeed.",
			2,
			"Really? Yes!",
		},
		{
			"zero sentences",
			"Anything.",
			0,
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := firstSentences(tc.in, tc.n); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
