package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
)

const resultsPage = `<html><body>
<div class="result results_links"><div class="result__body">
  <h2><a class="result__a" href="https://hackmit.org">HackMIT</a></h2>
  <a class="result__snippet" href="https://hackmit.org">MIT's annual <b>hackathon</b></a>
</div></div>
<div class="result"><div class="result__body">
  <span>sponsored block without a title link</span>
</div></div>
<div class="result"><div class="result__body">
  <a class="result__a" href="https://devpost.com/hackmit">HackMIT on Devpost</a>
</div></div>
<div class="result"><div class="result__body">
  <a class="result__a" href="https://example.com/fourth">Fourth</a>
</div></div>
</body></html>`

func TestSearchParsesFirstThreeBlocks(t *testing.T) {
	t.Parallel()

	queries := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	s := New(Config{Endpoint: srv.URL + "/html/", Timeout: 2 * time.Second})
	hits, err := s.Search(context.Background(), "HackMIT official hackathon")

	require.NoError(t, err)
	require.Equal(t, "HackMIT official hackathon", <-queries)
	require.Equal(t, []analyzer.SearchHit{
		{Title: "HackMIT", Link: "https://hackmit.org", Snippet: "MIT's annual hackathon"},
		{Title: "HackMIT on Devpost", Link: "https://devpost.com/hackmit", Snippet: ""},
	}, hits)
}

func TestSearchNoResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>No results.</p></body></html>"))
	}))
	defer srv.Close()

	hits, err := New(Config{Endpoint: srv.URL}).Search(context.Background(), "nothing")
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestSearchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New(Config{Endpoint: srv.URL}).Search(context.Background(), "blocked")
	require.Error(t, err)
}

func TestSearchURLEscapesQuery(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	require.Equal(t,
		"https://html.duckduckgo.com/html/?q=Hack+%26+Roll+official+hackathon",
		s.SearchURL("Hack & Roll official hackathon"))
}

func TestResolveLink(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"//duckduckgo.com/l/?uddg=https%3A%2F%2Fhackmit.org%2F&rut=abc": "https://hackmit.org/",
		"https://duckduckgo.com/l/?uddg=https%3A%2F%2Fethglobal.com":     "https://ethglobal.com",
		"//duckduckgo.com/l/?rut=abc":                                     "https://duckduckgo.com/l/?rut=abc",
		"https://treehacks.com":                                           "https://treehacks.com",
		"  https://mlh.io  ":                                              "https://mlh.io",
		"":                                                                "",
	}
	for href, want := range tests {
		require.Equal(t, want, ResolveLink(href), href)
	}
}
