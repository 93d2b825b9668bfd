// Package duckduckgo implements analyzer.Searcher against the keyless
// DuckDuckGo HTML endpoint.
package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	collyfetcher "github.com/JakeFAU/hackathon-analyzer/internal/fetcher/colly"
)

// DefaultEndpoint is the HTML search surface.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// Result markup selectors.
const (
	resultSelector  = "div.result__body"
	titleSelector   = "a.result__a"
	snippetSelector = "a.result__snippet"
)

// Config controls the searcher.
type Config struct {
	Endpoint   string
	UserAgent  string
	Timeout    time.Duration
	MaxResults int
}

// Searcher scrapes result blocks from the HTML endpoint.
type Searcher struct {
	cfg  Config
	base *colly.Collector
}

// New builds a Searcher.
func New(cfg Config) *Searcher {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	return &Searcher{cfg: cfg, base: collyfetcher.NewBaseCollector(cfg.Timeout)}
}

// SearchURL returns the endpoint URL for query.
func (s *Searcher) SearchURL(query string) string {
	return s.cfg.Endpoint + "?q=" + url.QueryEscape(query)
}

// Search returns up to MaxResults hits. Result blocks without a title link
// still count toward the limit but are skipped.
func (s *Searcher) Search(ctx context.Context, query string) ([]analyzer.SearchHit, error) {
	var (
		hits     []analyzer.SearchHit
		fetchErr error
		blocks   int
	)
	collector := s.base.Clone()
	collector.AllowURLRevisit = true
	if s.cfg.UserAgent != "" {
		collector.UserAgent = s.cfg.UserAgent
	}
	collector.OnHTML(resultSelector, func(e *colly.HTMLElement) {
		if blocks >= s.cfg.MaxResults {
			return
		}
		blocks++
		if e.DOM.Find(titleSelector).Length() == 0 {
			return
		}
		hits = append(hits, analyzer.SearchHit{
			Title:   e.ChildText(titleSelector),
			Link:    ResolveLink(e.ChildAttr(titleSelector, "href")),
			Snippet: e.ChildText(snippetSelector),
		})
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := collyfetcher.Visit(ctx, collector, s.SearchURL(query), func() error { return fetchErr }); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return hits, nil
}

// ResolveLink unwraps DuckDuckGo's /l/?uddg= redirect links and gives
// protocol-relative links an https scheme. Other hrefs are returned as is.
func ResolveLink(href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.HasSuffix(u.Hostname(), "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		if target := u.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return href
}
