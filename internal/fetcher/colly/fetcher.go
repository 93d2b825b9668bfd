// Package collyfetcher implements analyzer.Fetcher using gocolly.
package collyfetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
)

// DefaultTimeout bounds a single fetch when Config.Timeout is unset.
const DefaultTimeout = 15 * time.Second

// DefaultMaxBodyBytes caps how much of a page colly reads.
const DefaultMaxBodyBytes = 4 << 20

// Config controls collector behavior.
type Config struct {
	UserAgent     string
	RespectRobots bool
	Timeout       time.Duration
	MaxBodyBytes  int
}

// Fetcher downloads pages with a clone of one shared collector.
type Fetcher struct {
	cfg  Config
	base *colly.Collector
}

type hookRegistrar interface {
	OnRequest(colly.RequestCallback)
	OnResponse(colly.ResponseCallback)
	OnError(colly.ErrorCallback)
}

// New builds a Fetcher.
func New(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	base := NewBaseCollector(cfg.Timeout)
	base.MaxBodySize = cfg.MaxBodyBytes
	return &Fetcher{cfg: cfg, base: base}
}

// NewBaseCollector returns a synchronous collector with a pooled transport.
// Clones share its HTTP backend, so transport and timeout are set here only.
func NewBaseCollector(timeout time.Duration) *colly.Collector {
	c := colly.NewCollector(colly.Async(false))
	c.WithTransport(NewHTTPTransport())
	c.SetRequestTimeout(timeout)
	return c
}

// Fetch performs one GET. Every HTTP status is returned as a response;
// callers decide what counts as success.
func (f *Fetcher) Fetch(ctx context.Context, request analyzer.FetchRequest) (analyzer.FetchResponse, error) {
	pc := &pageCapture{request: request, started: time.Now()}
	c := f.clone()
	pc.attach(c)

	if err := Visit(ctx, c, request.URL, pc.failure); err != nil {
		return analyzer.FetchResponse{}, err
	}
	return pc.page, nil
}

func (f *Fetcher) clone() *colly.Collector {
	c := f.base.Clone()
	if f.cfg.UserAgent != "" {
		c.UserAgent = f.cfg.UserAgent
	}
	c.IgnoreRobotsTxt = !f.cfg.RespectRobots
	// Without this colly turns any status from 203 up into an error.
	c.ParseHTTPErrorResponse = true
	// Clones share the visited store and the same page is fetched for
	// every analysis of the same hackathon.
	c.AllowURLRevisit = true
	return c
}

// pageCapture records what one collector visit produced.
type pageCapture struct {
	request analyzer.FetchRequest
	started time.Time
	page    analyzer.FetchResponse
	err     error
}

func (pc *pageCapture) attach(hooks hookRegistrar) {
	hooks.OnRequest(pc.onRequest)
	hooks.OnResponse(pc.onResponse)
	hooks.OnError(pc.onError)
}

func (pc *pageCapture) onRequest(r *colly.Request) {
	for key, values := range pc.request.Headers {
		for _, v := range values {
			r.Headers.Add(key, v)
		}
	}
}

func (pc *pageCapture) onResponse(r *colly.Response) {
	var headers http.Header
	if r.Headers != nil {
		headers = r.Headers.Clone()
	}
	pc.page = analyzer.FetchResponse{
		URL:        r.Request.URL.String(),
		StatusCode: r.StatusCode,
		Headers:    headers,
		Body:       append([]byte(nil), r.Body...),
		Duration:   time.Since(pc.started),
	}
}

func (pc *pageCapture) onError(_ *colly.Response, err error) {
	pc.err = err
}

func (pc *pageCapture) failure() error {
	return pc.err
}

// Visit runs collector against target and waits for it or for ctx. failure
// reports the error recorded by the collector's OnError hook, if any.
func Visit(ctx context.Context, collector *colly.Collector, target string, failure func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(target)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("visit %s: %w", target, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("visit %s: %w", target, err)
		}
		if err := failure(); err != nil {
			return fmt.Errorf("response from %s: %w", target, err)
		}
		return nil
	}
}

// NewHTTPTransport returns the pooled transport used by outbound collectors.
func NewHTTPTransport() *http.Transport {
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       60 * time.Second,
	}
}
