// Package headless renders JavaScript-heavy pages with headless Chrome.
package headless

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
)

// DefaultNavigationTimeout bounds a single render when none is configured.
const DefaultNavigationTimeout = 25 * time.Second

const settleDelay = 500 * time.Millisecond

// Config controls the renderer.
type Config struct {
	MaxParallel       int
	UserAgent         string
	NavigationTimeout time.Duration
}

// Renderer implements analyzer.Fetcher on top of chromedp.
type Renderer struct {
	cfg         Config
	slots       chan struct{}
	allocator   context.Context
	allocCancel context.CancelFunc
}

// NewRenderer starts an exec allocator. Chrome itself launches lazily on
// the first Fetch.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.MaxParallel < 0 {
		return nil, fmt.Errorf("max parallel must be >= 0")
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}
	var slots chan struct{}
	if cfg.MaxParallel > 0 {
		slots = make(chan struct{}, cfg.MaxParallel)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Renderer{
		cfg:         cfg,
		slots:       slots,
		allocator:   allocCtx,
		allocCancel: allocCancel,
	}, nil
}

// Close shuts the browser down.
func (r *Renderer) Close() {
	r.allocCancel()
}

// Fetch navigates to the URL and returns the rendered DOM.
func (r *Renderer) Fetch(ctx context.Context, req analyzer.FetchRequest) (analyzer.FetchResponse, error) {
	if err := r.acquireSlot(ctx); err != nil {
		return analyzer.FetchResponse{}, err
	}
	defer r.releaseSlot()

	tabCtx, tabCancel := chromedp.NewContext(r.allocator)
	defer tabCancel()

	budget := r.cfg.NavigationTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < budget {
			budget = remaining
		}
	}
	tabCtx, cancel := context.WithTimeout(tabCtx, budget)
	defer cancel()

	doc := &documentResponse{}
	chromedp.ListenTarget(tabCtx, doc.observe)

	start := time.Now()
	var rendered, location string
	err := chromedp.Run(tabCtx,
		r.prepare(req.Headers),
		chromedp.Navigate(req.URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		return analyzer.FetchResponse{}, fmt.Errorf("render %s: %w", req.URL, err)
	}

	status, headers, finalURL := doc.result(req.URL, location)
	return analyzer.FetchResponse{
		URL:          finalURL,
		StatusCode:   status,
		Headers:      headers,
		Body:         []byte(rendered),
		Duration:     time.Since(start),
		UsedHeadless: true,
	}, nil
}

func (r *Renderer) prepare(headers http.Header) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if err := network.Enable().Do(ctx); err != nil {
			return fmt.Errorf("enable network domain: %w", err)
		}
		if r.cfg.UserAgent != "" {
			if err := emulation.SetUserAgentOverride(r.cfg.UserAgent).Do(ctx); err != nil {
				return fmt.Errorf("set user-agent: %w", err)
			}
		}
		if len(headers) > 0 {
			if err := network.SetExtraHTTPHeaders(networkHeaders(headers)).Do(ctx); err != nil {
				return fmt.Errorf("set extra headers: %w", err)
			}
		}
		return nil
	})
}

func (r *Renderer) acquireSlot(ctx context.Context) error {
	if r.slots == nil {
		return nil
	}
	select {
	case r.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for render slot: %w", ctx.Err())
	}
}

func (r *Renderer) releaseSlot() {
	if r.slots == nil {
		return
	}
	<-r.slots
}

// documentResponse records the status and headers of the main document.
// The first document response fixes the main frame; documents loaded by
// other frames are ignored.
type documentResponse struct {
	mu        sync.Mutex
	mainFrame cdp.FrameID
	status    int
	headers   http.Header
	url       string
}

func (d *documentResponse) observe(ev any) {
	resp, ok := ev.(*network.EventResponseReceived)
	if !ok || resp.Type != network.ResourceTypeDocument || resp.Response == nil {
		return
	}
	headers := http.Header{}
	for key, value := range resp.Response.Headers {
		switch v := value.(type) {
		case string:
			headers.Add(key, v)
		case []any:
			for _, entry := range v {
				headers.Add(key, fmt.Sprint(entry))
			}
		default:
			headers.Add(key, fmt.Sprint(v))
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mainFrame == "" {
		d.mainFrame = resp.FrameID
	}
	if resp.FrameID != d.mainFrame {
		return
	}
	// Redirect chains emit one document response per hop; the first is the
	// navigation target and the last is what got rendered.
	d.status = int(resp.Response.Status)
	d.headers = headers
	d.url = resp.Response.URL
}

// result falls back to the browser location, then the requested URL, and
// reports 200 when no document response was observed.
func (d *documentResponse) result(requested, location string) (int, http.Header, string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	headers := d.headers.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	finalURL := d.url
	if finalURL == "" {
		finalURL = location
	}
	if finalURL == "" {
		finalURL = requested
	}
	return status, headers, finalURL
}

func networkHeaders(h http.Header) network.Headers {
	out := network.Headers{}
	for key, values := range h {
		switch len(values) {
		case 0:
		case 1:
			out[key] = values[0]
		default:
			out[key] = append([]string(nil), values...)
		}
	}
	return out
}
