// Package acquire fetches a page and reduces it to bounded plain text.
//
// Every failure collapses to an empty string: the analysis continues
// without page content rather than failing.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/metrics"
)

// DefaultTimeout bounds a whole acquisition, promotion included.
const DefaultTimeout = 15 * time.Second

// Acquisition results reported to metrics.
const (
	ResultOK           = "ok"
	ResultInvalidURL   = "invalid_url"
	ResultThrottled    = "throttled"
	ResultFetchError   = "fetch_error"
	ResultBadStatus    = "bad_status"
	ResultExtractError = "extract_error"
)

// Extractor turns an HTML body into text.
type Extractor interface {
	Extract(body []byte, pageURL string) (string, error)
}

// Config controls acquisition.
type Config struct {
	Timeout time.Duration
	Headers http.Header
}

// Acquirer runs the fetch, optional headless promotion and extraction.
type Acquirer struct {
	probe     analyzer.Fetcher
	headless  analyzer.Fetcher
	detector  analyzer.HeadlessDetector
	throttle  analyzer.Throttle
	extractor Extractor
	cfg       Config
	logger    *zap.Logger
}

// New constructs an Acquirer. headless, detector and throttle are optional.
func New(
	probe analyzer.Fetcher,
	headless analyzer.Fetcher,
	detector analyzer.HeadlessDetector,
	throttle analyzer.Throttle,
	extractor Extractor,
	cfg Config,
	logger *zap.Logger,
) *Acquirer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Acquirer{
		probe:     probe,
		headless:  headless,
		detector:  detector,
		throttle:  throttle,
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}

var errBadStatus = errors.New("non-success status")

// Acquire returns the page text for rawURL, or "" when anything goes wrong.
func (a *Acquirer) Acquire(ctx context.Context, rawURL string) string {
	text, result, fetched, err := a.acquire(ctx, rawURL)
	metrics.ObserveAcquisition(rawURL, result, fetched)
	if err != nil {
		if rawURL != "" {
			a.logger.Warn("page acquisition failed",
				zap.String("url", rawURL),
				zap.String("result", result),
				zap.Error(err),
			)
		}
		return ""
	}
	a.logger.Debug("page acquired", zap.String("url", rawURL), zap.Int("chars", len(text)))
	return text
}

func (a *Acquirer) acquire(ctx context.Context, rawURL string) (string, string, int, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", ResultInvalidURL, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	if a.throttle != nil {
		if err := a.throttle.Wait(ctx, rawURL); err != nil {
			return "", ResultThrottled, 0, err
		}
	}

	resp, err := a.fetch(ctx, a.probe, rawURL)
	if err != nil {
		return "", ResultFetchError, 0, err
	}
	if !resp.Success() {
		return "", ResultBadStatus, 0, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}
	resp = a.maybePromote(ctx, rawURL, resp)

	text, err := a.extractor.Extract(resp.Body, resp.URL)
	if err != nil {
		return "", ResultExtractError, len(resp.Body), fmt.Errorf("extract: %w", err)
	}
	return text, ResultOK, len(resp.Body), nil
}

func (a *Acquirer) fetch(ctx context.Context, fetcher analyzer.Fetcher, rawURL string) (analyzer.FetchResponse, error) {
	if fetcher == nil {
		return analyzer.FetchResponse{}, errors.New("no fetcher configured")
	}
	resp, err := fetcher.Fetch(ctx, analyzer.FetchRequest{URL: rawURL, Headers: a.cfg.Headers})
	if err != nil {
		return analyzer.FetchResponse{}, fmt.Errorf("fetch: %w", err)
	}
	if resp.URL == "" {
		resp.URL = rawURL
	}
	return resp, nil
}

func (a *Acquirer) maybePromote(ctx context.Context, rawURL string, resp analyzer.FetchResponse) analyzer.FetchResponse {
	if a.headless == nil || a.detector == nil || !a.detector.ShouldPromote(resp) {
		return resp
	}
	rendered, err := a.fetch(ctx, a.headless, rawURL)
	if err != nil {
		a.logger.Warn("headless promotion failed", zap.String("url", rawURL), zap.Error(err))
		return resp
	}
	if !rendered.Success() {
		a.logger.Warn("headless promotion returned non-success status",
			zap.String("url", rawURL),
			zap.Int("status", rendered.StatusCode),
		)
		return resp
	}
	metrics.ObserveHeadlessPromotion()
	a.logger.Info("headless promotion applied", zap.String("url", rawURL))
	rendered.UsedHeadless = true
	return rendered
}

// ValidateURL accepts absolute http and https URLs with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url has no host")
	}
	return nil
}
