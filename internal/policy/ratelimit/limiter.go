// Package ratelimit throttles outbound page fetches per host.
package ratelimit

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/JakeFAU/hackathon-analyzer/internal/metrics"
)

// Config holds the per-host token bucket settings. A non-positive RPS
// disables throttling.
type Config struct {
	PerHostRPS   float64
	PerHostBurst int
}

// Limiter keeps one token bucket per host.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	minDelay time.Duration
}

// New creates a Limiter.
func New(cfg Config) *Limiter {
	limit := rate.Limit(cfg.PerHostRPS)
	if cfg.PerHostRPS <= 0 {
		limit = rate.Inf
	}
	burst := cfg.PerHostBurst
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		buckets:  make(map[string]*rate.Limiter),
		rps:      limit,
		burst:    burst,
		minDelay: time.Millisecond,
	}
}

// Wait blocks until the host of rawURL may be fetched or ctx ends.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	host := hostOf(rawURL)
	bucket := l.bucket(host)

	start := time.Now()
	if err := bucket.Wait(ctx); err != nil {
		return fmt.Errorf("throttle %s: %w", host, err)
	}
	if waited := time.Since(start); waited > l.minDelay {
		metrics.ObserveThrottleDelay(host, waited)
	}
	return nil
}

func (l *Limiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[host]
	if !ok {
		b = rate.NewLimiter(l.rps, l.burst)
		l.buckets[host] = b
	}
	return b
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}
