// Package discovery finds candidate source pages for a hackathon name.
//
// Discovery never fails: a live search is tried first, then a static table
// of well-known hackathons, then a synthetic hit built from the name. The
// tier that produced the hits is reported in Outcome.Source.
package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/metrics"
)

// Source identifies which tier produced an Outcome.
type Source string

// Discovery tiers in precedence order.
const (
	SourceLive      Source = "live"
	SourceFallback  Source = "fallback"
	SourceSynthetic Source = "synthetic"
)

// Outcome is the tagged result of a discovery run. Hits is never empty.
type Outcome struct {
	Source Source
	Hits   []analyzer.SearchHit
}

// Top returns the highest ranked hit.
func (o Outcome) Top() (analyzer.SearchHit, bool) {
	if len(o.Hits) == 0 {
		return analyzer.SearchHit{}, false
	}
	return o.Hits[0], true
}

// MaxHits is the most live results a discovery keeps.
const MaxHits = 3

// Config controls the live search tier.
type Config struct {
	Timeout    time.Duration
	MaxResults int
}

// Discoverer runs the three-tier lookup.
type Discoverer struct {
	searcher analyzer.Searcher
	cfg      Config
	logger   *zap.Logger
}

// New builds a Discoverer. A nil searcher disables the live tier.
func New(searcher analyzer.Searcher, cfg Config, logger *zap.Logger) *Discoverer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > MaxHits {
		cfg.MaxResults = MaxHits
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{searcher: searcher, cfg: cfg, logger: logger}
}

// Query returns the search phrase used for name.
func Query(name string) string {
	return name + " official hackathon"
}

// Discover returns at least one hit for name.
func (d *Discoverer) Discover(ctx context.Context, name string) Outcome {
	outcome := d.discover(ctx, name)
	metrics.ObserveDiscovery(string(outcome.Source))
	d.logger.Debug("discovery finished",
		zap.String("hackathon", name),
		zap.String("source", string(outcome.Source)),
		zap.Int("hits", len(outcome.Hits)),
	)
	return outcome
}

func (d *Discoverer) discover(ctx context.Context, name string) Outcome {
	if d.searcher == nil {
		return Fallback(name)
	}
	searchCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	hits, err := d.searcher.Search(searchCtx, Query(name))
	if err != nil {
		d.logger.Warn("live search failed; using fallback", zap.String("hackathon", name), zap.Error(err))
		return Fallback(name)
	}
	if len(hits) == 0 {
		d.logger.Info("live search returned no hits; using fallback", zap.String("hackathon", name))
		return Fallback(name)
	}
	if len(hits) > d.cfg.MaxResults {
		hits = hits[:d.cfg.MaxResults]
	}
	return Outcome{Source: SourceLive, Hits: hits}
}
