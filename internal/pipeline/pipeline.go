// Package pipeline runs discovery, acquisition, classification and
// synthesis for one hackathon name and assembles the report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/classifier"
	"github.com/JakeFAU/hackathon-analyzer/internal/discovery"
	"github.com/JakeFAU/hackathon-analyzer/internal/lexicon"
	"github.com/JakeFAU/hackathon-analyzer/internal/metrics"
	"github.com/JakeFAU/hackathon-analyzer/internal/synth"
)

const tracerName = "github.com/JakeFAU/hackathon-analyzer/internal/pipeline"

// Analysis outcomes reported to metrics.
const (
	OutcomeOK           = "ok"
	OutcomeMissingInput = "missing_input"
	OutcomeInternal     = "internal_error"
)

// Discoverer finds candidate pages. It never fails.
type Discoverer interface {
	Discover(ctx context.Context, name string) discovery.Outcome
}

// Acquirer returns page text, or "" when nothing could be read.
type Acquirer interface {
	Acquire(ctx context.Context, url string) string
}

// Pipeline is safe for concurrent use; runs share no mutable state.
type Pipeline struct {
	discoverer Discoverer
	acquirer   Acquirer
	clock      analyzer.Clock
	logger     *zap.Logger
	tracer     trace.Tracer

	classify   func(combined string) (analyzer.Domain, []analyzer.Technology)
	synthesize func(name string, domain analyzer.Domain, techs []analyzer.Technology, combined string) synth.Fields
}

// New validates the lexicon and builds a Pipeline.
func New(discoverer Discoverer, acquirer Acquirer, clock analyzer.Clock, logger *zap.Logger) (*Pipeline, error) {
	if discoverer == nil || acquirer == nil || clock == nil {
		return nil, errors.New("pipeline: discoverer, acquirer and clock are required")
	}
	if err := lexicon.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: invalid lexicon: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		discoverer: discoverer,
		acquirer:   acquirer,
		clock:      clock,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
		classify:   classifier.Classify,
		synthesize: synth.Synthesize,
	}, nil
}

// Run analyzes name. It fails only with analyzer.ErrMissingInput or
// analyzer.ErrInternal.
func (p *Pipeline) Run(ctx context.Context, name string) (analyzer.Report, error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(attribute.String("hackathon.name", name)))
	defer span.End()

	report, err := p.run(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	outcome := OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, analyzer.ErrMissingInput):
		outcome = OutcomeMissingInput
	default:
		outcome = OutcomeInternal
	}
	metrics.ObserveAnalysis(outcome, time.Since(start))
	return report, err
}

func (p *Pipeline) run(ctx context.Context, name string) (analyzer.Report, error) {
	if strings.TrimSpace(name) == "" {
		return analyzer.Report{}, analyzer.ErrMissingInput
	}
	logger := p.logger.With(zap.String("hackathon", name))

	outcome := p.discover(ctx, name)
	var (
		sourceURL *string
		page      string
	)
	if top, ok := outcome.Top(); ok {
		link := top.Link
		sourceURL = &link
		page = p.acquire(ctx, link)
	}
	logger.Info("sources gathered",
		zap.String("source", string(outcome.Source)),
		zap.Int("hits", len(outcome.Hits)),
		zap.Int("page_chars", len(page)),
	)

	_, span := p.tracer.Start(ctx, "pipeline.Assemble")
	report, domain, err := p.assemble(name, outcome.Hits, page)
	span.SetAttributes(attribute.String("hackathon.domain", string(domain)))
	span.End()
	if err != nil {
		logger.Error("analysis failed", zap.Error(err))
		return analyzer.Report{}, err
	}
	report.SourceURL = sourceURL
	report.AnalyzedAt = p.clock.Now().Format(analyzer.AnalyzedAtLayout)
	logger.Info("analysis complete",
		zap.String("domain", string(domain)),
		zap.Int("technologies", len(report.Technologies)),
	)
	return report, nil
}

func (p *Pipeline) discover(ctx context.Context, name string) discovery.Outcome {
	ctx, span := p.tracer.Start(ctx, "pipeline.Discover")
	defer span.End()
	outcome := p.discoverer.Discover(ctx, name)
	span.SetAttributes(
		attribute.String("discovery.source", string(outcome.Source)),
		attribute.Int("discovery.hits", len(outcome.Hits)),
	)
	return outcome
}

func (p *Pipeline) acquire(ctx context.Context, url string) string {
	ctx, span := p.tracer.Start(ctx, "pipeline.Acquire", trace.WithAttributes(attribute.String("url.full", url)))
	defer span.End()
	page := p.acquirer.Acquire(ctx, url)
	span.SetAttributes(attribute.Int("page.chars", len(page)))
	return page
}

// assemble runs the pure stages, converting a panic into ErrInternal.
func (p *Pipeline) assemble(
	name string,
	hits []analyzer.SearchHit,
	page string,
) (report analyzer.Report, domain analyzer.Domain, err error) {
	defer func() {
		if r := recover(); r != nil {
			report, domain = analyzer.Report{}, ""
			err = fmt.Errorf("%w: %v", analyzer.ErrInternal, r)
		}
	}()

	combined := classifier.CombinedText(name, hits, page)
	domain, techs := p.classify(combined)
	fields := p.synthesize(name, domain, techs, combined)

	return analyzer.Report{
		HackathonName:     name,
		Summary:           fields.Summary,
		Technologies:      techs,
		Timeline:          fields.Timeline,
		Requirements:      fields.Requirements,
		ReferenceProjects: fields.ReferenceProjects,
		ToolGuides:        fields.ToolGuides,
		Tips:              fields.Tips,
	}, domain, nil
}
