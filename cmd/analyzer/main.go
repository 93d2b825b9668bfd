package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/acquire"
	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/api"
	"github.com/JakeFAU/hackathon-analyzer/internal/clock/system"
	"github.com/JakeFAU/hackathon-analyzer/internal/config"
	"github.com/JakeFAU/hackathon-analyzer/internal/discovery"
	"github.com/JakeFAU/hackathon-analyzer/internal/extract"
	collyfetcher "github.com/JakeFAU/hackathon-analyzer/internal/fetcher/colly"
	headlessfetcher "github.com/JakeFAU/hackathon-analyzer/internal/fetcher/headless"
	"github.com/JakeFAU/hackathon-analyzer/internal/headless/detector"
	"github.com/JakeFAU/hackathon-analyzer/internal/id/uuid"
	"github.com/JakeFAU/hackathon-analyzer/internal/logging"
	"github.com/JakeFAU/hackathon-analyzer/internal/pipeline"
	"github.com/JakeFAU/hackathon-analyzer/internal/policy/ratelimit"
	"github.com/JakeFAU/hackathon-analyzer/internal/search/duckduckgo"
	"github.com/JakeFAU/hackathon-analyzer/internal/tracing"
)

const serviceName = "Hackathon Analyzer"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	analyzeName := flag.String("analyze", "", "Analyze one hackathon, print the JSON result and exit")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(logging.Config{Development: cfg.Logging.Development, Level: cfg.Logging.Level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil && !errors.Is(syncErr, syscall.EINVAL) {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	tp, err := tracing.Init(context.Background(), serviceName, version)
	if err != nil {
		logger.Warn("tracer init failed", zap.Error(err))
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	app, err := build(cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		logger.Sync() //nolint:errcheck // flushing before exit
		os.Exit(1)
	}
	defer app.close()

	if *analyzeName != "" {
		if !analyzeOnce(context.Background(), app.pipeline, *analyzeName, os.Stdout, logger) {
			logger.Sync() //nolint:errcheck // flushing before exit
			os.Exit(1)
		}
		return
	}
	serve(cfg, app, logger)
}

type application struct {
	pipeline *pipeline.Pipeline
	closers  []func()
}

func (a *application) close() {
	for _, fn := range a.closers {
		fn()
	}
}

func build(cfg config.Config, logger *zap.Logger) (*application, error) {
	app := &application{}

	searcher := duckduckgo.New(duckduckgo.Config{
		Endpoint:   cfg.Search.Endpoint,
		UserAgent:  cfg.HTTP.UserAgent,
		Timeout:    cfg.SearchTimeout(),
		MaxResults: cfg.Search.MaxResults,
	})
	discoverer := discovery.New(searcher, discovery.Config{
		Timeout:    cfg.SearchTimeout(),
		MaxResults: cfg.Search.MaxResults,
	}, logger.Named("discovery"))

	mode, err := extract.ParseMode(cfg.Extract.Mode)
	if err != nil {
		return nil, err
	}
	probe := collyfetcher.New(collyfetcher.Config{
		UserAgent:     cfg.HTTP.UserAgent,
		RespectRobots: cfg.HTTP.RespectRobots,
		Timeout:       cfg.FetchTimeout(),
	})

	var (
		headless analyzer.Fetcher
		detect   analyzer.HeadlessDetector
	)
	if cfg.Headless.Enabled {
		renderer, err := headlessfetcher.NewRenderer(headlessfetcher.Config{
			MaxParallel:       cfg.Headless.MaxParallel,
			UserAgent:         cfg.HTTP.UserAgent,
			NavigationTimeout: cfg.NavigationTimeout(),
		})
		if err != nil {
			logger.Warn("headless renderer init failed", zap.Error(err))
		} else {
			headless = renderer
			detect = detector.NewHeuristic(cfg.Headless.PromotionThreshold)
			app.closers = append(app.closers, renderer.Close)
		}
	}

	var throttle analyzer.Throttle
	if cfg.HTTP.PerHostRPS > 0 {
		throttle = ratelimit.New(ratelimit.Config{
			PerHostRPS:   cfg.HTTP.PerHostRPS,
			PerHostBurst: cfg.HTTP.PerHostBurst,
		})
	}

	acquirer := acquire.New(
		probe,
		headless,
		detect,
		throttle,
		extract.New(mode, cfg.Extract.MaxChars),
		acquire.Config{Timeout: cfg.FetchTimeout()},
		logger.Named("acquire"),
	)

	p, err := pipeline.New(discoverer, acquirer, system.New(), logger.Named("pipeline"))
	if err != nil {
		app.close()
		return nil, err
	}
	app.pipeline = p
	return app, nil
}

// analyzeOnce prints the same envelope the HTTP API returns and reports
// whether the analysis succeeded.
func analyzeOnce(ctx context.Context, runner api.Runner, name string, out io.Writer, logger *zap.Logger) bool {
	env := api.Envelope{Success: true}
	report, err := runner.Run(ctx, name)
	switch {
	case errors.Is(err, analyzer.ErrMissingInput):
		env = api.Envelope{Error: api.MsgMissingName}
	case err != nil:
		logger.Error("analysis failed", zap.Error(err))
		env = api.Envelope{Error: api.MsgAnalysisFailed}
	default:
		env.Data = &report
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(env); encErr != nil {
		logger.Error("write result failed", zap.Error(encErr))
		return false
	}
	return env.Success
}

func serve(cfg config.Config, app *application, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiServer := api.NewServer(
		app.pipeline,
		uuid.New(),
		api.Info{Service: serviceName, Version: version},
		cfg,
		logger.Named("api"),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(apiServer.Handler(), "api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
