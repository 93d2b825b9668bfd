// Package main hosts the hackathon analyzer entrypoint.
//
// Architecture overview:
//   - HTTP API: internal/api.Server exposes POST /api/analyze-hackathon, GET /api/health, probes and /metrics.
//     Each request runs the pipeline synchronously and answers with the {"success","data","error"} envelope.
//   - Pipeline: internal/pipeline runs discovery (DuckDuckGo HTML search through colly, then the static fallback
//     table, then a synthetic hit), acquisition of the top hit, keyword classification and template synthesis.
//   - Acquisition: the colly fetcher performs a single GET bounded by http.timeout_seconds. When headless.enabled
//     is set, the heuristic detector may promote client-rendered shells to a chromedp render. Text is extracted
//     with goquery (or go-readability in readability mode) and capped at extract.max_chars.
//   - Configuration & plumbing: Viper populates config from env/files; zap provides structured logging; Prometheus
//     metrics are exported via the metrics middleware and /metrics handler.
//
// Operational notes:
//   - Every degraded stage falls back silently: a failed search uses the fallback table, a failed fetch yields an
//     empty page. Only an empty name (400) or an internal panic (500) fail a request.
//   - No state is kept between requests; the process is safe to scale horizontally.
//   - The server reacts to SIGINT/SIGTERM with a graceful shutdown.
//
// Quick checklist:
//   - Configure env vars: ANALYZER_SERVER_PORT or PORT, ANALYZER_HTTP_TIMEOUT_SECONDS, ANALYZER_EXTRACT_MODE,
//     ANALYZER_HEADLESS_ENABLED, ANALYZER_LOGGING_DEVELOPMENT.
//   - Run the server: go run ./cmd/analyzer -config config.yaml
//   - One-shot: go run ./cmd/analyzer -analyze "HackMIT" prints the JSON envelope to stdout.
package main
