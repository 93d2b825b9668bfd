// Package api hosts the HTTP server for the analyzer. Routes:
//   - POST /api/analyze-hackathon runs one analysis and returns the
//     {"success","data","error"} envelope.
//   - GET /api/health reports service identity for the frontend.
//   - GET /healthz and /readyz for Kubernetes probes.
//   - GET /metrics for Prometheus scraping.
package api
