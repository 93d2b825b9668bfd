package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
	"github.com/JakeFAU/hackathon-analyzer/internal/clock/system"
	"github.com/JakeFAU/hackathon-analyzer/internal/config"
	"github.com/JakeFAU/hackathon-analyzer/internal/discovery"
	"github.com/JakeFAU/hackathon-analyzer/internal/pipeline"
)

type fakeRunner struct {
	mu     sync.Mutex
	report analyzer.Report
	err    error
	panic  any
	names  []string
	ctxErr error
}

func (f *fakeRunner) Run(ctx context.Context, name string) (analyzer.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panic != nil {
		panic(f.panic)
	}
	f.names = append(f.names, name)
	f.ctxErr = ctx.Err()
	return f.report, f.err
}

type fakeIDGen struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (f *fakeIDGen) NewID() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if len(f.ids) == 0 {
		return "", errors.New("no ids left")
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id, nil
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:                  5000,
			RequestTimeoutSeconds: 5,
			CORSOrigins:           []string{"https://frontend.example"},
		},
	}
}

func newTestServer(runner Runner) *Server {
	idGen := &fakeIDGen{ids: []string{"req-1", "req-2", "req-3"}}
	return NewServer(runner, idGen, Info{Service: "Hackathon Analyzer", Version: "test"}, testConfig(), zap.NewNop())
}

func postAnalyze(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-hackathon", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestAnalyzeHackathonSuccess(t *testing.T) {
	t.Parallel()

	link := "https://hackmit.org"
	runner := &fakeRunner{report: analyzer.Report{HackathonName: "HackMIT", SourceURL: &link, AnalyzedAt: "2025-09-13 10:00:00"}}
	s := newTestServer(runner)

	rec, env := postAnalyze(t, s, `{"hackathon_name":"HackMIT"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.True(t, env.Success)
	require.Empty(t, env.Error)
	require.NotNil(t, env.Data)
	require.Equal(t, "HackMIT", env.Data.HackathonName)
	require.Equal(t, []string{"HackMIT"}, runner.names)
	require.NoError(t, runner.ctxErr)
	require.NotContains(t, rec.Body.String(), `"error"`)
}

func TestAnalyzeHackathonMissingName(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: analyzer.ErrMissingInput}
	s := newTestServer(runner)

	for _, body := range []string{`{"hackathon_name":""}`, `{}`, `{"hackathon_name":"  "}`} {
		rec, env := postAnalyze(t, s, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.False(t, env.Success)
		require.Equal(t, MsgMissingName, env.Error)
		require.Nil(t, env.Data)
	}
}

func TestAnalyzeHackathonInvalidBody(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	s := newTestServer(runner)

	for _, body := range []string{"{invalid", "", `{"hackathon_name": 42}`, `["HackMIT"]`} {
		rec, env := postAnalyze(t, s, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Equal(t, MsgInvalidBody, env.Error)
	}
	require.Empty(t, runner.names)
}

func TestAnalyzeHackathonInternalError(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: fmt.Errorf("%w: boom", analyzer.ErrInternal)}
	s := newTestServer(runner)

	rec, env := postAnalyze(t, s, `{"hackathon_name":"HackMIT"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, MsgAnalysisFailed, env.Error)
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeRunner{panic: "unexpected"})

	rec, env := postAnalyze(t, s, `{"hackathon_name":"HackMIT"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, MsgInternal, env.Error)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeRunner{})

	tests := []struct {
		path string
		want map[string]string
	}{
		{path: "/api/health", want: map[string]string{
			"status": "healthy", "service": "Hackathon Analyzer", "version": "test", "cost": "$0.00",
		}},
		{path: "/healthz", want: map[string]string{"status": "ok"}},
		{path: "/readyz", want: map[string]string{"status": "ready"}},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		require.Equal(t, http.StatusOK, rec.Code, tt.path)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, tt.want, got)
	}
}

func TestReadyzWithoutRunner(t *testing.T) {
	t.Parallel()

	s := NewServer(nil, nil, Info{}, testConfig(), nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeRunner{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeRunner{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, "req-1", rec.Header().Get(requestIDHeader))

	const inbound = "0190b2a4-7c1e-7a3b-9f00-1234567890ab"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, inbound)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, inbound, rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "bogus id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, "req-2", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeRunner{})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze-hackathon", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	require.Equal(t, "https://frontend.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

type slowRunner struct {
	done chan error
}

func (r *slowRunner) Run(ctx context.Context, _ string) (analyzer.Report, error) {
	time.Sleep(100 * time.Millisecond)
	r.done <- ctx.Err()
	return analyzer.Report{}, nil
}

func TestRequestTimeoutDoesNotCancelRun(t *testing.T) {
	t.Parallel()

	runner := &slowRunner{done: make(chan error, 1)}
	s := NewServer(runner, nil, Info{}, testConfig(), nil)
	handler := timeoutMiddleware(20 * time.Millisecond)(http.HandlerFunc(s.analyzeHackathon))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-hackathon", bytes.NewBufferString(`{"hackathon_name":"HackMIT"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"success":false,"error":"request timed out"}`, rec.Body.String())
	require.NoError(t, <-runner.done)
}

func TestAnalyzeWithPipeline(t *testing.T) {
	t.Parallel()

	p, err := pipeline.New(
		discovery.New(nil, discovery.Config{}, nil),
		emptyAcquirer{},
		system.NewFrozen(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
		nil,
	)
	require.NoError(t, err)
	s := newTestServer(p)

	rec, env := postAnalyze(t, s, `{"hackathon_name":"NASA Space Apps"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.Equal(t, "https://www.spaceappschallenge.org", *env.Data.SourceURL)
	require.Equal(t, "2025-01-02 03:04:05", env.Data.AnalyzedAt)

	var raw struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{
		"hackathon_name", "source_url", "analyzed_at", "summary", "technologies",
		"timeline", "requirements", "reference_projects", "tool_guides", "tips",
	} {
		require.Contains(t, raw.Data, key)
	}
}

type emptyAcquirer struct{}

func (emptyAcquirer) Acquire(context.Context, string) string { return "" }
