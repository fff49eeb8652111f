package stream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mockllm-api/internal/generator"
	"mockllm-api/internal/middleware"
	"mockllm-api/internal/routers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func fastGenerator(opts ...generator.Option) *generator.Generator {
	opts = append([]generator.Option{
		generator.WithSleep(func(ctx context.Context, d time.Duration) error {
			return ctx.Err()
		}),
	}, opts...)
	return generator.New(opts...)
}

func newTestServer(gen *generator.Generator, frontendDir string) *echo.Echo {
	e := echo.New()
	log := zap.NewNop().Sugar()
	base := e.Group("")
	base.Use(middleware.NewRecoverMiddleware(log))
	base.Use(middleware.NewTrackMiddleware(log))
	routers.RegisterStreamRoutes(base, gen, frontendDir)
	return e
}

type sseRecord struct {
	event string
	data  string
}

func parseSSE(t *testing.T, body string) []sseRecord {
	t.Helper()
	var records []sseRecord
	for _, block := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		lines := strings.SplitN(block, "\n", 2)
		if len(lines) != 2 {
			t.Fatalf("malformed SSE record: %q", block)
		}
		if !strings.HasPrefix(lines[0], "event: ") || !strings.HasPrefix(lines[1], "data: ") {
			t.Fatalf("malformed SSE record: %q", block)
		}
		records = append(records, sseRecord{
			event: strings.TrimPrefix(lines[0], "event: "),
			data:  strings.TrimPrefix(lines[1], "data: "),
		})
	}
	return records
}

func TestStreamEndpoint(t *testing.T) {
	e := newTestServer(fastGenerator(), "frontend")

	req := httptest.NewRequest(http.MethodGet, "/api/llm/stream?prompt=hello", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	records := parseSSE(t, rec.Body.String())
	if len(records) != 10 {
		t.Fatalf("got %d SSE records, want 10", len(records))
	}
	for i := 0; i < 3; i++ {
		if records[i].event != "thinking" {
			t.Fatalf("record %d event = %q, want thinking", i, records[i].event)
		}
	}
	for i := 3; i < 9; i++ {
		if records[i].event != "chunk" {
			t.Fatalf("record %d event = %q, want chunk", i, records[i].event)
		}
	}
	if records[9].event != "done" {
		t.Fatalf("last record event = %q, want done", records[9].event)
	}

	var done struct {
		Message  string `json:"message"`
		Metadata struct {
			RequestID        string  `json:"request_id"`
			TotalTokens      int     `json:"total_tokens"`
			CompletionTokens int     `json:"completion_tokens"`
			TimeTaken        float64 `json:"time_taken"`
		} `json:"metadata"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(records[9].data), &done); err != nil {
		t.Fatalf("done payload is not valid JSON: %v", err)
	}
	if done.Message != "Response complete" {
		t.Errorf("done message = %q", done.Message)
	}
	if len(done.Metadata.RequestID) != 28 {
		t.Errorf("request_id = %q, want a 28-char id", done.Metadata.RequestID)
	}
	if done.Metadata.TotalTokens < done.Metadata.CompletionTokens || done.Metadata.CompletionTokens == 0 {
		t.Errorf("implausible token counts: %+v", done.Metadata)
	}
	if _, err := time.Parse(time.RFC3339Nano, done.Timestamp); err != nil {
		t.Errorf("done timestamp %q is not RFC 3339: %v", done.Timestamp, err)
	}
}

func TestStreamEndpointErrorPrompt(t *testing.T) {
	// Force the probabilistic failure before the first thinking step.
	gen := fastGenerator(generator.WithRandSource(func() float64 { return 0 }))
	e := newTestServer(gen, "frontend")

	req := httptest.NewRequest(http.MethodGet, "/api/llm/stream?prompt=error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	records := parseSSE(t, rec.Body.String())
	if len(records) != 1 || records[0].event != "error" {
		t.Fatalf("expected a single error record, got %+v", records)
	}

	var payload struct {
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(records[0].data), &payload); err != nil {
		t.Fatalf("error payload is not valid JSON: %v", err)
	}
	if payload.Message != "An error occurred during processing: Simulated error" {
		t.Errorf("error message = %q", payload.Message)
	}
	if payload.RequestID == "" {
		t.Error("error payload missing request_id")
	}
}

func TestStreamEndpointMissingPrompt(t *testing.T) {
	e := newTestServer(fastGenerator(), "frontend")

	req := httptest.NewRequest(http.MethodGet, "/api/llm/stream", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body.Code != http.StatusBadRequest || body.Message == "" {
		t.Errorf("unexpected error body: %+v", body)
	}
}

// brokenPipeRecorder fails every write after the first n, standing in for a
// client that went away mid-stream.
type brokenPipeRecorder struct {
	*httptest.ResponseRecorder
	remaining int
}

func (r *brokenPipeRecorder) Write(b []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, errors.New("write: broken pipe")
	}
	r.remaining--
	return r.ResponseRecorder.Write(b)
}

func TestStreamClientDisconnect(t *testing.T) {
	e := newTestServer(fastGenerator(), "frontend")

	req := httptest.NewRequest(http.MethodGet, "/api/llm/stream?prompt=hello", nil)
	rec := &brokenPipeRecorder{ResponseRecorder: httptest.NewRecorder(), remaining: 2}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		e.ServeHTTP(rec, req)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after client disconnect")
	}

	records := parseSSE(t, rec.Body.String())
	if len(records) != 2 {
		t.Fatalf("got %d records before disconnect, want 2", len(records))
	}
	for _, r := range records {
		if r.event == "done" || r.event == "error" {
			t.Fatalf("terminal %q record written after disconnect", r.event)
		}
	}
}

func TestIndexServesLandingPage(t *testing.T) {
	dir := t.TempDir()
	page := "<!DOCTYPE html><html><body>demo</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	e := newTestServer(fastGenerator(), dir)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != page {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestIndexMissingLandingPage(t *testing.T) {
	e := newTestServer(fastGenerator(), t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
