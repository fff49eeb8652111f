// Package stream turns generator event sequences into live SSE responses.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mockllm-api/internal/generator"
	"mockllm-api/internal/metrics"
	"mockllm-api/internal/setup"
	"mockllm-api/internal/shared"

	"github.com/labstack/echo/v4"
)

type Manager struct {
	gen         *generator.Generator
	frontendDir string
}

func NewManager(gen *generator.Generator, frontendDir string) *Manager {
	return &Manager{gen: gen, frontendDir: frontendDir}
}

// StreamLLM serves GET /api/llm/stream. It pulls events from the generator
// one at a time, writing and flushing an SSE record per event so the client
// sees them as they are produced. The response ends when the generator emits
// its terminal event or the client goes away.
func (m *Manager) StreamLLM(cc echo.Context) error {
	c := cc.(*setup.Context)

	prompt := c.QueryParam("prompt")
	if prompt == "" {
		return c.JSON(http.StatusBadRequest, shared.APIError{
			Message: shared.ErrMissingPrompt.Err.Error(),
			Object:  "error",
			Type:    "BadRequest",
			Code:    http.StatusBadRequest,
		})
	}

	branch := generator.Classify(prompt)
	c.Log.Infow("stream_start", "branch", string(branch))
	metrics.StreamsStarted.WithLabelValues(string(branch)).Inc()
	metrics.InflightStreams.Inc()
	defer metrics.InflightStreams.Dec()

	setupSSEHeaders(c)

	// Canceling this ctx is how we tell the generator to stop once the
	// client disconnects or a write fails.
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	start := time.Now()
	outcome := "canceled"

	events := m.gen.Stream(ctx, prompt, c.Reqid)
	for ev := range events {
		if err := writeEvent(c, ev); err != nil {
			c.Log.Debugw("Client disconnected mid-stream", "error", err.Error())
			cancel()
			for range events {
				// Drain until the generator goroutine exits.
			}
			break
		}
		metrics.EventsEmitted.WithLabelValues(string(ev.Kind)).Inc()

		switch ev.Kind {
		case generator.KindDone:
			outcome = "done"
			if d, ok := ev.Data.(generator.DoneData); ok {
				metrics.TotalTokens.WithLabelValues(string(branch)).Add(float64(d.Metadata.TotalTokens))
				metrics.CompletionTokens.WithLabelValues(string(branch)).Add(float64(d.Metadata.CompletionTokens))
			}
		case generator.KindError:
			outcome = "error"
		}
	}

	duration := time.Since(start)
	metrics.StreamOutcomes.WithLabelValues(string(branch), outcome).Inc()
	metrics.StreamDuration.WithLabelValues(string(branch)).Observe(duration.Seconds())
	c.Log.Infow("stream_end", "branch", string(branch), "outcome", outcome, "duration", duration.String())
	return nil
}

func setupSSEHeaders(c *setup.Context) {
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)
}

func writeEvent(c *setup.Context, ev generator.Event) error {
	if err := c.Request().Context().Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev.Data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", ev.Kind, data); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}
