// Package metrics defines prometheus metrics to expose
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mockllm_api_stream_duration_seconds",
			Help:    "Total time taken for a stream in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 15, 20, 30, 60},
		},
		[]string{"branch"},
	)

	StreamsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_streams_total",
			Help: "Total number of streams opened",
		},
		[]string{"branch"},
	)

	StreamOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_stream_outcomes_total",
			Help: "Streams finished, by terminal outcome",
		},
		[]string{"branch", "outcome"},
	)

	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_events_emitted_total",
			Help: "SSE events written to clients",
		},
		[]string{"kind"},
	)

	CompletionTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_completion_tokens_total",
			Help: "Total number of completion tokens streamed",
		},
		[]string{"branch"},
	)

	TotalTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_total_tokens_total",
			Help: "Total number of tokens streamed",
		},
		[]string{"branch"},
	)

	InflightStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mockllm_api_inflight_streams",
			Help: "Current in-flight streams",
		},
	)

	ResponseCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockllm_api_status_code",
			Help: "Status Codes",
		},
		[]string{"path", "status_code"},
	)
)
