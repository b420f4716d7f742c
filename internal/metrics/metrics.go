// Package metrics exposes judging counters and score distributions in the
// Prometheus text format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/haiku-judge/internal/haiku"
)

const namespace = "haiku_judge"

// Outcome labels for judged submissions.
const (
	OutcomeJudged = "judged"
	OutcomeFailed = "failed"
	OutcomeDryRun = "dry_run"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry    *prom.Registry
	submissions *prom.CounterVec
	points      *prom.HistogramVec
	generation  prom.Histogram
	requests    *prom.CounterVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prom.NewRegistry()

	m := &Metrics{
		registry: reg,
		submissions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions processed by judging, by outcome.",
		}, []string{"outcome"}),
		points: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "points",
			Help:      "Total points awarded per scored text, by source.",
			Buckets:   prom.LinearBuckets(0, 5, haiku.MaxTotalPoints/5+1),
		}, []string{"source"}),
		generation: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent waiting for the model, retries included.",
			Buckets:   prom.ExponentialBuckets(0.25, 2, 9),
		}),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "code"}),
	}

	reg.MustRegister(
		m.submissions,
		m.points,
		m.generation,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// SubmissionJudged counts a stored result and records its total.
func (m *Metrics) SubmissionJudged(points int) {
	m.submissions.WithLabelValues(OutcomeJudged).Inc()
	m.points.WithLabelValues("judge").Observe(float64(points))
}

// SubmissionScoredDryRun counts a result that was scored but not stored.
func (m *Metrics) SubmissionScoredDryRun(points int) {
	m.submissions.WithLabelValues(OutcomeDryRun).Inc()
	m.points.WithLabelValues("judge").Observe(float64(points))
}

// SubmissionFailed counts a submission whose judging failed.
func (m *Metrics) SubmissionFailed() {
	m.submissions.WithLabelValues(OutcomeFailed).Inc()
}

// TextScored records a total from the public scoring endpoint.
func (m *Metrics) TextScored(points int) {
	m.points.WithLabelValues("score").Observe(float64(points))
}

// GenerationObserved records one model round trip.
func (m *Metrics) GenerationObserved(d time.Duration) {
	m.generation.Observe(d.Seconds())
}

// RequestServed counts one HTTP response.
func (m *Metrics) RequestServed(method string, status int) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
