// Package track records submission outcomes. Trackers are fire-and-forget:
// they never block the submit flow and never surface errors to it.
package track

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stoneworks/lead-intake/pkg/logging"
)

// Metrics exposes counters for the quote submission pipeline.
type Metrics struct {
	eventsTotal *prometheus.CounterVec
}

// NewMetrics registers the pipeline counters. A nil registerer falls back to
// the Prometheus default.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stoneworks",
			Subsystem: "intake",
			Name:      "events_total",
			Help:      "Total quote form events by name and service",
		}, []string{"event", "service"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.eventsTotal)
	return m
}

// Track increments the event counter. Satisfies the submission pipeline's
// Tracker.
func (m *Metrics) Track(event string, params map[string]string) {
	if m == nil {
		return
	}
	service := params["service"]
	if service == "" {
		service = "unknown"
	}
	m.eventsTotal.WithLabelValues(event, service).Inc()
}

// LogTracker writes events to the structured log. Used where no metrics
// backend is wired, typically local runs.
type LogTracker struct {
	logger *logging.Logger
}

// NewLogTracker builds a tracker that logs every event.
func NewLogTracker(logger *logging.Logger) *LogTracker {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogTracker{logger: logger}
}

// Track logs the event with its parameters.
func (t *LogTracker) Track(event string, params map[string]string) {
	if t == nil {
		return
	}
	args := make([]any, 0, len(params)*2+2)
	args = append(args, "event", event)
	for k, v := range params {
		args = append(args, k, v)
	}
	t.logger.Info("track", args...)
}
