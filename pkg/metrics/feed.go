package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// FeedMetrics records how feed pages are assembled and how long they take.
type FeedMetrics struct {
	pages    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	items    *prometheus.HistogramVec
}

// NewFeedMetrics registers the feed metrics on the provided registerer.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	if reg == nil {
		return &FeedMetrics{}
	}
	pages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_pages_total",
		Help: "Feed pages served, by feed, strategy and outcome.",
	}, []string{"feed", "strategy", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feed_page_duration_seconds",
		Help:    "Time spent assembling a feed page.",
		Buckets: prometheus.DefBuckets,
	}, []string{"feed", "strategy"})
	items := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feed_page_items",
		Help:    "Number of items returned per feed page.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	}, []string{"feed"})
	reg.MustRegister(pages, duration, items)
	return &FeedMetrics{
		pages:    pages,
		duration: duration,
		items:    items,
	}
}

// ObservePage records one served page.
func (m *FeedMetrics) ObservePage(feed, strategy, outcome string, elapsed time.Duration, loaded int) {
	if m == nil || m.pages == nil {
		return
	}
	feed = normalizeLabel(feed)
	strategy = normalizeLabel(strategy)
	m.pages.WithLabelValues(feed, strategy, normalizeLabel(outcome)).Inc()
	m.duration.WithLabelValues(feed, strategy).Observe(elapsed.Seconds())
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		m.items.WithLabelValues(feed).Observe(float64(loaded))
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
