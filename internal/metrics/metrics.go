// Package metrics provides Prometheus metrics for the curator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "curator"

var (
	// FeedFetchTotal counts feed fetches by outcome.
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_total",
			Help:      "Total number of feed fetches",
		},
		[]string{"status"},
	)

	ArticlesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_ingested_total",
			Help:      "Articles written by refresh runs, split into new and merged",
		},
		[]string{"kind"},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Duration of refresh runs in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// AISelectionTotal counts AI tier outcomes: selected, fallback, skipped.
	AISelectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_selection_total",
			Help:      "Outcomes of the AI-assisted ranking tier",
		},
		[]string{"outcome"},
	)

	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_total",
			Help:      "Feedback events recorded",
		},
		[]string{"helpful"},
	)

	PersonaRefreshTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persona_refresh_attempts_total",
			Help:      "Persona refresh attempts",
		},
	)
)

func RecordFeedFetch(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	FeedFetchTotal.WithLabelValues(status).Inc()
}

// RecordRefresh records one completed refresh run.
func RecordRefresh(newCount, merged int, seconds float64) {
	ArticlesIngestedTotal.WithLabelValues("new").Add(float64(newCount))
	ArticlesIngestedTotal.WithLabelValues("merged").Add(float64(merged))
	RefreshDuration.Observe(seconds)
}

func RecordAISelection(outcome string) {
	AISelectionTotal.WithLabelValues(outcome).Inc()
}

func RecordFeedback(helpful bool) {
	label := "false"
	if helpful {
		label = "true"
	}
	FeedbackTotal.WithLabelValues(label).Inc()
}
