// Package observability provides Prometheus metrics for the analysis
// service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	AnalysesTotal      *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	AnalysisDuration   prometheus.Histogram
	EmailsSent         *prometheus.CounterVec
	DownloadsTotal     prometheus.Counter
}

// NewMetrics registers all metrics on the given registerer. Tests pass a
// fresh registry; the daemon passes prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "criterium",
			Name:      "analyses_total",
			Help:      "Total number of analysis requests by input format and outcome",
		}, []string{"format", "status"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "criterium",
			Name:      "validation_failures_total",
			Help:      "Total number of rejected inputs by validation reason",
		}, []string{"reason"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "criterium",
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one complete analysis, upload to response",
			Buckets:   prometheus.DefBuckets,
		}),
		EmailsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "criterium",
			Name:      "emails_sent_total",
			Help:      "Total number of result e-mails by delivery outcome",
		}, []string{"outcome"}),
		DownloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "criterium",
			Name:      "downloads_total",
			Help:      "Total number of result file downloads",
		}),
	}
}
