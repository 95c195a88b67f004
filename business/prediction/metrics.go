package prediction

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prediction_latency_seconds",
		Help:    "Latency of the prediction service, validation through response.",
		Buckets: prometheus.DefBuckets,
	})

	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_requests_total",
			Help: "Count of prediction requests by variant and outcome.",
		},
		[]string{"variant", "status"},
	)

	LogAppendFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prediction_log_append_failures_total",
		Help: "Request-log appends that failed after retries.",
	})

	MetricEmitFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prediction_metric_emit_failures_total",
		Help: "Operational metric data points that could not be emitted.",
	})
)

func init() {
	prometheus.MustRegister(
		PredictionLatency,
		PredictionsTotal,
		LogAppendFailures,
		MetricEmitFailures,
	)
}
