package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the predict HTTP handler, envelope to envelope
	PredictHandlerLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "predict_handler_latency_seconds",
		Help:    "Latency of the predict HTTP handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total predict requests by response status code
	PredictHandlerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predict_handler_requests_total",
			Help: "Total number of predict requests by status code",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(
		PredictHandlerLatency,
		PredictHandlerRequests,
	)
}
