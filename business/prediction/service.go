package prediction

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quantumPredict/domain"
	"quantumPredict/pkg/logger"
)

// logTimestampFormat matches the rows already accumulated by earlier
// deployments; changing it would break per-day files mid-stream.
const logTimestampFormat = "02-01-2006 15:04"

// ---- Collaborator interfaces ----

// Predictor is the loaded model artifact. Implementations must be safe for
// concurrent use; the artifact is immutable after load.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// MetricsEmitter records one named, dimensioned data point under a namespace.
type MetricsEmitter interface {
	Put(ctx context.Context, namespace string, m domain.Metric) error
}

// RequestLog appends one row to the per-day request log, creating the
// object with the given header when absent.
type RequestLog interface {
	Append(ctx context.Context, dataset string, header, row []string) error
}

// ---- Service ----

type Service struct {
	schema  Schema
	model   Predictor
	version string
	metrics MetricsEmitter
	log     RequestLog
	now     func() time.Time
}

func NewService(schema Schema, model Predictor, version string, metrics MetricsEmitter, log RequestLog) (*Service, error) {
	if err := schema.validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Service{
		schema:  schema,
		model:   model,
		version: version,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}, nil
}

// Predict validates and encodes the record, runs the model, then emits
// telemetry and appends the request log. Telemetry and log failures are
// counted and logged but never fail the request; the prediction still
// returns to the caller.
func (s *Service) Predict(ctx context.Context, rec domain.Record) (domain.Prediction, error) {
	start := time.Now()

	if err := s.schema.Validate(rec); err != nil {
		PredictionsTotal.WithLabelValues(s.schema.Name, "rejected").Inc()
		return domain.Prediction{}, err
	}

	vec, err := s.schema.Encode(rec)
	if err != nil {
		PredictionsTotal.WithLabelValues(s.schema.Name, "rejected").Inc()
		return domain.Prediction{}, err
	}

	raw, err := s.model.Predict(vec)
	if err != nil {
		PredictionsTotal.WithLabelValues(s.schema.Name, "error").Inc()
		return domain.Prediction{}, fmt.Errorf("model predict: %w", err)
	}
	value := int(raw)

	s.emitMetrics(ctx, rec, value)
	s.appendLog(ctx, rec, value)

	PredictionsTotal.WithLabelValues(s.schema.Name, "ok").Inc()
	PredictionLatency.Observe(time.Since(start).Seconds())

	return domain.Prediction{Value: value, Version: s.version}, nil
}

// emitMetrics writes one data point for the prediction itself and one
// presence count per input feature, with the field name/value as dimension.
func (s *Service) emitMetrics(ctx context.Context, rec domain.Record, value int) {
	if s.metrics == nil {
		return
	}

	err := s.metrics.Put(ctx, s.schema.Namespace+" Model", domain.Metric{
		Name:       s.schema.PredictionMetric,
		Value:      float64(value),
		Dimensions: s.schema.PredictionDims,
	})
	if err != nil {
		MetricEmitFailures.Inc()
		logger.Warn("prediction metric emit failed", "variant", s.schema.Name, "error", err)
	}

	for _, f := range s.schema.Fields {
		err := s.metrics.Put(ctx, s.schema.Namespace+" Features", domain.Metric{
			Name:       s.schema.FeatureMetric,
			Value:      1,
			Unit:       "Count",
			Dimensions: map[string]string{f.Name: stringify(rec[f.Name])},
		})
		if err != nil {
			MetricEmitFailures.Inc()
			logger.Warn("feature metric emit failed", "variant", s.schema.Name, "field", f.Name, "error", err)
		}
	}
}

// appendLog records the enriched request for later drift analysis. Column
// order is the schema field order plus target, timestamp and model version.
func (s *Service) appendLog(ctx context.Context, rec domain.Record, value int) {
	if s.log == nil {
		return
	}

	header := append(s.schema.Columns(), s.schema.TargetColumn, "timestamp", "model_version")

	row := make([]string, 0, len(header))
	for _, f := range s.schema.Fields {
		row = append(row, stringify(rec[f.Name]))
	}
	row = append(row, strconv.Itoa(value), s.now().Format(logTimestampFormat), s.version)

	if err := s.log.Append(ctx, s.schema.Name, header, row); err != nil {
		LogAppendFailures.Inc()
		logger.Error("request log append failed", "variant", s.schema.Name, "error", err)
	}
}
