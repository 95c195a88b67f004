// Package event decodes the two accepted invocation shapes (gateway-wrapped
// JSON body, direct data field) and builds the response envelope returned to
// the platform. Both the Lambda entrypoint and the HTTP gateway route
// through Handle so the two deployments cannot drift.
package event

import (
	"context"
	"encoding/json"
	"net/http"

	"quantumPredict/domain"
	"quantumPredict/pkg/logger"
)

type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type envelope struct {
	Body *string       `json:"body"`
	Data domain.Record `json:"data"`
}

// Unwrap extracts the Record from a raw invocation payload. Unparseable
// JSON is rejected with an EnvelopeError rather than silently treated as an
// empty record; a well-formed envelope without a data field yields an empty
// Record and fails later at validation.
func Unwrap(raw []byte) (domain.Record, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &domain.EnvelopeError{Reason: "invalid JSON", Err: err}
	}

	// Gateway invocations wrap the real payload as a JSON string under body.
	if env.Body != nil {
		var inner envelope
		if err := json.Unmarshal([]byte(*env.Body), &inner); err != nil {
			return nil, &domain.EnvelopeError{Reason: "invalid JSON in gateway body", Err: err}
		}
		env.Data = inner.Data
	}

	if env.Data == nil {
		return domain.Record{}, nil
	}
	return env.Data, nil
}

// Service is the prediction entry point both transports dispatch to.
type Service interface {
	Predict(ctx context.Context, rec domain.Record) (domain.Prediction, error)
}

// Handle runs one invocation end to end and maps errors onto the response
// envelope: client faults become 400 with an error body, anything else 500
// with a generic message.
func Handle(ctx context.Context, svc Service, raw []byte) Response {
	rec, err := Unwrap(raw)
	if err != nil {
		return errorResponse(http.StatusBadRequest, err.Error())
	}

	pred, err := svc.Predict(ctx, rec)
	if err != nil {
		if domain.IsClientError(err) {
			return errorResponse(http.StatusBadRequest, err.Error())
		}
		logger.Error("prediction failed", "error", err)
		return errorResponse(http.StatusInternalServerError, "internal error")
	}

	return OK(pred)
}

func OK(pred domain.Prediction) Response {
	body, _ := json.Marshal(pred)
	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func errorResponse(code int, msg string) Response {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return Response{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
