package rest

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"quantumPredict/internal/event"
	"quantumPredict/pkg/metrics"
)

type PredictionHandler struct {
	service event.Service
}

func NewPredictionHandler(svc event.Service) *PredictionHandler {
	return &PredictionHandler{service: svc}
}

// Predict accepts either invocation shape (direct data field or
// gateway-wrapped body) and unrolls the response envelope onto the HTTP
// response: statusCode becomes the HTTP status, body the payload.
func (h *PredictionHandler) Predict(c echo.Context) error {
	start := time.Now()

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable request body"})
	}

	resp := event.Handle(c.Request().Context(), h.service, raw)

	metrics.PredictHandlerLatency.Observe(time.Since(start).Seconds())
	metrics.PredictHandlerRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	return c.Blob(resp.StatusCode, "application/json", []byte(resp.Body))
}
