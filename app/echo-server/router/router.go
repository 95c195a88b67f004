package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quantumPredict/internal/rest"
)

func SetupPredictionRoutes(api *echo.Group, handler *rest.PredictionHandler) {
	api.POST("/predict", handler.Predict)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
