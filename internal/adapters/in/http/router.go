// Package http exposes the dispatch use cases over a JSON API.
//
// Routes:
//
//	POST /api/v1/cities
//	POST /api/v1/drivers
//	POST /api/v1/customers
//	POST /api/v1/restaurants
//	POST /api/v1/deliveries
//	GET  /api/v1/deliveries/{deliveryId}
//	GET  /api/v1/reports/driver-rank[?cityId=]
//	GET  /health
//	GET  /metrics
//	GET  /swagger/*
package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/adapters/in/http/api"
	"dispatch/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds the optional parts of the router. Metrics and Gatherer
// are needed together to serve /metrics.
type RouterConfig struct {
	Logger   *slog.Logger
	Metrics  *metrics.HTTP
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance serving s.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		e.Use(observeRequests(cfg.Metrics))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api.RegisterDocs()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group(api.BasePath, validator)
	api.RegisterHandlersWithBaseURL(g, s, "")

	return e, nil
}
