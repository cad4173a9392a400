package api

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	xhttp "SolarAPI/pkg/http"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// MetaHandler serves the welcome, health and info endpoints.
type MetaHandler struct {
	version  string
	checkers map[string]HealthChecker
}

func NewMetaHandler(version string, checkers map[string]HealthChecker) *MetaHandler {
	return &MetaHandler{version: version, checkers: checkers}
}

func (h *MetaHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/health", h.Health)
	e.GET("/api/info", h.Info)
}

func (h *MetaHandler) Welcome(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"message": "Welcome to Solar API",
		"version": h.version,
	})
}

func (h *MetaHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checkers))
	healthy := true
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			deps[name] = "unhealthy"
			healthy = false
			continue
		}
		deps[name] = "healthy"
	}

	status := "healthy"
	if !healthy {
		status = "degraded"
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":       status,
		"dependencies": deps,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *MetaHandler) Info(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"name":    "Solar API",
		"version": h.version,
		"endpoints": []string{
			"/api/calculator/{add,subtract,multiply,divide}",
			"/api/data/sales/analyze",
			"/api/data/sales/demo",
			"/api/data/statistics/numbers",
			"/api/data/statistics/analyze",
			"/api/data/chart/data",
			"/api/data/chart/live",
			"/api/data/trend/predict",
			"/api/users",
			"/api/tasks",
		},
	})
}
