package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HealthCheck probes one dependency; a nil error means it is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHandler(checks map[string]HealthCheck) *Handler {
	return &Handler{checks: checks, timeout: 2 * time.Second}
}

func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			logrus.WithError(err).WithField("check", name).Warn("health check failed")
			results[name] = "down"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	return c.JSON(code, map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
		"checks": results,
	})
}
