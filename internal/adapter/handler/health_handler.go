package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pulseboard/internal/application/service"
	"pulseboard/internal/domain/port"
)

type HealthHandler struct {
	storage port.StoragePort
	cache   port.CachePort
	mode    *service.ModeService
	logger  *slog.Logger
}

func NewHealthHandler(storage port.StoragePort, cache port.CachePort, mode *service.ModeService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		cache:   cache,
		mode:    mode,
		logger:  logger,
	}
}

// Check pings each backing dependency. Any failure degrades the overall
// status to 503; the active data mode is included so an operator can tell a
// forced-demo instance from a degraded one.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	deps := []struct {
		name string
		ping func(context.Context) error
	}{
		{"database", h.storage.Ping},
		{"redis", h.cache.Ping},
	}

	status := "healthy"
	checks := make(map[string]string, len(deps))
	for _, dep := range deps {
		if err := dep.ping(r.Context()); err != nil {
			checks[dep.name] = "unhealthy"
			status = "degraded"
			h.logger.Warn("health check failed", "dependency", dep.name, "error", err)
			continue
		}
		checks[dep.name] = "healthy"
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"mode":   h.mode.GetCurrentMode(),
		"checks": checks,
	})
}
