package v1handler

import (
	"arbeit/pkg/logger"
	"context"
	"maps"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	serviceName  = "arbeit-backend"
	readyTimeout = 2 * time.Second
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Service:   serviceName,
		Version:   h.options.Version,
	})
}

// Healthz handles GET /healthz. It only reports that the process serves
// requests.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type readyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Readyz handles GET /readyz by running every dependency check.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	names := slices.Sorted(maps.Keys(h.deps.Checks))
	res := readyResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.deps.Checks[name](ctx); err != nil {
			logger.Warn(ctx, "readiness check failed", zap.String("check", name), zap.Error(err))
			res.Status = "unavailable"
			res.Checks[name] = "fail"

			continue
		}
		res.Checks[name] = "ok"
	}

	status := http.StatusOK
	if res.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}
