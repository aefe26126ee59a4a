// Package ops exposes the operator-facing HTTP surface: health and metrics.
// It is not part of the user-facing bot.
package ops

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/metrics"
	healthuc "github.com/hetmobile/hetbot/internal/usecase/health"
)

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewRouter builds the ops router with /healthz and /metrics.
func NewRouter(health *healthuc.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		report := health.Check(req.Context())

		checks := make(map[string]string, len(report.Checks))
		for name, result := range report.Checks {
			checks[name] = string(result)
		}

		status := http.StatusOK
		if report.Status != healthuc.Healthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(healthResponse{
			Status: string(report.Status),
			Checks: checks,
		}); err != nil {
			logger.Warn("writing health response failed", zap.Error(err))
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
