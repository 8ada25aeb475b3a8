// Package httptransport assembles the public HTTP surface: the intake
// endpoints plus the health and metrics side doors.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadgate/internal/intake/handler"
	"leadgate/internal/platform/middleware"
	"leadgate/pkg/platform/httputil"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Options configures the router. Limiter and Store may be nil: rate limiting
// is then disabled and health reports only process liveness.
type Options struct {
	Intake  *handler.Handler
	Limiter middleware.Limiter
	Store   HealthChecker
	Logger  *slog.Logger
	Metrics http.Handler
}

// NewRouter wires the middleware chain and all routes. Intake endpoints are
// POST-only; chi answers wrong methods with 405 and an Allow header.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientIP)
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logger(opts.Logger))

	r.Get("/healthz", handleHealth(opts.Store))

	metricsHandler := opts.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RateLimit(opts.Limiter, opts.Logger))
		opts.Intake.Register(r)
	})

	return r
}

func handleHealth(store HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if store != nil {
			if err := store.Health(r.Context()); err != nil {
				status["status"] = "degraded"
				status["store"] = "unavailable"
				httputil.WriteJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["store"] = "ok"
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	}
}
