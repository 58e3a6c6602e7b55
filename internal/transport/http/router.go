package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"ibanguard/internal/platform/metrics"
	"ibanguard/pkg/platform/httputil"
	metadata "ibanguard/pkg/platform/middleware/metadata"
	"ibanguard/pkg/platform/middleware/requestid"
	"ibanguard/pkg/platform/middleware/requesttime"
)

// HealthCheck reports whether a backing dependency is usable.
type HealthCheck func(ctx context.Context) error

// RouteRegistrar mounts a module's endpoints.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the platform pieces shared by every route.
type RouterConfig struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Health   HealthCheck
}

// NewRouter wires platform middleware, /health, /metrics and the module routes.
// Handlers delegate to domain services without embedding business logic.
func NewRouter(cfg RouterConfig, modules ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/health", healthHandler(cfg))
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(cfg.Gatherer))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		for _, m := range modules {
			m.Register(r)
		}
	})
	return r
}

func healthHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cfg.Health(ctx); err != nil {
				if cfg.Logger != nil {
					cfg.Logger.WarnContext(ctx, "health check failed", "error", err)
				}
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
