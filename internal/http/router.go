package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "lawpoint/internal/auth/handler"
	dirhandler "lawpoint/internal/directory/handler"
	"lawpoint/internal/health"
	"lawpoint/internal/platform/metrics"
	"lawpoint/internal/platform/middleware"
)

// Deps collects everything the router mounts. Keeping assembly here means
// main only wires values, never routes.
type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Auth      *authhandler.Handler
	Directory *dirhandler.Handler
	Health    *health.Handler
}

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Latency(d.Metrics))

	d.Auth.Register(r)
	d.Directory.Register(r)
	d.Health.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
