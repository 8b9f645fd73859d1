package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/dewiktionary/internal/config"
	"github.com/heartmarshall/dewiktionary/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RouterDeps holds everything the HTTP API is built from.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Limiter *middleware.RateLimiter // optional
	Tokens  tokenValidator
	Health  *HealthHandler
	Pages   *PageHandler
}

// NewRouter wires the probes and the /api routes. Every request passes
// RequestID, Logger, Recovery and CORS; parsing is rate limited per client
// and ingestion requires a bearer token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api", func(r chi.Router) {
		var limit middleware.Middleware
		if d.Limiter != nil {
			limit = d.Limiter.Limit()
		}
		r.With(middleware.Chain(limit)).Post("/parse", d.Pages.Parse)

		r.With(middleware.Auth(d.Tokens)).Post("/pages", d.Pages.Ingest)
		r.Get("/pages", d.Pages.List)
		r.Get("/pages/{title}", d.Pages.Get)

		r.Get("/stats/warnings", d.Pages.WarningStats)
	})

	return r
}
