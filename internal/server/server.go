// Package server serves the dashboard over HTTP. Every request loads the
// workbooks again; nothing is kept between requests.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/patrimap-go/pkg/patrimap"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
)

// LoadFunc produces the tables for one request.
type LoadFunc func(ctx context.Context, opts patrimap.Options) (*models.Snapshot, error)

// Handler holds the HTTP handlers.
type Handler struct {
	opts   patrimap.Options
	load   LoadFunc
	logger *slog.Logger
}

// NewHandler returns handlers loading with opts. A nil load uses
// patrimap.Load and a nil logger uses slog.Default.
func NewHandler(opts patrimap.Options, load LoadFunc, logger *slog.Logger) *Handler {
	if load == nil {
		load = patrimap.Load
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{opts: opts, load: load, logger: logger}
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, LoggerMiddleware(h.logger), middleware.Recoverer)

	r.Get("/", h.dashboardPage)
	r.Get("/healthz", h.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/ownership", h.ownership)
		r.Get("/dashboard", h.dashboard)
	})
	return r
}

// NewServer creates the HTTP server listening on addr.
func NewServer(addr string, h *Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
