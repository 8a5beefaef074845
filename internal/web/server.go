// Package web provides the HTTP server, HTML views and JSON API for
// client-tracker.
package web

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/evcraddock/client-tracker/internal/client"
	"github.com/evcraddock/client-tracker/internal/config"
	"github.com/evcraddock/client-tracker/internal/logging"
	"github.com/evcraddock/client-tracker/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the client-tracker HTTP server.
type Server struct {
	db        *sql.DB
	clients   *client.Service
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	templates *template.Template
	router    chi.Router
}

// Option configures a Server.
type Option func(*serverOptions)

type serverOptions struct {
	clientOpts []client.Option
}

// WithClock sets the time source the client service uses for "today".
func WithClock(now func() time.Time) Option {
	return func(o *serverOptions) {
		o.clientOpts = append(o.clientOpts, client.WithClock(now))
	}
}

// NewServer creates a web server backed by db.
func NewServer(db *sql.DB, logger zerolog.Logger, opts ...Option) (*Server, error) {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s := &Server{
		db:        db,
		clients:   client.NewService(client.NewRepository(db), o.clientOpts...),
		metrics:   metrics.New(),
		logger:    logger,
		templates: tmpl,
	}

	r := chi.NewRouter()
	r.Use(logging.TraceID(logger))
	r.Use(logging.RequestLogger)
	r.Use(s.metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Get("/", s.handleHome)
	r.Get("/list", s.handleList)
	r.Get("/add", s.handleAddForm)
	r.Post("/add", s.handleAdd)
	r.Get("/edit/{id}", s.handleEditForm)
	r.Post("/edit/{id}", s.handleEdit)
	r.Get("/delete/{id}", s.handleDelete)
	r.Get("/export_csv", s.handleExportCSV)
	r.Get("/export_excel", s.handleExportExcel)

	r.Route("/api/clients", func(r chi.Router) {
		r.Get("/", s.apiListClients)
		r.Post("/", s.apiCreateClient)
		r.Get("/{id}", s.apiGetClient)
		r.Put("/{id}", s.apiUpdateClient)
		r.Delete("/{id}", s.apiDeleteClient)
	})

	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on cfg.Address until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", cfg.Address).Msg("starting web server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Address, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// handleHealth reports whether the database is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
		apiJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
