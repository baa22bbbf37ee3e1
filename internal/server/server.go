// Package server serves the dashboard page and its JSON, image and
// websocket endpoints.
package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ukaji3/cpdash-go/internal/config"
	"github.com/ukaji3/cpdash-go/pkg/cpdash"
)

const shutdownTimeout = 10 * time.Second

// Server hosts the dashboard over HTTP.
type Server struct {
	dash *cpdash.Dashboard
	cfg  config.Server
	log  *slog.Logger
	page *template.Template
}

// New creates a server for a loaded dashboard.
func New(d *cpdash.Dashboard, cfg config.Server, log *slog.Logger) (*Server, error) {
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	return &Server{
		dash: d,
		cfg:  cfg,
		log:  log,
		page: page,
	}, nil
}

// Handler returns the router with all dashboard routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)
	r.Get("/charts/{file}", s.handleChartImage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/figures", s.handleFigures)
		r.Get("/figures/{id}", s.handleFigure)
		r.Get("/tables/{id}", s.handleTable)
		r.Post("/events", s.handleEvent)
	})

	if s.cfg.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	return r
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dashboard listening", "addr", srv.Addr, "debug", s.cfg.Debug)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one structured line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
