package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pokedex/pkg/config"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// Lookup answers species lookups. [pokedex.Service] satisfies it.
type Lookup interface {
	GetSpecies(ctx context.Context, name string) (*pokedex.Summary, error)
	GetTranslatedSpecies(ctx context.Context, name string) (*pokedex.Summary, error)
}

// Server exposes a Lookup over HTTP.
type Server struct {
	lookup Lookup
	logger *log.Logger
	cfg    config.ServerConfig
	router chi.Router
}

// NewServer creates a Server and builds its router.
// If logger is nil, log.Default() is used.
func NewServer(lookup Lookup, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{lookup: lookup, logger: logger, cfg: cfg}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, r, http.StatusNotFound, errorResponse{Message: msgNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Message: msgBadMethod})
	})

	r.Get("/healthz", s.handleHealth)

	r.Route("/pokemon", func(r chi.Router) {
		r.Use(requestTimeout(s.cfg.RequestTimeout))
		r.Get("/{name}", s.handleSpecies)
		r.Get("/translated/{name}", s.handleTranslatedSpecies)
	})

	return r
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. In-flight
// requests get up to ShutdownTimeout to finish; a clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		ErrorLog:          s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx := context.Background()
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	start := time.Now()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("forced shutdown", "err", err)
		srv.Close()
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped", "took", time.Since(start).Round(time.Millisecond))
	return nil
}
