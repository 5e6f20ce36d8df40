package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// New - routes the browser page, health check, metrics and the game socket.
func New(logger *slog.Logger, addr string, socket http.Handler, gatherer prometheus.Gatherer) *Server {
	log := logger.With("component", "http")

	return &Server{
		logger: log,
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(log, socket, gatherer),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
	}
}

func NewRouter(logger *slog.Logger, socket http.Handler, gatherer prometheus.Gatherer) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/", indexHandler)
	router.Get("/ping", pingHandler)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}))
	router.Method(http.MethodGet, "/ws", socket)

	return router
}

// Start - blocks until the server stops. A graceful shutdown is not an error.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
