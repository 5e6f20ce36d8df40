package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/tui"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
	"github.com/rocketscienceinc/tictactoe-history/transport/websocket"
)

// RunApp - runs the HTTP and WebSocket game server until a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := notifyContext(log)
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sessionRepo := repository.NewSessionRepository()
	gameMetrics := metrics.New(registry)
	gameUseCase := usecase.NewGameUseCase(logger, sessionRepo, gameMetrics, !conf.Game.Descending)

	wsServer := websocket.New(logger, gameUseCase, conf.WebSocket)
	httpServer := rest.New(logger, conf.GetHTTPAddr(), wsServer, registry)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	var err error
	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer shutdownCancel()

	// hijacked WebSocket connections are not closed by http.Server.Shutdown
	wsServer.Shutdown()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	log.Info("Server stopped", "sessions_left", sessionRepo.Count(shutdownCtx))

	return nil
}

// RunTUI - plays a single game in the terminal.
func RunTUI(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := notifyContext(logger.With("component", "app"))
	defer cancel()

	if err := tui.Run(ctx, logger, !conf.Game.Descending); err != nil {
		return fmt.Errorf("terminal game: %w", err)
	}

	return nil
}

func notifyContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
