package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-history/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Sessions repository.SessionRepository
	Game     usecase.GameUseCase
}

// New - wires a game use case on an in-memory repository and a private
// metrics registry. The context is canceled when the test ends.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelInfo
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	registry := prometheus.NewRegistry()
	gameMetrics := metrics.New(registry)
	sessions := repository.NewSessionRepository()

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Registry: registry,
		Metrics:  gameMetrics,
		Sessions: sessions,
		Game:     usecase.NewGameUseCase(logger, sessions, gameMetrics, true),
	}
}
