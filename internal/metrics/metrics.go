package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const namespace = "tictactoe"

const (
	MoveApplied  = "applied"
	MoveOccupied = "occupied"
	MoveFinished = "finished"
	MoveInvalid  = "invalid"
)

type Metrics struct {
	sessionsStarted prometheus.Counter
	sessionsActive  prometheus.Gauge
	moves           *prometheus.CounterVec
	jumps           prometheus.Counter
	gamesFinished   *prometheus.CounterVec
}

// New registers the game collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		sessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Game sessions started.",
		}),
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently held in memory.",
		}),
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Moves requested, by result.",
		}, []string{"result"}),
		jumps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Jumps through the move history.",
		}),
		gamesFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Moves that ended a game, by outcome.",
		}, []string{"outcome"}),
	}
}

func (that *Metrics) SessionStarted() {
	that.sessionsStarted.Inc()
	that.sessionsActive.Inc()
}

func (that *Metrics) SessionEnded() {
	that.sessionsActive.Dec()
}

func (that *Metrics) Move(result string) {
	that.moves.WithLabelValues(result).Inc()
}

func (that *Metrics) Jump() {
	that.jumps.Inc()
}

// GameFinished counts a finishing move. winner is EmptyCell for a draw.
func (that *Metrics) GameFinished(winner entity.Mark) {
	outcome := "draw"
	switch winner {
	case entity.PlayerX:
		outcome = "x"
	case entity.PlayerO:
		outcome = "o"
	}

	that.gamesFinished.WithLabelValues(outcome).Inc()
}
