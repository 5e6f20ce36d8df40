package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

func TestMetrics(t *testing.T) {
	// Given: metrics on a private registry
	m := New(prometheus.NewRegistry())

	// When: a session plays a couple of moves and wins
	m.SessionStarted()
	m.Move(MoveApplied)
	m.Move(MoveApplied)
	m.Move(MoveOccupied)
	m.Jump()
	m.GameFinished(entity.PlayerX)
	m.GameFinished(entity.EmptyCell)

	// Then: every counter reflects the calls
	assert.InDelta(t, 1, testutil.ToFloat64(m.sessionsStarted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sessionsActive), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.moves.WithLabelValues(MoveApplied)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.moves.WithLabelValues(MoveOccupied)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.jumps), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gamesFinished.WithLabelValues("x")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gamesFinished.WithLabelValues("draw")), 0)

	// When: the session ends
	m.SessionEnded()

	// Then: the active gauge drops back
	assert.InDelta(t, 0, testutil.ToFloat64(m.sessionsActive), 0)
}
