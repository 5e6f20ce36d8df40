package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/testing/suite"
)

type testResponse struct {
	Action  string
	Payload ResponsePayload
}

func startServer(t *testing.T) (*Server, *suite.Suite, *websocket.Conn) {
	t.Helper()

	ctx, st := suite.New(t)

	server := New(st.Logger, st.Game, config.WebSocket{ReadLimit: 4096})
	httpServer := httptest.NewServer(server)
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http")
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = resp.Body.Close()
	})

	return server, st, conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	msg := map[string]any{"action": action}
	if payload != nil {
		msg["payload"] = payload
	}

	require.NoError(t, conn.WriteJSON(msg))
}

func receive(t *testing.T, conn *websocket.Conn) testResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return testResponse{Action: msg.Action, Payload: payload}
}

func TestServer_Connect(t *testing.T) {
	t.Run("connection starts a fresh session", func(t *testing.T) {
		// Given
		_, st, conn := startServer(t)

		// When
		resp := receive(t, conn)

		// Then
		assert.Equal(t, actionConnect, resp.Action)
		assert.NotEmpty(t, resp.Payload.SessionID)
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, "Next player: X", resp.Payload.Page.StatusLine)
		assert.Len(t, resp.Payload.Page.Moves, 1)
		assert.Equal(t, 1, st.Sessions.Count(t.Context()))
	})

	t.Run("session is dropped on disconnect", func(t *testing.T) {
		// Given
		server, st, conn := startServer(t)
		receive(t, conn)

		// When
		require.NoError(t, conn.Close())

		// Then
		require.Eventually(t, func() bool {
			return st.Sessions.Count(t.Context()) == 0 && server.ActiveClients() == 0
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func TestServer_Turn(t *testing.T) {
	t.Run("applied move returns the new page", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		send(t, conn, actionTurn, map[string]int{"cell": 4})
		resp := receive(t, conn)

		// Then
		assert.Equal(t, actionTurn, resp.Action)
		assert.Empty(t, resp.Payload.Error)
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, entity.PlayerX, resp.Payload.Page.Rows[1][1].Value)
		assert.Equal(t, "Next player: O", resp.Payload.Page.StatusLine)
		assert.Equal(t, 1, resp.Payload.Page.StepNumber)
	})

	t.Run("move on an occupied cell leaves the page unchanged", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)
		send(t, conn, actionTurn, map[string]int{"cell": 0})
		receive(t, conn)

		// When
		send(t, conn, actionTurn, map[string]int{"cell": 0})
		resp := receive(t, conn)

		// Then
		assert.Empty(t, resp.Payload.Error)
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, 1, resp.Payload.Page.StepNumber)
		assert.Equal(t, "Next player: O", resp.Payload.Page.StatusLine)
	})

	t.Run("missing cell is an error", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		send(t, conn, actionTurn, nil)
		resp := receive(t, conn)

		// Then
		assert.Equal(t, actionTurn, resp.Action)
		assert.Equal(t, errCellRequired.Error(), resp.Payload.Error)
		assert.Nil(t, resp.Payload.Page)
	})

	t.Run("winning line is reported", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		var resp testResponse
		for _, cell := range []int{0, 3, 1, 4, 2} {
			send(t, conn, actionTurn, map[string]int{"cell": cell})
			resp = receive(t, conn)
		}

		// Then
		require.NotNil(t, resp.Payload.Page)
		require.NotNil(t, resp.Payload.Page.Winner)
		assert.Equal(t, entity.PlayerX, resp.Payload.Page.Winner.Winner)
		assert.Equal(t, [3]int{0, 1, 2}, resp.Payload.Page.Winner.Line)
		assert.Equal(t, "Winner: X", resp.Payload.Page.StatusLine)
	})
}

func TestServer_JumpAndSort(t *testing.T) {
	t.Run("jump moves back through history", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)
		for _, cell := range []int{0, 4} {
			send(t, conn, actionTurn, map[string]int{"cell": cell})
			receive(t, conn)
		}

		// When
		send(t, conn, actionJump, map[string]int{"step": 1})
		resp := receive(t, conn)

		// Then
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, 1, resp.Payload.Page.StepNumber)
		assert.Len(t, resp.Payload.Page.Moves, 3)
		assert.Equal(t, entity.EmptyCell, resp.Payload.Page.Rows[1][1].Value)
	})

	t.Run("jump out of range is an error", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		send(t, conn, actionJump, map[string]int{"step": 5})
		resp := receive(t, conn)

		// Then
		assert.Equal(t, actionJump, resp.Action)
		assert.NotEmpty(t, resp.Payload.Error)
	})

	t.Run("sort reverses the move list", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)
		send(t, conn, actionTurn, map[string]int{"cell": 0})
		receive(t, conn)

		// When
		send(t, conn, actionSort, nil)
		resp := receive(t, conn)

		// Then
		require.NotNil(t, resp.Payload.Page)
		assert.False(t, resp.Payload.Page.Ascending)
		assert.Equal(t, 1, resp.Payload.Page.Moves[0].Move)
	})

	t.Run("new game keeps the session id", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		first := receive(t, conn)
		send(t, conn, actionTurn, map[string]int{"cell": 0})
		receive(t, conn)

		// When
		send(t, conn, actionNewGame, nil)
		resp := receive(t, conn)

		// Then
		assert.Equal(t, first.Payload.SessionID, resp.Payload.SessionID)
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, 0, resp.Payload.Page.StepNumber)
		assert.Len(t, resp.Payload.Page.Moves, 1)
	})

	t.Run("state re-sends the page", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)
		send(t, conn, actionTurn, map[string]int{"cell": 8})
		receive(t, conn)

		// When
		send(t, conn, actionState, nil)
		resp := receive(t, conn)

		// Then
		require.NotNil(t, resp.Payload.Page)
		assert.Equal(t, 1, resp.Payload.Page.StepNumber)
		assert.True(t, resp.Payload.Page.Ascending)
	})
}

func TestServer_BadMessages(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		send(t, conn, "game:cheat", nil)
		resp := receive(t, conn)

		// Then
		assert.Equal(t, "game:cheat", resp.Action)
		assert.Equal(t, "unknown action", resp.Payload.Error)
	})

	t.Run("malformed message keeps the connection open", func(t *testing.T) {
		// Given
		_, _, conn := startServer(t)
		receive(t, conn)

		// When
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
		bad := receive(t, conn)
		send(t, conn, actionState, nil)
		good := receive(t, conn)

		// Then
		assert.Equal(t, actionError, bad.Action)
		assert.Equal(t, "malformed message", bad.Payload.Error)
		assert.NotNil(t, good.Payload.Page)
	})
}
