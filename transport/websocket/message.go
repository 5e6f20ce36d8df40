package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

const (
	actionConnect = "connect"
	actionNewGame = "game:new"
	actionTurn    = "game:turn"
	actionJump    = "game:jump"
	actionSort    = "game:sort"
	actionState   = "game:state"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Cell *int `json:"cell,omitempty"`
	Step *int `json:"step,omitempty"`
}

type ResponsePayload struct {
	SessionID string     `json:"session_id,omitempty"`
	Page      *view.Page `json:"page,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: body,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
