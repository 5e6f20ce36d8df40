package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

var (
	errCellRequired = errors.New("cell is required")
	errStepRequired = errors.New("step is required")
)

// handleConnect - starts the session of a freshly opened connection.
func (that *Server) handleConnect(ctx context.Context, c *client) error {
	sessionID, session, err := that.game.StartSession(ctx, "")
	if err != nil {
		that.sendError(c, actionConnect, "failed to start a new game")
		return fmt.Errorf("failed to start session: %w", err)
	}

	c.sessionID = sessionID

	return that.sendPage(c, actionConnect, session)
}

func (that *Server) handleNewGame(ctx context.Context, c *client, msg *Message) error {
	_, session, err := that.game.StartSession(ctx, c.sessionID)
	if err != nil {
		that.sendError(c, msg.Action, "failed to start a new game")
		return fmt.Errorf("failed to restart session: %w", err)
	}

	return that.sendPage(c, msg.Action, session)
}

func (that *Server) handleTurn(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(c, msg.Action, "malformed payload")
		return err
	}

	if payload.Cell == nil {
		that.sendError(c, msg.Action, errCellRequired.Error())
		return errCellRequired
	}

	session, err := that.game.MakeTurn(ctx, c.sessionID, *payload.Cell)
	if err != nil {
		that.sendError(c, msg.Action, "failed to make turn")
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.sendPage(c, msg.Action, session)
}

func (that *Server) handleJump(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(c, msg.Action, "malformed payload")
		return err
	}

	if payload.Step == nil {
		that.sendError(c, msg.Action, errStepRequired.Error())
		return errStepRequired
	}

	session, err := that.game.JumpTo(ctx, c.sessionID, *payload.Step)
	if errors.Is(err, apperror.ErrStepOutOfRange) {
		that.sendError(c, msg.Action, apperror.ErrStepOutOfRange.Error())
		return err
	}

	if err != nil {
		that.sendError(c, msg.Action, "failed to jump")
		return fmt.Errorf("failed to jump: %w", err)
	}

	return that.sendPage(c, msg.Action, session)
}

func (that *Server) handleSort(ctx context.Context, c *client, msg *Message) error {
	session, err := that.game.ToggleSort(ctx, c.sessionID)
	if err != nil {
		that.sendError(c, msg.Action, "failed to sort moves")
		return fmt.Errorf("failed to toggle sort: %w", err)
	}

	return that.sendPage(c, msg.Action, session)
}

// handleState - re-sends the current page without changing the session.
func (that *Server) handleState(ctx context.Context, c *client, msg *Message) error {
	session, err := that.game.GetSession(ctx, c.sessionID)
	if err != nil {
		that.sendError(c, msg.Action, "failed to get the game")
		return fmt.Errorf("failed to get session: %w", err)
	}

	return that.sendPage(c, msg.Action, session)
}

func (that *Server) sendPage(c *client, action string, session tictactoe.Session) error {
	page := view.Render(session)

	payload := ResponsePayload{
		SessionID: c.sessionID,
		Page:      &page,
	}

	if err := sendMessage(c.conn, action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) sendError(c *client, action, text string) {
	if err := sendMessage(c.conn, action, ResponsePayload{Error: text}); err != nil {
		that.logger.Error("failed to send error response", "action", action, "error", err)
	}
}
