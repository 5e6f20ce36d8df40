package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type GameUseCase interface {
	StartSession(ctx context.Context, sessionID string) (string, tictactoe.Session, error)
	GetSession(ctx context.Context, sessionID string) (tictactoe.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, cell int) (tictactoe.Session, error)
	JumpTo(ctx context.Context, sessionID string, step int) (tictactoe.Session, error)
	ToggleSort(ctx context.Context, sessionID string) (tictactoe.Session, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, id string, session tictactoe.Session) error
	GetByID(ctx context.Context, id string) (tictactoe.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameMetrics interface {
	SessionStarted()
	SessionEnded()
	Move(result string)
	Jump()
	GameFinished(winner entity.Mark)
}

type gameUseCase struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	metrics     gameMetrics
	ascending   bool
}

// NewGameUseCase - ascending sets the move list order of new sessions.
func NewGameUseCase(logger *slog.Logger, sessionRepo sessionRepo, metrics gameMetrics, ascending bool) GameUseCase {
	return &gameUseCase{
		logger:      logger.With("component", "usecase"),
		sessionRepo: sessionRepo,
		metrics:     metrics,
		ascending:   ascending,
	}
}

// StartSession creates a new game. An empty sessionID gets a fresh id; an
// existing one is restarted from the empty board.
func (that *gameUseCase) StartSession(ctx context.Context, sessionID string) (string, tictactoe.Session, error) {
	log := that.logger.With("method", "StartSession")

	isNew := sessionID == ""
	if isNew {
		sessionID = uuid.NewString()
	} else if _, err := that.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if !errors.Is(err, apperror.ErrSessionNotFound) {
			return "", tictactoe.Session{}, fmt.Errorf("failed to get session: %w", err)
		}
		isNew = true
	}

	session := tictactoe.NewSession().WithAscending(that.ascending)
	if err := that.sessionRepo.CreateOrUpdate(ctx, sessionID, session); err != nil {
		return "", tictactoe.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	if isNew {
		that.metrics.SessionStarted()
	}

	log.Info("session started", "session_id", sessionID, "restart", !isNew)

	return sessionID, session, nil
}

func (that *gameUseCase) GetSession(ctx context.Context, sessionID string) (tictactoe.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return tictactoe.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *gameUseCase) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.metrics.SessionEnded()
	that.logger.Info("session ended", "method", "EndSession", "session_id", sessionID)

	return nil
}

// MakeTurn applies a move. A rejected move is not an error: the unchanged
// session is returned.
func (that *gameUseCase) MakeTurn(ctx context.Context, sessionID string, cell int) (tictactoe.Session, error) {
	log := that.logger.With("method", "MakeTurn", "session_id", sessionID, "cell", cell)

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return tictactoe.Session{}, err
	}

	if err = session.CheckMove(cell); err != nil {
		log.Debug("move ignored", "reason", err)
		that.metrics.Move(rejectReason(err))

		return session, nil
	}

	next := session.ApplyMove(cell)
	if err = that.sessionRepo.CreateOrUpdate(ctx, sessionID, next); err != nil {
		return tictactoe.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	that.metrics.Move(metrics.MoveApplied)

	switch next.Status() {
	case entity.StatusWon:
		win, _ := next.Winner()
		that.metrics.GameFinished(win.Winner)
		log.Info("game won", "winner", win.Winner, "line", win.Line)
	case entity.StatusDraw:
		that.metrics.GameFinished(entity.EmptyCell)
		log.Info("game drawn")
	case entity.StatusInProgress:
	}

	return next, nil
}

func (that *gameUseCase) JumpTo(ctx context.Context, sessionID string, step int) (tictactoe.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return tictactoe.Session{}, err
	}

	next, err := session.JumpTo(step)
	if err != nil {
		return session, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, sessionID, next); err != nil {
		return tictactoe.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	that.metrics.Jump()

	return next, nil
}

func (that *gameUseCase) ToggleSort(ctx context.Context, sessionID string) (tictactoe.Session, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return tictactoe.Session{}, err
	}

	next := session.ToggleSort()
	if err = that.sessionRepo.CreateOrUpdate(ctx, sessionID, next); err != nil {
		return tictactoe.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	return next, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return metrics.MoveOccupied
	case errors.Is(err, apperror.ErrGameFinished):
		return metrics.MoveFinished
	default:
		return metrics.MoveInvalid
	}
}
