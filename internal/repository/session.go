package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, id string, session tictactoe.Session) error
	GetByID(ctx context.Context, id string) (tictactoe.Session, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) int
}

// memSession keeps sessions for as long as the process runs. Nothing is
// written to disk.
type memSession struct {
	mu       sync.RWMutex
	sessions map[string]tictactoe.Session
}

func NewSessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]tictactoe.Session),
	}
}

func (that *memSession) CreateOrUpdate(ctx context.Context, id string, session tictactoe.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[id] = session

	return nil
}

func (that *memSession) GetByID(ctx context.Context, id string) (tictactoe.Session, error) {
	if err := ctx.Err(); err != nil {
		return tictactoe.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return tictactoe.Session{}, apperror.ErrSessionNotFound
	}

	return session, nil
}

func (that *memSession) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func (that *memSession) Count(_ context.Context) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}
