package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, id string, session tictactoe.Session) error {
	args := that.Called(ctx, id, session)
	return args.Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (tictactoe.Session, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(tictactoe.Session), args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (that *mockMetrics) SessionStarted()                 { that.Called() }
func (that *mockMetrics) SessionEnded()                   { that.Called() }
func (that *mockMetrics) Move(result string)              { that.Called(result) }
func (that *mockMetrics) Jump()                           { that.Called() }
func (that *mockMetrics) GameFinished(winner entity.Mark) { that.Called(winner) }
