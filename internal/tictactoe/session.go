package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Session - one game with its full move history.
//
// A Session is a value: every transition returns a new Session and never
// touches the slices held by the receiver, so older values stay valid
// snapshots of the game.
type Session struct {
	history      []entity.Board
	clickedCells []int
	stepNumber   int
	descending   bool
}

func NewSession() Session {
	return Session{
		history: []entity.Board{{}},
	}
}

// ApplyMove places the current player's mark on cell. Rejected moves leave
// the session unchanged; CheckMove tells why.
func (that Session) ApplyMove(cell int) Session {
	if that.CheckMove(cell) != nil {
		return that
	}

	board := that.Current()
	board[cell] = that.NextPlayer()

	next := that.stepNumber + 1

	history := make([]entity.Board, next, next+1)
	copy(history, that.history[:next])
	history = append(history, board)

	clickedCells := make([]int, that.stepNumber, next)
	copy(clickedCells, that.clickedCells[:that.stepNumber])
	clickedCells = append(clickedCells, cell)

	return Session{
		history:      history,
		clickedCells: clickedCells,
		stepNumber:   next,
		descending:   that.descending,
	}
}

// CheckMove - returns nil if ApplyMove(cell) would place a mark.
func (that Session) CheckMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if Outcome(that.Current()) != entity.StatusInProgress {
		return apperror.ErrGameFinished
	}

	if that.Current()[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// JumpTo makes step the current snapshot. Later snapshots are kept until the
// next move overwrites them.
func (that Session) JumpTo(step int) (Session, error) {
	if step < 0 || step >= len(that.history) {
		return that, fmt.Errorf("%w: step %d of %d", apperror.ErrStepOutOfRange, step, len(that.history))
	}

	that.stepNumber = step

	return that, nil
}

// ToggleSort flips the order the move list is displayed in.
func (that Session) ToggleSort() Session {
	that.descending = !that.descending
	return that
}

// WithAscending - returns the session with the move list order set.
func (that Session) WithAscending(ascending bool) Session {
	that.descending = !ascending
	return that
}

func (that Session) Current() entity.Board {
	return that.history[that.stepNumber]
}

func (that Session) StepNumber() int {
	return that.stepNumber
}

// Len - number of snapshots, including the empty start board.
func (that Session) Len() int {
	return len(that.history)
}

// NextPlayer - X moves on even steps, O on odd ones.
func (that Session) NextPlayer() entity.Mark {
	if that.stepNumber%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

func (that Session) Winner() (entity.WinResult, bool) {
	return DetectWinner(that.Current())
}

func (that Session) Status() entity.Status {
	return Outcome(that.Current())
}

func (that Session) Ascending() bool {
	return !that.descending
}

func (that Session) History() []entity.Board {
	history := make([]entity.Board, len(that.history))
	copy(history, that.history)

	return history
}

func (that Session) ClickedCells() []int {
	clickedCells := make([]int, len(that.clickedCells))
	copy(clickedCells, that.clickedCells)

	return clickedCells
}
