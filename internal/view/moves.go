package view

import (
	"iter"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const startLabel = "Go to game start"

// MoveEntry - one row of the move list.
type MoveEntry struct {
	Move       int                `json:"move"`
	Label      string             `json:"label"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
	IsCurrent  bool               `json:"is_current"`
}

// Moves yields one entry per snapshot. Move numbers and labels always follow
// the play order, only the yield order is reversed when ascending is false.
func Moves(history []entity.Board, clickedCells []int, stepNumber int, ascending bool) iter.Seq[MoveEntry] {
	return func(yield func(MoveEntry) bool) {
		total := len(history)

		for i := range total {
			move := i
			if !ascending {
				move = total - 1 - i
			}

			if !yield(moveEntry(move, clickedCells, stepNumber)) {
				return
			}
		}
	}
}

// MovesOf - Moves over the state held by session.
func MovesOf(session tictactoe.Session) iter.Seq[MoveEntry] {
	return Moves(session.History(), session.ClickedCells(), session.StepNumber(), session.Ascending())
}

func moveEntry(move int, clickedCells []int, stepNumber int) MoveEntry {
	entry := MoveEntry{
		Move:      move,
		Label:     startLabel,
		IsCurrent: move == stepNumber,
	}

	if move == 0 {
		return entry
	}

	entry.Label = "Go to move #" + strconv.Itoa(move)

	if move-1 < len(clickedCells) {
		coordinate := entity.CoordinateOf(clickedCells[move-1])
		entry.Coordinate = &coordinate
	}

	return entry
}
