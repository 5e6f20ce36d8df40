package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// WinCombos - rows, columns and diagonals, in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetectWinner - returns the first line of three equal non-empty marks.
func DetectWinner(board entity.Board) (entity.WinResult, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.WinResult{Winner: a, Line: combo}, true
		}
	}

	return entity.WinResult{}, false
}

// Outcome - classifies a board as won, drawn or still in progress.
func Outcome(board entity.Board) entity.Status {
	if _, won := DetectWinner(board); won {
		return entity.StatusWon
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}
