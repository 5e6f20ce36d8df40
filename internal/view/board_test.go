package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

func TestCells(t *testing.T) {
	t.Run("No highlight without a winner", func(t *testing.T) {
		// Given: a board in progress
		board := entity.Board{entity.PlayerX, entity.EmptyCell, entity.PlayerO}

		// When: mapping it to cells
		cells := Cells(board, entity.WinResult{}, false)

		// Then: values are copied and nothing is highlighted
		for i, cell := range cells {
			assert.Equal(t, i, cell.Index)
			assert.Equal(t, board[i], cell.Value)
			assert.False(t, cell.Highlighted)
		}
	})

	t.Run("Winning line is highlighted", func(t *testing.T) {
		// Given: O won on the middle column
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.EmptyCell, entity.PlayerO, entity.PlayerX,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		}
		win := entity.WinResult{Winner: entity.PlayerO, Line: [3]int{1, 4, 7}}

		// When: mapping it to cells
		cells := Cells(board, win, true)

		// Then: only the line cells are highlighted
		for i, cell := range cells {
			assert.Equal(t, i == 1 || i == 4 || i == 7, cell.Highlighted, "cell %d", i)
		}
	})
}

func TestRows(t *testing.T) {
	// Given: the cells of an empty board
	cells := Cells(entity.Board{}, entity.WinResult{}, false)

	// When: grouping them into rows
	rows := Rows(cells)

	// Then: there are three rows of three in row-major order
	require.Len(t, rows, 3)
	for r, row := range rows {
		require.Len(t, row, 3)
		for c, cell := range row {
			assert.Equal(t, r*3+c, cell.Index)
		}
	}
}
