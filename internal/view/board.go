package view

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// CellView - what a single square shows.
type CellView struct {
	Index       int         `json:"index"`
	Value       entity.Mark `json:"value"`
	Highlighted bool        `json:"highlighted"`
}

// Cells maps a board to its squares. Squares on the winning line are
// highlighted when won is true.
func Cells(board entity.Board, win entity.WinResult, won bool) [entity.BoardSize]CellView {
	var cells [entity.BoardSize]CellView

	for i, value := range board {
		cells[i] = CellView{
			Index:       i,
			Value:       value,
			Highlighted: won && win.Contains(i),
		}
	}

	return cells
}

// Rows groups the squares into board rows, top to bottom.
func Rows(cells [entity.BoardSize]CellView) [][]CellView {
	rows := make([][]CellView, 0, entity.BoardSide)
	for start := 0; start < entity.BoardSize; start += entity.BoardSide {
		rows = append(rows, cells[start:start+entity.BoardSide])
	}

	return rows
}
