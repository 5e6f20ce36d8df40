package entity

import "fmt"

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Opponent returns the mark that moves after that.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Board - cells of a 3x3 grid in row-major order.
type Board [BoardSize]Mark

// IsFull - reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Filled - number of non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != EmptyCell {
			filled++
		}
	}

	return filled
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// WinResult - the winning mark and the line of three cells that holds it.
type WinResult struct {
	Winner Mark   `json:"winner"`
	Line   [3]int `json:"line"`
}

// Contains reports whether cell lies on the winning line.
func (that WinResult) Contains(cell int) bool {
	for _, index := range that.Line {
		if index == cell {
			return true
		}
	}

	return false
}

// Coordinate - 1-based column and row of a cell.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func CoordinateOf(cell int) Coordinate {
	return Coordinate{
		Col: cell%BoardSide + 1,
		Row: cell/BoardSide + 1,
	}
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", that.Col, that.Row)
}
