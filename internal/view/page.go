package view

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// Page - everything a front end needs to draw one session.
type Page struct {
	Rows       [][]CellView      `json:"rows"`
	Status     entity.Status     `json:"status"`
	StatusLine string            `json:"status_line"`
	Winner     *entity.WinResult `json:"winner,omitempty"`
	NextPlayer entity.Mark       `json:"next_player"`
	StepNumber int               `json:"step_number"`
	Ascending  bool              `json:"ascending"`
	Moves      []MoveEntry       `json:"moves"`
}

func Render(session tictactoe.Session) Page {
	win, won := session.Winner()

	page := Page{
		Rows:       Rows(Cells(session.Current(), win, won)),
		Status:     session.Status(),
		StatusLine: StatusLine(session),
		NextPlayer: session.NextPlayer(),
		StepNumber: session.StepNumber(),
		Ascending:  session.Ascending(),
		Moves:      slices.Collect(MovesOf(session)),
	}

	if won {
		page.Winner = &win
	}

	return page
}

func StatusLine(session tictactoe.Session) string {
	switch session.Status() {
	case entity.StatusWon:
		win, _ := session.Winner()
		return "Winner: " + string(win.Winner)
	case entity.StatusDraw:
		return "Draw"
	default:
		return "Next player: " + string(session.NextPlayer())
	}
}
