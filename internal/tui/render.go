package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	cellStyle      = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	emptyCellStyle = cellStyle.Foreground(lipgloss.Color("238"))
	winCellStyle   = cellStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)

	statusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	movesStyle   = lipgloss.NewStyle().PaddingLeft(4)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	moveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Tic-tac-toe") + "\n\n")
	s.WriteString(statusStyle.Render(m.page.StatusLine) + "\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderBoard(), movesStyle.Render(m.renderMoves())))
	s.WriteString("\n\n")

	if m.notice != "" {
		s.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	s.WriteString(m.help.View(m.keys))

	return s.String()
}

func (m model) renderBoard() string {
	divider := strings.Repeat("─", 3) + "┼" + strings.Repeat("─", 3) + "┼" + strings.Repeat("─", 3)

	lines := make([]string, 0, 2*len(m.page.Rows))
	for i, row := range m.page.Rows {
		if i > 0 {
			lines = append(lines, divider)
		}

		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, m.renderCell(cell))
		}
		lines = append(lines, strings.Join(cells, "│"))
	}

	return strings.Join(lines, "\n")
}

// renderCell - empty cells show their 1-9 shortcut.
func (m model) renderCell(cell view.CellView) string {
	var text string

	switch {
	case cell.Highlighted:
		text = winCellStyle.Render(string(cell.Value))
	case cell.Value.IsEmpty():
		text = emptyCellStyle.Render(strconv.Itoa(cell.Index + 1))
	default:
		text = cellStyle.Render(string(cell.Value))
	}

	if m.focus == focusBoard && cell.Index == m.cellCursor {
		return cursorStyle.Render(text)
	}

	return text
}

func (m model) renderMoves() string {
	var s strings.Builder

	order := "ascending"
	if !m.page.Ascending {
		order = "descending"
	}
	s.WriteString(headerStyle.Render("Moves ("+order+")") + "\n")

	for i, entry := range m.page.Moves {
		cursor := "  "
		if m.focus == focusMoves && i == m.moveCursor {
			cursor = "> "
		}

		line := cursor + entry.Label
		if entry.Coordinate != nil {
			line += " " + entry.Coordinate.String()
		}

		if entry.IsCurrent {
			s.WriteString(currentStyle.Render(line+" •") + "\n")
			continue
		}

		s.WriteString(moveStyle.Render(line) + "\n")
	}

	return s.String()
}
