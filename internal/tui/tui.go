package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

type focusArea int

const (
	focusBoard focusArea = iota
	focusMoves
)

type model struct {
	logger *slog.Logger

	session tictactoe.Session
	page    view.Page

	focus      focusArea
	cellCursor int
	moveCursor int
	notice     string

	keys keyMap
	help help.Model
}

func initialModel(logger *slog.Logger, ascending bool) model {
	m := model{
		logger:     logger.With("component", "tui"),
		cellCursor: entity.BoardSize / 2,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.setSession(tictactoe.NewSession().WithAscending(ascending))

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.notice = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cell):
			m.place(int(msg.Runes[0] - '1'))

		case key.Matches(msg, m.keys.Focus):
			m.toggleFocus()

		case key.Matches(msg, m.keys.Sort):
			m.setSession(m.session.ToggleSort())
			m.moveCursor = m.currentMoveIndex()

		case key.Matches(msg, m.keys.NewGame):
			m.logger.Debug("new game")
			m.setSession(tictactoe.NewSession().WithAscending(m.session.Ascending()))
			m.moveCursor = m.currentMoveIndex()

		case key.Matches(msg, m.keys.Place):
			if m.focus == focusBoard {
				m.place(m.cellCursor)
			} else {
				m.jump(m.page.Moves[m.moveCursor].Move)
			}

		case key.Matches(msg, m.keys.Up):
			if m.focus == focusBoard {
				m.moveCell(-entity.BoardSide)
			} else if m.moveCursor > 0 {
				m.moveCursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.focus == focusBoard {
				m.moveCell(entity.BoardSide)
			} else if m.moveCursor < len(m.page.Moves)-1 {
				m.moveCursor++
			}

		case key.Matches(msg, m.keys.Left):
			if m.focus == focusBoard && m.cellCursor%entity.BoardSide > 0 {
				m.cellCursor--
			}

		case key.Matches(msg, m.keys.Right):
			if m.focus == focusBoard && m.cellCursor%entity.BoardSide < entity.BoardSide-1 {
				m.cellCursor++
			}
		}
	}

	return m, nil
}

func (m *model) setSession(session tictactoe.Session) {
	m.session = session
	m.page = view.Render(session)
}

// place - a rejected move leaves the session as is and shows the reason.
func (m *model) place(cell int) {
	if err := m.session.CheckMove(cell); err != nil {
		m.logger.Debug("move rejected", "cell", cell, "error", err)
		m.notice = err.Error()
		return
	}

	m.cellCursor = cell
	m.setSession(m.session.ApplyMove(cell))
	m.moveCursor = m.currentMoveIndex()
	m.logger.Debug("move applied", "cell", cell, "step", m.session.StepNumber())

	if m.session.Status().IsFinished() {
		m.logger.Info("game finished", "status", m.session.Status(), "steps", m.session.StepNumber())
	}
}

func (m *model) jump(step int) {
	session, err := m.session.JumpTo(step)
	if err != nil {
		m.logger.Error("failed to jump", "step", step, "error", err)
		m.notice = err.Error()
		return
	}

	m.setSession(session)
	m.logger.Debug("jumped", "step", step)
}

func (m *model) moveCell(delta int) {
	if next := m.cellCursor + delta; entity.IsValidCell(next) {
		m.cellCursor = next
	}
}

func (m *model) toggleFocus() {
	if m.focus == focusBoard {
		m.focus = focusMoves
		m.moveCursor = m.currentMoveIndex()
		return
	}

	m.focus = focusBoard
}

// currentMoveIndex - position of the current step in the displayed move list.
func (m model) currentMoveIndex() int {
	for i, entry := range m.page.Moves {
		if entry.IsCurrent {
			return i
		}
	}

	return 0
}

// Run - plays one terminal session until the user quits or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, ascending bool, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(initialModel(logger, ascending), opts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run terminal game: %w", err)
	}

	return nil
}
