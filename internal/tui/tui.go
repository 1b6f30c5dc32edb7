// Package tui is the Bubble Tea front end: a cursor-driven board with mouse
// support over a session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/minesurfer/internal/display"
	"github.com/lox/minesurfer/internal/game"
	"github.com/lox/minesurfer/internal/session"
	"github.com/muesli/termenv"
)

const (
	// gridTop is the screen line of the first board row: header, status, blank.
	gridTop = 3
	// cellWidth is the rendered width of one cell, e.g. " 1 " or "[F]".
	cellWidth = 3
)

// tickMsg refreshes the clock in the status line.
type tickMsg time.Time

// Model is the Bubble Tea model for one session.
type Model struct {
	session *session.Session
	logger  *log.Logger
	styles  Styles
	keys    keyMap
	help    help.Model

	cursorRow int
	cursorCol int
	message   string
	isError   bool
	quitting  bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithColorProfile pins the colour profile instead of detecting it from the
// terminal. termenv.Ascii disables styling entirely.
func WithColorProfile(p termenv.Profile) Option {
	return func(m *Model) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(p)
		m.styles = NewStyles(r)
	}
}

// NewModel creates a model over s.
func NewModel(s *session.Session, logger *log.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		session: s,
		logger:  logger.WithPrefix("tui"),
		styles:  NewStyles(lipgloss.NewRenderer(os.Stdout)),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the program and blocks until the player quits or ctx ends.
func Run(ctx context.Context, s *session.Session, logger *log.Logger, opts ...Option) error {
	p := tea.NewProgram(NewModel(s, logger, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the clock.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles keys, mouse clicks, resizes and clock ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		row, col, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursorRow, m.cursorCol = row, col
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.apply("reveal", m.session.Reveal)
		case tea.MouseButtonRight:
			m.apply("flag", m.session.ToggleFlag)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Reveal):
			m.apply("reveal", m.session.Reveal)
		case key.Matches(msg, m.keys.Flag):
			m.apply("flag", m.session.ToggleFlag)
		case key.Matches(msg, m.keys.New):
			m.restart()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	g := m.session.Game()
	m.cursorRow = clamp(m.cursorRow+dr, 0, g.Rows()-1)
	m.cursorCol = clamp(m.cursorCol+dc, 0, g.Cols()-1)
}

func (m *Model) apply(name string, move func(int, int) (game.Outcome, error)) {
	out, err := move(m.cursorRow, m.cursorCol)
	switch {
	case errors.Is(err, game.ErrGameEnded):
		m.setMessage("Game over - press n for a new wave", false)
		return
	case err != nil:
		m.logger.Error("Move failed", "move", name, "row", m.cursorRow, "col", m.cursorCol, "error", err)
		m.setMessage(err.Error(), true)
		return
	}

	switch {
	case out.GameWon:
		m.setMessage(fmt.Sprintf("%s You cleared the board in %s!", m.session.Banner(), m.elapsed()), false)
	case out.GameOver:
		m.setMessage(fmt.Sprintf("%s You hit a mine.", m.session.Banner()), true)
	default:
		m.setMessage("", false)
	}
}

func (m *Model) restart() {
	if err := m.session.Restart(); err != nil {
		m.logger.Error("Restart failed", "error", err)
		m.setMessage(err.Error(), true)
		return
	}
	m.moveCursor(0, 0)
	m.setMessage(fmt.Sprintf("New wave: %s", m.session.Difficulty()), false)
}

func (m *Model) setMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// cellAt maps a screen position to a board cell.
func (m *Model) cellAt(x, y int) (int, int, bool) {
	g := m.session.Game()
	row, col := y-gridTop, x/cellWidth
	if x < 0 || row < 0 || row >= g.Rows() || col >= g.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

func (m *Model) elapsed() time.Duration {
	return m.session.Elapsed().Truncate(time.Second)
}

func (m *Model) face() string {
	switch m.session.Game().State() {
	case game.Won:
		return "😎"
	case game.Lost:
		return "😵"
	default:
		return "😊"
	}
}

// View renders header, status line, board, message and help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	g := m.session.Game()
	var b strings.Builder

	// Header and status are clipped to one line each so the grid stays at
	// gridTop for mouse mapping.
	header, status := m.styles.Header, m.styles.Status
	if m.width > 0 {
		header = header.MaxWidth(m.width)
		status = status.MaxWidth(m.width)
	}
	b.WriteString(header.Render("MINESURFER · " + m.session.Difficulty().String()))
	b.WriteByte('\n')
	b.WriteString(status.Render(fmt.Sprintf("Mines %3d   Time %s   %s",
		g.RemainingMines(), m.elapsed(), m.face())))
	b.WriteString("\n\n")

	for _, row := range g.Board() {
		for _, c := range row {
			b.WriteString(m.renderCell(c))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.message != "" {
		style := m.styles.Success
		if m.isError {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.message))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderCell(c game.Cell) string {
	sym := display.CellSymbol(c)
	var style lipgloss.Style
	switch {
	case c.IsRevealed && c.IsMine:
		style = m.styles.Mine
	case c.IsRevealed:
		style = m.styles.Numbers[c.Value]
	case c.IsFlagged:
		style = m.styles.Flag
	default:
		style = m.styles.Hidden
	}

	if c.Row == m.cursorRow && c.Col == m.cursorCol {
		return m.styles.Cursor.Render("[" + style.Render(sym) + "]")
	}
	return " " + style.Render(sym) + " "
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
