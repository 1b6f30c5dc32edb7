package display

import (
	"fmt"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/minesurfer/internal/game"
	"github.com/lox/minesurfer/internal/randutil"
	"github.com/lox/minesurfer/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	d := game.Difficulty{Slug: "tiny", Name: "Tiny", Rows: 4, Cols: 4, Mines: 2}
	s, err := session.New(d, randutil.New(5), quartz.NewMock(t), nil)
	require.NoError(t, err)
	return s
}

func cellWhere(s *session.Session, pred func(game.Cell) bool) game.Cell {
	for _, row := range s.Game().Board() {
		for _, c := range row {
			if pred(c) {
				return c
			}
		}
	}
	panic("no matching cell")
}

func runPrompt(t *testing.T, s *session.Session, lines ...string) string {
	t.Helper()
	var out strings.Builder
	p := NewPrompt(s, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, nil)
	require.NoError(t, p.Run())
	return out.String()
}

func TestPromptQuit(t *testing.T) {
	t.Parallel()

	out := runPrompt(t, newTestSession(t), "q", "r 0 0")
	assert.Contains(t, out, "Welcome to Minesurfer! Tiny (4x4, 2 mines)")
	assert.Contains(t, out, "Mines left: 2")
	assert.Zero(t, strings.Count(out, "Congratulations"))
}

func TestPromptRevealMine(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	mine := cellWhere(s, func(c game.Cell) bool { return c.IsMine })

	out := runPrompt(t, s, fmt.Sprintf("r %d %d", mine.Row, mine.Col), "r 0 0", "q")
	assert.Contains(t, out, "Game over! You hit a mine.")
	assert.Contains(t, out, "The game is over.")
	assert.Equal(t, game.Lost, s.Game().State())
}

func TestPromptFlagAndErrors(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	out := runPrompt(t, s, "f 1 1", "r 9 9", "r one 1", "r 1", "dance", "help")

	assert.Contains(t, out, "Mines left: 1")
	assert.Contains(t, out, "Error: (9,9) is off the board (rows 0-3, cols 0-3)")
	assert.Contains(t, out, `Error: invalid row "one"`)
	assert.Contains(t, out, "Error: expected ROW COL, got 1 arguments")
	assert.Contains(t, out, "Unknown command: dance")
	assert.Equal(t, 2, strings.Count(out, "Commands:"))

	c, err := s.Game().Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, c.IsFlagged)
}

func TestPromptWin(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	var lines []string
	for _, row := range s.Game().Board() {
		for _, c := range row {
			if !c.IsMine {
				lines = append(lines, fmt.Sprintf("reveal %d %d", c.Row, c.Col))
			}
		}
	}
	lines = append(lines, "n", "quit")

	out := runPrompt(t, s, lines...)
	assert.Contains(t, out, "Congratulations! You won")
	assert.Contains(t, out, "New game: Tiny")
	assert.Equal(t, 2, s.Number())
	assert.Equal(t, game.Playing, s.Game().State())
}
