package simulator

import (
	"testing"

	"github.com/lox/minesurfer/internal/game"
	"github.com/lox/minesurfer/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStrategyPicksHiddenUnflaggedCell(t *testing.T) {
	t.Parallel()

	g, err := game.NewGame(nil, 2, 2, 1, game.WithMines([]game.Position{{Row: 1, Col: 1}}))
	require.NoError(t, err)
	_, err = g.ToggleFlag(0, 0)
	require.NoError(t, err)
	_, err = g.Reveal(0, 1)
	require.NoError(t, err)

	s, err := NewStrategy("random")
	require.NoError(t, err)
	rng := randutil.New(1)
	for range 20 {
		m, ok := s.NextMove(g.Board(), rng)
		require.True(t, ok)
		assert.False(t, m.Flag)
		assert.Contains(t, []Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, m)
	}
}

func TestRandomStrategyWithNoCandidates(t *testing.T) {
	t.Parallel()

	cells := [][]game.Cell{{{IsRevealed: true}, {IsFlagged: true, Col: 1}}}
	_, ok := randomStrategy{}.NextMove(cells, randutil.New(1))
	assert.False(t, ok)
}

func TestBasicStrategyFlagsProvenMine(t *testing.T) {
	t.Parallel()

	// Values 0 1 * 1 0: revealing the left edge leaves (0,1) with a single
	// hidden neighbour, which must be the mine.
	g, err := game.NewGame(nil, 1, 5, 1, game.WithMines([]game.Position{{Row: 0, Col: 2}}))
	require.NoError(t, err)
	_, err = g.Reveal(0, 0)
	require.NoError(t, err)

	m, ok := basicStrategy{}.NextMove(g.Board(), randutil.New(1))
	require.True(t, ok)
	assert.Equal(t, Move{Row: 0, Col: 2, Flag: true}, m)
}

func TestBasicStrategyRevealsSatisfiedNeighbours(t *testing.T) {
	t.Parallel()

	g, err := game.NewGame(nil, 2, 3, 1, game.WithMines([]game.Position{{Row: 0, Col: 1}}))
	require.NoError(t, err)
	_, err = g.Reveal(0, 0)
	require.NoError(t, err)
	_, err = g.ToggleFlag(0, 1)
	require.NoError(t, err)

	m, ok := basicStrategy{}.NextMove(g.Board(), randutil.New(1))
	require.True(t, ok)
	assert.False(t, m.Flag)
	assert.Contains(t, []Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, m)
}

func TestNewStrategy(t *testing.T) {
	t.Parallel()
	for _, name := range StrategyNames {
		s, err := NewStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
}
