package game

import (
	"errors"
	"math"
	"testing"

	"github.com/lox/minesurfer/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMines(cells [][]Cell) int {
	n := 0
	for _, row := range cells {
		for _, c := range row {
			if c.IsMine {
				n++
			}
		}
	}
	return n
}

func bruteForceValue(cells [][]Cell, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= len(cells) || c < 0 || c >= len(cells[r]) {
				continue
			}
			if cells[r][c].IsMine {
				n++
			}
		}
	}
	return n
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		rows, cols, mines int
		want              error
	}{
		{"single cell no mines", 1, 1, 0, nil},
		{"classic", 16, 30, 99, nil},
		{"one safe cell", 3, 3, 8, nil},
		{"zero rows", 0, 5, 1, ErrInvalidDimension},
		{"negative cols", 5, -1, 1, ErrInvalidDimension},
		{"negative mines", 5, 5, -1, ErrInvalidMineCount},
		{"board full of mines", 3, 3, 9, ErrInvalidMineCount},
		{"too many mines", 3, 3, 10, ErrInvalidMineCount},
		{"area wraps to a small int", math.MaxInt/2 + 2, 4, 2, ErrInvalidDimension},
		{"area wraps negative", math.MaxInt/4 + 1, 4, 2, ErrInvalidDimension},
		{"square overflow", math.MaxInt, math.MaxInt, 0, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.rows, tt.cols, tt.mines)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewBoardRejectsInvalidParameters(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(randutil.New(1), 0, 4, 0)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	b, err = NewBoard(randutil.New(1), 2, 2, 4)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
}

func TestNewGameRejectsOverflowingArea(t *testing.T) {
	t.Parallel()

	rows := math.MaxInt/2 + 2
	assert.NotPanics(t, func() {
		g, err := NewGame(randutil.New(1), rows, 4, 2)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
	assert.NotPanics(t, func() {
		_, err := NewGame(nil, rows, 4, 2, WithMines([]Position{{0, 0}, {0, 1}}))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestNewBoardRequiresRNG(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { _, _ = NewBoard(nil, 3, 3, 1) })
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	t.Parallel()

	sizes := []struct{ rows, cols, mines int }{
		{1, 1, 0},
		{1, 10, 9},
		{8, 8, 5},
		{16, 30, 99},
		{5, 5, 24},
	}
	for _, s := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			b, err := NewBoard(randutil.New(seed), s.rows, s.cols, s.mines)
			require.NoError(t, err)
			assert.Equal(t, s.mines, countMines(b.Cells()), "seed %d size %+v", seed, s)
			assert.Equal(t, s.mines, b.MineCount())
			assert.Len(t, b.Mines(), s.mines)
		}
	}
}

func TestNewBoardAdjacencyValues(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		b, err := NewBoard(randutil.New(seed), 9, 13, 30)
		require.NoError(t, err)

		cells := b.Cells()
		for r, row := range cells {
			for c, cell := range row {
				assert.Equal(t, r, cell.Row)
				assert.Equal(t, c, cell.Col)
				assert.False(t, cell.IsRevealed)
				assert.False(t, cell.IsFlagged)
				if cell.IsMine {
					continue
				}
				assert.Equal(t, bruteForceValue(cells, r, c), cell.Value, "seed %d cell (%d,%d)", seed, r, c)
			}
		}
	}
}

func TestNewBoardIsReproducibleFromSeed(t *testing.T) {
	t.Parallel()

	a, err := NewBoard(randutil.New(1234), 16, 16, 40)
	require.NoError(t, err)
	b, err := NewBoard(randutil.New(1234), 16, 16, 40)
	require.NoError(t, err)
	assert.Equal(t, a.Mines(), b.Mines())

	c, err := NewBoard(randutil.New(4321), 16, 16, 40)
	require.NoError(t, err)
	assert.NotEqual(t, a.Mines(), c.Mines())
}

func TestNewBoardWithMines(t *testing.T) {
	t.Parallel()

	b, err := NewBoardWithMines(3, 3, []Position{{Row: 1, Col: 1}})
	require.NoError(t, err)

	for _, row := range b.Cells() {
		for _, c := range row {
			if c.Row == 1 && c.Col == 1 {
				assert.True(t, c.IsMine)
				continue
			}
			assert.Equal(t, 1, c.Value, "cell %v", c.Position())
		}
	}

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewBoardWithMines(3, 3, []Position{{1, 1}, {1, 1}})
		assert.ErrorIs(t, err, ErrInvalidMineCount)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := NewBoardWithMines(3, 3, []Position{{3, 0}})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBoardCellBounds(t *testing.T) {
	t.Parallel()

	b, err := NewBoardWithMines(2, 3, nil)
	require.NoError(t, err)

	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := b.Cell(p.Row, p.Col)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}

	c, err := b.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 1, Col: 2}, c.Position())
}

func TestBoardCellsIsDeepCopy(t *testing.T) {
	t.Parallel()

	b, err := NewBoardWithMines(2, 2, []Position{{0, 0}})
	require.NoError(t, err)

	cells := b.Cells()
	cells[0][0].IsMine = false
	cells[1][1].IsRevealed = true

	again := b.Cells()
	assert.True(t, again[0][0].IsMine)
	assert.False(t, again[1][1].IsRevealed)
}

func TestWonPredicate(t *testing.T) {
	t.Parallel()

	safe := func(revealed bool) Cell { return Cell{IsRevealed: revealed} }
	mine := func(revealed bool) Cell { return Cell{IsMine: true, IsRevealed: revealed} }

	tests := []struct {
		name  string
		cells [][]Cell
		want  bool
	}{
		{"nothing revealed", [][]Cell{{safe(false), mine(false)}}, false},
		{"all safe revealed", [][]Cell{{safe(true), mine(false)}}, true},
		{"all safe revealed and flagged mine", [][]Cell{{safe(true), {IsMine: true, IsFlagged: true}}}, true},
		{"partial", [][]Cell{{safe(true), safe(false)}, {mine(false), safe(true)}}, false},
		{"mine revealed too", [][]Cell{{safe(true), mine(true)}}, false},
		{"fully exposed loss", [][]Cell{{safe(true), safe(true)}, {mine(true), safe(true)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Won(tt.cells))
		})
	}
}
