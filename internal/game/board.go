package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	rows  int
	cols  int
	mines int
	cells []Cell
}

// neighbourOffsets lists the 8-connected neighbourhood.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Validate checks board parameters: rows and cols must be at least one and
// mines must leave at least one safe cell. The cell count must fit in an int.
func Validate(rows, cols, mines int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%w: %dx%d has too many cells", ErrInvalidDimension, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board (want 0 to %d)",
			ErrInvalidMineCount, mines, rows, cols, rows*cols-1)
	}
	return nil
}

// NewBoard builds a board with mines placed uniformly at random using rng.
// The rng is required so that layouts are reproducible from a seed.
func NewBoard(rng *rand.Rand, rows, cols, mines int) (*Board, error) {
	if rng == nil {
		panic("rng is required for board creation")
	}
	if err := Validate(rows, cols, mines); err != nil {
		return nil, err
	}

	b := newEmptyBoard(rows, cols)

	// Partial Fisher-Yates: only the first `mines` slots of the permutation
	// are needed.
	idx := make([]int, len(b.cells))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < mines; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		b.cells[idx[i]].IsMine = true
	}
	b.mines = mines

	b.computeValues()
	return b, nil
}

// NewBoardWithMines builds a board with mines at exactly the given positions.
// Positions must be in bounds and distinct.
func NewBoardWithMines(rows, cols int, mines []Position) (*Board, error) {
	if err := Validate(rows, cols, len(mines)); err != nil {
		return nil, err
	}

	b := newEmptyBoard(rows, cols)
	for _, p := range mines {
		i, err := b.index(p.Row, p.Col)
		if err != nil {
			return nil, fmt.Errorf("mine %v: %w", p, err)
		}
		if b.cells[i].IsMine {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidMineCount, p)
		}
		b.cells[i].IsMine = true
	}
	b.mines = len(mines)

	b.computeValues()
	return b, nil
}

func newEmptyBoard(rows, cols int) *Board {
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i].Row = i / cols
		cells[i].Col = i % cols
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

// computeValues adds one to every neighbour of every mine. Runs once, right
// after placement.
func (b *Board) computeValues() {
	for i := range b.cells {
		if !b.cells[i].IsMine {
			continue
		}
		b.eachNeighbour(i, func(n int) {
			b.cells[n].Value++
		})
	}
}

// eachNeighbour calls fn with the index of every in-bounds neighbour of i.
func (b *Board) eachNeighbour(i int, fn func(n int)) {
	row, col := i/b.cols, i%b.cols
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
			continue
		}
		fn(r*b.cols + c)
	}
}

func (b *Board) index(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return row*b.cols + col, nil
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// MineCount returns the number of mines placed.
func (b *Board) MineCount() int { return b.mines }

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Cells returns a deep copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.rows)
	for r := range out {
		out[r] = make([]Cell, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// Mines returns the positions of every mine in row-major order.
func (b *Board) Mines() []Position {
	out := make([]Position, 0, b.mines)
	for _, c := range b.cells {
		if c.IsMine {
			out = append(out, c.Position())
		}
	}
	return out
}

// flood reveals the zero region around start, which must already be revealed
// and have value zero. Neighbours that are unrevealed, unflagged and safe are
// revealed; only zero-valued ones are expanded further.
func (b *Board) flood(start int) int {
	visited := make([]bool, len(b.cells))
	visited[start] = true
	stack := []int{start}
	revealed := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.eachNeighbour(cur, func(n int) {
			if visited[n] {
				return
			}
			visited[n] = true

			c := &b.cells[n]
			if c.IsRevealed || c.IsFlagged || c.IsMine {
				return
			}
			c.IsRevealed = true
			revealed++
			if c.Value == 0 {
				stack = append(stack, n)
			}
		})
	}
	return revealed
}

// revealAll forces every cell revealed. Flags are left as they are.
func (b *Board) revealAll() {
	for i := range b.cells {
		b.cells[i].IsRevealed = true
	}
}

func (b *Board) tally() tally {
	var t tally
	for _, c := range b.cells {
		t.add(c)
	}
	return t
}

func (b *Board) flags() int {
	n := 0
	for _, c := range b.cells {
		if c.IsFlagged {
			n++
		}
	}
	return n
}
