package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Game wraps a Board with the two terminal latches. Once either latch fires
// no further reveal or flag changes are applied.
//
// A Game is not safe for concurrent use; callers serialise access.
type Game struct {
	board  *Board
	over   bool
	won    bool
	logger *log.Logger
}

// NewGame creates a game on a fresh rows x cols board with mines placed by
// rng. When WithMines is supplied rng may be nil.
//
// Example usage:
//
//	// Production - time-seeded RNG
//	g, err := game.NewGame(randutil.New(randutil.Seed(0)), 10, 10, 10)
//
//	// Testing - fixed layout
//	g, err := game.NewGame(nil, 3, 3, 1, game.WithMines([]game.Position{{Row: 1, Col: 1}}))
func NewGame(rng *rand.Rand, rows, cols, mines int, opts ...Option) (*Game, error) {
	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	var (
		board *Board
		err   error
	)
	if cfg.mines != nil {
		if len(cfg.mines) != mines {
			return nil, fmt.Errorf("%w: layout has %d mines, want %d", ErrInvalidMineCount, len(cfg.mines), mines)
		}
		board, err = NewBoardWithMines(rows, cols, cfg.mines)
	} else {
		board, err = NewBoard(rng, rows, cols, mines)
	}
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("New game", "rows", rows, "cols", cols, "mines", mines)

	return &Game{board: board, logger: cfg.logger}, nil
}

// Reveal uncovers the cell at (row, col).
//
// Out-of-bounds coordinates return ErrOutOfBounds. Moves after the game has
// ended, on revealed cells, or on flagged cells are ignored and report the
// current outcome. Revealing a mine ends the game and exposes every cell;
// revealing a zero cell flood-fills its region.
func (g *Game) Reveal(row, col int) (Outcome, error) {
	i, err := g.board.index(row, col)
	if err != nil {
		return g.Outcome(), err
	}
	if g.ended() {
		g.logger.Debug("Ignoring reveal after game end", "row", row, "col", col)
		return g.Outcome(), nil
	}

	c := &g.board.cells[i]
	switch {
	case c.IsRevealed:
		return g.Outcome(), nil
	case c.IsFlagged:
		g.logger.Debug("Ignoring reveal on flagged cell", "row", row, "col", col)
		return g.Outcome(), nil
	}

	c.IsRevealed = true
	if c.IsMine {
		g.over = true
		g.board.revealAll()
		g.logger.Debug("Mine revealed", "row", row, "col", col)
	} else if c.Value == 0 {
		n := g.board.flood(i)
		g.logger.Debug("Flood reveal", "row", row, "col", col, "revealed", n+1)
	}

	g.evaluate()
	return g.Outcome(), nil
}

// ToggleFlag flips the flag on an unrevealed cell. Moves after the game has
// ended or on revealed cells are ignored.
func (g *Game) ToggleFlag(row, col int) (Outcome, error) {
	i, err := g.board.index(row, col)
	if err != nil {
		return g.Outcome(), err
	}
	if g.ended() {
		g.logger.Debug("Ignoring flag after game end", "row", row, "col", col)
		return g.Outcome(), nil
	}

	c := &g.board.cells[i]
	if c.IsRevealed {
		return g.Outcome(), nil
	}
	c.IsFlagged = !c.IsFlagged

	g.evaluate()
	return g.Outcome(), nil
}

// evaluate latches the win flag when the board satisfies the win predicate.
func (g *Game) evaluate() {
	if g.won || !g.board.tally().won() {
		return
	}
	g.won = true
	g.logger.Debug("Game won", "rows", g.board.rows, "cols", g.board.cols, "mines", g.board.mines)
}

func (g *Game) ended() bool {
	return g.over || g.won
}

// Outcome returns the terminal flags.
func (g *Game) Outcome() Outcome {
	return Outcome{GameOver: g.over, GameWon: g.won}
}

// State summarises the outcome.
func (g *Game) State() State {
	switch {
	case g.over:
		return Lost
	case g.won:
		return Won
	default:
		return Playing
	}
}

// Board returns an independent deep copy of the grid.
func (g *Game) Board() [][]Cell {
	return g.board.Cells()
}

// Cell returns a copy of a single cell.
func (g *Game) Cell(row, col int) (Cell, error) {
	return g.board.Cell(row, col)
}

func (g *Game) Rows() int      { return g.board.rows }
func (g *Game) Cols() int      { return g.board.cols }
func (g *Game) MineCount() int { return g.board.mines }

// FlagCount returns the number of flagged cells.
func (g *Game) FlagCount() int {
	return g.board.flags()
}

// RemainingMines is the mine counter shown to players: mines minus flags.
// It goes negative when the player over-flags.
func (g *Game) RemainingMines() int {
	return g.board.mines - g.board.flags()
}

// Revealed returns the number of revealed non-mine cells.
func (g *Game) Revealed() int {
	return g.board.tally().revealedSafe
}
