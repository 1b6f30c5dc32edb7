package simulator

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/minesurfer/internal/game"
)

// Move is a strategy's chosen action.
type Move struct {
	Row  int
	Col  int
	Flag bool
}

// Strategy picks the next move from a board snapshot. Implementations must
// only return moves that change the board.
type Strategy interface {
	Name() string
	NextMove(cells [][]game.Cell, rng *rand.Rand) (Move, bool)
}

// StrategyNames lists the strategies NewStrategy accepts.
var StrategyNames = []string{"random", "basic"}

// NewStrategy returns a strategy by name.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "random":
		return randomStrategy{}, nil
	case "basic":
		return basicStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, StrategyNames)
	}
}

// randomStrategy reveals a uniformly random hidden, unflagged cell.
type randomStrategy struct{}

func (randomStrategy) Name() string { return "random" }

func (randomStrategy) NextMove(cells [][]game.Cell, rng *rand.Rand) (Move, bool) {
	return randomReveal(cells, rng)
}

func randomReveal(cells [][]game.Cell, rng *rand.Rand) (Move, bool) {
	var candidates []game.Position
	for _, row := range cells {
		for _, c := range row {
			if !c.IsRevealed && !c.IsFlagged {
				candidates = append(candidates, c.Position())
			}
		}
	}
	if len(candidates) == 0 {
		return Move{}, false
	}
	p := candidates[rng.IntN(len(candidates))]
	return Move{Row: p.Row, Col: p.Col}, true
}

// basicStrategy applies the two single-cell deductions and falls back to a
// random reveal:
//   - a number whose flagged neighbours already account for it makes every
//     other hidden neighbour safe
//   - a number equal to its flagged plus hidden neighbours makes every hidden
//     neighbour a mine
//
// It only ever flags proven mines, so its flags are always correct.
type basicStrategy struct{}

func (basicStrategy) Name() string { return "basic" }

func (basicStrategy) NextMove(cells [][]game.Cell, rng *rand.Rand) (Move, bool) {
	for _, row := range cells {
		for _, c := range row {
			if !c.IsRevealed || c.IsMine || c.Value == 0 {
				continue
			}
			hidden, flagged := neighbourhood(cells, c)
			if len(hidden) == 0 {
				continue
			}
			switch {
			case flagged == c.Value:
				return Move{Row: hidden[0].Row, Col: hidden[0].Col}, true
			case flagged+len(hidden) == c.Value:
				return Move{Row: hidden[0].Row, Col: hidden[0].Col, Flag: true}, true
			}
		}
	}
	return randomReveal(cells, rng)
}

// neighbourhood returns c's hidden unflagged neighbours and its flag count.
func neighbourhood(cells [][]game.Cell, c game.Cell) ([]game.Position, int) {
	var hidden []game.Position
	flagged := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, col := c.Row+dr, c.Col+dc
			if r < 0 || r >= len(cells) || col < 0 || col >= len(cells[r]) {
				continue
			}
			n := cells[r][col]
			switch {
			case n.IsRevealed:
			case n.IsFlagged:
				flagged++
			default:
				hidden = append(hidden, n.Position())
			}
		}
	}
	return hidden, flagged
}
