// Package game implements the Minesweeper rules engine.
//
// The main type is Game, which owns a Board and the two terminal latches
// (game over, game won). Callers forward player moves to Reveal and
// ToggleFlag and render from the deep copy returned by Board.
//
// # Basic Usage
//
//	g, err := game.NewGame(randutil.New(seed), 10, 10, 10)
//	if err != nil {
//	    return err
//	}
//	outcome, err := g.Reveal(3, 4)
//	if errors.Is(err, game.ErrOutOfBounds) {
//	    // re-prompt
//	}
//	if outcome.GameOver {
//	    // every cell is now revealed
//	}
//
// # Deterministic Testing
//
// Mine placement always draws from an injected *rand.Rand, so a seed fixes
// the layout. For complete control pass an explicit layout:
//
//	g, _ := game.NewGame(nil, 3, 3, 1, game.WithMines([]game.Position{{Row: 1, Col: 1}}))
//
// # Move Policy
//
// Reveal on a flagged cell is ignored; the flag has to be cleared first.
// Moves after a terminal state are ignored rather than reported as errors.
// Boards must keep at least one safe cell, so mines == rows*cols is rejected.
package game
