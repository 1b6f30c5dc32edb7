package game

import "fmt"

// Position is a 0-based grid coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is one grid position. Row and Col duplicate its position so snapshot
// consumers can hand single cells around.
type Cell struct {
	Row        int
	Col        int
	Value      int // adjacent mines, meaningless for mines
	IsMine     bool
	IsRevealed bool
	IsFlagged  bool
}

// Position returns the cell's coordinate.
func (c Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// State is the lifecycle state of a game.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome reports the terminal flags after a move.
type Outcome struct {
	GameOver bool
	GameWon  bool
}

// Ended reports whether either terminal latch has fired.
func (o Outcome) Ended() bool {
	return o.GameOver || o.GameWon
}

// tally counts the quantities the win predicate needs.
type tally struct {
	safe          int
	revealedSafe  int
	revealedMines int
}

func (t *tally) add(c Cell) {
	if c.IsMine {
		if c.IsRevealed {
			t.revealedMines++
		}
		return
	}
	t.safe++
	if c.IsRevealed {
		t.revealedSafe++
	}
}

func (t tally) won() bool {
	return t.revealedSafe == t.safe && t.revealedMines == 0
}

// Won reports whether a grid is in a winning state: every non-mine cell is
// revealed and no mine is. It does not consult any game-over latch, so it can
// be applied to any snapshot.
func Won(cells [][]Cell) bool {
	var t tally
	for _, row := range cells {
		for _, c := range row {
			t.add(c)
		}
	}
	return t.won()
}
