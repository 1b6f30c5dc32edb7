// Package session runs one player's sequence of games: it owns the current
// game, restarts it wholesale on request, and keeps the clock.
package session

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/minesurfer/internal/game"
)

// Banner is a two-part end-of-game message.
type Banner struct {
	Left  string
	Right string
}

func (b Banner) String() string {
	if b.Left == "" && b.Right == "" {
		return ""
	}
	return b.Left + " " + b.Right
}

var (
	winBanners = []Banner{
		{"Totally", "Tubular!"},
		{"Shredding", "It!"},
		{"Epic", "Wave!"},
		{"Stoked", "Dude!"},
		{"Perfect", "Pipeline!"},
	}
	loseBanners = []Banner{
		{"Wipe", "Out!"},
		{"Epic", "Fail!"},
		{"Shark", "Attack!"},
		{"Bail", "Out!"},
		{"Total", "Wipeout!"},
		{"Rough", "Seas!"},
		{"Crashed", "& Burned!"},
	}
)

// Session is not safe for concurrent use.
type Session struct {
	difficulty game.Difficulty
	rng        *rand.Rand
	clock      quartz.Clock
	logger     *log.Logger

	game     *game.Game
	number   int
	moves    int
	started  time.Time
	finished time.Time
	banner   Banner
}

// New starts the first game of a session.
func New(difficulty game.Difficulty, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) (*Session, error) {
	if rng == nil {
		panic("rng is required for a session")
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		difficulty: difficulty,
		rng:        rng,
		clock:      clock,
		logger:     logger.WithPrefix("session"),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart replaces the current game with a fresh board of the same
// difficulty. Nothing carries over except the session's RNG stream.
func (s *Session) Restart() error {
	g, err := s.difficulty.NewGame(s.rng, game.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	s.game = g
	s.number++
	s.moves = 0
	s.started = time.Time{}
	s.finished = time.Time{}
	s.banner = Banner{}

	s.logger.Info("Game started", "game", s.number, "difficulty", s.difficulty.Slug)
	return nil
}

// SetDifficulty switches difficulty and restarts.
func (s *Session) SetDifficulty(d game.Difficulty) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.difficulty = d
	return s.Restart()
}

// Reveal forwards a reveal to the current game. Unlike the engine it reports
// game.ErrGameEnded so interactive callers can tell the player.
func (s *Session) Reveal(row, col int) (game.Outcome, error) {
	return s.move(row, col, s.game.Reveal)
}

// ToggleFlag forwards a flag toggle to the current game.
func (s *Session) ToggleFlag(row, col int) (game.Outcome, error) {
	return s.move(row, col, s.game.ToggleFlag)
}

func (s *Session) move(row, col int, apply func(int, int) (game.Outcome, error)) (game.Outcome, error) {
	if s.game.Outcome().Ended() {
		return s.game.Outcome(), game.ErrGameEnded
	}

	before := s.game.Board()
	out, err := apply(row, col)
	if err != nil {
		return out, err
	}
	if !changed(before, s.game) {
		return out, nil
	}

	s.moves++
	if s.started.IsZero() {
		s.started = s.clock.Now()
	}
	if out.Ended() {
		s.finish(out)
	}
	return out, nil
}

func (s *Session) finish(out game.Outcome) {
	s.finished = s.clock.Now()
	if out.GameWon {
		s.banner = winBanners[s.rng.IntN(len(winBanners))]
	} else {
		s.banner = loseBanners[s.rng.IntN(len(loseBanners))]
	}
	s.logger.Info("Game finished",
		"game", s.number,
		"state", s.game.State(),
		"moves", s.moves,
		"elapsed", s.Elapsed().Round(time.Millisecond))
}

// changed reports whether the game's grid differs from before.
func changed(before [][]game.Cell, g *game.Game) bool {
	after := g.Board()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				return true
			}
		}
	}
	return false
}

// Elapsed is the time since the first effective move, frozen once the game
// ends. Zero before the first move.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case !s.finished.IsZero():
		return s.finished.Sub(s.started)
	default:
		return s.clock.Since(s.started)
	}
}

// Game returns the current game. Callers must not keep it across Restart.
func (s *Session) Game() *game.Game { return s.game }

// Difficulty returns the active difficulty.
func (s *Session) Difficulty() game.Difficulty { return s.difficulty }

// Moves counts moves that changed the board in the current game.
func (s *Session) Moves() int { return s.moves }

// Number is the 1-based index of the current game in this session.
func (s *Session) Number() int { return s.number }

// Banner is the end-of-game message, empty while playing.
func (s *Session) Banner() Banner { return s.banner }
