// Package simulator plays many games concurrently with a bot strategy and
// aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/minesurfer/internal/game"
	"github.com/lox/minesurfer/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations.
type Config struct {
	Games      int
	Difficulty game.Difficulty
	Strategy   string
	Seed       int64
	Workers    int // 0 means GOMAXPROCS
	Logger     *log.Logger
}

// Simulator runs self-play games.
type Simulator struct {
	config   Config
	strategy Strategy
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed     int64
	State    game.State
	Moves    int
	Revealed int
}

// Summary aggregates game results.
type Summary struct {
	Difficulty game.Difficulty
	Strategy   string
	Seed       int64
	Games      int
	Wins       int
	Losses     int
	SumMoves   int
	SumMoves2  int // sum of squares for variance
}

// New validates config and returns a simulator.
func New(config Config) (*Simulator, error) {
	if config.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if err := config.Difficulty.Validate(); err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config, strategy: strategy}, nil
}

// Run plays every game and returns the summary. Each game gets its own seed
// derived from the config seed, so results do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	results := make([]GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		seed := randutil.Derive(s.config.Seed, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Difficulty: s.config.Difficulty,
		Strategy:   s.strategy.Name(),
		Seed:       s.config.Seed,
	}
	for _, r := range results {
		summary.Add(r)
	}

	s.config.Logger.Info("Simulation complete",
		"games", summary.Games,
		"wins", summary.Wins,
		"winRate", fmt.Sprintf("%.1f%%", summary.WinRate()*100))
	return summary, nil
}

// playGame runs one game to completion.
func (s *Simulator) playGame(seed int64) (GameResult, error) {
	rng := randutil.New(seed)
	g, err := s.config.Difficulty.NewGame(rng)
	if err != nil {
		return GameResult{}, err
	}

	d := s.config.Difficulty
	limit := 2 * d.Rows * d.Cols
	moves := 0
	for !g.Outcome().Ended() {
		if moves >= limit {
			return GameResult{}, fmt.Errorf("no result after %d moves", moves)
		}
		m, ok := s.strategy.NextMove(g.Board(), rng)
		if !ok {
			return GameResult{}, fmt.Errorf("strategy %s found no move", s.strategy.Name())
		}
		if m.Flag {
			_, err = g.ToggleFlag(m.Row, m.Col)
		} else {
			_, err = g.Reveal(m.Row, m.Col)
		}
		if err != nil {
			return GameResult{}, err
		}
		moves++
	}

	s.config.Logger.Debug("Game finished", "seed", seed, "state", g.State(), "moves", moves)
	return GameResult{Seed: seed, State: g.State(), Moves: moves, Revealed: g.Revealed()}, nil
}

// Add folds one result into the summary.
func (s *Summary) Add(r GameResult) {
	s.Games++
	switch r.State {
	case game.Won:
		s.Wins++
	case game.Lost:
		s.Losses++
	}
	s.SumMoves += r.Moves
	s.SumMoves2 += r.Moves * r.Moves
}

// WinRate returns wins / games.
func (s *Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// MeanMoves returns the average number of moves per game.
func (s *Summary) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumMoves) / float64(s.Games)
}

// StdDevMoves returns the sample standard deviation of moves per game.
func (s *Summary) StdDevMoves() float64 {
	if s.Games < 2 {
		return 0
	}
	n := float64(s.Games)
	mean := s.MeanMoves()
	v := (float64(s.SumMoves2) - n*mean*mean) / (n - 1)
	return math.Sqrt(max(v, 0))
}

// WinRateCI95 returns the 95% normal-approximation interval on the win rate.
func (s *Summary) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate()
	half := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return max(p-half, 0), min(p+half, 1)
}

// Format renders a human-readable report.
func (s *Summary) Format() string {
	lo, hi := s.WinRateCI95()
	return fmt.Sprintf(`Simulation: %s, strategy %s, seed %d
Games:      %d
Wins:       %d (%.1f%%, 95%% CI %.1f%%-%.1f%%)
Losses:     %d
Moves:      %.1f ± %.1f per game`,
		s.Difficulty, s.Strategy, s.Seed,
		s.Games,
		s.Wins, s.WinRate()*100, lo*100, hi*100,
		s.Losses,
		s.MeanMoves(), s.StdDevMoves())
}

// Report is the machine-readable form of a summary.
type Report struct {
	Difficulty string  `json:"difficulty"`
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Mines      int     `json:"mines"`
	Strategy   string  `json:"strategy"`
	Seed       int64   `json:"seed"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
	WinRateLo  float64 `json:"win_rate_ci95_low"`
	WinRateHi  float64 `json:"win_rate_ci95_high"`
	MeanMoves  float64 `json:"mean_moves"`
	StdDev     float64 `json:"stddev_moves"`
}

// Report flattens the summary and its derived statistics.
func (s *Summary) Report() Report {
	lo, hi := s.WinRateCI95()
	return Report{
		Difficulty: s.Difficulty.Slug,
		Rows:       s.Difficulty.Rows,
		Cols:       s.Difficulty.Cols,
		Mines:      s.Difficulty.Mines,
		Strategy:   s.Strategy,
		Seed:       s.Seed,
		Games:      s.Games,
		Wins:       s.Wins,
		Losses:     s.Losses,
		WinRate:    s.WinRate(),
		WinRateLo:  lo,
		WinRateHi:  hi,
		MeanMoves:  s.MeanMoves(),
		StdDev:     s.StdDevMoves(),
	}
}
