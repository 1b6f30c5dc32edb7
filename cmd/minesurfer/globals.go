package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/minesurfer/cmd/minesurfer/shared"
	"github.com/lox/minesurfer/internal/config"
	"github.com/lox/minesurfer/internal/game"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"minesurfer.hcl" type:"path" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (debug|info|warn|error), overrides config"`
	LogFile  string `help:"Write logs to this file"`
	Seed     int64  `help:"Seed for board generation (0 for random), overrides config"`
}

// BoardFlags selects a difficulty or a custom board.
type BoardFlags struct {
	Difficulty string `short:"d" help:"Difficulty slug (see 'difficulties')"`
	Rows       int    `help:"Custom board rows (with --cols and --mines)"`
	Cols       int    `help:"Custom board columns"`
	Mines      int    `help:"Custom board mine count"`
}

// env is everything a command needs after flags and config are merged.
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	seed    int64
	cleanup func()
}

// setup loads config, applies flag overrides and builds the logger. Logs go
// to --log-file when set, otherwise to w.
func (g *Globals) setup(w io.Writer) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	e := &env{cfg: cfg, seed: cfg.Seed, cleanup: func() {}}
	if g.LogFile != "" {
		e.logger, e.cleanup, err = shared.SetupFileLogger(cfg.LogLevel, g.LogFile)
	} else {
		e.logger, err = shared.SetupLogger(cfg.LogLevel, w)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// resolve picks the board: explicit dimensions win, then --difficulty, then
// the configured default.
func (b BoardFlags) resolve(cfg *config.Config) (game.Difficulty, error) {
	if b.Rows != 0 || b.Cols != 0 || b.Mines != 0 {
		d := game.Difficulty{
			Slug:  "custom",
			Name:  "Custom",
			Rows:  b.Rows,
			Cols:  b.Cols,
			Mines: b.Mines,
		}
		return d, d.Validate()
	}
	slug := b.Difficulty
	if slug == "" {
		slug = cfg.DefaultDifficulty
	}
	return cfg.Difficulty(slug)
}
