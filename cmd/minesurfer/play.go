package main

import (
	"io"

	"github.com/coder/quartz"
	"github.com/lox/minesurfer/cmd/minesurfer/shared"
	"github.com/lox/minesurfer/internal/randutil"
	"github.com/lox/minesurfer/internal/session"
	"github.com/lox/minesurfer/internal/tui"
	"github.com/muesli/termenv"
)

type PlayCmd struct {
	BoardFlags
	NoColor bool `help:"Disable colours"`
}

func (c *PlayCmd) Run(g *Globals) error {
	// The alt screen owns the terminal, so logs only go to --log-file.
	e, err := g.setup(io.Discard)
	if err != nil {
		return err
	}
	defer e.cleanup()

	d, err := c.resolve(e.cfg)
	if err != nil {
		return err
	}

	seed := randutil.Seed(e.seed)
	e.logger.Info("Starting game", "difficulty", d.Slug, "seed", seed)

	s, err := session.New(d, randutil.New(seed), quartz.NewReal(), e.logger)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(e.logger)
	defer cancel()

	var opts []tui.Option
	if c.NoColor {
		opts = append(opts, tui.WithColorProfile(termenv.Ascii))
	}
	return tui.Run(ctx, s, e.logger, opts...)
}
