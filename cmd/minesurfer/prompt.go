package main

import (
	"os"

	"github.com/coder/quartz"
	"github.com/lox/minesurfer/internal/display"
	"github.com/lox/minesurfer/internal/randutil"
	"github.com/lox/minesurfer/internal/session"
)

type PromptCmd struct {
	BoardFlags
}

func (c *PromptCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stderr)
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
	return display.NewPrompt(s, os.Stdin, os.Stdout, e.logger).Run()
}
