package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/minesurfer/cmd/minesurfer/shared"
	"github.com/lox/minesurfer/internal/fileutil"
	"github.com/lox/minesurfer/internal/randutil"
	"github.com/lox/minesurfer/internal/simulator"
)

type SimulateCmd struct {
	BoardFlags
	Games    int    `short:"n" default:"1000" help:"Number of games to play"`
	Strategy string `short:"s" default:"basic" enum:"random,basic" help:"Bot strategy (random|basic)"`
	Workers  int    `short:"w" default:"0" help:"Concurrent games (0 for GOMAXPROCS)"`
	Output   string `short:"o" type:"path" help:"Also write the summary as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	defer e.cleanup()

	d, err := c.resolve(e.cfg)
	if err != nil {
		return err
	}

	sim, err := simulator.New(simulator.Config{
		Games:      c.Games,
		Difficulty: d,
		Strategy:   c.Strategy,
		Seed:       randutil.Seed(e.seed),
		Workers:    c.Workers,
		Logger:     e.logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(e.logger)
	defer cancel()

	start := time.Now()
	summary, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	e.logger.Info("Simulation complete", "games", summary.Games, "duration", time.Since(start).Round(time.Millisecond))

	fmt.Println(summary.Format())

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, summary.Report()); err != nil {
			return err
		}
		e.logger.Info("Wrote summary", "path", c.Output)
	}
	return nil
}
