package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/minesurfer/internal/config"
)

type DifficultiesCmd struct{}

func (c *DifficultiesCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	defer e.cleanup()
	return listDifficulties(os.Stdout, e.cfg)
}

func listDifficulties(w io.Writer, cfg *config.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tSIZE\tMINES\tDESCRIPTION")
	for _, d := range cfg.Difficulties() {
		slug := d.Slug
		if slug == cfg.DefaultDifficulty {
			slug += "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%s\n", slug, d.Name, d.Rows, d.Cols, d.Mines, d.Description)
	}
	return tw.Flush()
}
