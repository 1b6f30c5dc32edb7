package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version      kong.VersionFlag `short:"v" help:"Show version"`
	Play         PlayCmd          `cmd:"" default:"withargs" help:"Play in the terminal UI"`
	Prompt       PromptCmd        `cmd:"" help:"Play with line-based commands (r ROW COL, f ROW COL)"`
	Simulate     SimulateCmd      `cmd:"" help:"Run bot self-play games and report win rates"`
	Difficulties DifficultiesCmd  `cmd:"" help:"List available difficulties"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minesurfer"),
		kong.Description("Minesweeper for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
