package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Config string `short:"c" default:"holdemsim.hcl" help:"HCL configuration file (defaults apply when missing)"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random showdowns and report win rates by starting hand"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate the best hand in 5 to 7 cards"`
	Showdown ShowdownCmd      `cmd:"" help:"Resolve the winners of a single showdown"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdemsim"),
		kong.Description("Texas Hold'em hand evaluator and showdown simulator"),
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
