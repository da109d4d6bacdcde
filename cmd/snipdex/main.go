package main

import (
	"github.com/alecthomas/kong"

	"github.com/mmirabella/snipdex/cmd/snipdex/commands"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("snipdex"),
		kong.Description("Keep snippet index sections inside repository README files up to date."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}))
}
