package main

import "github.com/alecthomas/kong"

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Trace   bool `help:"Trace parser invocations to stderr."`

		Math    mathCmd    `cmd:"" help:"Evaluate an arithmetic expression."`
		Textman textmanCmd `cmd:"" help:"Parse a Carriage text-manipulation script."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Demonstration drivers for the carriage parser-combinator runtime.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run(cli.Trace)
	kctx.FatalIfErrorf(err)
}
