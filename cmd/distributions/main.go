package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/distributions/cmd/internal/batch"
	"github.com/nelhage/distributions/cmd/internal/combine"
	"github.com/nelhage/distributions/cmd/internal/describe"
	"github.com/nelhage/distributions/cmd/internal/fit"
	"github.com/nelhage/distributions/cmd/internal/history"
	"github.com/nelhage/distributions/cmd/internal/plot"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&describe.Command{}, "")
	subcommands.Register(&combine.Command{}, "")
	subcommands.Register(&fit.Command{}, "")
	subcommands.Register(&plot.Command{}, "")
	subcommands.Register(&history.Command{}, "")
	subcommands.Register(&batch.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
