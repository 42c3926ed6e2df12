package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebuy-agent/domain"
)

type defaultsCmd struct{}

func (*defaultsCmd) Name() string     { return "defaults" }
func (*defaultsCmd) Synopsis() string { return "print the reference parameter file" }
func (*defaultsCmd) Usage() string {
	return `homebuy defaults > params.json

  Prints the reference parameters as JSON, a starting point for -i.
`
}

func (*defaultsCmd) SetFlags(*flag.FlagSet) {}

func (*defaultsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	if err := printJSON(domain.DefaultPercentInput()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
