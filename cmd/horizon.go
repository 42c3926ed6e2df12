package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebuy-agent/domain"
	"homebuy-agent/report"
	"homebuy-agent/service"
)

type horizonCmd struct {
	input  string
	min    int
	max    int
	asJSON bool
}

func (*horizonCmd) Name() string     { return "horizon" }
func (*horizonCmd) Synopsis() string { return "rank the strategies for a range of holding periods" }
func (*horizonCmd) Usage() string {
	return `homebuy horizon [-i <params.json>] [-min <years>] [-max <years>] [-json]

  Re-evaluates the parameters for every holding period in [min, max] and
  shows the winning strategy and the delta of each strategy versus cash.
`
}

func (c *horizonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "JSON parameter file, '-' for stdin")
	f.IntVar(&c.min, "min", 1, "shortest holding period in years")
	f.IntVar(&c.max, "max", 30, "longest holding period in years")
	f.BoolVar(&c.asJSON, "json", false, "print the sweep as JSON")
}

func (c *horizonCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := readInput(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := service.NewHorizonService().Sweep(ctx, domain.HorizonInput{
		Parameters: input,
		MinYears:   c.min,
		MaxYears:   c.max,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sweeping horizons: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		err = printJSON(result)
	} else {
		err = report.WriteHorizon(os.Stdout, result)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
