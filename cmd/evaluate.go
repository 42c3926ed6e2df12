package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebuy-agent/config"
	"homebuy-agent/report"
	"homebuy-agent/repository"
	"homebuy-agent/service"
)

// evaluateCmd holds the flags for the 'evaluate' subcommand.
type evaluateCmd struct {
	input   string
	years   int
	asJSON  bool
	explain bool
}

func (*evaluateCmd) Name() string     { return "evaluate" }
func (*evaluateCmd) Synopsis() string { return "compare the four home acquisition strategies" }
func (*evaluateCmd) Usage() string {
	return `homebuy evaluate [-i <params.json>] [-years <n>] [-json] [-explain]

  Evaluates all-cash, 80% mortgage, mortgage + synthetic leverage and
  securities-backed lending for one parameter set. Rates in the parameter
  file are percentages. Without -i the reference parameters are used.
`
}

func (c *evaluateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "JSON parameter file, '-' for stdin")
	f.IntVar(&c.years, "years", -1, "override the holding period")
	f.BoolVar(&c.asJSON, "json", false, "print the evaluation as JSON")
	f.BoolVar(&c.explain, "explain", false, "add a narrative explanation")
}

func (c *evaluateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := readInput(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.years >= 0 {
		input.HoldingPeriod = c.years
	}

	var explainer service.Explainer
	if c.explain {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			return subcommands.ExitFailure
		}
		explainer = service.NewExplanationService(cfg.OpenAIKey, cfg.AIURL, cfg.AIModel)
	}

	svc := service.NewEvaluationService(
		repository.NewEvaluationRepositoryMemory(),
		repository.NewMockCache(),
		explainer,
		0,
	)

	evaluation, err := svc.Evaluate(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		err = printJSON(evaluation)
	} else {
		err = report.Write(os.Stdout, evaluation)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
