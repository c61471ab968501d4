// Command blockcheck runs the Block checks against a gateway and exits
// non-zero when any check fails or the gateway cannot be reached.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-payture-block/internal/block"
	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/harness"
	"go-payture-block/internal/logger"
)

type commandParams struct {
	gatewayURL string
	selection  harness.Selection
	report     bool
	list       bool
	verbose    bool
}

func (c *commandParams) Read(args []string, stderr io.Writer) bool {
	fs := flag.NewFlagSet("blockcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.gatewayURL, "url", "", "Block endpoint URL (overrides GATEWAY_URL)")
	fs.Var(&c.selection.Run, "run", "run only cases whose name matches this regexp (repeatable)")
	fs.Var(&c.selection.Skip, "skip", "skip cases whose name matches this regexp (repeatable)")
	fs.BoolVar(&c.report, "report", false, "evaluate every expectation instead of stopping at the first failure")
	fs.BoolVar(&c.list, "list", false, "list case names and exit")
	fs.BoolVar(&c.verbose, "v", false, "print case descriptions")

	if err := fs.Parse(args); err != nil {
		return false
	}
	return true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args, stderr) {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %s\n", err)
		return 2
	}
	if params.gatewayURL != "" {
		cfg.GatewayURL = params.gatewayURL
	}

	cases := block.Scenarios(block.FixtureFromConfig(cfg))
	if params.list {
		for _, c := range cases {
			fmt.Fprintf(stdout, "%-28s %s\n", c.Name, c.Description)
		}
		return 0
	}

	mode := harness.FailFast
	if params.report || !cfg.FailFast {
		mode = harness.Report
	}

	lgr := logger.NewWithWriter(cfg.LogLevel, stderr)
	runner := harness.NewRunner(
		harness.NewExecutor(cfg.HTTPTimeout, lgr),
		errors.New(lgr, cfg.IsDevelopment()),
		lgr,
		harness.RunnerOptions{
			Mode:         mode,
			ExcerptLimit: cfg.BodyExcerptLimit,
			Filter:       params.selection.Selects,
			Observer:     &consoleObserver{out: stdout, verbose: params.verbose},
		},
	)

	fmt.Fprintf(stdout, "Checking %s (%s)\n\n", cfg.GatewayURL, mode)
	printSelection(stdout, params.selection)

	results := runner.Run(ctx, cases)
	printSummary(stdout, results)
	if !results.OK() {
		return 1
	}
	return 0
}
