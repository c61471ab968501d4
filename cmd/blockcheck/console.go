package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"go-payture-block/internal/harness"
)

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed, color.Bold)
	abortColor = color.New(color.FgYellow, color.Bold)
	noteColor  = color.New(color.FgCyan)
)

// consoleObserver prints one line per case and the details of any failure.
type consoleObserver struct {
	out     io.Writer
	verbose bool
}

func (o *consoleObserver) CaseStarted(c harness.Case) {
	if o.verbose {
		fmt.Fprintf(o.out, "[%s] %s\n", c.Name, c.Description)
	}
}

func (o *consoleObserver) CaseFinished(r harness.CaseResult) {
	switch r.Outcome {
	case harness.Passed:
		passColor.Fprintf(o.out, "  PASS    ")
	case harness.Failed:
		failColor.Fprintf(o.out, "  FAIL    ")
	case harness.Aborted:
		abortColor.Fprintf(o.out, "  ABORTED ")
	case harness.Canceled:
		abortColor.Fprintf(o.out, "  CANCELED ")
	}
	fmt.Fprintf(o.out, "%s (%s)\n", r.Name, r.Duration.Round(time.Millisecond))

	for _, err := range r.Errors {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(o.out, "      %s\n", line)
		}
	}
	if r.Drift != "" && r.Outcome == harness.Failed {
		noteColor.Fprintf(o.out, "      note: %s\n", r.Drift)
	}
}

func printSummary(out io.Writer, results harness.Results) {
	fmt.Fprintln(out)
	summary := fmt.Sprintf("%d passed, %d failed, %d aborted, %d skipped",
		results.Count(harness.Passed),
		results.Count(harness.Failed),
		results.Count(harness.Aborted),
		results.Count(harness.Skipped),
	)
	if n := results.Count(harness.Canceled); n > 0 {
		summary += fmt.Sprintf(", %d canceled", n)
	}
	if results.OK() {
		passColor.Fprintln(out, summary)
		return
	}
	failColor.Fprintln(out, summary)
	for _, c := range results.Cases {
		if c.Outcome == harness.Failed || c.Outcome == harness.Aborted || c.Outcome == harness.Canceled {
			fmt.Fprintf(out, "  %s: %s\n", c.Outcome, c.Name)
		}
	}
}

func printSelection(out io.Writer, selection harness.Selection) {
	if selection.Empty() {
		return
	}
	fmt.Fprintln(out, "Case selection:")
	if !selection.Run.Empty() {
		fmt.Fprintf(out, "  run only names matching %s\n", selection.Run)
	}
	if !selection.Skip.Empty() {
		fmt.Fprintf(out, "  skip names matching %s\n", selection.Skip)
	}
	fmt.Fprintln(out)
}
