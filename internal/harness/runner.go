package harness

import (
	"context"
	"time"

	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

// Observer is told about each case as the run progresses.
type Observer interface {
	CaseStarted(c Case)
	CaseFinished(r CaseResult)
}

type RunnerOptions struct {
	Mode         Mode
	ExcerptLimit int
	Filter       Filter
	Observer     Observer
}

// Runner executes cases one after another. A failing or aborted case does
// not stop the run.
type Runner struct {
	executor     *Executor
	errorHandler *errors.ErrorHandler
	logger       *logger.Logger
	evaluator    Evaluator
	filter       Filter
	observer     Observer
}

func NewRunner(executor *Executor, eh *errors.ErrorHandler, lgr *logger.Logger, opts RunnerOptions) *Runner {
	filter := opts.Filter
	if filter == nil {
		filter = RunAll
	}
	return &Runner{
		executor:     executor,
		errorHandler: eh,
		logger:       lgr,
		evaluator:    Evaluator{Mode: opts.Mode, ExcerptLimit: opts.ExcerptLimit},
		filter:       filter,
		observer:     opts.Observer,
	}
}

func (r *Runner) Run(ctx context.Context, cases []Case) Results {
	var results Results
	for _, c := range cases {
		if ctx.Err() != nil {
			results.Cases = append(results.Cases, CaseResult{Name: c.Name, Outcome: Canceled, Drift: c.Drift})
			continue
		}
		if !r.filter(c.Name) {
			results.Cases = append(results.Cases, CaseResult{Name: c.Name, Outcome: Skipped, Drift: c.Drift})
			continue
		}
		if r.observer != nil {
			r.observer.CaseStarted(c)
		}
		result := r.RunCase(ctx, c)
		if r.observer != nil {
			r.observer.CaseFinished(result)
		}
		results.Cases = append(results.Cases, result)
	}

	r.logger.Info("Run finished", map[string]interface{}{
		"passed":   results.Count(Passed),
		"failed":   results.Count(Failed),
		"aborted":  results.Count(Aborted),
		"skipped":  results.Count(Skipped),
		"canceled": results.Count(Canceled),
	}, logger.ChannelHarness)

	return results
}

// RunCase runs a single case regardless of the filter.
func (r *Runner) RunCase(ctx context.Context, c Case) CaseResult {
	start := time.Now()
	vars := c.generate()
	result := CaseResult{Name: c.Name, Vars: vars, Drift: c.Drift}

	caseLogger := r.logger.With(map[string]interface{}{"case": c.Name})
	caseLogger.Info("Case started", nil, logger.ChannelHarness)

	abort := func(err error) CaseResult {
		result.Outcome = Aborted
		result.Errors = append(result.Errors, err)
		result.Duration = time.Since(start)
		if errors.IsCanceled(err) {
			result.Outcome = Canceled
			caseLogger.Info("Case canceled", nil, logger.ChannelHarness)
			return result
		}
		result.Failures = append(result.Failures, r.errorHandler.Classify(err, c.Name))
		return result
	}

	for _, prime := range c.Prime {
		if _, err := r.executor.Execute(ctx, prime(vars)); err != nil {
			return abort(err)
		}
	}

	resp, err := r.executor.Execute(ctx, c.Request(vars))
	if err != nil {
		return abort(err)
	}
	result.Response = resp

	failures := r.evaluator.Evaluate(resp, vars, c.Expect)
	result.Outcome = Passed
	if len(failures) > 0 {
		result.Outcome = Failed
		result.Errors = failures
		for _, f := range failures {
			result.Failures = append(result.Failures, r.errorHandler.Classify(f, c.Name))
		}
		if c.Drift != "" {
			caseLogger.Warning("Case has known drift from the live service", map[string]interface{}{
				"note": c.Drift,
			}, logger.ChannelHarness)
		}
	}
	result.Duration = time.Since(start)

	caseLogger.Info("Case finished", map[string]interface{}{
		"outcome":  string(result.Outcome),
		"duration": result.Duration.String(),
	}, logger.ChannelHarness)

	return result
}
