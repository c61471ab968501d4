package harness

import (
	"time"

	"go-payture-block/internal/errors"
)

type Outcome string

const (
	Passed  Outcome = "passed"
	Failed  Outcome = "failed"
	Aborted Outcome = "aborted"
	Skipped Outcome = "skipped"
	// Canceled cases were stopped or never started because the run's
	// context was done.
	Canceled Outcome = "canceled"
)

type CaseResult struct {
	Name     string
	Outcome  Outcome
	Vars     Vars
	Response *CapturedResponse
	Errors   []error
	Failures []errors.Failure
	Drift    string
	Duration time.Duration
}

type Results struct {
	Cases []CaseResult
}

// OK is true when no case failed, aborted or was canceled.
func (r Results) OK() bool {
	for _, c := range r.Cases {
		if c.Outcome == Failed || c.Outcome == Aborted || c.Outcome == Canceled {
			return false
		}
	}
	return true
}

func (r Results) Count(o Outcome) int {
	n := 0
	for _, c := range r.Cases {
		if c.Outcome == o {
			n++
		}
	}
	return n
}

func (r Results) Find(name string) (CaseResult, bool) {
	for _, c := range r.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return CaseResult{}, false
}
