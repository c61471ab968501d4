package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payture-block/internal/errors"
	"go-payture-block/internal/harness"
)

func TestConsoleNotesDriftOnFailure(t *testing.T) {
	var out bytes.Buffer
	observer := &consoleObserver{out: &out}

	observer.CaseFinished(harness.CaseResult{
		Name:    "without_key",
		Outcome: harness.Failed,
		Errors: []error{&errors.AssertionError{
			Expectation: `body contains "ACCESS_DENIED"`,
			Expected:    "ACCESS_DENIED",
			Actual:      `<Block Success="False" ErrCode="WRONG_PARAMS"/>`,
		}},
		Drift: "re-verify ErrCode against the live sandbox",
	})

	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "      expectation failed: body contains \"ACCESS_DENIED\"\n")
	assert.Contains(t, out.String(), "      note: re-verify ErrCode against the live sandbox\n")
}

func TestConsoleOmitsDriftWhenCasePasses(t *testing.T) {
	var out bytes.Buffer
	observer := &consoleObserver{out: &out}

	observer.CaseFinished(harness.CaseResult{
		Name:    "without_key",
		Outcome: harness.Passed,
		Drift:   "re-verify ErrCode against the live sandbox",
	})

	assert.Contains(t, out.String(), "PASS")
	assert.NotContains(t, out.String(), "note:")
}

func TestSummaryCountsCanceledCases(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, harness.Results{Cases: []harness.CaseResult{
		{Name: "correct_request", Outcome: harness.Passed},
		{Name: "without_key", Outcome: harness.Canceled},
	}})

	assert.Contains(t, out.String(), "1 passed, 0 failed, 0 aborted, 0 skipped, 1 canceled")
	assert.Contains(t, out.String(), "  canceled: without_key\n")
}

func TestPrintSelection(t *testing.T) {
	var out bytes.Buffer
	printSelection(&out, harness.Selection{})
	assert.Empty(t, out.String())

	var selection harness.Selection
	assert.NoError(t, selection.Skip.Set("^duplicate_"))
	printSelection(&out, selection)
	assert.Contains(t, out.String(), `  skip names matching "^duplicate_"`)
	assert.NotContains(t, out.String(), "run only")
}
