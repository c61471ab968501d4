package harness

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payture-block/internal/errors"
)

// Vars holds values generated when a case starts, such as a fresh order id.
type Vars map[string]string

// Value is resolved against the case's Vars when an expectation is checked.
type Value func(Vars) string

func Literal(s string) Value {
	return func(Vars) string { return s }
}

// Ref resolves to the generated value called name.
func Ref(name string) Value {
	return func(v Vars) string { return v[name] }
}

// Attr renders name="value", the way the gateway writes response attributes.
func Attr(name string, value Value) Value {
	return func(v Vars) string { return name + `="` + value(v) + `"` }
}

type expectationKind int

const (
	statusEquals expectationKind = iota
	bodyContains
)

// Expectation is one predicate over a CapturedResponse.
type Expectation struct {
	kind      expectationKind
	status    int
	substring Value
}

func StatusEquals(status int) Expectation {
	return Expectation{kind: statusEquals, status: status}
}

// BodyContains is a literal, case-sensitive substring check.
func BodyContains(v Value) Expectation {
	return Expectation{kind: bodyContains, substring: v}
}

func (e Expectation) Describe(vars Vars) string {
	switch e.kind {
	case statusEquals:
		return fmt.Sprintf("status equals %d", e.status)
	default:
		return "body contains " + strconv.Quote(e.substring(vars))
	}
}

// failure is the error reported if e does not hold for resp.
func (e Expectation) failure(resp *CapturedResponse, vars Vars, excerptLimit int) *errors.AssertionError {
	if e.kind == statusEquals {
		return &errors.AssertionError{
			Expectation: e.Describe(vars),
			Expected:    strconv.Itoa(e.status),
			Actual:      strconv.Itoa(resp.StatusCode),
		}
	}
	return &errors.AssertionError{
		Expectation: e.Describe(vars),
		Expected:    e.substring(vars),
		Actual:      Excerpt(resp.Body, excerptLimit),
	}
}

func (e Expectation) assertHolds(t assert.TestingT, resp *CapturedResponse, vars Vars) {
	if e.kind == statusEquals {
		assert.Equal(t, e.status, resp.StatusCode)
		return
	}
	assert.Contains(t, resp.Body, e.substring(vars))
}

func (e Expectation) requireHolds(t require.TestingT, resp *CapturedResponse, vars Vars) {
	if e.kind == statusEquals {
		require.Equal(t, e.status, resp.StatusCode)
		return
	}
	require.Contains(t, resp.Body, e.substring(vars))
}

// checkContext lets testify's assert and require report into an Evaluate
// call: Errorf records the failure of the expectation being checked and
// FailNow unwinds back to Evaluate.
type checkContext struct {
	pending  *errors.AssertionError
	failures []error
}

func (c *checkContext) Errorf(format string, args ...interface{}) {
	c.failures = append(c.failures, c.pending)
}

func (c *checkContext) FailNow() {
	panic(c)
}

type Mode int

const (
	// FailFast stops at the first failing expectation.
	FailFast Mode = iota
	// Report evaluates every expectation.
	Report
)

func (m Mode) String() string {
	if m == Report {
		return "report"
	}
	return "fail-fast"
}

type Evaluator struct {
	Mode         Mode
	ExcerptLimit int
}

// Evaluate checks expectations in order and returns the failures as
// *errors.AssertionError values. An empty result means the response passed.
func (ev Evaluator) Evaluate(resp *CapturedResponse, vars Vars, expectations []Expectation) (failures []error) {
	c := &checkContext{}
	defer func() {
		if r := recover(); r != nil && r != c {
			panic(r)
		}
		failures = c.failures
	}()

	for _, e := range expectations {
		c.pending = e.failure(resp, vars, ev.ExcerptLimit)
		if ev.Mode == FailFast {
			e.requireHolds(c, resp, vars)
		} else {
			e.assertHolds(c, resp, vars)
		}
	}
	return c.failures
}

// Excerpt shortens body to at most limit bytes without splitting a rune.
// A non-positive limit keeps it whole.
func Excerpt(body string, limit int) string {
	if limit <= 0 || len(body) <= limit {
		return body
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d more bytes)", body[:cut], len(body)-cut)
}
