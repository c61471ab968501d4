package harness

import (
	stderrors "errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payture-block/internal/errors"
)

func TestEvaluate(t *testing.T) {
	resp := &CapturedResponse{
		StatusCode: 200,
		Body:       `<Block Success="True" OrderId="abc" Amount="12345"/>`,
	}
	vars := Vars{"OrderId": "abc"}

	tests := []struct {
		name         string
		mode         Mode
		expectations []Expectation
		failures     int
	}{
		{
			name: "all hold",
			mode: FailFast,
			expectations: []Expectation{
				StatusEquals(200),
				BodyContains(Literal("Block")),
				BodyContains(Attr("OrderId", Ref("OrderId"))),
			},
		},
		{
			name: "fail fast stops at first failure",
			mode: FailFast,
			expectations: []Expectation{
				StatusEquals(500),
				BodyContains(Literal(`Success="False"`)),
			},
			failures: 1,
		},
		{
			name: "report evaluates everything",
			mode: Report,
			expectations: []Expectation{
				StatusEquals(500),
				BodyContains(Literal("Block")),
				BodyContains(Literal(`Success="False"`)),
			},
			failures: 2,
		},
		{
			name:         "case sensitive",
			mode:         FailFast,
			expectations: []Expectation{BodyContains(Literal(`success="True"`))},
			failures:     1,
		},
		{
			name:         "no regex",
			mode:         FailFast,
			expectations: []Expectation{BodyContains(Literal(`Block.*True`))},
			failures:     1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ev := Evaluator{Mode: test.mode}
			failures := ev.Evaluate(resp, vars, test.expectations)
			assert.Len(t, failures, test.failures)
			for _, f := range failures {
				assert.True(t, errors.IsAssertion(f))
			}
		})
	}
}

func TestAssertionErrorCarriesExpectedAndActual(t *testing.T) {
	resp := &CapturedResponse{StatusCode: 502, Body: strings.Repeat("x", 100)}
	ev := Evaluator{Mode: Report, ExcerptLimit: 10}

	failures := ev.Evaluate(resp, Vars{"OrderId": "abc"}, []Expectation{
		StatusEquals(200),
		BodyContains(Attr("OrderId", Ref("OrderId"))),
	})
	require.Len(t, failures, 2)

	var status *errors.AssertionError
	require.True(t, stderrors.As(failures[0], &status))
	assert.Equal(t, "status equals 200", status.Expectation)
	assert.Equal(t, "200", status.Expected)
	assert.Equal(t, "502", status.Actual)

	var body *errors.AssertionError
	require.True(t, stderrors.As(failures[1], &body))
	assert.Equal(t, `OrderId="abc"`, body.Expected)
	assert.Equal(t, "xxxxxxxxxx... (90 more bytes)", body.Actual)
}

func TestDescribeResolvesVars(t *testing.T) {
	e := BodyContains(Attr("OrderId", Ref("OrderId")))
	assert.Equal(t, `body contains "OrderId=\"42\""`, e.Describe(Vars{"OrderId": "42"}))
	assert.Equal(t, `OrderId=""`, Attr("OrderId", Ref("missing"))(Vars{}))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 10))
	assert.Equal(t, "whole body", Excerpt("whole body", 0))
	assert.Equal(t, "ab... (3 more bytes)", Excerpt("abcde", 2))
}

func TestExcerptKeepsRunesWhole(t *testing.T) {
	body := `<Block Message="Ошибка"/>`
	// Byte 17 is the second byte of "О".
	excerpt := Excerpt(body, 17)

	assert.True(t, utf8.ValidString(excerpt), excerpt)
	assert.True(t, strings.HasPrefix(excerpt, `<Block Message="... (`), excerpt)
	assert.Equal(t, `<Block Message="... (`+strconv.Itoa(len(body)-16)+` more bytes)`, excerpt)
}

func TestEvaluateDoesNotSwallowOtherPanics(t *testing.T) {
	exploding := BodyContains(func(Vars) string { panic("boom") })
	ev := Evaluator{Mode: FailFast}

	assert.PanicsWithValue(t, "boom", func() {
		ev.Evaluate(&CapturedResponse{StatusCode: 200}, Vars{}, []Expectation{exploding})
	})
}
