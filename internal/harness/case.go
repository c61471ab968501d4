package harness

import "strconv"

// Generator produces a value when a case starts.
type Generator func() string

// RequestFunc builds a request from the case's generated values.
type RequestFunc func(Vars) RequestSpec

// Case is a single check: build a request, send it, verify the response.
type Case struct {
	Name        string
	Description string

	// Vars are generated once per run of the case and shared by Prime,
	// Request and Expect.
	Vars map[string]Generator

	// Prime requests are sent before Request. Only transport success is
	// required of them.
	Prime []RequestFunc

	Request RequestFunc
	Expect  []Expectation

	// Drift, when set, notes that the live service is known to disagree
	// with the expectations and the case should be re-verified.
	Drift string
}

func (c Case) generate() Vars {
	vars := make(Vars, len(c.Vars))
	for name, gen := range c.Vars {
		vars[name] = gen()
	}
	return vars
}

// Repeat returns n copies of c named c.Name/1 .. c.Name/n. Each copy
// generates its own vars.
func Repeat(c Case, n int) []Case {
	cases := make([]Case, n)
	for i := range cases {
		cp := c
		cp.Name = c.Name + "/" + strconv.Itoa(i+1)
		cases[i] = cp
	}
	return cases
}
