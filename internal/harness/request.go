// Package harness builds GET requests from named query parameters, sends
// them to an endpoint and checks the captured response against declarative
// expectations.
package harness

import (
	"fmt"
	"net/url"
	"strings"
)

type Param struct {
	Name  string
	Value string
}

// RequestSpec is an endpoint plus an ordered list of query parameters.
// With and Without return modified copies; a RequestSpec is never mutated.
type RequestSpec struct {
	BaseURL string
	Params  []Param
}

func NewRequest(baseURL string) RequestSpec {
	return RequestSpec{BaseURL: baseURL}
}

func (r RequestSpec) With(name, value string) RequestSpec {
	params := make([]Param, len(r.Params), len(r.Params)+1)
	copy(params, r.Params)
	return RequestSpec{BaseURL: r.BaseURL, Params: append(params, Param{Name: name, Value: value})}
}

// Without drops every parameter called name.
func (r RequestSpec) Without(name string) RequestSpec {
	params := make([]Param, 0, len(r.Params))
	for _, p := range r.Params {
		if p.Name != name {
			params = append(params, p)
		}
	}
	return RequestSpec{BaseURL: r.BaseURL, Params: params}
}

// Lookup returns the first value of name.
func (r RequestSpec) Lookup(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Query form-encodes the parameters in insertion order.
func (r RequestSpec) Query() string {
	var sb strings.Builder
	for i, p := range r.Params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// URL appends the query to the base endpoint, replacing any query the base
// already carries.
func (r RequestSpec) URL() (string, error) {
	u, err := url.Parse(r.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", r.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host are required", r.BaseURL)
	}
	u.RawQuery = r.Query()
	return u.String(), nil
}

// ParseQuery reverses Query, keeping order and duplicates.
func ParseQuery(rawQuery string) ([]Param, error) {
	var params []Param
	if rawQuery == "" {
		return params, nil
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		name, value, _ := strings.Cut(pair, "=")
		n, err := url.QueryUnescape(name)
		if err != nil {
			return nil, fmt.Errorf("invalid query name %q: %w", name, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("invalid query value for %q: %w", n, err)
		}
		params = append(params, Param{Name: n, Value: v})
	}
	return params, nil
}
