package harness

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether the case with the given name runs.
type Filter func(name string) bool

func RunAll(string) bool { return true }

// Selection picks cases by name. A case runs when it matches one of the
// Run patterns (or Run is empty) and none of the Skip patterns.
type Selection struct {
	Run  NamePatterns
	Skip NamePatterns
}

func (s Selection) Empty() bool {
	return s.Run.Empty() && s.Skip.Empty()
}

func (s Selection) Selects(name string) bool {
	if !s.Run.Empty() && !s.Run.Match(name) {
		return false
	}
	return !s.Skip.Match(name)
}

// NamePatterns is a repeatable flag.Value holding case name regexps.
type NamePatterns []*regexp.Regexp

func (p NamePatterns) String() string {
	quoted := make([]string, len(p))
	for i, rx := range p {
		quoted[i] = fmt.Sprintf("%q", rx.String())
	}
	return strings.Join(quoted, " or ")
}

// Set appends one pattern, so -run and -skip may be given several times.
func (p *NamePatterns) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("case name pattern %q: %w", value, err)
	}
	*p = append(*p, rx)
	return nil
}

func (p NamePatterns) Empty() bool { return len(p) == 0 }

func (p NamePatterns) Match(name string) bool {
	for _, rx := range p {
		if rx.MatchString(name) {
			return true
		}
	}
	return false
}
