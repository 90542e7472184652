package glob

import (
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ListMatch reports whether any pattern matches any subject. quotes is aligned with
// patterns. An empty subject list is matched by an empty pattern list, or by any
// pattern made only of raw stars.
func ListMatch(subjects, patterns []string, quotes []Quoting) bool {
	mustAlign(patterns, quotes)
	if len(subjects) == 0 {
		if len(patterns) == 0 {
			return true
		}
		for i, pat := range patterns {
			if onlyStars(pat, quotes[i]) {
				return true
			}
		}
		return false
	}
	for i, pat := range patterns {
		compiled := Compile(pat, quotes[i])
		for _, subject := range subjects {
			if compiled.Match(subject) {
				return true
			}
		}
	}
	return false
}

func onlyStars(pat string, q Quoting) bool {
	if pat == "" || q.IsQuoted() {
		return false
	}
	q.mustCover(len(pat))
	for i := range len(pat) {
		if pat[i] != '*' || !q.IsRaw(i) {
			return false
		}
	}
	return true
}

func mustAlign(patterns []string, quotes []Quoting) {
	if len(patterns) != len(quotes) {
		panic(fmt.Sprintf("glob: %d patterns with %d quotings", len(patterns), len(quotes)))
	}
}

// ExtractMatches returns, for every subject in order, the captures of the first
// pattern that matches it. Subjects that match no pattern contribute nothing.
func ExtractMatches(subjects, patterns []string, quotes []Quoting) []string {
	return NewSet(patterns, quotes).Extract(subjects)
}

// Set is an ordered list of compiled patterns where the first match wins.
type Set struct {
	patterns []*Pattern
	// guards[i] finds any literal run of patterns[i], nil when it has none to check.
	guards []*ahocorasick.Automaton
}

// NewSet compiles every pattern up front.
func NewSet(patterns []string, quotes []Quoting) *Set {
	mustAlign(patterns, quotes)
	set := &Set{
		patterns: make([]*Pattern, len(patterns)),
		guards:   make([]*ahocorasick.Automaton, len(patterns)),
	}
	for i, pat := range patterns {
		set.patterns[i] = Compile(pat, quotes[i])
		set.guards[i] = literalGuard(set.patterns[i])
	}
	return set
}

// literalGuard builds an automaton over the literal runs of a wildcard pattern. A
// subject holding none of the runs cannot match the pattern.
func literalGuard(p *Pattern) *ahocorasick.Automaton {
	if p.wildcards == 0 {
		return nil
	}
	runs := p.literalRuns()
	if len(runs) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, run := range runs {
		builder.AddPattern(run)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// Len is the number of patterns in the set.
func (s *Set) Len() int { return len(s.patterns) }

// Pattern returns the i-th compiled pattern.
func (s *Set) Pattern(i int) *Pattern { return s.patterns[i] }

// First returns the index of the first pattern matching subject.
func (s *Set) First(subject string) (int, bool) {
	var haystack []byte
	for i, pat := range s.patterns {
		if guard := s.guards[i]; guard != nil {
			if haystack == nil {
				haystack = []byte(subject)
			}
			if !guard.IsMatch(haystack) {
				continue
			}
		}
		if pat.Match(subject) {
			return i, true
		}
	}
	return -1, false
}

// Extract concatenates the captures of every subject against its first matching
// pattern.
func (s *Set) Extract(subjects []string) []string {
	out := []string{}
	for _, subject := range subjects {
		idx, ok := s.First(subject)
		if !ok {
			continue
		}
		if captures, ok := s.patterns[idx].Extract(subject); ok {
			out = append(out, captures...)
		}
	}
	return out
}
