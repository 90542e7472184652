// Package glob implements the quoting aware wildcard matching used by the es shell
// `~` and `~~` operators.
//
// A pattern is plain text where the characters marked raw by its Quoting may be
// wildcards:
//
//   - ?: matches any single byte.
//   - *: matches any run of bytes, including the empty one.
//   - [set]: matches a single byte in the set. A leading ~ negates the set, a leading
//     ] is a member rather than the terminator, and lo-hi is an inclusive byte range
//     unless the - is the last character of the set. A [ without a matching ] is a
//     literal [.
//
// Quoted characters always match themselves. Matching is anchored at both ends of the
// subject.
//
// Captures:
//
// When extracting, every wildcard yields one capture in pattern order. ? and [set]
// capture the byte they matched, * captures the shortest run that still lets the rest
// of the pattern match, decided from left to right. Substituting the captures back
// into the wildcards reconstructs the subject.
package glob

import (
	"strings"
)

// Pattern is a pattern compiled against its quoting. It is immutable and can be
// matched against any number of subjects.
type Pattern struct {
	src       string
	quote     Quoting
	tokens    []token
	wildcards int
}

// Compile tokenizes pattern under q. It panics if q is a per character quoting
// shorter than pattern.
func Compile(pattern string, q Quoting) *Pattern {
	q.mustCover(len(pattern))
	p := &Pattern{
		src:    pattern,
		quote:  q,
		tokens: make([]token, 0, len(pattern)),
	}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if q.IsRaw(i) {
			switch c {
			case '?':
				p.push(anyChar{})
				i++
				continue
			case '*':
				p.push(star{})
				i++
				continue
			case '[':
				if span := classSpan(pattern[i:], q.Slice(i)); span > 1 {
					p.push(class{text: pattern[i+1 : i+span-1], quote: q.Slice(i + 1)})
					i += span
					continue
				}
			}
		}
		p.push(literal(c))
		i++
	}
	return p
}

func (p *Pattern) push(tk token) {
	if _, isLit := tk.(literal); !isLit {
		p.wildcards++
	}
	p.tokens = append(p.tokens, tk)
}

// Wildcards is the number of ?, * and [set] tokens in the pattern.
func (p *Pattern) Wildcards() int { return p.wildcards }

// Source returns the pattern text the pattern was compiled from.
func (p *Pattern) Source() string { return p.src }

// String dumps the compiled tokens one per line.
func (p *Pattern) String() string {
	var out strings.Builder
	out.WriteString(p.src)
	out.WriteString(" <")
	out.WriteString(p.quote.String())
	out.WriteString(">")
	for _, tk := range p.tokens {
		out.WriteString("\n\t")
		out.WriteString(tk.String())
	}
	return out.String()
}

// literalRuns returns the maximal runs of consecutive literal tokens.
func (p *Pattern) literalRuns() [][]byte {
	runs := [][]byte{}
	var run []byte
	for _, tk := range p.tokens {
		if lit, isLit := tk.(literal); isLit {
			run = append(run, byte(lit))
			continue
		}
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}
