package glob

import (
	"fmt"
	"strings"
)

// matchTable records at(i, j): whether tokens[i:] match subject[j:].
type matchTable struct {
	cells  []bool
	tokens int
	width  int
}

func buildMatchTable(subject string, tokens []token) *matchTable {
	m, n := len(tokens), len(subject)
	tbl := &matchTable{
		cells:  make([]bool, (m+1)*(n+1)),
		tokens: m,
		width:  n + 1,
	}
	tbl.set(m, n, true)
	for i := m - 1; i >= 0; i-- {
		tk := tokens[i]
		if isStar(tk) {
			tbl.set(i, n, tbl.at(i+1, n))
			for j := n - 1; j >= 0; j-- {
				tbl.set(i, j, tbl.at(i+1, j) || tbl.at(i, j+1))
			}
			continue
		}
		tbl.set(i, n, false)
		for j := n - 1; j >= 0; j-- {
			tbl.set(i, j, matches(tk, subject[j]) && tbl.at(i+1, j+1))
		}
	}
	return tbl
}

func (tbl *matchTable) index(i, j int) int {
	if i < 0 || i > tbl.tokens || j < 0 || j >= tbl.width {
		panic(fmt.Sprintf("glob: match table index (%d, %d) outside %dx%d", i, j, tbl.tokens+1, tbl.width))
	}
	return i*tbl.width + j
}

func (tbl *matchTable) at(i, j int) bool   { return tbl.cells[tbl.index(i, j)] }
func (tbl *matchTable) set(i, j int, v bool) { tbl.cells[tbl.index(i, j)] = v }

// Extract returns the substring of subject consumed by each wildcard, in pattern
// order. It returns false when the subject does not match or the pattern has no
// wildcards. Every capture is a copy and does not retain subject.
func (p *Pattern) Extract(subject string) ([]string, bool) {
	if p.wildcards == 0 || !p.Match(subject) {
		return nil, false
	}
	tbl := buildMatchTable(subject, p.tokens)
	if !tbl.at(0, 0) {
		panic(fmt.Sprintf("glob: match table rejects %q for pattern %q", subject, p.src))
	}

	captures := make([]string, 0, p.wildcards)
	var j int
	for i, tk := range p.tokens {
		switch tk := tk.(type) {
		case star:
			start := j
			for !tbl.at(i+1, j) {
				j++
			}
			captures = append(captures, strings.Clone(subject[start:j]))
		case anyChar, class:
			captures = append(captures, strings.Clone(subject[j:j+1]))
			j++
		case literal:
			if !matches(tk, subject[j]) {
				panic(fmt.Sprintf("glob: literal %v does not match %q at %d", tk, subject, j))
			}
			j++
		}
	}
	return captures, true
}
