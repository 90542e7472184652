package glob

import (
	"fmt"
	"strings"
)

type (
	quoteKind int
	// Quoting describes which characters of a pattern are eligible for wildcard
	// interpretation. The zero value is Quoted, every character is literal.
	Quoting struct {
		kind    quoteKind
		markers string
	}
)

const (
	allQuoted quoteKind = iota
	allRaw
	perChar
)

// Quoted returns a quoting where every pattern character is literal.
func Quoted() Quoting { return Quoting{kind: allQuoted} }

// Raw returns a quoting where every pattern character may be a wildcard.
func Raw() Quoting { return Quoting{kind: allRaw} }

// PerChar returns a quoting annotated per character. A character at position i is
// raw iff markers[i] == 'r', anything else is quoted.
func PerChar(markers string) Quoting { return Quoting{kind: perChar, markers: markers} }

// FromMarkers collapses a marker string into the simplest equivalent quoting.
func FromMarkers(markers string) Quoting {
	raw := strings.Count(markers, "r")
	switch {
	case raw == 0:
		return Quoted()
	case raw == len(markers):
		return Raw()
	default:
		return PerChar(markers)
	}
}

// IsRaw reports whether position i is eligible for special interpretation.
func (q Quoting) IsRaw(i int) bool {
	switch q.kind {
	case allRaw:
		return true
	case allQuoted:
		return false
	}
	if i < 0 || i >= len(q.markers) {
		panic(fmt.Sprintf("glob: quoting position %d outside %d markers", i, len(q.markers)))
	}
	return q.markers[i] == 'r'
}

// Slice rebases the quoting so that index 0 refers to position from.
func (q Quoting) Slice(from int) Quoting {
	if q.kind != perChar {
		return q
	}
	if from > len(q.markers) {
		panic(fmt.Sprintf("glob: quoting slice %d outside %d markers", from, len(q.markers)))
	}
	return PerChar(q.markers[from:])
}

// IsQuoted reports whether every character is literal.
func (q Quoting) IsQuoted() bool { return q.kind == allQuoted }

func (q Quoting) String() string {
	switch q.kind {
	case allRaw:
		return "raw"
	case allQuoted:
		return "quoted"
	}
	return q.markers
}

// mustCover panics when a per character quoting is too short for a pattern of n bytes.
func (q Quoting) mustCover(n int) {
	if q.kind == perChar && len(q.markers) < n {
		panic(fmt.Sprintf("glob: quoting has %d markers for a pattern of %d bytes", len(q.markers), n))
	}
}
