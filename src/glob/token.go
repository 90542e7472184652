package glob

import (
	"fmt"
	"strconv"
)

type (
	// token is one element of a compiled pattern. The set of implementations is closed:
	// literal, anyChar, star and class.
	token interface {
		fmt.Stringer
		isToken()
	}
	literal byte
	anyChar struct{}
	star    struct{}
	class   struct {
		text  string
		quote Quoting
	}
)

func (literal) isToken() {}
func (anyChar) isToken() {}
func (star) isToken()    {}
func (class) isToken()   {}

func (l literal) String() string { return fmt.Sprintf("LIT %s", strconv.QuoteRune(rune(l))) }
func (anyChar) String() string   { return "ANY" }
func (star) String() string      { return "STAR" }
func (c class) String() string   { return fmt.Sprintf("CLASS [%s] %v", c.text, c.quote) }

// matches reports whether tk accepts the single byte c. Stars are handled by the
// matchers themselves and must never reach this function.
func matches(tk token, c byte) bool {
	switch tk := tk.(type) {
	case literal:
		return byte(tk) == c
	case anyChar:
		return true
	case class:
		return classMatch(tk.text, tk.quote, c)
	case star:
		panic("glob: star token passed to matches")
	default:
		panic(fmt.Sprintf("glob: unknown token %T", tk))
	}
}

func isStar(tk token) bool {
	_, ok := tk.(star)
	return ok
}
