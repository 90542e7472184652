package parse

import (
	"fmt"

	"github.com/tanema/esglob/src/glob"
)

type (
	tokenType string
	token     struct {
		LineInfo
		Kind tokenType
		Word Word
	}
	// LineInfo is the position of a token in its source.
	LineInfo struct {
		Line   int64
		Column int64
	}
	// Word is a single shell word together with its quoting markers, one per byte:
	// 'r' for raw bytes and 'q' for quoted ones.
	Word struct {
		Text    string
		Markers string
	}
)

const (
	tokenMatch      tokenType = "~"
	tokenExtract    tokenType = "~~"
	tokenOpenParen  tokenType = "("
	tokenCloseParen tokenType = ")"
	tokenSeparator  tokenType = ";"
	tokenWord       tokenType = "word"
	tokenEOS        tokenType = "<eos>"
)

// Quoting returns the pattern quoting of the word.
func (w Word) Quoting() glob.Quoting {
	return glob.FromMarkers(w.Markers)
}

func (tk *token) String() string {
	if tk.Kind == tokenWord {
		return fmt.Sprintf("%q", tk.Word.Text)
	}
	return string(tk.Kind)
}
