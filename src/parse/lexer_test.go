package parse

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/esglob/src/glob"
	"github.com/tanema/esglob/src/lerrors"
)

type parseTokenTest struct {
	src   string
	token *token
}

func TestNextToken(t *testing.T) {
	t.Parallel()
	linfo := LineInfo{Line: 1, Column: 1}
	tests := []parseTokenTest{
		{"foo", &token{Kind: tokenWord, Word: Word{Text: "foo", Markers: "rrr"}, LineInfo: linfo}},
		{"*.go", &token{Kind: tokenWord, Word: Word{Text: "*.go", Markers: "rrrr"}, LineInfo: linfo}},
		{"'*.go'", &token{Kind: tokenWord, Word: Word{Text: "*.go", Markers: "qqqq"}, LineInfo: linfo}},
		{"a'*'b", &token{Kind: tokenWord, Word: Word{Text: "a*b", Markers: "rqr"}, LineInfo: linfo}},
		{`a\*b`, &token{Kind: tokenWord, Word: Word{Text: "a*b", Markers: "rqr"}, LineInfo: linfo}},
		{"'it''s'", &token{Kind: tokenWord, Word: Word{Text: "it's", Markers: "qqqq"}, LineInfo: linfo}},
		{"''", &token{Kind: tokenWord, Word: Word{Text: "", Markers: ""}, LineInfo: linfo}},
		{"'a b'c", &token{Kind: tokenWord, Word: Word{Text: "a bc", Markers: "qqqr"}, LineInfo: linfo}},
		{"[~a-c]", &token{Kind: tokenWord, Word: Word{Text: "[~a-c]", Markers: "rrrrrr"}, LineInfo: linfo}},
		{"~x", &token{Kind: tokenWord, Word: Word{Text: "~x", Markers: "rr"}, LineInfo: linfo}},
		{"~", &token{Kind: tokenMatch, LineInfo: linfo}},
		{"~ a", &token{Kind: tokenMatch, LineInfo: linfo}},
		{"~~ a", &token{Kind: tokenExtract, LineInfo: linfo}},
		{"(", &token{Kind: tokenOpenParen, LineInfo: linfo}},
		{")", &token{Kind: tokenCloseParen, LineInfo: linfo}},
		{";", &token{Kind: tokenSeparator, LineInfo: linfo}},
		{"\n", &token{Kind: tokenSeparator, LineInfo: linfo}},
		{"", &token{Kind: tokenEOS, LineInfo: linfo}},
		{"# only a comment", &token{Kind: tokenEOS, LineInfo: LineInfo{Line: 1, Column: 17}}},
		{"   foo", &token{Kind: tokenWord, Word: Word{Text: "foo", Markers: "rrr"}, LineInfo: LineInfo{Line: 1, Column: 4}}},
	}

	for _, test := range tests {
		out, err := lex(test.src)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.token, out, test.src)
	}
}

func TestLexSequence(t *testing.T) {
	t.Parallel()
	lexer := newLexer("test", bytes.NewBufferString("~~ (a b) *\n~ c # note\n"))
	kinds := []tokenType{}
	for {
		tk, err := lexer.Next()
		require.NoError(t, err)
		kinds = append(kinds, tk.Kind)
		if tk.Kind == tokenEOS {
			break
		}
	}
	assert.Equal(t, []tokenType{
		tokenExtract, tokenOpenParen, tokenWord, tokenWord, tokenCloseParen, tokenWord, tokenSeparator,
		tokenMatch, tokenWord, tokenSeparator, tokenEOS,
	}, kinds)
}

func TestLexErrors(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"'abc", "abc\\", "a'b''"} {
		_, err := lex(src)
		var lerr *lerrors.Error
		require.True(t, errors.As(err, &lerr), src)
		assert.Equal(t, lerrors.LexerErr, lerr.Kind)
	}
}

func TestWordQuoting(t *testing.T) {
	t.Parallel()
	assert.Equal(t, glob.Raw(), Word{Text: "a*", Markers: "rr"}.Quoting())
	assert.Equal(t, glob.Quoted(), Word{Text: "a*", Markers: "qq"}.Quoting())
	assert.Equal(t, glob.PerChar("rq"), Word{Text: "a*", Markers: "rq"}.Quoting())
}

func TestLexerPeek(t *testing.T) {
	t.Parallel()
	lexer := newLexer("test", bytes.NewBufferString("a b"))
	tk, err := lexer.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", tk.Word.Text)
	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tk.Word.Text)
	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", tk.Word.Text)
	lexer.back(tk)
	tk, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", tk.Word.Text)
}

func lex(str string) (*token, error) {
	return newLexer("test", bytes.NewBufferString(str)).Next()
}
