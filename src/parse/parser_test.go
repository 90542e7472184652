package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/esglob/src/glob"
	"github.com/tanema/esglob/src/lerrors"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cmds, err := Parse("test", strings.NewReader("~ foo.go *.go '*'.c\n\n~~ (a.c b.h) *.? ; ~ () **"))
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	assert.Equal(t, &Command{
		LineInfo: LineInfo{Line: 1, Column: 1},
		Op:       OpMatch,
		Subjects: []Word{{Text: "foo.go", Markers: "rrrrrr"}},
		Patterns: []Word{{Text: "*.go", Markers: "rrrr"}, {Text: "*.c", Markers: "qrr"}},
	}, cmds[0])
	assert.Equal(t, []string{"foo.go"}, cmds[0].SubjectTexts())
	assert.Equal(t, []string{"*.go", "*.c"}, cmds[0].PatternTexts())
	assert.Equal(t, []glob.Quoting{glob.Raw(), glob.PerChar("qrr")}, cmds[0].PatternQuotes())

	assert.Equal(t, OpExtract, cmds[1].Op)
	assert.Equal(t, int64(3), cmds[1].Line)
	assert.Equal(t, []string{"a.c", "b.h"}, cmds[1].SubjectTexts())
	assert.Equal(t, []string{"*.?"}, cmds[1].PatternTexts())

	assert.Equal(t, OpMatch, cmds[2].Op)
	assert.Empty(t, cmds[2].Subjects)
	assert.Equal(t, []string{"**"}, cmds[2].PatternTexts())
}

func TestParsePatternLists(t *testing.T) {
	t.Parallel()
	cmds, err := Parse("test", strings.NewReader("~ x (a b) c ()"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"a", "b", "c"}, cmds[0].PatternTexts())
}

func TestParseNoPatterns(t *testing.T) {
	t.Parallel()
	cmds, err := Parse("test", strings.NewReader("~ x"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []Word{}, cmds[0].Patterns)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()
	cmds, err := Parse("test", strings.NewReader("\n# nothing here\n;;\n"))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src    string
		kind   lerrors.ErrorKind
		line   int64
		column int64
	}{
		{"foo bar", lerrors.ParserErr, 1, 1},
		{"~", lerrors.ParserErr, 1, 1},
		{"~ (a b", lerrors.ParserErr, 1, 3},
		{"~ a )", lerrors.ParserErr, 1, 5},
		{"~ (a (b)) c", lerrors.ParserErr, 1, 6},
		{"\n~ 'a", lerrors.LexerErr, 2, 4},
	}
	for _, test := range tests {
		_, err := Parse("test", strings.NewReader(test.src))
		var lerr *lerrors.Error
		require.True(t, errors.As(err, &lerr), test.src)
		assert.Equal(t, test.kind, lerr.Kind, test.src)
		assert.Equal(t, test.line, lerr.Line, test.src)
		assert.Equal(t, test.column, lerr.Column, test.src)
	}
}

func TestParseIncomplete(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"~ (a b", "~ a 'b", `~ a b\`} {
		_, err := Parse("test", strings.NewReader(src))
		assert.ErrorIs(t, err, ErrIncomplete, src)
	}
	_, err := Parse("test", strings.NewReader("~ a )"))
	assert.NotErrorIs(t, err, ErrIncomplete)

	cmds, err := Parse("test", strings.NewReader("~~ (a\nb) *"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"a", "b"}, cmds[0].SubjectTexts())
}

func TestParserNext(t *testing.T) {
	t.Parallel()
	p := New("test", strings.NewReader("~ a b\n~~ c d"))
	cmd, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, OpMatch, cmd.Op)
	cmd, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, OpExtract, cmd.Op)
	_, err = p.Next()
	assert.ErrorIs(t, err, io.EOF)
}
