package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tanema/esglob/src/lerrors"
)

type lexer struct {
	filename string
	rdr      *bufio.Reader
	peeked   []*token
	LineInfo
}

func newLexer(filename string, src io.Reader) *lexer {
	return &lexer{
		filename: filename,
		LineInfo: LineInfo{Line: 1},
		rdr:      bufio.NewReaderSize(src, 4096),
		peeked:   []*token{},
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &lerrors.Error{
		Filename: lex.filename,
		Kind:     lerrors.LexerErr,
		Line:     lex.Line,
		Column:   lex.Column,
		Err:      err,
	}
}

func (lex *lexer) peek() byte {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return chs[0]
}

// peekAt returns the byte n positions ahead without consuming, 0 at the end.
func (lex *lexer) peekAt(n int) byte {
	chs, _ := lex.rdr.Peek(n + 1)
	if len(chs) <= n {
		return 0
	}
	return chs[n]
}

func (lex *lexer) atEnd() bool {
	_, err := lex.rdr.Peek(1)
	return err != nil
}

func (lex *lexer) next() (byte, error) {
	ch, err := lex.rdr.ReadByte()
	if err != nil {
		return ch, lex.err(err)
	}
	if ch == '\n' {
		lex.Line++
		lex.Column = 0
	} else {
		lex.Column++
	}
	return ch, nil
}

func (lex *lexer) skipBlank() error {
	for !lex.atEnd() {
		switch lex.peek() {
		case ' ', '\t', '\r':
			if _, err := lex.next(); err != nil {
				return err
			}
		case '#':
			if err := lex.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (lex *lexer) skipComment() error {
	for !lex.atEnd() && lex.peek() != '\n' {
		if _, err := lex.next(); err != nil {
			return err
		}
	}
	return nil
}

func (lex *lexer) tokenVal(tk tokenType, linfo LineInfo) (*token, error) {
	return &token{Kind: tk, LineInfo: linfo}, nil
}

// allow for FIFO stack.
func (lex *lexer) back(tk *token) {
	lex.peeked = append(lex.peeked, tk)
}

func (lex *lexer) Peek() (*token, error) {
	if len(lex.peeked) == 0 {
		tk, err := lex.Next()
		if err != nil {
			return &token{Kind: tokenEOS}, err
		}
		lex.peeked = append(lex.peeked, tk)
	}
	return lex.peeked[len(lex.peeked)-1], nil
}

// Next returns the next token, a tokenEOS token once the input is exhausted.
func (lex *lexer) Next() (*token, error) {
	if len(lex.peeked) != 0 {
		top := lex.peeked[len(lex.peeked)-1]
		lex.peeked = lex.peeked[:len(lex.peeked)-1]
		return top, nil
	}
	if err := lex.skipBlank(); err != nil {
		return nil, err
	}
	linfo := LineInfo{Line: lex.Line, Column: lex.Column + 1}
	if lex.atEnd() {
		return lex.tokenVal(tokenEOS, linfo)
	}
	switch ch := lex.peek(); {
	case ch == '\n' || ch == ';':
		_, err := lex.next()
		return &token{Kind: tokenSeparator, LineInfo: linfo}, err
	case ch == '(':
		_, err := lex.next()
		return &token{Kind: tokenOpenParen, LineInfo: linfo}, err
	case ch == ')':
		_, err := lex.next()
		return &token{Kind: tokenCloseParen, LineInfo: linfo}, err
	case ch == '~' && isBreak(lex.peekAt(1)):
		_, err := lex.next()
		return &token{Kind: tokenMatch, LineInfo: linfo}, err
	case ch == '~' && lex.peekAt(1) == '~' && isBreak(lex.peekAt(2)):
		if _, err := lex.next(); err != nil {
			return nil, err
		}
		_, err := lex.next()
		return &token{Kind: tokenExtract, LineInfo: linfo}, err
	}
	return lex.parseWord(linfo)
}

// isBreak reports whether ch ends a word. 0 stands for the end of input.
func isBreak(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\r', '\n', ';', '(', ')':
		return true
	}
	return false
}

/*
A word is a run of adjacent segments:

	bare      raw bytes up to whitespace, ';', '(' or ')'
	'quoted'  quoted bytes, a doubled '' stands for one quote
	\c        the single quoted byte c
*/
func (lex *lexer) parseWord(linfo LineInfo) (*token, error) {
	var text, markers bytes.Buffer
	for !lex.atEnd() && !isBreak(lex.peek()) {
		ch, err := lex.next()
		if err != nil {
			return nil, err
		}
		switch ch {
		case '\'':
			if err := lex.parseQuoted(&text, &markers); err != nil {
				return nil, err
			}
		case '\\':
			if lex.atEnd() {
				return nil, lex.errf("unexpected end of input after \\: %w", ErrIncomplete)
			}
			esc, err := lex.next()
			if err != nil {
				return nil, err
			}
			text.WriteByte(esc)
			markers.WriteByte('q')
		default:
			text.WriteByte(ch)
			markers.WriteByte('r')
		}
	}
	return &token{
		Kind:     tokenWord,
		Word:     Word{Text: text.String(), Markers: markers.String()},
		LineInfo: linfo,
	}, nil
}

func (lex *lexer) parseQuoted(text, markers *bytes.Buffer) error {
	for {
		if lex.atEnd() {
			return lex.errf("unterminated quoted string: %w", ErrIncomplete)
		}
		ch, err := lex.next()
		if err != nil {
			return err
		}
		if ch == '\'' {
			if lex.peek() != '\'' || lex.atEnd() {
				return nil
			}
			if _, err := lex.next(); err != nil {
				return err
			}
		}
		text.WriteByte(ch)
		markers.WriteByte('q')
	}
}
