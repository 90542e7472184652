// Package lerrors is a unified errors package for command lexing, parsing and
// evaluation so that they can be formatted and handled in a unified way.
package lerrors

import (
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures all errors raised while reading commands. It distinguishes between
	// lexer, parser and evaluation errors and will format them accordingly.
	Error struct {
		Line     int64
		Column   int64
		Kind     ErrorKind
		Err      error
		Filename string
	}
)

const (
	// EvalErr is an error that originates from evaluating a command.
	EvalErr ErrorKind = iota
	// ParserErr is an error that originates from the parser.
	ParserErr
	// LexerErr is an error that originates from the lexer.
	LexerErr
)

func (err *Error) Error() string {
	switch err.Kind {
	case ParserErr:
		return fmt.Sprintf("Parse Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	case LexerErr:
		return fmt.Sprintf("Lex Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	default:
		return fmt.Sprintf("%s:%v: %v", err.Filename, err.Line, err.Err)
	}
}

func (err *Error) Unwrap() error {
	return err.Err
}
