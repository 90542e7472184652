// Package parse reads the small command language understood by the esglob shell.
//
// A script is a list of commands separated by newlines or ';'. Every command is
//
//	~  SUBJECTS PATTERN...   reports whether any pattern matches any subject
//	~~ SUBJECTS PATTERN...   prints the wildcard captures of every matching subject
//
// where SUBJECTS is a single word or a parenthesised list of words, possibly empty,
// and every PATTERN is a word or a parenthesised list of words. Text between single
// quotes is quoted, as is any byte following a backslash; everything else is raw. A
// '#' at the start of a word comments out the rest of the line.
package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/tanema/esglob/src/glob"
	"github.com/tanema/esglob/src/lerrors"
)

type (
	// Op is the operator of a command.
	Op string
	// Command is a single parsed command.
	Command struct {
		LineInfo
		Op       Op
		Subjects []Word
		Patterns []Word
	}
	// Parser keeps the state of parsing a single source.
	Parser struct {
		filename string
		lex      *lexer
	}
)

// ErrIncomplete is wrapped by errors for input that ends in the middle of a command,
// more input may complete it.
var ErrIncomplete = errors.New("incomplete command")

const (
	// OpMatch is the `~` operator.
	OpMatch Op = "~"
	// OpExtract is the `~~` operator.
	OpExtract Op = "~~"
)

// SubjectTexts returns the subjects as plain text. Subjects are never patterns so
// their quoting does not matter.
func (cmd *Command) SubjectTexts() []string {
	texts := make([]string, len(cmd.Subjects))
	for i, word := range cmd.Subjects {
		texts[i] = word.Text
	}
	return texts
}

// PatternTexts returns the pattern texts aligned with PatternQuotes.
func (cmd *Command) PatternTexts() []string {
	texts := make([]string, len(cmd.Patterns))
	for i, word := range cmd.Patterns {
		texts[i] = word.Text
	}
	return texts
}

// PatternQuotes returns the quoting of each pattern.
func (cmd *Command) PatternQuotes() []glob.Quoting {
	quotes := make([]glob.Quoting, len(cmd.Patterns))
	for i, word := range cmd.Patterns {
		quotes[i] = word.Quoting()
	}
	return quotes
}

func (cmd *Command) String() string {
	return fmt.Sprintf("%v %d subjects %d patterns", cmd.Op, len(cmd.Subjects), len(cmd.Patterns))
}

// New creates a parser for the source src.
func New(filename string, src io.Reader) *Parser {
	return &Parser{
		filename: filename,
		lex:      newLexer(filename, src),
	}
}

// Parse parses every command in src.
func Parse(filename string, src io.Reader) ([]*Command, error) {
	p := New(filename, src)
	cmds := []*Command{}
	for {
		cmd, err := p.Next()
		if errors.Is(err, io.EOF) {
			return cmds, nil
		} else if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

func (p *Parser) errf(tk *token, msg string, data ...any) error {
	return &lerrors.Error{
		Filename: p.filename,
		Kind:     lerrors.ParserErr,
		Line:     tk.Line,
		Column:   tk.Column,
		Err:      fmt.Errorf(msg, data...),
	}
}

// Next parses the next command, skipping empty ones. It returns io.EOF once the source
// is exhausted.
func (p *Parser) Next() (*Command, error) {
	for {
		tk, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		switch tk.Kind {
		case tokenEOS:
			return nil, io.EOF
		case tokenSeparator:
			continue
		case tokenMatch, tokenExtract:
			return p.command(tk)
		default:
			return nil, p.errf(tk, "expected ~ or ~~ but found %v", tk)
		}
	}
}

func (p *Parser) command(opTk *token) (*Command, error) {
	cmd := &Command{LineInfo: opTk.LineInfo, Op: Op(opTk.Kind)}
	subjects, err := p.words()
	if err != nil {
		return nil, err
	} else if subjects == nil {
		return nil, p.errf(opTk, "missing subject for %v", opTk.Kind)
	}
	cmd.Subjects = subjects
	cmd.Patterns = []Word{}
	for {
		patterns, err := p.words()
		if err != nil {
			return nil, err
		} else if patterns == nil {
			return cmd, nil
		}
		cmd.Patterns = append(cmd.Patterns, patterns...)
	}
}

// words parses a word or a parenthesised list. It returns nil at the end of the
// command.
func (p *Parser) words() ([]Word, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenWord:
		return []Word{tk.Word}, nil
	case tokenOpenParen:
		return p.list(tk)
	case tokenSeparator, tokenEOS:
		return nil, nil
	default:
		return nil, p.errf(tk, "unexpected %v", tk)
	}
}

func (p *Parser) list(open *token) ([]Word, error) {
	words := []Word{}
	for {
		tk, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		switch tk.Kind {
		case tokenWord:
			words = append(words, tk.Word)
		case tokenCloseParen:
			return words, nil
		case tokenSeparator:
			continue
		case tokenEOS:
			return nil, p.errf(open, "unclosed list: %w", ErrIncomplete)
		default:
			return nil, p.errf(tk, "unexpected %v in list", tk)
		}
	}
}
