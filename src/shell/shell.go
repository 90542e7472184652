// Package shell evaluates parsed match commands against the glob engine.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tanema/esglob/src/glob"
	"github.com/tanema/esglob/src/lerrors"
	"github.com/tanema/esglob/src/lstring"
	"github.com/tanema/esglob/src/parse"
)

// Shell evaluates commands and prints their results.
type Shell struct {
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger
}

// New creates a shell printing results to out and errors to errOut.
func New(out, errOut io.Writer, log *logrus.Logger) *Shell {
	return &Shell{out: out, errOut: errOut, log: log}
}

// Eval evaluates a single command and returns its printed form: true or false for
// a match, the quoted captures for an extraction.
func (sh *Shell) Eval(filename string, cmd *parse.Command) (res string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &lerrors.Error{
				Kind:     lerrors.EvalErr,
				Filename: filename,
				Line:     cmd.Line,
				Column:   cmd.Column,
				Err:      fmt.Errorf("%v", r),
			}
		}
	}()

	subjects, patterns, quotes := cmd.SubjectTexts(), cmd.PatternTexts(), cmd.PatternQuotes()
	sh.trace(cmd, patterns, quotes)
	switch cmd.Op {
	case parse.OpMatch:
		return fmt.Sprint(glob.ListMatch(subjects, patterns, quotes)), nil
	case parse.OpExtract:
		return lstring.Join(glob.ExtractMatches(subjects, patterns, quotes)), nil
	default:
		return "", &lerrors.Error{
			Kind:     lerrors.EvalErr,
			Filename: filename,
			Line:     cmd.Line,
			Column:   cmd.Column,
			Err:      fmt.Errorf("unknown operator %q", cmd.Op),
		}
	}
}

func (sh *Shell) trace(cmd *parse.Command, patterns []string, quotes []glob.Quoting) {
	if !sh.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	sh.log.WithFields(logrus.Fields{
		"line":     cmd.Line,
		"op":       cmd.Op,
		"subjects": len(cmd.Subjects),
	}).Debug("eval")
	for i, pat := range patterns {
		compiled := glob.Compile(pat, quotes[i])
		sh.log.WithField("wildcards", compiled.Wildcards()).Debugf("compiled %v", compiled)
	}
}

// Run evaluates every command in src, printing one result line per command. It stops
// at the first error.
func (sh *Shell) Run(filename string, src io.Reader) error {
	p := parse.New(filename, src)
	for {
		cmd, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		res, err := sh.Eval(filename, cmd)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(sh.out, res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
}
