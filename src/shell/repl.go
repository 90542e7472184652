package shell

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chzyer/readline"

	"github.com/tanema/esglob/src/parse"
)

// REPL will start an interactive loop reading and evaluating commands. Input that
// stops in the middle of a command keeps reading on a continuation prompt.
func (sh *Shell) REPL(prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdout: sh.out,
		Stderr: sh.errOut,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	buf := bytes.NewBuffer(nil)
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if buf.Len() > 0 {
					rl.SetPrompt(prompt)
					buf.Reset()
					fmt.Fprint(sh.errOut, "Press ctrl-c again to quit.\n")
					continue
				}
			}
			break
		}

		buf.WriteString(src + "\n")
		cmds, err := parse.Parse("<repl>", bytes.NewReader(buf.Bytes()))
		if errors.Is(err, parse.ErrIncomplete) {
			rl.SetPrompt("...> ")
			continue
		}
		rl.SetPrompt(prompt)
		buf.Reset()
		if err != nil {
			fmt.Fprintln(sh.errOut, err)
			continue
		}
		sh.evalAll("<repl>", cmds)
	}
	return nil
}

// evalAll evaluates cmds, reporting errors without stopping.
func (sh *Shell) evalAll(filename string, cmds []*parse.Command) {
	for _, cmd := range cmds {
		if res, err := sh.Eval(filename, cmd); err != nil {
			fmt.Fprintln(sh.errOut, err)
		} else {
			fmt.Fprintln(sh.out, res)
		}
	}
}
