package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"lambda/eval"
)

var LOGO = `
  \      | lambda
   \     | version: $VERSION
   /\    | :env lists definitions, :quit leaves
  /  \   |
`

// repl reads lines until EOF or :quit. Every line is evaluated against the
// same session, and an error only ends the line that caused it.
func repl(cfg Config, s *eval.Session, out, errOut io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdout:          out,
		Stderr:          errOut,
	})
	if err != nil {
		return errors.Wrap(err, "failed to start line editor")
	}
	defer rl.Close()

	fmt.Fprintln(out, strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrap(err, "failed to read input")
		}
		if !handleLine(s, line, out, errOut) {
			return nil
		}
	}
}

// handleLine runs one line of input, or a : command. It returns false
// once the session should end.
func handleLine(s *eval.Session, line string, out, errOut io.Writer) bool {
	line = strings.TrimSpace(line)
	switch line {
	case ":quit", ":q":
		return false
	case ":env":
		globals := s.Globals()
		for _, name := range globals.Names() {
			v, _ := globals.Get(name)
			fmt.Fprintf(out, "%s = %s\n", name, v)
		}
		return true
	}
	v, err := s.Run(line)
	printResult(out, errOut, v, err)
	return true
}
