package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
)

const help = `:vars              list variables
:clear [name...]   remove all variables, or the named ones
:exit, :quit       leave
:help              show this help
`

// repl routes input lines to the engine or to commands and prints the
// results.
type repl struct {
	eng  *calc.Engine
	out  io.Writer
	errw io.Writer
	verb string
	errc *color.Color
	name *color.Color
}

func newREPL(eng *calc.Engine, out, errw io.Writer, verb string) *repl {
	return &repl{
		eng:  eng,
		out:  out,
		errw: errw,
		verb: verb,
		errc: color.New(color.FgRed),
		name: color.New(color.FgCyan),
	}
}

// run processes lines until the input ends or a command asks to leave.
func (r *repl) run(in lineReader) error {
	for {
		line, err := in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r.line(line) {
			return nil
		}
	}
}

// line processes a single input line. The result is true if the line asks to
// leave.
func (r *repl) line(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, ":"):
		quit, err := r.command(line)
		if err != nil {
			r.fail(err)
		}
		return quit
	default:
		r.eval(line)
		return false
	}
}

// eval evaluates an expression and prints its result or error. The result is
// false if evaluation failed.
func (r *repl) eval(expr string) bool {
	v, err := r.eng.Eval(expr)
	if err != nil {
		r.fail(err)
		return false
	}
	fmt.Fprintf(r.out, r.verb+"\n", v)
	return true
}

func (r *repl) command(line string) (quit bool, err error) {
	f := strings.Fields(line)
	log.LogVf("command %q", f)
	switch f[0] {
	case ":vars":
		for _, b := range r.eng.Env().Bindings() {
			r.name.Fprint(r.out, b.Name)
			fmt.Fprintf(r.out, " = "+r.verb+"\n", b.Value)
		}
	case ":clear":
		if len(f) == 1 {
			r.eng.Env().Clear()
			return false, nil
		}
		for _, name := range r.eng.Env().Remove(f[1:]...) {
			log.Warnf("no variable named %q", name)
		}
	case ":exit", ":quit":
		return true, nil
	case ":help":
		io.WriteString(r.out, help)
	default:
		return false, fmt.Errorf("unrecognized command: %s", line)
	}
	return false, nil
}

func (r *repl) fail(err error) {
	r.errc.Fprintf(r.errw, "*** ERROR: %v\n", err)
}
