package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
)

const usage = `usage: calc [-cnvh] [-i file] [-f fmt] [-g name=value]... [-e expr]... [expr]...

Evaluates each -e expr and then each expr in order and prints the results.
With no expressions, reads expressions and :commands line by line from the
input file (default stdin).

	-e expr        evaluate expr (any number of times)
	-i file        read input from file ("-" for stdin)
	-f fmt         result formatting verb (default %g)
	-g name=value  bind a variable before evaluating (any number of times)
	-c             bind the constants pi and e
	-n             disable coloured output
	-v             verbose logging
	-h             show this help
`

// config is the result of parsing the command line.
type config struct {
	inname  string
	verb    string
	with    [][2]string
	exprs   []string
	opts    []calc.Option
	nocolor bool
	verbose bool
	help    bool
}

// parseArgs parses the command line, including the program name in argv[0].
func parseArgs(argv []string) (*config, error) {
	cfg := config{verb: "%g"}
	flags, optind, err := getopt.Getopts(argv, "e:i:f:g:cnvh")
	if err != nil {
		return nil, err
	}
	for _, f := range flags {
		switch f.Option {
		case 'e':
			cfg.exprs = append(cfg.exprs, f.Value)
		case 'i':
			cfg.inname = f.Value
		case 'f':
			cfg.verb = f.Value
		case 'g':
			d := strings.SplitN(f.Value, "=", 2)
			if len(d) != 2 || !calc.IsIdent(strings.TrimSpace(d[0])) {
				return nil, fmt.Errorf("variable definitions must be \"name=value\", not %q", f.Value)
			}
			cfg.with = append(cfg.with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		case 'c':
			cfg.opts = append(cfg.opts, calc.WithConstants())
		case 'n':
			cfg.nocolor = true
		case 'v':
			cfg.verbose = true
		case 'h':
			cfg.help = true
		}
	}
	cfg.exprs = append(cfg.exprs, argv[optind:]...)
	return &cfg, nil
}

// define binds each -g variable in order. Each value is evaluated by eng, so
// it can refer to variables defined before it.
func define(eng *calc.Engine, with [][2]string) error {
	var (
		res    float64
		hasres bool
	)
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := eng.Eval(vl)
		if err != nil {
			return fmt.Errorf("setting %s: %w", nm, err)
		}
		eng.Env().Set(nm, r)
		if nm == calc.ResultName {
			res, hasres = r, true
		}
	}
	// Definitions are not results unless _ is defined explicitly.
	if hasres {
		eng.Env().Set(calc.ResultName, res)
	} else {
		eng.Env().Remove(calc.ResultName)
	}
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args)
	if err != nil {
		io.WriteString(os.Stderr, usage)
		log.Fatalf("%v", err)
	}
	if cfg.help {
		io.WriteString(os.Stdout, usage)
		return
	}
	if cfg.nocolor {
		color.NoColor = true
	}
	if cfg.verbose {
		log.SetLogLevel(log.Verbose)
	}

	eng := calc.New(cfg.opts...)
	if err := define(eng, cfg.with); err != nil {
		log.Fatalf("%v", err)
	}

	r := newREPL(eng, os.Stdout, os.Stderr, cfg.verb)
	if len(cfg.exprs) > 0 {
		status := 0
		for _, expr := range cfg.exprs {
			if !r.eval(expr) {
				status = 1
			}
		}
		os.Exit(status)
	}

	in, err := input(cfg.inname)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer in.Close()
	if err := r.run(in); err != nil {
		log.Fatalf("%v", err)
	}
}

// lineReader reads input lines without their line terminators. It returns
// io.EOF at the end of the input.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

func input(inname string) (lineReader, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return &scanReader{s: bufio.NewScanner(f), c: f}, nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) && liner.TerminalSupported() {
		l := liner.NewLiner()
		l.SetCtrlCAborts(true)
		return &promptReader{l: l}, nil
	}
	return &scanReader{s: bufio.NewScanner(os.Stdin), c: os.Stdin}, nil
}

// promptReader reads lines from an interactive terminal with line editing and
// history.
type promptReader struct {
	l *liner.State
}

func (p *promptReader) ReadLine() (string, error) {
	for {
		s, err := p.l.Prompt("> ")
		if err == liner.ErrPromptAborted {
			// Ctrl-C discards the line.
			continue
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) != "" {
			p.l.AppendHistory(s)
		}
		return s, nil
	}
}

func (p *promptReader) Close() error {
	return p.l.Close()
}

type scanReader struct {
	s *bufio.Scanner
	c io.Closer
}

func (r *scanReader) ReadLine() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error {
	return r.c.Close()
}
