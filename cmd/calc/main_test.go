package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestParseArgs(t *testing.T) {
	cases := []struct {
		name  string
		argv  []string
		exprs []string
		with  [][2]string
		verb  string
		err   bool
	}{
		{
			name: "none",
			argv: []string{"calc"},
			verb: "%g",
		},
		{
			name:  "positional",
			argv:  []string{"calc", "1+2", "x"},
			exprs: []string{"1+2", "x"},
			verb:  "%g",
		},
		{
			name:  "repeated-e",
			argv:  []string{"calc", "-e", "1+2", "-e3*4"},
			exprs: []string{"1+2", "3*4"},
			verb:  "%g",
		},
		{
			name:  "e-before-positional",
			argv:  []string{"calc", "-e", "1", "-f", "%.2f", "2", "3"},
			exprs: []string{"1", "2", "3"},
			verb:  "%.2f",
		},
		{
			name:  "dashdash",
			argv:  []string{"calc", "--", "-1"},
			exprs: []string{"-1"},
			verb:  "%g",
		},
		{
			name: "defs",
			argv: []string{"calc", "-g", "x=1", "-g", " y = x*2 "},
			with: [][2]string{{"x", "1"}, {"y", "x*2"}},
			verb: "%g",
		},
		{
			name: "bad-def",
			argv: []string{"calc", "-g", "1x=2"},
			err:  true,
		},
		{
			name: "no-equals",
			argv: []string{"calc", "-g", "x"},
			err:  true,
		},
		{
			name: "unknown-flag",
			argv: []string{"calc", "-z"},
			err:  true,
		},
		{
			name: "missing-e-value",
			argv: []string{"calc", "-e"},
			err:  true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := parseArgs(c.argv)
			if c.err {
				if err == nil {
					t.Fatalf("no error; got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(cfg.exprs, c.exprs) {
				t.Errorf("wrong exprs: want %q, got %q", c.exprs, cfg.exprs)
			}
			if !reflect.DeepEqual(cfg.with, c.with) {
				t.Errorf("wrong defs: want %q, got %q", c.with, cfg.with)
			}
			if cfg.verb != c.verb {
				t.Errorf("wrong verb: want %q, got %q", c.verb, cfg.verb)
			}
		})
	}
}

func TestParseArgsSwitches(t *testing.T) {
	cfg, err := parseArgs([]string{"calc", "-cnvh", "-i", "in.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.nocolor || !cfg.verbose || !cfg.help {
		t.Errorf("switches not set: %+v", cfg)
	}
	if len(cfg.opts) != 1 {
		t.Errorf("want 1 engine option for -c, got %d", len(cfg.opts))
	}
	if cfg.inname != "in.txt" {
		t.Errorf("wrong input file %q", cfg.inname)
	}
}

func TestUsage(t *testing.T) {
	for _, s := range []string{"-e expr", "-g name=value", "-i file", "(default %g)"} {
		if !strings.Contains(usage, s) {
			t.Errorf("usage doesn't mention %q", s)
		}
	}
}

func TestDefine(t *testing.T) {
	eng := calc.New()
	if err := define(eng, [][2]string{{"x", "1"}, {"y", "x*2"}, {"z", "y+x"}}); err != nil {
		t.Fatal(err)
	}
	want := []calc.Binding{
		{Name: "x", Value: 1},
		{Name: "y", Value: 2},
		{Name: "z", Value: 3},
	}
	if got := eng.Env().Bindings(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong bindings: want %v, got %v", want, got)
	}
}

func TestDefineResult(t *testing.T) {
	eng := calc.New()
	if err := define(eng, [][2]string{{"_", "5"}, {"y", "1"}}); err != nil {
		t.Fatal(err)
	}
	if v, ok := eng.Env().Lookup(calc.ResultName); !ok || v != 5 {
		t.Errorf("explicit _ lost: got %v, %t", v, ok)
	}
}

func TestDefineError(t *testing.T) {
	eng := calc.New()
	err := define(eng, [][2]string{{"x", "1"}, {"y", "w*2"}})
	var ne *calc.NameError
	if !errors.As(err, &ne) {
		t.Fatalf("want *calc.NameError, got %#v", err)
	}
	if !strings.HasPrefix(err.Error(), "setting y: ") {
		t.Errorf("error doesn't name the variable: %v", err)
	}
}
