//go:build go1.18
// +build go1.18

package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzLex(f *testing.F) {
	f.Add("x")
	f.Add("y = 1.5*x")
	f.Add("sin(_1)")
	f.Add("2^π")
	f.Fuzz(func(t *testing.T, s string) {
		scan := lex(strings.NewReader(s))
		// Every token consumes at least one rune, so a lexer that keeps
		// going past that many tokens is stuck.
		for n := 0; n <= utf8.RuneCountInString(s)+1; n++ {
			tok, err := scan.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var le *LexError
				if !errors.As(err, &le) {
					t.Fatalf("%q gave non-lexical error %#v", s, err)
				}
				if le.Col < 1 {
					t.Errorf("%q gave error at column %d", s, le.Col)
				}
				continue
			}
			if tok.kind == tokenEOF {
				continue
			}
			if tok.pos < 1 || tok.text == "" {
				t.Errorf("%q gave bad token %v", s, tok)
			}
		}
		t.Errorf("%q: lexer didn't reach EOF", s)
	})
}
