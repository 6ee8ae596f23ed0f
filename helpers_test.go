package calculator

import (
	"io"
	"log/slog"
	"strings"
)

// fields splits a space-separated token string the way Tokens.String formats
// one. Single runes from Operators or % are operators.
func fields(s string) Tokens {
	var toks Tokens
	for _, f := range strings.Fields(s) {
		switch {
		case f == "(":
			toks = append(toks, Open())
		case f == ")":
			toks = append(toks, Close())
		case len(f) == 1 && strings.Contains(Operators+"%", f):
			toks = append(toks, Op(rune(f[0])))
		default:
			toks = append(toks, Num(f))
		}
	}
	return toks
}

func quiet() *Calculator {
	return New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
