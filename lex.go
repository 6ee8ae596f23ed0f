package calculator

import (
	"log/slog"
	"strings"
	"unicode"
)

// Split breaks text into tokens in infix order. It does not check brackets.
//
// Digits and decimal points accumulate into number tokens. A - with no
// pending number becomes the pair 0 - so that "-(2)" is "0 - ( 2 )". That
// includes a - after a close bracket, so "(2)-1" splits to "( 2 ) 0 - 1",
// which does not evaluate. An operator directly after another operator is an
// *AdjacentOperatorError. Any other rune, whitespace included, is dropped
// but still counts as the previous rune: "2 * -2" is "2 * 0 - 2", and "1 2"
// is the number 12.
func (c *Calculator) Split(text string) (Tokens, error) {
	var (
		toks Tokens
		buf  strings.Builder
		// prev is the last rune scanned.
		prev rune
		col  int
	)
	flush := func() {
		if buf.Len() > 0 {
			toks = append(toks, Num(buf.String()))
			buf.Reset()
		}
	}
	for _, r := range text {
		col++
		switch {
		case '0' <= r && r <= '9', r == '.':
			buf.WriteRune(r)
		case r == '(':
			flush()
			toks = append(toks, Open())
		case r == ')':
			flush()
			toks = append(toks, Close())
		case c.ops.IsOperator(r):
			if c.ops.IsOperator(prev) {
				return nil, &AdjacentOperatorError{Col: col, Prev: string(prev), Operator: string(r)}
			}
			if r == '-' && buf.Len() == 0 {
				toks = append(toks, Num("0"), Op('-'))
				break
			}
			flush()
			toks = append(toks, Op(r))
		case !unicode.IsSpace(r):
			c.logger().Debug("dropping rune", slog.String("rune", string(r)), slog.Int("col", col))
		}
		prev = r
	}
	flush()
	return toks, nil
}
