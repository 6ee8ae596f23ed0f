package calculator

import (
	"errors"
	"strconv"
)

// EvaluateRPN evaluates a sequence of tokens in postfix order. Each operator
// pops its right operand and then its left operand, so "5 3 -" is 2.
//
// The result is an error if an operator lacks operands, if any number of
// values other than one remains at the end, if a number token is not a
// valid decimal number, or if an operator token names an unknown operation.
func (c *Calculator) EvaluateRPN(postfix Tokens) (float64, error) {
	stack := make([]float64, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNum:
			v, err := strconv.ParseFloat(tok.Text, 64)
			// Out of range literals parse to ±Inf along with ErrRange. Keep them.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, &NumberError{Text: tok.Text, Err: err}
			}
			stack = append(stack, v)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &PostfixError{Len: len(stack), Token: tok.Text}
			}
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, ok := apply(tok.Text, b, a)
			if !ok {
				return 0, &OperatorError{Operator: tok.Text}
			}
			stack = append(stack, r)
		default:
			return 0, &PostfixError{Len: len(stack), Token: tok.Text}
		}
	}
	if len(stack) != 1 {
		return 0, &PostfixError{Len: len(stack)}
	}
	return stack[0], nil
}
