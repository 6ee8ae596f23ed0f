package calculator

import (
	"strconv"
)

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the close bracket that had no open bracket, or
	// one past the end of the input if brackets were left open.
	Col int
	// Unclosed is the number of open brackets with no close bracket. It is
	// zero when the error is an excess close bracket.
	Unclosed int
}

func (err *BracketError) Error() string {
	switch err.Unclosed {
	case 0:
		return errpos(err.Col, "close bracket ) with no open bracket")
	case 1:
		return errpos(err.Col, "open bracket ( with no close bracket")
	default:
		return errpos(err.Col, strconv.Itoa(err.Unclosed)+" open brackets with no close bracket")
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// AdjacentOperatorError is an error indicating two operators with no operand
// between them, e.g. "2 *- 3". It implements InputError.
type AdjacentOperatorError struct {
	// Col is the position of the second operator.
	Col int
	// Prev is the first operator.
	Prev string
	// Operator is the operator that followed Prev.
	Operator string
}

func (err *AdjacentOperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" follows operator "+strconv.Quote(err.Prev))
}

func (err *AdjacentOperatorError) Pos() int {
	return err.Col
}

// PostfixError is an error indicating a postfix sequence that does not reduce
// to exactly one value, e.g. from "1 +" or "()".
type PostfixError struct {
	// Len is the number of values on the operand stack when the error
	// occurred.
	Len int
	// Token is the token being evaluated, or empty if the sequence ended
	// with a number of values other than one.
	Token string
}

func (err *PostfixError) Error() string {
	switch {
	case err.Token == "(" || err.Token == ")":
		return "unexpected " + err.Token + " in postfix expression"
	case err.Token != "":
		return "operator " + strconv.Quote(err.Token) + " needs two operands, have " + strconv.Itoa(err.Len)
	case err.Len == 0:
		return "no expression"
	default:
		return "incomplete expression: " + strconv.Itoa(err.Len) + " values left"
	}
}

// OperatorError is an error indicating an operator token that the evaluator
// does not implement.
type OperatorError struct {
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Operator)
}

// NumberError is an error indicating a number token that is not a valid
// decimal number, e.g. "1.2.3". It unwraps to the error from strconv.
type NumberError struct {
	// Text is the invalid number.
	Text string
	// Err is the reason Text could not be parsed.
	Err error
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors found before
// tokens are produced implement InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*AdjacentOperatorError)(nil)
)
