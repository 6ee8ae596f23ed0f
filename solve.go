package calculator

import "log/slog"

// Calculator evaluates expressions. A Calculator holds no state between
// calls and is safe to use concurrently.
type Calculator struct {
	ops *Table
	log *slog.Logger
}

// New creates a Calculator. Options are applied in order.
func New(opts ...Option) *Calculator {
	c := Calculator{ops: defaultTable}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.calcOption(&c)
	}
	return &c
}

func (c *Calculator) logger() *slog.Logger {
	if c.log == nil {
		return slog.Default()
	}
	return c.log
}

// Postfix checks the brackets in text, splits it into tokens, and reorders
// them into postfix order. The error, if any, is a *BracketError or an
// *AdjacentOperatorError.
func (c *Calculator) Postfix(text string) (Tokens, error) {
	if err := c.checkBrackets(text); err != nil {
		return nil, err
	}
	infix, err := c.Split(text)
	if err != nil {
		c.logger().Debug("tokenizing failed", slog.String("expr", text), slog.Any("err", err))
		return nil, err
	}
	return c.ConvertToRPN(infix), nil
}

// Eval evaluates an expression. Each stage of evaluation stops at the first
// error, which is returned with no result. Division by zero and similar
// operations are not errors; they produce infinities or NaN.
func (c *Calculator) Eval(text string) (float64, error) {
	postfix, err := c.Postfix(text)
	if err != nil {
		return 0, err
	}
	r, err := c.EvaluateRPN(postfix)
	if err != nil {
		c.logger().Debug("evaluation failed", slog.String("expr", text), slog.String("postfix", postfix.String()), slog.Any("err", err))
		return 0, err
	}
	return r, nil
}

// Solve evaluates an expression. ok is false if the expression could not be
// evaluated for any reason; use Eval to learn why.
func (c *Calculator) Solve(text string) (r float64, ok bool) {
	r, err := c.Eval(text)
	return r, err == nil
}

var std = New()

// Eval is a shortcut to evaluate an expression with a default Calculator.
func Eval(text string) (float64, error) {
	return std.Eval(text)
}

// Solve is a shortcut to evaluate an expression with a default Calculator.
func Solve(text string) (float64, bool) {
	return std.Solve(text)
}
