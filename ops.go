package calculator

import "math"

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// Table is an operator precedence table. Tables are never modified once
// created, so one Table is shared by every Calculator.
type Table struct {
	prio map[rune]int
}

var defaultTable = &Table{prio: map[rune]int{
	'^': 3,
	'*': 2,
	'/': 2,
	'+': 1,
	'-': 1,
}}

// DefaultTable returns the precedence table used for evaluation.
func DefaultTable() *Table {
	return defaultTable
}

// Priority returns the precedence of op. Higher values bind more tightly. If
// op is not an operator, the result is 0, false.
func (t *Table) Priority(op rune) (int, bool) {
	p, ok := t.prio[op]
	return p, ok
}

// IsOperator returns whether r is in the table.
func (t *Table) IsOperator(r rune) bool {
	_, ok := t.prio[r]
	return ok
}

// apply computes l op r. The result is false if op is not a known operation.
func apply(op string, l, r float64) (float64, bool) {
	switch op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		return l / r, true
	case "^":
		return math.Pow(l, r), true
	default:
		return 0, false
	}
}
