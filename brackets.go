package calculator

import "log/slog"

// CheckBrackets reports whether the parentheses in text are balanced, i.e.
// every ( has a later ) and no ) closes more groups than are open. No other
// syntax is checked.
func CheckBrackets(text string) bool {
	return scanBrackets(text) == nil
}

func scanBrackets(text string) *BracketError {
	depth, col := 0, 0
	for _, r := range text {
		col++
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &BracketError{Col: col}
			}
		}
	}
	if depth != 0 {
		return &BracketError{Col: col + 1, Unclosed: depth}
	}
	return nil
}

// checkBrackets is CheckBrackets with a diagnostic logged on failure.
func (c *Calculator) checkBrackets(text string) error {
	err := scanBrackets(text)
	if err == nil {
		return nil
	}
	c.logger().Warn("wrong brackets", slog.String("expr", text), slog.Int("col", err.Col), slog.Int("unclosed", err.Unclosed))
	return err
}
