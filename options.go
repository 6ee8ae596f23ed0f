package calculator

import "log/slog"

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption(*Calculator)
}

type logopt struct {
	l *slog.Logger
}

func (o logopt) calcOption(c *Calculator) {
	c.log = o.l
}

// WithLogger sets the logger which receives diagnostics, e.g. the report of
// unbalanced brackets. A nil logger means slog.Default at the time of each
// call.
func WithLogger(l *slog.Logger) Option {
	return logopt{l}
}
