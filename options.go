package calcpro

import (
	"log/slog"
)

// Option defines a function that configures a Calculator.
type Option func(*Calculator)

// WithStore attaches a Store used to load and persist history and theme.
//
// Example:
//
//	store, err := calcpro.Open(".calcpro")
//	calc := calcpro.New(calcpro.WithStore(store))
func WithStore(store *Store) Option {
	return func(c *Calculator) {
		c.store = store
	}
}

// WithNowFunc sets a custom time function used for history timestamps.
// This is primarily useful for testing with deterministic timestamps.
func WithNowFunc(nowFunc NowFunc) Option {
	return func(c *Calculator) {
		c.nowFunc = nowFunc
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithHistoryCapacity sets how many history entries are kept.
// Values below 1 keep the default.
func WithHistoryCapacity(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithAngleUnit sets the initial angle unit.
func WithAngleUnit(a AngleUnit) Option {
	return func(c *Calculator) {
		c.initAngle = a
	}
}

// WithMode sets the initial calculator mode.
func WithMode(m Mode) Option {
	return func(c *Calculator) {
		c.initMode = m
	}
}

// WithErrorReset sets what happens when the error window closes.
// The default, ResetClear, clears the calculator.
func WithErrorReset(p ErrorResetPolicy) Option {
	return func(c *Calculator) {
		c.resetPolicy = p
	}
}
