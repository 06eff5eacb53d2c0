package calcpro

import (
	"errors"
)

// Store keys used by the calculator.
const (
	HistoryKey = "history"
	ThemeKey   = "theme"
)

// loadHistory reads the history log from the store. Missing or corrupt
// data yields an empty history.
func (c *Calculator) loadHistory() *History {
	data, err := c.store.Get(HistoryKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn("could not load history", "error", err)
		}
		return NewHistory(c.capacity)
	}

	h, err := DeserializeHistory(data, c.capacity)
	if err != nil {
		c.log.Warn("discarding corrupt history", "error", err)
	}
	return h
}

// saveHistory writes the history log to the store, if one is attached.
// Failures are logged; the in-memory history is authoritative.
func (c *Calculator) saveHistory() {
	if c.store == nil {
		return
	}
	data, err := c.history.Serialize()
	if err != nil {
		c.log.Warn("could not encode history", "error", err)
		return
	}
	if err := c.store.Put(HistoryKey, data); err != nil {
		c.log.Warn("could not save history", "error", err)
	}
}

// loadTheme reads the theme preference, defaulting to dark.
func (c *Calculator) loadTheme() Theme {
	data, err := c.store.Get(ThemeKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.Warn("could not load theme", "error", err)
		}
		return ThemeDark
	}
	t, err := ParseTheme(string(data))
	if err != nil {
		c.log.Warn("ignoring unknown theme", "error", err)
		return ThemeDark
	}
	return t
}

func (c *Calculator) saveTheme() {
	if c.store == nil {
		return
	}
	if err := c.store.Put(ThemeKey, []byte(c.state.Theme.String())); err != nil {
		c.log.Warn("could not save theme", "error", err)
	}
}
