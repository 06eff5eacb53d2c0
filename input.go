package calcpro

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InputDigit enters one digit or the decimal point.
// Digits outside the active base's alphabet and a second decimal point are
// ignored. Lowercase hex digits are accepted.
func (c *Calculator) InputDigit(d rune) string {
	c.touch()
	d = unicode.ToUpper(d)
	if !validDigit(d, c.state.Base) {
		c.log.Debug("digit rejected", "digit", string(d), "base", c.state.Base.String())
		return c.Display()
	}

	if c.state.AwaitingOperand {
		if d == '.' {
			c.state.Current = "0."
		} else {
			c.state.Current = string(d)
		}
		c.state.AwaitingOperand = false
		return c.Display()
	}

	switch {
	case d == '.' && strings.ContainsAny(c.state.Current, ".e"):
		return c.Display()
	case c.state.Current == "0" && d != '.':
		c.state.Current = string(d)
	default:
		c.state.Current += string(d)
	}
	return c.Display()
}

// Negate toggles the sign of the current operand. "0" is left alone.
func (c *Calculator) Negate() string {
	c.touch()
	if c.state.Current == "0" {
		return c.Display()
	}
	if rest, ok := strings.CutPrefix(c.state.Current, "-"); ok {
		c.state.Current = rest
	} else {
		c.state.Current = "-" + c.state.Current
	}
	return c.Display()
}

// Percent divides the current operand by 100.
func (c *Calculator) Percent() string {
	c.touch()
	v, ok := parseOperand(c.state.Current, c.state.Base)
	if !ok {
		return c.Display()
	}
	c.state.Current = renderValue(v/100, c.state.Base)
	return c.Display()
}

// ClearEntry resets the current operand only.
func (c *Calculator) ClearEntry() string {
	c.touch()
	c.state.Current = "0"
	return c.Display()
}

// Backspace removes the last character of the current operand.
// An operand that would become empty or malformed is reset to "0".
func (c *Calculator) Backspace() string {
	c.touch()
	s := c.state.Current
	for utf8.RuneCountInString(s) > 1 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if validNumeral(s, c.state.Base) {
			c.state.Current = s
			return c.Display()
		}
	}
	c.state.Current = "0"
	return c.Display()
}

// InsertConstant replaces the current operand with π or e.
func (c *Calculator) InsertConstant(k Constant) string {
	c.touch()
	v := math.Pi
	if k == ConstE {
		v = math.E
	}
	c.state.Current = renderValue(v, c.state.Base)
	c.state.AwaitingOperand = true
	return c.Display()
}

// Memory applies a memory-register operation. Memory operations never
// produce history entries.
func (c *Calculator) Memory(op MemoryOp) string {
	c.touch()
	switch op {
	case MemoryClear:
		c.state.Memory = 0
		c.state.HasMemory = false
	case MemoryRecall:
		if c.state.HasMemory {
			c.state.Current = renderValue(c.state.Memory, c.state.Base)
			c.state.AwaitingOperand = true
		}
	case MemoryStore, MemoryAdd, MemorySubtract:
		v, ok := parseOperand(c.state.Current, c.state.Base)
		if !ok {
			return c.Display()
		}
		switch op {
		case MemoryStore:
			c.state.Memory = v
		case MemoryAdd:
			c.state.Memory += v
		case MemorySubtract:
			c.state.Memory -= v
		}
		c.state.HasMemory = true
	}
	return c.Display()
}
