package calcpro

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ProgrammerView is the current operand rendered in every supported base.
// Fields are empty when the operand is not an integer numeral.
type ProgrammerView struct {
	Hex string
	Dec string
	Oct string
	Bin string
}

// SwitchBase re-encodes the current operand, and the left-hand operand of a
// pending operator, in the new base and makes it active. Operands are read as
// integers in the old base; anything unreadable becomes "0".
func (c *Calculator) SwitchBase(b Base) string {
	c.touch()
	if b == c.state.Base {
		return c.Display()
	}
	from := c.state.Base
	c.state.Base = b
	c.state.Current = reencode(c.state.Current, from, b)
	if c.state.Pending != OpNone {
		c.state.Previous = reencode(c.state.Previous, from, b)
		c.state.Expression = c.state.Previous + " " + c.state.Pending.Symbol() + " "
	}
	c.log.Debug("base switched", "base", b.String(), "current", c.state.Current)
	return c.Display()
}

// BitwiseNot replaces the operand with its 32-bit unsigned complement.
func (c *Calculator) BitwiseNot() string {
	c.touch()
	v, ok := parseOperand(c.state.Current, c.state.Base)
	if !ok {
		return c.Display()
	}
	c.state.Current = renderValue(float64(^uint32(toInt32(v))), c.state.Base)
	return c.Display()
}

// reencode renders the integer value of numeral s, read in base from, in base to.
func reencode(s string, from, to Base) string {
	n, ok := parseInteger(s, from)
	if !ok {
		return "0"
	}
	return renderInteger(n, to)
}

func (c *Calculator) programmerView() ProgrammerView {
	n, ok := parseInteger(c.state.Current, c.state.Base)
	if !ok {
		return ProgrammerView{}
	}
	return ProgrammerView{
		Hex: renderInteger(n, BaseHex),
		Dec: renderInteger(n, BaseDec),
		Oct: renderInteger(n, BaseOct),
		Bin: renderInteger(n, BaseBin),
	}
}

// parseOperand returns the numeric value of s read in base b.
func parseOperand(s string, b Base) (float64, bool) {
	if !validNumeral(s, b) {
		return math.NaN(), false
	}
	if b == BaseDec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), false
		}
		return v, true
	}
	n, ok := new(big.Int).SetString(s, b.Radix())
	if !ok {
		return math.NaN(), false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

// parseInteger reads s as an integer in base b. Decimal integers are read
// exactly; fractional or exponential decimal input is truncated toward zero.
func parseInteger(s string, b Base) (*big.Int, bool) {
	if b != BaseDec {
		if !validNumeral(s, b) {
			return nil, false
		}
		return new(big.Int).SetString(s, b.Radix())
	}
	if validNumeral(s, b) && !strings.ContainsAny(s, ".e") {
		return new(big.Int).SetString(s, 10)
	}
	v, ok := parseOperand(s, b)
	if !ok || math.IsInf(v, 0) {
		return nil, false
	}
	n, _ := big.NewFloat(math.Trunc(v)).Int(nil)
	return n, true
}

func renderInteger(n *big.Int, b Base) string {
	return strings.ToUpper(n.Text(b.Radix()))
}

// renderValue renders an already formatted value as an operand in base b.
// Non-decimal bases hold integers only, so the value is truncated.
func renderValue(v float64, b Base) string {
	if b == BaseDec {
		return canonical(v)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	n, _ := big.NewFloat(math.Trunc(v)).Int(nil)
	return renderInteger(n, b)
}

// validDigit reports whether d belongs to the alphabet of base b.
func validDigit(d rune, b Base) bool {
	switch {
	case d == '.':
		return b == BaseDec
	case d >= '0' && d <= '9':
		return int(d-'0') < b.Radix()
	case d >= 'A' && d <= 'F':
		return b == BaseHex
	}
	return false
}

// validNumeral reports whether s is a well-formed operand in base b:
// an optional sign, at least one digit, and for decimal an optional
// fraction and exponent.
func validNumeral(s string, b Base) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	if b != BaseDec {
		for _, r := range s {
			if r == '.' || !validDigit(r, b) {
				return false
			}
		}
		return true
	}

	mantissa, exp, hasExp := strings.Cut(s, "e")
	if hasExp {
		if strings.HasPrefix(exp, "+") || strings.HasPrefix(exp, "-") {
			exp = exp[1:]
		}
		if exp == "" || !allDigits(exp) {
			return false
		}
	}
	whole, frac, _ := strings.Cut(mantissa, ".")
	if whole == "" || !allDigits(whole) {
		return false
	}
	return frac == "" || allDigits(frac)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
