package calcpro

import (
	"math"
)

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

// cosEpsilon is the cosine magnitude below which tan is undefined.
const cosEpsilon = 1e-10

// ApplyFunction applies a unary function to the current operand.
// With the shift flag set, keys map to their inverse (sin to asin, log to 10^x, ...).
// On success the result replaces the operand and a history entry is added;
// on failure the operand is left untouched and an *Error is returned.
// The pending operator, if any, is kept.
func (c *Calculator) ApplyFunction(fn Function) (float64, error) {
	c.touch()
	if c.state.Shift {
		fn = fn.inverse()
	}

	v, _ := parseOperand(c.state.Current, c.state.Base)
	raw, err := c.unary(fn, v)
	if err != nil {
		return 0, c.fail(err)
	}
	if c.state.Base != BaseDec {
		raw = math.Trunc(raw)
	}
	result, ferr := roundResult(raw)
	if ferr != nil {
		return 0, c.fail(newError(KindArithmetic, fn.Label()))
	}

	c.record(fn.Label()+"("+c.state.Current+")", result)
	c.state.Current = renderValue(result, c.state.Base)
	c.state.AwaitingOperand = true
	return result, nil
}

func (c *Calculator) unary(fn Function, v float64) (float64, *Error) {
	switch fn {
	case FnSin:
		return math.Sin(c.toRadians(v)), nil
	case FnCos:
		return math.Cos(c.toRadians(v)), nil
	case FnTan:
		angle := c.toRadians(v)
		if math.Abs(math.Cos(angle)) < cosEpsilon {
			return 0, newError(KindUndefined, fn.Label())
		}
		return math.Tan(angle), nil
	case FnAsin, FnAcos:
		if !(v >= -1 && v <= 1) {
			return 0, newError(KindInvalidInput, fn.Label())
		}
		if fn == FnAsin {
			return c.fromRadians(math.Asin(v)), nil
		}
		return c.fromRadians(math.Acos(v)), nil
	case FnAtan:
		return c.fromRadians(math.Atan(v)), nil
	case FnLog, FnLn:
		if !(v > 0) {
			return 0, newError(KindInvalidInput, fn.Label())
		}
		if fn == FnLog {
			return math.Log10(v), nil
		}
		return math.Log(v), nil
	case FnSqrt:
		if v < 0 {
			return 0, newError(KindInvalidInput, fn.Label())
		}
		return math.Sqrt(v), nil
	case FnSquare:
		return v * v, nil
	case FnReciprocal:
		if v == 0 {
			return 0, newError(KindDivisionByZero, fn.Label())
		}
		return 1 / v, nil
	case FnFactorial:
		return factorial(v)
	case FnAbs:
		return math.Abs(v), nil
	case FnExp:
		return math.Exp(v), nil
	case FnPow10:
		return math.Pow(10, v), nil
	}
	return 0, newError(KindArithmetic, fn.Label())
}

// factorial computes n! as an iterative product.
// n must be a non-negative integer no greater than maxFactorial.
func factorial(n float64) (float64, *Error) {
	if !(n >= 0) || n != math.Trunc(n) {
		return 0, newError(KindInvalidInput, FnFactorial.Label())
	}
	if n > maxFactorial {
		return 0, newError(KindOverflow, FnFactorial.Label())
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

func (c *Calculator) toRadians(v float64) float64 {
	if c.state.Angle == Degrees {
		return v * math.Pi / 180
	}
	return v
}

func (c *Calculator) fromRadians(v float64) float64 {
	if c.state.Angle == Degrees {
		return v * 180 / math.Pi
	}
	return v
}
