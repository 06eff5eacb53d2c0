package calcpro

import (
	"math"
)

// ApplyOperator sets op as the pending operator.
// If an operator is already pending and a new operand has been entered, the
// pending operation is evaluated first, giving left-to-right chaining:
// 2 + 3 × 4 = evaluates to 20. Chained intermediate results are not
// recorded in history. A failed chained evaluation leaves op unapplied.
func (c *Calculator) ApplyOperator(op Operator) (string, error) {
	c.touch()
	if op == OpNone {
		return c.Display(), nil
	}

	if c.state.Pending != OpNone && !c.state.AwaitingOperand {
		if _, err := c.evaluate(false); err != nil {
			return c.Display(), err
		}
	}

	c.state.Expression = c.state.Current + " " + op.Symbol() + " "
	c.state.Previous = c.state.Current
	c.state.Pending = op
	c.state.AwaitingOperand = true
	return c.Display(), nil
}

// Evaluate applies the pending operator to the previous and current operands.
// Without a pending operator it is a no-op returning the current value.
// On failure the operands are left untouched and an *Error is returned.
func (c *Calculator) Evaluate() (float64, error) {
	c.touch()
	return c.evaluate(true)
}

func (c *Calculator) evaluate(addToHistory bool) (float64, error) {
	if c.state.Pending == OpNone {
		v, _ := parseOperand(c.state.Current, c.state.Base)
		return v, nil
	}

	op := c.state.Pending
	prev, _ := parseOperand(c.state.Previous, c.state.Base)
	cur, _ := parseOperand(c.state.Current, c.state.Base)

	raw, err := compute(op, prev, cur)
	if err != nil {
		return 0, c.fail(err)
	}
	if c.state.Base != BaseDec {
		raw = math.Trunc(raw)
	}
	result, ferr := roundResult(raw)
	if ferr != nil {
		return 0, c.fail(newError(KindArithmetic, op.Symbol()))
	}

	if addToHistory {
		c.record(c.state.Previous+" "+op.Symbol()+" "+c.state.Current, result)
	}

	c.state.Current = renderValue(result, c.state.Base)
	c.state.Previous = ""
	c.state.Pending = OpNone
	c.state.Expression = ""
	c.state.AwaitingOperand = true
	return result, nil
}

// compute applies a binary operator. NaN and infinite results are reported
// by the caller's rounding step.
func compute(op Operator, a, b float64) (float64, *Error) {
	if op.bitwise() {
		return computeBitwise(op, toInt32(a), toInt32(b)), nil
	}

	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, newError(KindDivisionByZero, op.Symbol())
		}
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	case OpMod:
		return math.Mod(a, b), nil
	default:
		return 0, newError(KindArithmetic, op.String())
	}
}

func computeBitwise(op Operator, a, b int32) float64 {
	shift := uint32(b) & 31
	switch op {
	case OpAnd:
		return float64(a & b)
	case OpOr:
		return float64(a | b)
	case OpXor:
		return float64(a ^ b)
	case OpShiftLeft:
		return float64(a << shift)
	case OpShiftRight:
		return float64(a >> shift)
	}
	return 0
}

// toInt32 truncates v and wraps it to a signed 32-bit integer.
// NaN and infinities become 0.
func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}
