package calcpro

import (
	"errors"
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name string
		op   Operator
		a, b float64
		want float64
	}{
		{"add", OpAdd, 2, 3, 5},
		{"sub", OpSub, 2, 3, -1},
		{"mul", OpMul, 2.5, 4, 10},
		{"div", OpDiv, 1, 4, 0.25},
		{"pow", OpPow, 2, 10, 1024},
		{"mod sign follows dividend", OpMod, -7, 3, -1},
		{"mod negative divisor", OpMod, 7, -3, 1},
		{"mod fractional", OpMod, 5.5, 2, 1.5},
		{"and", OpAnd, 12, 10, 8},
		{"or truncates", OpOr, 5.9, 2.1, 7},
		{"or truncates toward zero", OpOr, -1.5, 0, -1},
		{"xor", OpXor, 6, 3, 5},
		{"shift left wraps to int32", OpShiftLeft, 1, 31, math.MinInt32},
		{"shift count masked", OpShiftLeft, 1, 32, 1},
		{"shift right is arithmetic", OpShiftRight, -8, 1, -4},
		{"and wraps large operands", OpAnd, 4294967297, 0xFF, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := compute(tc.op, tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("compute(%s, %v, %v) = %v, want %v", tc.op, tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestToInt32(t *testing.T) {
	testCases := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{-1, -1},
		{2147483647, math.MaxInt32},
		{2147483648, math.MinInt32},
		{4294967296, 0},
		{-4294967297, -1},
		{3.99, 3},
		{-3.99, -3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tc := range testCases {
		if got := toInt32(tc.in); got != tc.want {
			t.Errorf("toInt32(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"division by zero", "1 / 0 =", ErrDivisionByZero},
		{"negate leaves zero divisor", "1 / 0 neg =", ErrDivisionByZero},
		{"pow of negative base", "8 neg ^ 0.5 =", ErrArithmetic},
		{"pow overflow", "10 ^ 400 =", ErrArithmetic},
		{"mod by zero", "5 mod 0 =", ErrArithmetic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			_, err := press(t, c, tc.line)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if s := c.Snapshot(); s.Pending == OpNone || s.Previous == "" {
				t.Errorf("failed evaluation must keep the pending operation, got %+v", s)
			}
			if c.History().Len() != 0 {
				t.Errorf("failed evaluation must not add history")
			}
		})
	}
}

func TestChainedFailureKeepsOperator(t *testing.T) {
	c := New()
	_, err := press(t, c, "6 / 0 +")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if s := c.Snapshot(); s.Pending != OpDiv || s.Previous != "6" {
		t.Errorf("new operator must not be applied after a failed chain, got %+v", s)
	}
}

func TestProgrammerArithmetic(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want string
	}{
		{"hex add", "hex FF + 1 =", "100"},
		{"hex division truncates", "hex 7 / 2 =", "3"},
		{"binary and", "bin 1100 and 1010 =", "1000"},
		{"octal shift", "oct 1 << 3 =", "10"},
		{"xor is not pow", "dec 6 xor 3 =", "5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(WithMode(ModeProgrammer))
			out, err := press(t, c, tc.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Display != tc.want {
				t.Errorf("display = %q, want %q", out.Display, tc.want)
			}
		})
	}

	t.Run("history keeps base numerals", func(t *testing.T) {
		c := New(WithMode(ModeProgrammer))
		press(t, c, "hex FF + 1 =")
		e, _ := c.History().At(0)
		if e.Expression != "FF + 1" || e.Result != 256 {
			t.Errorf("unexpected entry %+v", e)
		}
	})
}
