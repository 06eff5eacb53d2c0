package calcpro

import (
	"errors"
	"strings"
	"testing"
)

func TestApplyFunction(t *testing.T) {
	testCases := []struct {
		name  string
		angle AngleUnit
		line  string
		want  string
	}{
		{"sin degrees", Degrees, "30 sin", "0.5"},
		{"cos degrees", Degrees, "60 cos", "0.5"},
		{"tan degrees", Degrees, "45 tan", "1"},
		{"sin radians", Radians, "0 sin", "0"},
		{"cos radians", Radians, "0 cos", "1"},
		{"asin degrees", Degrees, "0.5 asin", "30"},
		{"atan radians", Radians, "0 atan", "0"},
		{"log", Degrees, "1000 log", "3"},
		{"ln", Degrees, "1 ln", "0"},
		{"sqrt", Degrees, "16 sqrt", "4"},
		{"square", Degrees, "12 sqr", "144"},
		{"reciprocal", Degrees, "4 1/x", "0.25"},
		{"factorial", Degrees, "5 !", "120"},
		{"factorial of zero", Degrees, "0 !", "1"},
		{"abs", Degrees, "7 neg abs", "7"},
		{"exp", Degrees, "0 exp", "1"},
		{"ten to the x", Degrees, "3 10x", "1,000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(WithAngleUnit(tc.angle))
			out, err := press(t, c, tc.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Display != tc.want {
				t.Errorf("display = %q, want %q", out.Display, tc.want)
			}
		})
	}
}

func TestApplyFunctionErrors(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"tan at asymptote", "90 tan", ErrUndefined},
		{"tan at negative asymptote", "270 tan", ErrUndefined},
		{"log of zero", "0 log", ErrInvalidInput},
		{"ln of negative", "2 neg ln", ErrInvalidInput},
		{"sqrt of negative", "4 neg sqrt", ErrInvalidInput},
		{"reciprocal of zero", "0 1/x", ErrDivisionByZero},
		{"asin out of range", "2 asin", ErrInvalidInput},
		{"factorial of negative", "3 neg !", ErrInvalidInput},
		{"factorial of fraction", "2.5 !", ErrInvalidInput},
		{"factorial overflow", "171 !", ErrOverflow},
		{"exp overflow", "1000 exp", ErrArithmetic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			out, err := press(t, c, tc.line)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if out.Error == "" {
				t.Errorf("expected an open error window")
			}
			if c.History().Len() != 0 {
				t.Errorf("failed function must not add history")
			}
		})
	}
}

func TestFactorialBounds(t *testing.T) {
	c := New()
	press(t, c, "170")
	if _, err := c.ApplyFunction(FnFactorial); err != nil {
		t.Fatalf("factorial(170) failed: %v", err)
	}
	if got := c.Snapshot().Current; !strings.HasSuffix(got, "e+306") {
		t.Errorf("factorial(170) = %q, want exponential e+306", got)
	}

	c.Clear()
	press(t, c, "171")
	_, err := c.ApplyFunction(FnFactorial)
	var calcErr *Error
	if !errors.As(err, &calcErr) || calcErr.Kind != KindOverflow {
		t.Fatalf("factorial(171) = %v, want Overflow", err)
	}
	if got := c.Snapshot().Current; got != "171" {
		t.Errorf("operand changed by failed factorial: %q", got)
	}
}

func TestFunctionHistoryAndPending(t *testing.T) {
	c := New(WithNowFunc(fixedNowFunc))
	press(t, c, "2 + 16 sqrt")

	e, ok := c.History().At(0)
	if !ok || e.Expression != "√(16)" || e.Result != 4 {
		t.Fatalf("unexpected history entry %+v", e)
	}
	if s := c.Snapshot(); s.Pending != OpAdd || s.Previous != "2" {
		t.Errorf("function must keep the pending operator, got %+v", s)
	}

	out, _ := press(t, c, "=")
	if out.Display != "6" {
		t.Errorf("display = %q, want 6", out.Display)
	}
}

func TestShiftedFunctions(t *testing.T) {
	testCases := []struct {
		line string
		want string
		expr string
	}{
		{"shift 0.5 sin", "30", "asin(0.5)"},
		{"shift 2 log", "100", "10^(2)"},
		{"shift 0 ln", "1", "exp(0)"},
		{"shift 3 sqrt", "9", "sqr(3)"},
		{"shift 5 !", "120", "fact(5)"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			c := New()
			out, err := press(t, c, tc.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Display != tc.want {
				t.Errorf("display = %q, want %q", out.Display, tc.want)
			}
			if e, _ := c.History().At(0); e.Expression != tc.expr {
				t.Errorf("expression = %q, want %q", e.Expression, tc.expr)
			}
		})
	}
}
