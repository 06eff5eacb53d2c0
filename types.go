package calcpro

import "fmt"

// Operator is a binary operator awaiting its second operand.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShiftLeft
	OpShiftRight
)

// Symbol returns the operator as shown in the expression line.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpPow:
		return "^"
	case OpMod:
		return "mod"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpShiftLeft:
		return "<<"
	case OpShiftRight:
		return ">>"
	default:
		return ""
	}
}

func (op Operator) String() string {
	if s := op.Symbol(); s != "" {
		return s
	}
	return "none"
}

// bitwise reports whether the operator works on 32-bit integers.
func (op Operator) bitwise() bool {
	switch op {
	case OpAnd, OpOr, OpXor, OpShiftLeft, OpShiftRight:
		return true
	}
	return false
}

// Function is a unary transform applied to the current operand.
type Function int

const (
	FnSin Function = iota
	FnCos
	FnTan
	FnAsin
	FnAcos
	FnAtan
	FnLog
	FnLn
	FnSqrt
	FnSquare
	FnReciprocal
	FnFactorial
	FnAbs
	FnExp
	FnPow10
)

// Label returns the name used for the function in history entries.
func (fn Function) Label() string {
	switch fn {
	case FnSin:
		return "sin"
	case FnCos:
		return "cos"
	case FnTan:
		return "tan"
	case FnAsin:
		return "asin"
	case FnAcos:
		return "acos"
	case FnAtan:
		return "atan"
	case FnLog:
		return "log"
	case FnLn:
		return "ln"
	case FnSqrt:
		return "√"
	case FnSquare:
		return "sqr"
	case FnReciprocal:
		return "1/"
	case FnFactorial:
		return "fact"
	case FnAbs:
		return "abs"
	case FnExp:
		return "exp"
	case FnPow10:
		return "10^"
	default:
		return fmt.Sprintf("fn(%d)", int(fn))
	}
}

func (fn Function) String() string { return fn.Label() }

// inverse returns the function a shifted key maps to.
func (fn Function) inverse() Function {
	switch fn {
	case FnSin:
		return FnAsin
	case FnCos:
		return FnAcos
	case FnTan:
		return FnAtan
	case FnLog:
		return FnPow10
	case FnLn:
		return FnExp
	case FnSqrt:
		return FnSquare
	default:
		return fn
	}
}

// Base is the radix used for programmer-mode entry and display.
type Base int

const (
	BaseDec Base = iota
	BaseBin
	BaseOct
	BaseHex
)

// Radix returns the numeric radix of the base.
func (b Base) Radix() int {
	switch b {
	case BaseBin:
		return 2
	case BaseOct:
		return 8
	case BaseHex:
		return 16
	default:
		return 10
	}
}

func (b Base) String() string {
	switch b {
	case BaseBin:
		return "bin"
	case BaseOct:
		return "oct"
	case BaseHex:
		return "hex"
	default:
		return "dec"
	}
}

// ParseBase parses "bin", "oct", "dec" or "hex".
func ParseBase(s string) (Base, error) {
	switch s {
	case "bin":
		return BaseBin, nil
	case "oct":
		return BaseOct, nil
	case "dec":
		return BaseDec, nil
	case "hex":
		return BaseHex, nil
	}
	return BaseDec, fmt.Errorf("unknown base %q", s)
}

// AngleUnit selects how trigonometric functions read their argument.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

func (a AngleUnit) String() string {
	if a == Radians {
		return "RAD"
	}
	return "DEG"
}

// ParseAngleUnit parses "deg"/"degrees" or "rad"/"radians".
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch s {
	case "deg", "degrees", "DEG":
		return Degrees, nil
	case "rad", "radians", "RAD":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle unit %q", s)
}

// Mode is the calculator layout. Only programmer mode changes core behavior.
type Mode int

const (
	ModeBasic Mode = iota
	ModeScientific
	ModeProgrammer
)

func (m Mode) String() string {
	switch m {
	case ModeScientific:
		return "scientific"
	case ModeProgrammer:
		return "programmer"
	default:
		return "basic"
	}
}

// ParseMode parses "basic", "scientific" or "programmer".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "basic":
		return ModeBasic, nil
	case "scientific":
		return ModeScientific, nil
	case "programmer":
		return ModeProgrammer, nil
	}
	return ModeBasic, fmt.Errorf("unknown mode %q", s)
}

// Theme is the persisted color preference.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme parses "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("unknown theme %q", s)
}

// MemoryOp is an operation on the memory register.
type MemoryOp int

const (
	MemoryStore MemoryOp = iota
	MemoryRecall
	MemoryAdd
	MemorySubtract
	MemoryClear
)

// Constant is an insertable mathematical constant.
type Constant int

const (
	ConstPi Constant = iota
	ConstE
)

// ErrorResetPolicy decides what ResolveError does when the error window closes.
type ErrorResetPolicy int

const (
	// ResetClear clears the calculator.
	ResetClear ErrorResetPolicy = iota
	// ResetRestore only removes the error indicator.
	ResetRestore
)

func (p ErrorResetPolicy) String() string {
	if p == ResetRestore {
		return "restore"
	}
	return "clear"
}

// ParseErrorResetPolicy parses "clear" or "restore".
func ParseErrorResetPolicy(s string) (ErrorResetPolicy, error) {
	switch s {
	case "clear":
		return ResetClear, nil
	case "restore":
		return ResetRestore, nil
	}
	return ResetClear, fmt.Errorf("unknown error reset policy %q", s)
}
