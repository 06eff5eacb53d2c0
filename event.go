package calcpro

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Event is an input delivered to Apply. The set of events is closed:
// only the types in this package implement it.
type Event interface {
	event()
}

type (
	// Digit enters a digit or the decimal point.
	Digit struct{ Value rune }
	// OperatorKey sets a pending binary operator.
	OperatorKey struct{ Op Operator }
	// Equals evaluates the pending operator.
	Equals struct{}
	// FunctionKey applies a unary function.
	FunctionKey struct{ Fn Function }
	// ConstantKey inserts π or e.
	ConstantKey struct{ Const Constant }
	// Clear resets the calculator.
	Clear struct{}
	// ClearEntry resets the current operand.
	ClearEntry struct{}
	// Backspace removes the last character.
	Backspace struct{}
	// Negate toggles the operand's sign.
	Negate struct{}
	// Percent divides the operand by 100.
	Percent struct{}
	// MemoryKey operates on the memory register.
	MemoryKey struct{ Op MemoryOp }
	// SwitchBase re-encodes the operand in another base.
	SwitchBase struct{ Base Base }
	// ToggleAngleUnit flips degrees and radians.
	ToggleAngleUnit struct{}
	// SwitchMode changes the calculator mode.
	SwitchMode struct{ Mode Mode }
	// ToggleShift flips the secondary-function flag.
	ToggleShift struct{}
	// BitwiseNot complements the operand.
	BitwiseNot struct{}
	// RecallHistory loads a history entry's result; 0 is the newest.
	RecallHistory struct{ Index int }
	// ClearHistory empties the history log.
	ClearHistory struct{}
	// ToggleTheme flips the theme preference.
	ToggleTheme struct{}
)

func (Digit) event()           {}
func (OperatorKey) event()     {}
func (Equals) event()          {}
func (FunctionKey) event()     {}
func (ConstantKey) event()     {}
func (Clear) event()           {}
func (ClearEntry) event()      {}
func (Backspace) event()       {}
func (Negate) event()          {}
func (Percent) event()         {}
func (MemoryKey) event()       {}
func (SwitchBase) event()      {}
func (ToggleAngleUnit) event() {}
func (SwitchMode) event()      {}
func (ToggleShift) event()     {}
func (BitwiseNot) event()      {}
func (RecallHistory) event()   {}
func (ClearHistory) event()    {}
func (ToggleTheme) event()     {}

// Apply delivers one event and returns the resulting output.
// Calculation failures are returned as *Error alongside an Output whose
// Error and ErrorToken fields describe the open error window.
func (c *Calculator) Apply(evt Event) (Output, error) {
	var err error
	switch e := evt.(type) {
	case Digit:
		c.InputDigit(e.Value)
	case OperatorKey:
		_, err = c.ApplyOperator(e.Op)
	case Equals:
		_, err = c.Evaluate()
	case FunctionKey:
		_, err = c.ApplyFunction(e.Fn)
	case ConstantKey:
		c.InsertConstant(e.Const)
	case Clear:
		c.Clear()
	case ClearEntry:
		c.ClearEntry()
	case Backspace:
		c.Backspace()
	case Negate:
		c.Negate()
	case Percent:
		c.Percent()
	case MemoryKey:
		c.Memory(e.Op)
	case SwitchBase:
		c.SwitchBase(e.Base)
	case ToggleAngleUnit:
		c.ToggleAngleUnit()
	case SwitchMode:
		c.SwitchMode(e.Mode)
	case ToggleShift:
		c.ToggleShift()
	case BitwiseNot:
		c.BitwiseNot()
	case RecallHistory:
		c.RecallHistory(e.Index)
	case ClearHistory:
		c.ClearHistory()
	case ToggleTheme:
		c.ToggleTheme()
	default:
		panic(fmt.Sprintf("calcpro: unhandled event %T", evt))
	}
	return c.Output(), err
}

var eventTokens = map[string]Event{
	"+": OperatorKey{OpAdd}, "-": OperatorKey{OpSub},
	"*": OperatorKey{OpMul}, "x": OperatorKey{OpMul}, "×": OperatorKey{OpMul},
	"/": OperatorKey{OpDiv}, "÷": OperatorKey{OpDiv},
	"^": OperatorKey{OpPow}, "pow": OperatorKey{OpPow},
	"mod": OperatorKey{OpMod},
	"and": OperatorKey{OpAnd}, "&": OperatorKey{OpAnd},
	"or": OperatorKey{OpOr}, "|": OperatorKey{OpOr},
	"xor": OperatorKey{OpXor},
	"<<": OperatorKey{OpShiftLeft}, "lsh": OperatorKey{OpShiftLeft},
	">>": OperatorKey{OpShiftRight}, "rsh": OperatorKey{OpShiftRight},
	"=": Equals{},

	"sin": FunctionKey{FnSin}, "cos": FunctionKey{FnCos}, "tan": FunctionKey{FnTan},
	"asin": FunctionKey{FnAsin}, "acos": FunctionKey{FnAcos}, "atan": FunctionKey{FnAtan},
	"log": FunctionKey{FnLog}, "ln": FunctionKey{FnLn},
	"sqrt": FunctionKey{FnSqrt}, "square": FunctionKey{FnSquare}, "sqr": FunctionKey{FnSquare},
	"reciprocal": FunctionKey{FnReciprocal}, "1/x": FunctionKey{FnReciprocal},
	"factorial": FunctionKey{FnFactorial}, "!": FunctionKey{FnFactorial},
	"abs": FunctionKey{FnAbs}, "exp": FunctionKey{FnExp}, "10x": FunctionKey{FnPow10},

	"pi": ConstantKey{ConstPi}, "π": ConstantKey{ConstPi}, "e": ConstantKey{ConstE},

	"clear": Clear{}, "c": Clear{}, "ce": ClearEntry{},
	"backspace": Backspace{}, "bs": Backspace{},
	"negate": Negate{}, "neg": Negate{}, "±": Negate{},
	"percent": Percent{}, "%": Percent{},

	"ms": MemoryKey{MemoryStore}, "mr": MemoryKey{MemoryRecall},
	"m+": MemoryKey{MemoryAdd}, "m-": MemoryKey{MemorySubtract}, "mc": MemoryKey{MemoryClear},

	"bin": SwitchBase{BaseBin}, "oct": SwitchBase{BaseOct},
	"dec": SwitchBase{BaseDec}, "hex": SwitchBase{BaseHex},

	"deg": ToggleAngleUnit{}, "rad": ToggleAngleUnit{},
	"basic": SwitchMode{ModeBasic}, "scientific": SwitchMode{ModeScientific},
	"programmer": SwitchMode{ModeProgrammer},
	"shift": ToggleShift{}, "not": BitwiseNot{},
	"theme": ToggleTheme{}, "clear-history": ClearHistory{},
}

// ParseEvent maps a textual token to an event. Single digits, "." and
// upper-case A-F are digits; lower-case "c" and "e" are clear and Euler's
// number, other lower-case a-f are digits. "h<N>" recalls history entry N,
// and the remaining names follow the calculator's key labels, such as
// "+", "=", "sin", "mr", "hex" and "deg".
func ParseEvent(token string) (Event, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') || r == '.' {
			return Digit{Value: r}, nil
		}
	}

	lower := strings.ToLower(token)
	if evt, ok := eventTokens[lower]; ok {
		return evt, nil
	}

	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(strings.ToUpper(token))
		if r >= 'A' && r <= 'F' {
			return Digit{Value: r}, nil
		}
	}

	if rest, ok := strings.CutPrefix(lower, "h"); ok && rest != "" {
		if i, err := strconv.Atoi(rest); err == nil {
			return RecallHistory{Index: i}, nil
		}
	}

	return nil, fmt.Errorf("unknown token %q", token)
}

// ParseEvents splits a line on whitespace and parses every token.
// Multi-digit tokens such as "42" or "3.5" expand to one Digit event per rune.
func ParseEvents(line string) ([]Event, error) {
	var events []Event
	for _, tok := range strings.Fields(line) {
		if isNumberToken(tok) {
			for _, r := range strings.ToUpper(tok) {
				events = append(events, Digit{Value: r})
			}
			continue
		}
		evt, err := ParseEvent(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func isNumberToken(tok string) bool {
	if utf8.RuneCountInString(tok) < 2 {
		return false
	}
	if _, ok := eventTokens[strings.ToLower(tok)]; ok {
		return false
	}
	for _, r := range strings.ToUpper(tok) {
		if !((r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') || r == '.') {
			return false
		}
	}
	return true
}
