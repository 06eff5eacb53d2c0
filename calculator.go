package calcpro

import (
	"io"
	"log/slog"
	"time"
)

// DefaultHistoryCapacity is the number of history entries kept when no capacity is configured.
const DefaultHistoryCapacity = 50

// DefaultErrorDisplay is how long an adapter should show an error before calling ResolveError.
const DefaultErrorDisplay = 1500 * time.Millisecond

// NowFunc defines a function that returns the current time.
type NowFunc func() time.Time

// State is the full input state of a calculator.
type State struct {
	Current         string   // operand being entered, a valid numeral in Base
	Previous        string   // left-hand operand of Pending
	Pending         Operator // OpNone when no operator is pending
	AwaitingOperand bool     // next digit starts a fresh operand
	Base            Base
	Angle           AngleUnit
	Mode            Mode
	Expression      string // secondary display, e.g. "12 + "
	Memory          float64
	HasMemory       bool
	Shift           bool
	Theme           Theme
}

// Output is what an adapter renders after an event.
type Output struct {
	Display    string
	Expression string
	Error      string // non-empty while the error window is open
	ErrorToken uint64 // pass to ResolveError once the error has been shown
	HasMemory  bool
	Base       Base
	Angle      AngleUnit
	Mode       Mode
	Shift      bool
	Theme      Theme
	Programmer ProgrammerView
}

// Calculator is the calculator state machine.
// It is not safe for concurrent use; deliver events from a single goroutine.
type Calculator struct {
	state       State
	history     *History
	capacity    int
	store       *Store
	nowFunc     NowFunc
	log         *slog.Logger
	resetPolicy ErrorResetPolicy
	initAngle   AngleUnit
	initMode    Mode

	seq       uint64 // incremented by every input event
	errActive bool
	errMsg    string
	errToken  uint64
}

// New creates a calculator in its initial state.
// When a Store is attached, history and theme are loaded from it; load
// failures are logged and the defaults are kept.
func New(options ...Option) *Calculator {
	c := &Calculator{
		capacity: DefaultHistoryCapacity,
		nowFunc:  time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(c)
	}

	c.history = NewHistory(c.capacity)
	c.state = State{
		Current: "0",
		Angle:   c.initAngle,
		Mode:    c.initMode,
	}

	if c.store != nil {
		c.history = c.loadHistory()
		c.state.Theme = c.loadTheme()
	}

	return c
}

// Snapshot returns a copy of the current state.
func (c *Calculator) Snapshot() State {
	return c.state
}

// History returns the calculator's history log.
func (c *Calculator) History() *History {
	return c.history
}

// Display returns the main display string. While the error window is open it
// shows the error message; outside programmer mode integers are grouped.
func (c *Calculator) Display() string {
	if c.errActive {
		return c.errMsg
	}
	if c.state.Mode == ModeProgrammer {
		return c.state.Current
	}
	return GroupThousands(c.state.Current)
}

// Output returns the full render state.
func (c *Calculator) Output() Output {
	out := Output{
		Display:    c.Display(),
		Expression: c.state.Expression,
		HasMemory:  c.state.HasMemory,
		Base:       c.state.Base,
		Angle:      c.state.Angle,
		Mode:       c.state.Mode,
		Shift:      c.state.Shift,
		Theme:      c.state.Theme,
	}
	if c.errActive {
		out.Error = c.errMsg
		out.ErrorToken = c.errToken
	}
	if c.state.Mode == ModeProgrammer {
		out.Programmer = c.programmerView()
	}
	return out
}

// ResolveError closes the error window opened by a failed evaluation.
// It is a no-op, returning false, when the token is stale: any event
// delivered after the failure already closed the window.
func (c *Calculator) ResolveError(token uint64) bool {
	if !c.errActive || token != c.errToken || token != c.seq {
		return false
	}
	c.errActive = false
	c.errMsg = ""
	if c.resetPolicy == ResetClear {
		c.reset()
	}
	c.log.Debug("error window closed", "token", token, "policy", c.resetPolicy.String())
	return true
}

// Clear resets operands, pending operator and expression.
// Memory, base, mode, angle unit and history are kept.
func (c *Calculator) Clear() string {
	c.touch()
	c.reset()
	return c.Display()
}

// SwitchMode changes the calculator mode and clears it.
// Leaving programmer mode returns to decimal entry.
func (c *Calculator) SwitchMode(m Mode) string {
	c.touch()
	c.state.Mode = m
	if m != ModeProgrammer {
		c.state.Base = BaseDec
	}
	c.reset()
	return c.Display()
}

// ToggleAngleUnit flips between degrees and radians.
func (c *Calculator) ToggleAngleUnit() AngleUnit {
	c.touch()
	if c.state.Angle == Degrees {
		c.state.Angle = Radians
	} else {
		c.state.Angle = Degrees
	}
	return c.state.Angle
}

// ToggleShift flips the secondary-function flag.
func (c *Calculator) ToggleShift() bool {
	c.touch()
	c.state.Shift = !c.state.Shift
	return c.state.Shift
}

// ToggleTheme flips the theme and persists it when a Store is attached.
func (c *Calculator) ToggleTheme() Theme {
	c.touch()
	if c.state.Theme == ThemeDark {
		c.state.Theme = ThemeLight
	} else {
		c.state.Theme = ThemeDark
	}
	c.saveTheme()
	return c.state.Theme
}

func (c *Calculator) reset() {
	c.state.Current = "0"
	c.state.Previous = ""
	c.state.Pending = OpNone
	c.state.AwaitingOperand = false
	c.state.Expression = ""
}

// touch records an input event and closes any open error window.
func (c *Calculator) touch() {
	c.seq++
	c.errActive = false
	c.errMsg = ""
}

// fail opens the error window for err without changing the operands.
func (c *Calculator) fail(err *Error) error {
	c.errActive = true
	c.errMsg = err.Kind.String()
	c.errToken = c.seq
	c.log.Debug("calculation failed", "op", err.Op, "kind", err.Kind.String(), "token", c.errToken)
	return err
}

// now returns the current time.
func (c *Calculator) now() time.Time {
	return c.nowFunc()
}

func (c *Calculator) record(expression string, result float64) {
	c.history.Add(HistoryEntry{
		Expression: expression,
		Result:     result,
		Timestamp:  c.now().UnixMilli(),
	})
	c.saveHistory()
}
