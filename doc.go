/*
Package calcpro provides the state machine behind a desk-style calculator.

A Calculator consumes discrete input events (digits, operators, functions,
memory keys, base and mode switches) and produces display output plus a
bounded history log. It holds no UI state: adapters deliver events with
Apply, or the individual methods, and render the returned Output.

# Basic Usage

	calc := calcpro.New()
	for _, evt := range []calcpro.Event{
	    calcpro.Digit{Value: '2'},
	    calcpro.OperatorKey{Op: calcpro.OpAdd},
	    calcpro.Digit{Value: '3'},
	    calcpro.OperatorKey{Op: calcpro.OpMul},
	    calcpro.Digit{Value: '4'},
	    calcpro.Equals{},
	} {
	    out, err := calc.Apply(evt)
	    if err != nil {
	        // out.Error holds the message to show
	    }
	    fmt.Println(out.Display)
	}

Operators chain left to right without precedence, so the sequence above
displays 20.

# Errors

Failed evaluations return an *Error that unwraps to one of ErrDivisionByZero,
ErrInvalidInput, ErrUndefined, ErrOverflow or ErrArithmetic. The operands are
left untouched and the calculator opens an error window: the display shows
the message until the adapter calls ResolveError with Output.ErrorToken, or
until the next event arrives. A stale token is ignored.

	out, err := calc.Apply(calcpro.Equals{})
	if errors.Is(err, calcpro.ErrDivisionByZero) {
	    time.AfterFunc(calcpro.DefaultErrorDisplay, func() {
	        calc.ResolveError(out.ErrorToken) // deliver on the event goroutine
	    })
	}

# Persistence

History and the theme preference can be kept in a Store, a checksummed
key-value store on any afero filesystem:

	store, err := calcpro.Open(".calcpro")
	if err != nil {
	    log.Fatal(err)
	}
	calc := calcpro.New(calcpro.WithStore(store))

Missing or corrupt records never fail the calculator; they are logged and
replaced by defaults.

# Configuration

LoadConfig reads a YAML file and Config.Options turns it into options:

	data_dir: .calcpro
	history_capacity: 50
	error_display: 1.5s
	error_reset: clear
	angle_unit: deg
	mode: basic
	log_level: info
*/
package calcpro
