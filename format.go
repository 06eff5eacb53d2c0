package calcpro

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Results at or above this magnitude are shown in exponential notation.
	expUpperBound = 1e15
	// Nonzero results below this magnitude are shown in exponential notation.
	expLowerBound = 1e-10
	// Fractional digits kept for exponential results.
	expDigits = 10
	// Decimal places kept for fixed results, enough to hide float noise.
	fixedDigits = 12
)

var groupPrinter = message.NewPrinter(language.English)

// FormatResult renders a computed value as an operand string.
// NaN and infinities fail with an *Error of kind KindArithmetic.
// Formatting is idempotent: formatting the parsed output again yields the same string.
func FormatResult(v float64) (string, error) {
	r, err := roundResult(v)
	if err != nil {
		return "", err
	}
	return canonical(r), nil
}

// roundResult applies the display rounding policy to v.
func roundResult(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(KindArithmetic, "")
	}

	abs := math.Abs(v)
	if abs >= expUpperBound || (v != 0 && abs < expLowerBound) {
		r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', expDigits, 64), 64)
		if err != nil {
			return 0, newError(KindArithmetic, "")
		}
		return r, nil
	}

	// Rounding is done on the decimal text so that a rounded value rounds to itself.
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', fixedDigits, 64), 64)
	if err != nil {
		return 0, newError(KindArithmetic, "")
	}
	return r, nil
}

// canonical renders v the way a plain numeric literal would be written:
// fixed notation for ordinary magnitudes, shortest exponent form otherwise.
func canonical(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GroupThousands inserts en-US thousands separators into the integer part of a
// decimal numeral of any length. Exponential numerals and unparsable input are
// returned unchanged.
func GroupThousands(s string) string {
	if strings.ContainsAny(s, "eE") {
		return s
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	sign, digits := "", intPart
	if rest, ok := strings.CutPrefix(intPart, "-"); ok {
		sign, digits = "-", rest
	}
	if len(digits) <= 3 || !allDigits(digits) {
		return s
	}
	grouped := sign + groupDigits(digits)
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}

// maxPrintedDigits is the longest digit run formatted by the printer in one piece.
const maxPrintedDigits = 18

// groupDigits groups a run of decimal digits. Runs too long for uint64 are
// split on a group boundary and the low groups appended.
func groupDigits(digits string) string {
	if len(digits) > maxPrintedDigits {
		head := digits[:len(digits)-3]
		return groupDigits(head) + "," + digits[len(digits)-3:]
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return digits
	}
	return groupPrinter.Sprintf("%d", n)
}
