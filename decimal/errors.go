package decimal

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

var (
	// ErrNaN is returned when a value is extracted from the NaN sentinel.
	ErrNaN = Error.New("invalid value (overflow or division by zero)")

	// ErrInexact is returned when Unnecessary rounding would discard
	// digits.
	ErrInexact = Error.New("rounding necessary")
)

// ParseErrorKind classifies a rejected decimal text.
type ParseErrorKind uint8

// Parse error kinds.
const (
	ParseEmpty ParseErrorKind = iota + 1
	ParseLoneSign
	ParseUnexpected
	ParseTrailingDot
	ParseDoubleDot
	ParseOverflow
	ParseInexact
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty string"
	case ParseLoneSign:
		return "single '-' is not a number"
	case ParseUnexpected:
		return "unexpected character"
	case ParseTrailingDot:
		return "no digits after '.'"
	case ParseDoubleDot:
		return "second '.'"
	case ParseOverflow:
		return "overflow"
	case ParseInexact:
		return "too many fractional digits"
	}

	return fmt.Sprintf("ParseErrorKind(%d)", uint8(k))
}

// ParseError reports why and where a text was rejected. It is always
// returned wrapped in Error; use errors.As to recover it.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at offset %d", e.Input, e.Kind, e.Offset)
}
