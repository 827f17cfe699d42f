package decimal

import (
	"strconv"
	"strings"
)

// RoundingMode selects how a result that falls between two representable
// values is resolved.
type RoundingMode uint8

// Rounding modes. The zero value is Unnecessary.
const (
	// Unnecessary requires the result to be exact. Any discarded digit
	// makes the result NaN.
	Unnecessary RoundingMode = iota

	// Down truncates toward zero.
	Down

	// Up rounds away from zero.
	Up

	// Floor rounds toward negative infinity.
	Floor

	// Ceiling rounds toward positive infinity.
	Ceiling

	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp

	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown

	// HalfEven rounds to the nearest neighbor, ties to the even neighbor.
	HalfEven
)

var roundingModeNames = [...]string{
	Unnecessary: "unnecessary",
	Down:        "down",
	Up:          "up",
	Floor:       "floor",
	Ceiling:     "ceiling",
	HalfUp:      "half_up",
	HalfDown:    "half_down",
	HalfEven:    "half_even",
}

// RoundingModes lists every rounding mode in declaration order.
var RoundingModes = []RoundingMode{
	Unnecessary,
	Down,
	Up,
	Floor,
	Ceiling,
	HalfUp,
	HalfDown,
	HalfEven,
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}

	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseRoundingMode returns the mode with the given name. Matching ignores
// case, and '-' may be used in place of '_' ("HALF_EVEN", "half-even").
func ParseRoundingMode(name string) (m RoundingMode, err error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")

	for i, n := range roundingModeNames {
		if n == key {
			return RoundingMode(i), nil
		}
	}

	return 0, Error.New("unknown rounding mode %q", name)
}

// round resolves whole + num/den to an integer. den is positive, |num| < den
// and num is zero or has the sign of the exact value. Stepping past the
// largest magnitude wraps into the NaN sentinel.
func round(whole, num, den int64, mode RoundingMode) int64 {
	if num == 0 {
		return whole
	}

	switch mode {
	case Unnecessary:
		return nan
	case Down:
		return whole
	case Up:
		return whole + signum(num)
	case Floor:
		// -1 if negative
		return whole + num>>63
	case Ceiling:
		// +1 if positive
		return whole - (-num)>>63
	case HalfUp:
		// A tie no longer fits under the shrunk denominator.
		return roundHalfDown(whole, num, den-1)
	case HalfDown:
		return roundHalfDown(whole, num, den)
	case HalfEven:
		// Odd wholes break ties like HalfUp, even ones like HalfDown.
		return roundHalfDown(whole, num, den-whole&1)
	}

	return nan
}

// roundHalfDown keeps whole while 2*|num| <= den.
func roundHalfDown(whole, num, den int64) int64 {
	half := den / 2
	if num <= half && num >= -half {
		return whole
	}

	return whole + signum(num)
}

func signum(v int64) int64 {
	return v>>63 | int64(uint64(-v)>>63)
}
