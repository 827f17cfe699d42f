package decimal

import (
	"math"
)

// Decimal is a fixed point number with S.Places() implied fractional digits.
// The zero value is 0.
//
// The raw mantissa math.MinInt64 is NaN: the result of an overflow, of a
// division by zero or of a rounding that Unnecessary forbids. Every
// operation with a NaN operand returns NaN.
type Decimal[S Scale] struct {
	raw int64
}

// FromRaw returns the decimal with the given mantissa.
func FromRaw[S Scale](raw int64) Decimal[S] {
	return Decimal[S]{raw: raw}
}

// FromInt64 returns n, or NaN if n does not fit at scale S.
func FromInt64[S Scale](n int64) Decimal[S] {
	return Decimal[S]{raw: scaleUp(n, places[S]())}
}

// FromFloat64 returns f rounded to scale S. NaN, infinities and values out
// of range are NaN.
func FromFloat64[S Scale](f float64, mode RoundingMode) Decimal[S] {
	return Decimal[S]{raw: fromFloat64(f, places[S](), mode)}
}

// NaNOf returns the NaN of scale S.
func NaNOf[S Scale]() Decimal[S] {
	return Decimal[S]{raw: nan}
}

// MaxOf returns the largest value of scale S.
func MaxOf[S Scale]() Decimal[S] {
	return Decimal[S]{raw: math.MaxInt64}
}

// MinOf returns the smallest value of scale S, the negation of MaxOf.
func MinOf[S Scale]() Decimal[S] {
	return Decimal[S]{raw: -math.MaxInt64}
}

// Raw returns the mantissa.
func (d Decimal[S]) Raw() int64 {
	return d.raw
}

// Scale returns the number of implied fractional digits.
func (d Decimal[S]) Scale() int {
	return places[S]()
}

// IsNaN reports whether d is NaN.
func (d Decimal[S]) IsNaN() bool {
	return d.raw == nan
}

// Sign returns -1, 0 or +1. NaN is -1, in line with its ordering.
func (d Decimal[S]) Sign() int {
	return int(signum(d.raw))
}

// Check returns ErrNaN if d is NaN.
func (d Decimal[S]) Check() error {
	if d.raw == nan {
		return ErrNaN
	}

	return nil
}

// Must returns d and panics if it is NaN.
func (d Decimal[S]) Must() Decimal[S] {
	if d.raw == nan {
		panic(ErrNaN)
	}

	return d
}

// Float64 returns the nearest float64. NaN maps to math.NaN().
func (d Decimal[S]) Float64() float64 {
	return toFloat64(d.raw, places[S]())
}

// Int64 returns the integer part of d rounded by mode. It fails with ErrNaN
// on NaN and with ErrInexact if mode is Unnecessary and d has a fraction.
func (d Decimal[S]) Int64(mode RoundingMode) (int64, error) {
	return toInt64(d.raw, places[S](), mode)
}

// Cmp compares d and e. NaN is below every number and equal to NaN.
func (d Decimal[S]) Cmp(e Decimal[S]) int {
	// NaN is the smallest mantissa.
	return cmp(d.raw, e.raw)
}

// The methods below store their result in the receiver and return it so
// calls can be chained on a caller owned scratch value.

// SetRaw sets the mantissa.
func (d *Decimal[S]) SetRaw(raw int64) *Decimal[S] {
	d.raw = raw
	return d
}

// SetInt64 sets d to n.
func (d *Decimal[S]) SetInt64(n int64) *Decimal[S] {
	d.raw = scaleUp(n, places[S]())
	return d
}

// SetFloat64 sets d to f rounded by mode.
func (d *Decimal[S]) SetFloat64(f float64, mode RoundingMode) *Decimal[S] {
	d.raw = fromFloat64(f, places[S](), mode)
	return d
}

// SetNaN sets d to NaN.
func (d *Decimal[S]) SetNaN() *Decimal[S] {
	d.raw = nan
	return d
}

// Set copies e into d.
func (d *Decimal[S]) Set(e Decimal[S]) *Decimal[S] {
	d.raw = e.raw
	return d
}

// Negate flips the sign of d.
func (d *Decimal[S]) Negate() *Decimal[S] {
	d.raw = neg(d.raw)
	return d
}

// Add sets d to d + e.
func (d *Decimal[S]) Add(e Decimal[S]) *Decimal[S] {
	d.raw = addOverflow(d.raw, e.raw)
	return d
}

// AddInt64 sets d to d + n.
func (d *Decimal[S]) AddInt64(n int64) *Decimal[S] {
	d.raw = addScaled(d.raw, n, places[S]())
	return d
}

// Sub sets d to d - e.
func (d *Decimal[S]) Sub(e Decimal[S]) *Decimal[S] {
	d.raw = addOverflow(d.raw, neg(e.raw))
	return d
}

// SubInt64 sets d to d - n.
func (d *Decimal[S]) SubInt64(n int64) *Decimal[S] {
	d.raw = addScaled(d.raw, neg(n), places[S]())
	return d
}

// Mul sets d to d * e rounded by mode.
func (d *Decimal[S]) Mul(e Decimal[S], mode RoundingMode) *Decimal[S] {
	d.raw = mulScaleRound(d.raw, e.raw, places[S](), mode)
	return d
}

// MulInt64 sets d to d * n.
func (d *Decimal[S]) MulInt64(n int64) *Decimal[S] {
	d.raw = mulOverflow(d.raw, n)
	return d
}

// Div sets d to d / e rounded by mode. Division by zero is NaN.
func (d *Decimal[S]) Div(e Decimal[S], mode RoundingMode) *Decimal[S] {
	d.raw = scaleDivRound(d.raw, places[S](), e.raw, mode)
	return d
}

// DivInt64 sets d to d / n rounded by mode. Division by zero is NaN.
func (d *Decimal[S]) DivInt64(n int64, mode RoundingMode) *Decimal[S] {
	d.raw = divInt(d.raw, n, mode)
	return d
}
