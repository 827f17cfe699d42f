package decimal

// Cross scale operations. R is the result scale and A the scale of the
// operands. At most two scales meet in one call.

// Convert returns a at scale R, rounded by mode when R has fewer digits.
func Convert[R, A Scale](a Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: convert(a.raw, places[A](), places[R](), mode)}
}

// Add returns x + a.
func Add[R, A Scale](x Decimal[R], a Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: add(x.raw, a.raw, places[R](), places[A](), mode)}
}

// Subtract returns x - a.
func Subtract[R, A Scale](x Decimal[R], a Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: add(x.raw, neg(a.raw), places[R](), places[A](), mode)}
}

// Plus returns a + b at scale R.
func Plus[R, A Scale](a, b Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: plus(a.raw, b.raw, places[A](), places[R](), mode)}
}

// Minus returns a - b at scale R.
func Minus[R, A Scale](a, b Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: plus(a.raw, neg(b.raw), places[A](), places[R](), mode)}
}

// Product returns a * b at scale R.
func Product[R, A Scale](a, b Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: product(a.raw, b.raw, places[A](), places[R](), mode)}
}

// Mul returns x * a.
func Mul[R, A Scale](x Decimal[R], a Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: mulScaleRound(x.raw, a.raw, places[A](), mode)}
}

// Quotient returns a / b at scale R. Division by zero is NaN.
func Quotient[R, A Scale](a, b Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: scaleDivRound(a.raw, places[R](), b.raw, mode)}
}

// Div returns x / a. Division by zero is NaN.
func Div[R, A Scale](x Decimal[R], a Decimal[A], mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: scaleDivRound(x.raw, places[A](), a.raw, mode)}
}

// Compare orders a and b by value: -1 if a < b, 0 if equal, +1 if a > b.
// NaN is below every number and equal to NaN. Compare is not consistent with
// equality of mantissas: 1.0 and 1.00 compare equal.
func Compare[A, B Scale](a Decimal[A], b Decimal[B]) int {
	return compare(a.raw, places[A](), b.raw, places[B]())
}

// PlusInt64 returns a + b at scale R.
func PlusInt64[R Scale](a, b int64) Decimal[R] {
	return Decimal[R]{raw: plus(a, b, 0, places[R](), Unnecessary)}
}

// MinusInt64 returns a - b at scale R.
func MinusInt64[R Scale](a, b int64) Decimal[R] {
	return Decimal[R]{raw: plus(a, neg(b), 0, places[R](), Unnecessary)}
}

// ProductInt64 returns a * b at scale R.
func ProductInt64[R Scale](a, b int64) Decimal[R] {
	return Decimal[R]{raw: scaleUp(mulOverflow(a, b), places[R]())}
}

// QuotientInt64 returns a / b at scale R. Division by zero is NaN.
func QuotientInt64[R Scale](a, b int64, mode RoundingMode) Decimal[R] {
	return Decimal[R]{raw: scaleDivRound(a, places[R](), b, mode)}
}
