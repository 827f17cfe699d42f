package decimal

import (
	"math"

	"github.com/calebcase/fixed/word"
)

// nan is the raw sentinel. It is the one int64 without a negation, so every
// ordinary raw value lies in [-MaxInt64, MaxInt64].
const nan = math.MinInt64

var (
	pow10  [MaxPlaces + 1]int64
	limits [MaxPlaces + 1]int64
)

func init() {
	for s := range pow10 {
		pow10[s] = int64(word.Pow10(s))
		limits[s] = math.MaxInt64 / pow10[s]
	}
}

// negIf negates v when sign is -1 and keeps it when sign is 0.
func negIf(v, sign int64) int64 {
	return (v ^ sign) - sign
}

func neg(v int64) int64 {
	// -MinInt64 == MinInt64 keeps NaN intact.
	return -v
}

// scaleUp multiplies v by 10^s, 0 <= s <= 9.
func scaleUp(v int64, s int) int64 {
	if v < -limits[s] || v > limits[s] {
		return nan
	}

	return v * pow10[s]
}

// addOverflow is a + b, or NaN if either is NaN or the sum leaves the int64
// range.
func addOverflow(a, b int64) int64 {
	r := a + b
	if a == nan || b == nan || (r < 0) != (a < 0) && (r < 0) != (b < 0) {
		return nan
	}

	return r
}

// mulOverflow is a * b, or NaN if either is NaN or the product does not fit.
func mulOverflow(a, b int64) int64 {
	if a > math.MinInt32 && a <= math.MaxInt32 &&
		b > math.MinInt32 && b <= math.MaxInt32 {

		return a * b
	}

	return mulScaleRound(a, b, 0, Down)
}

// mulScaleRound is a * b / 10^s rounded, 0 <= s <= 18.
func mulScaleRound(a, b int64, s int, mode RoundingMode) int64 {
	if a == nan || b == nan {
		return nan
	}

	sa := a >> 63
	sb := b >> 63

	q, r, ok := word.MulScale(uint64(negIf(a, sa)), uint64(negIf(b, sb)), s)
	if !ok {
		return nan
	}

	sign := sa ^ sb

	return round(negIf(int64(q), sign), negIf(int64(r), sign), int64(word.Pow10(s)), mode)
}

// scaleDivRound is v * 10^s / d rounded, 0 <= s <= 9. A zero divisor is NaN.
func scaleDivRound(v int64, s int, d int64, mode RoundingMode) int64 {
	if v == nan || d == nan || d == 0 {
		return nan
	}

	sv := v >> 63
	sd := d >> 63

	d = negIf(d, sd)

	q, r, ok := word.MulDiv(uint64(negIf(v, sv)), uint64(pow10[s]), uint64(d))
	if !ok {
		return nan
	}

	sign := sv ^ sd

	return round(negIf(int64(q), sign), negIf(int64(r), sign), d, mode)
}

// convert moves raw from scale from to scale to.
func convert(raw int64, from, to int, mode RoundingMode) int64 {
	diff := to - from

	switch {
	case diff >= 0:
		return scaleUp(raw, diff)
	case raw == nan:
		return nan
	}

	q, r := word.DownScale(raw, -diff)

	return round(q, r, pow10[-diff], mode)
}

// plus is a + b where both operands share scale as and the result has scale
// rs.
func plus(a, b int64, as, rs int, mode RoundingMode) int64 {
	diff := rs - as
	if diff >= 0 {
		return scaleUp(addOverflow(a, b), diff)
	}

	if a == nan || b == nan {
		return nan
	}

	n := -diff

	// The sum is divided by at least 10, so only the intermediate can
	// overflow. Same-sign operands are summed as unsigned magnitudes.
	var q, r int64
	switch {
	case a >= 0 && b >= 0:
		uq, ur := word.DownScaleUnsigned(uint64(a)+uint64(b), n)
		q, r = int64(uq), int64(ur)
	case a < 0 && b < 0:
		uq, ur := word.DownScaleUnsigned(uint64(-a)+uint64(-b), n)
		q, r = -int64(uq), -int64(ur)
	default:
		q, r = word.DownScale(a+b, n)
	}

	return round(q, r, pow10[n], mode)
}

// add is x + a where x has scale xs (the result scale) and a has scale as.
func add(x, a int64, xs, as int, mode RoundingMode) int64 {
	diff := xs - as
	if diff >= 0 {
		return addScaled(x, a, diff)
	}

	if x == nan || a == nan {
		return nan
	}

	n := -diff
	den := pow10[n]

	q, r := word.DownScale(a, n)

	sum := addOverflow(x, q)
	if sum == nan {
		return nan
	}

	// The remainder carries the sign of a; align it with the sum.
	switch {
	case sum < 0 && r > 0:
		r -= den
		sum++
	case sum > 0 && r < 0:
		r += den
		sum--
	}

	return round(sum, r, den, mode)
}

// addScaled is x + a*10^s. When a*10^s alone overflows but x has the
// opposite sign the sum may still fit, so the magnitudes are combined as
// unsigned words.
func addScaled(x, a int64, s int) int64 {
	if s == 0 {
		return addOverflow(x, a)
	}

	scaled := scaleUp(a, s)
	if scaled == nan && a != nan && x != nan && (x < 0) != (a < 0) && x != 0 {
		sa := a >> 63

		m := uint64(negIf(a, sa))
		if m > math.MaxUint64/uint64(pow10[s]) {
			return nan
		}

		// m > MaxInt64 >= |x|
		m = m*uint64(pow10[s]) - uint64(negIf(x, x>>63))
		if m > math.MaxInt64 {
			return nan
		}

		return negIf(int64(m), sa)
	}

	return addOverflow(x, scaled)
}

// product is a * b where both operands share scale as and the result has
// scale rs.
func product(a, b int64, as, rs int, mode RoundingMode) int64 {
	diff := 2*as - rs
	if diff >= 0 {
		return mulScaleRound(a, b, diff, mode)
	}

	return scaleUp(mulOverflow(a, b), -diff)
}

// divInt is x / n for an integer n.
func divInt(x, n int64, mode RoundingMode) int64 {
	if x == nan || n == nan || n == 0 {
		return nan
	}

	// Make the divisor positive so the remainder follows the quotient.
	sn := n >> 63
	n = negIf(n, sn)
	x = negIf(x, sn)

	return round(x/n, x%n, n, mode)
}

// compare orders a (scale as) against b (scale bs). NaN is below every
// number and equal to itself.
func compare(a int64, as int, b int64, bs int) int {
	switch {
	case a == nan && b == nan:
		return 0
	case a == nan:
		return -1
	case b == nan:
		return 1
	}

	diff := as - bs
	if diff >= 0 {
		sb := scaleUp(b, diff)
		if sb == nan {
			// b is beyond the range of scale as.
			return -int(signum(b))
		}

		return cmp(a, sb)
	}

	sa := scaleUp(a, -diff)
	if sa == nan {
		return int(signum(a))
	}

	return cmp(sa, b)
}

func cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// toInt64 is the integer part of raw at scale s rounded by mode.
func toInt64(raw int64, s int, mode RoundingMode) (int64, error) {
	if raw == nan {
		return 0, ErrNaN
	}

	q, r := word.DownScale(raw, s)

	v := round(q, r, pow10[s], mode)
	if v == nan {
		return 0, ErrInexact
	}

	return v, nil
}

// fromFloat64 converts f to a raw value at scale s. The scaled product is
// computed in binary floating point and then rounded by mode.
func fromFloat64(f float64, s int, mode RoundingMode) int64 {
	v := f * float64(pow10[s])

	var w float64
	switch mode {
	case Unnecessary:
		w = math.Trunc(v)
		if w != v {
			return nan
		}
	case Down:
		w = math.Trunc(v)
	case Up:
		if v > 0 {
			w = math.Ceil(v)
		} else {
			w = math.Floor(v)
		}
	case Floor:
		w = math.Floor(v)
	case Ceiling:
		w = math.Ceil(v)
	case HalfUp:
		w = math.Round(v)
	case HalfDown:
		w = math.Trunc(v)
		if math.Abs(v-w) > 0.5 {
			w += math.Copysign(1, v)
		}
	case HalfEven:
		w = math.RoundToEven(v)
	default:
		return nan
	}

	// float64(MaxInt64) rounds to 2^63, so the bound is exclusive. NaN
	// fails both comparisons.
	if !(w > -(1<<63) && w < 1<<63) {
		return nan
	}

	return int64(w)
}

func toFloat64(raw int64, s int) float64 {
	if raw == nan {
		return math.NaN()
	}

	return float64(raw) / float64(pow10[s])
}
