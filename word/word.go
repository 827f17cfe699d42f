package word

import (
	"math"
	"math/bits"
)

const (
	// Bits is the width of a half word.
	Bits = 32

	carry  = 1 << Bits
	loMask = carry - 1

	// MaxMagnitude is the largest magnitude a result may carry.
	MaxMagnitude = math.MaxInt64

	// 10^10 == 2^3 * tenTenShifted
	tenTenShifted = 1_250_000_000
	tenTen        = 10_000_000_000
)

var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n for 0 <= n <= 19.
func Pow10(n int) uint64 {
	return pow10[n]
}

func hi32(v uint64) uint64 {
	return v >> Bits
}

func lo32(v uint64) uint64 {
	return v & loMask
}

// MulHi multiplies a by the single word b. The product is returned as hi and
// lo with a*b == hi<<32 | lo and lo < 2^32.
func MulHi(a, b uint64) (hi, lo uint64) {
	l := lo32(a) * b
	h := hi32(a)*b + hi32(l)

	return h, lo32(l)
}

// MulDiv returns the quotient and remainder of v*m/d without overflowing the
// intermediate product. ok is false if the quotient does not fit in 63 bits.
func MulDiv(v, m, d uint64) (q, r uint64, ok bool) {
	q, r, _, ok = mulDiv(v, m, d)
	return q, r, ok
}

// mulDiv is MulDiv that also reports how many times the estimated quotient
// digit had to be decremented.
func mulDiv(v, m, d uint64) (q, r uint64, corrections int, ok bool) {
	if m == 0 {
		return 0, 0, 0, true
	}

	// v*m/d == (v/d)*m + (v%d)*m/d
	var offset uint64
	if v >= d {
		offset = v / d
		v %= d

		if offset > MaxMagnitude/m {
			return 0, 0, 0, false
		}
		offset *= m
	}

	// From here v < d, so the remaining quotient is below m and fits a word.

	if d <= loMask {
		p := v * m

		q = offset + p/d
		if q > MaxMagnitude {
			return 0, 0, 0, false
		}

		return q, p % d, 0, true
	}

	p1, p0 := MulHi(v, m)

	// Normalize so the divisor's top bit is set. d > 2^32 so shift < 32.
	shift := uint(bits.LeadingZeros64(d))
	dn := d << shift
	p1 = p1<<shift | p0>>(Bits-shift)
	p0 = lo32(p0 << shift)

	d1 := hi32(dn)
	d0 := lo32(dn)

	qhat := p1 / d1
	if qhat > loMask {
		qhat = loMask
	}

	h1, h0 := MulHi(dn, qhat)

	// qhat never underestimates; with d1 >= 2^31 it overestimates by at
	// most two.
	for h1 > p1 || h1 == p1 && h0 > p0 {
		qhat--
		corrections++

		if h0 < d0 {
			h0 += carry
			h1--
		}
		h0 -= d0
		h1 -= d1
	}

	rem := (p1-h1)<<Bits + p0 - h0

	q = offset + qhat
	if q > MaxMagnitude {
		return 0, 0, corrections, false
	}

	return q, rem >> shift, corrections, true
}

// MulScale returns the quotient and remainder of a*b/10^scale. The 128 bit
// product is never materialized as a single integer. ok is false if the
// quotient does not fit in 63 bits.
func MulScale(a, b uint64, scale int) (q, r uint64, ok bool) {
	// a*b == h1<<64 + (h0 + l1)<<32 + l0
	h0, l0 := MulHi(a, lo32(b))
	h1, l1 := MulHi(a, hi32(b))

	mid := h0 + l1
	top := h1 + hi32(mid)

	w := [4]uint64{hi32(top), lo32(top), lo32(mid), l0}

	if scale <= 9 {
		r = divWords(&w, pow10[scale])

		q, ok = join(&w)
		if !ok {
			return 0, 0, false
		}

		return q, r, true
	}

	// 10^10 does not fit a word, but 10^10 >> 3 does. Drop the three low
	// bits, divide, and put them back into the remainder.
	low := w[3] & 0b111
	for i := len(w) - 1; i > 0; i-- {
		w[i] = lo32(w[i]>>3 | w[i-1]<<(Bits-3))
	}
	w[0] >>= 3

	r1 := divWords(&w, tenTenShifted)<<3 | low
	r2 := divWords(&w, pow10[scale-10])

	q, ok = join(&w)
	if !ok {
		return 0, 0, false
	}

	// v/d1/d2 == q2 + (r2*d1 + r1)/(d1*d2)
	return q, r2*tenTen + r1, true
}

// divWords divides the words in place by a single word divisor and returns
// the remainder.
func divWords(w *[4]uint64, d uint64) (r uint64) {
	for i := range w {
		cur := r<<Bits | w[i]
		w[i] = cur / d
		r = cur % d
	}

	return r
}

// join reassembles the low words into a 63 bit magnitude.
func join(w *[4]uint64) (v uint64, ok bool) {
	if w[0] != 0 || w[1] != 0 || w[2] > math.MaxInt32 {
		return 0, false
	}

	return w[2]<<Bits | w[3], true
}

// DownScale divides v by 10^scale. The quotient is truncated toward zero and
// the remainder has the sign of v.
func DownScale(v int64, scale int) (q, r int64) {
	switch scale {
	case 0:
		return v, 0
	case 1:
		return v / 10, v % 10
	case 2:
		return v / 100, v % 100
	case 3:
		return v / 1_000, v % 1_000
	case 4:
		return v / 10_000, v % 10_000
	case 5:
		return v / 100_000, v % 100_000
	case 6:
		return v / 1_000_000, v % 1_000_000
	case 7:
		return v / 10_000_000, v % 10_000_000
	case 8:
		return v / 100_000_000, v % 100_000_000
	case 9:
		return v / 1_000_000_000, v % 1_000_000_000
	}

	panic("word: scale out of range")
}

// DownScaleUnsigned divides the full 64 bit v by 10^scale.
func DownScaleUnsigned(v uint64, scale int) (q, r uint64) {
	switch scale {
	case 0:
		return v, 0
	case 1:
		return v / 10, v % 10
	case 2:
		return v / 100, v % 100
	case 3:
		return v / 1_000, v % 1_000
	case 4:
		return v / 10_000, v % 10_000
	case 5:
		return v / 100_000, v % 100_000
	case 6:
		return v / 1_000_000, v % 1_000_000
	case 7:
		return v / 10_000_000, v % 10_000_000
	case 8:
		return v / 100_000_000, v % 100_000_000
	case 9:
		return v / 1_000_000_000, v % 1_000_000_000
	}

	panic("word: scale out of range")
}
