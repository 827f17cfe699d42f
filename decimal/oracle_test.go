package decimal

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"
)

var rounders = map[RoundingMode]apd.Rounder{
	Down:     apd.RoundDown,
	Up:       apd.RoundUp,
	Floor:    apd.RoundFloor,
	Ceiling:  apd.RoundCeiling,
	HalfUp:   apd.RoundHalfUp,
	HalfDown: apd.RoundHalfDown,
	HalfEven: apd.RoundHalfEven,
}

// quantize rounds the decimal text to s fractional digits with apd and
// returns the mantissa, or nan if it is inexact under Unnecessary or outside
// the raw range.
func quantize(t *testing.T, text string, s int, mode RoundingMode) int64 {
	t.Helper()

	x, _, err := apd.NewFromString(text)
	require.NoError(t, err, text)

	ctx := apd.BaseContext.WithPrecision(100)
	ctx.Rounding = apd.RoundDown
	if mode != Unnecessary {
		ctx.Rounding = rounders[mode]
	}

	d := new(apd.Decimal)

	cond, err := ctx.Quantize(d, x, int32(-s))
	require.NoError(t, err, text)

	if mode == Unnecessary && cond.Inexact() {
		return nan
	}

	d.Exponent = 0

	v, err := d.Int64()
	if err != nil || v == nan {
		return nan
	}

	return v
}

// exact rounds num/den to an integer by mode. The quotient is reduced to its
// integer part plus one digit that preserves the rounding decision (below,
// at or above the half) before apd rounds it. A zero den is nan.
func exact(t *testing.T, num, den *big.Int, mode RoundingMode) int64 {
	t.Helper()

	if den.Sign() == 0 {
		return nan
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	negative := n.Sign() < 0
	n.Abs(n)

	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	digit := "0"
	if r.Sign() != 0 {
		switch new(big.Int).Lsh(r, 1).Cmp(d) {
		case -1:
			digit = "1"
		case 0:
			digit = "5"
		case 1:
			digit = "9"
		}
	}

	text := q.String() + "." + digit
	if negative {
		text = "-" + text
	}

	return quantize(t, text, 0, mode)
}

func bigInt(v int64) *big.Int {
	return big.NewInt(v)
}

func bigPow10(s int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(s)), nil)
}

// operands are powers of 2 and 10 and their neighbors, both signs.
func operands() []int64 {
	vs := []int64{
		0, 1, 2, 5, 9,
		math.MaxInt32, math.MaxInt32 + 1,
		math.MaxInt64, math.MaxInt64 - 1,
	}

	for _, k := range []int{1, 4, 7, 10, 13, 16, 18} {
		p := int64(bigPow10(k).Uint64())
		vs = append(vs, p, p-1, p+5)
	}

	for _, k := range []int{7, 31, 32, 62} {
		vs = append(vs, 1<<k, 1<<k-1)
	}

	n := len(vs)
	for i := 1; i < n; i++ {
		vs = append(vs, -vs[i])
	}

	return vs
}

var testScales = []int{0, 1, 2, 5, 9}

// pairScales keeps the two operand sweeps affordable.
var pairScales = []int{0, 2, 9}
