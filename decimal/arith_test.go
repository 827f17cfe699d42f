package decimal

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// scaled is v*10^up/10^down as an exact fraction.
func scaled(v *big.Int, up, down int) (num, den *big.Int) {
	return new(big.Int).Mul(v, bigPow10(up)), bigPow10(down)
}

func TestConvertSweep(t *testing.T) {
	for _, from := range testScales {
		for _, to := range testScales {
			for _, mode := range RoundingModes {
				for _, v := range operands() {
					num, den := scaled(bigInt(v), to, from)

					want := exact(t, num, den, mode)
					got := convert(v, from, to, mode)
					require.Equal(t, want, got, "convert(%d, %d, %d, %s)", v, from, to, mode)
				}
			}
		}
	}
}

func TestPlusSweep(t *testing.T) {
	vs := operands()

	for _, as := range pairScales {
		for _, rs := range pairScales {
			for _, mode := range RoundingModes {
				for _, a := range vs {
					for _, b := range vs {
						sum := new(big.Int).Add(bigInt(a), bigInt(b))
						num, den := scaled(sum, rs, as)

						want := exact(t, num, den, mode)
						got := plus(a, b, as, rs, mode)
						if want != got {
							t.Logf("%s", spew.Sdump(a, b, as, rs, mode))
						}
						require.Equal(t, want, got, "plus(%d, %d, %d, %d, %s)", a, b, as, rs, mode)
					}
				}
			}
		}
	}
}

func TestAddSweep(t *testing.T) {
	vs := operands()

	for _, xs := range pairScales {
		for _, as := range pairScales {
			for _, mode := range RoundingModes {
				for _, x := range vs {
					for _, a := range vs {
						// x + a*10^xs/10^as
						num := new(big.Int).Mul(bigInt(a), bigPow10(xs))
						den := bigPow10(as)
						num.Add(num, new(big.Int).Mul(bigInt(x), den))

						want := exact(t, num, den, mode)
						got := add(x, a, xs, as, mode)
						require.Equal(t, want, got, "add(%d, %d, %d, %d, %s)", x, a, xs, as, mode)
					}
				}
			}
		}
	}
}

func TestAddScaled(t *testing.T) {
	vs := operands()

	for s := 0; s <= MaxPlaces; s++ {
		for _, x := range vs {
			for _, a := range vs {
				num := new(big.Int).Mul(bigInt(a), bigPow10(s))
				num.Add(num, bigInt(x))

				want := exact(t, num, bigInt(1), Unnecessary)
				got := addScaled(x, a, s)
				require.Equal(t, want, got, "addScaled(%d, %d, %d)", x, a, s)
			}
		}
	}

	// a*10^s alone overflows, the sum does not.
	require.Equal(t, int64(3), addScaled(-math.MaxInt64, math.MaxInt64/10+1, 1))
	require.Equal(t, int64(-3), addScaled(math.MaxInt64, -(math.MaxInt64/10 + 1), 1))
	require.Equal(t, int64(nan), addScaled(-1, math.MaxInt64/10+1, 1))
}

func TestProductSweep(t *testing.T) {
	vs := operands()

	for _, as := range pairScales {
		for _, rs := range pairScales {
			for _, mode := range RoundingModes {
				for _, a := range vs {
					for _, b := range vs {
						p := new(big.Int).Mul(bigInt(a), bigInt(b))
						num, den := scaled(p, rs, 2*as)

						want := exact(t, num, den, mode)
						got := product(a, b, as, rs, mode)
						require.Equal(t, want, got, "product(%d, %d, %d, %d, %s)", a, b, as, rs, mode)
					}
				}
			}
		}
	}
}

func TestMulScaleRoundSweep(t *testing.T) {
	vs := operands()

	for _, s := range []int{0, 1, 9, 10, 18} {
		for _, mode := range RoundingModes {
			for _, a := range vs {
				for _, b := range vs {
					p := new(big.Int).Mul(bigInt(a), bigInt(b))

					want := exact(t, p, bigPow10(s), mode)
					got := mulScaleRound(a, b, s, mode)
					require.Equal(t, want, got, "mulScaleRound(%d, %d, %d, %s)", a, b, s, mode)
				}
			}
		}
	}
}

func TestScaleDivRoundSweep(t *testing.T) {
	vs := operands()

	for _, s := range testScales {
		for _, mode := range RoundingModes {
			for _, v := range vs {
				for _, d := range vs {
					num := new(big.Int).Mul(bigInt(v), bigPow10(s))

					want := exact(t, num, bigInt(d), mode)
					got := scaleDivRound(v, s, d, mode)
					require.Equal(t, want, got, "scaleDivRound(%d, %d, %d, %s)", v, s, d, mode)
				}
			}
		}
	}
}

func TestDivIntSweep(t *testing.T) {
	vs := operands()

	for _, mode := range RoundingModes {
		for _, x := range vs {
			for _, n := range vs {
				want := exact(t, bigInt(x), bigInt(n), mode)
				got := divInt(x, n, mode)
				require.Equal(t, want, got, "divInt(%d, %d, %s)", x, n, mode)
			}
		}
	}
}

func TestCompareSweep(t *testing.T) {
	vs := operands()

	for _, as := range testScales {
		for _, bs := range testScales {
			for _, a := range vs {
				for _, b := range vs {
					l := new(big.Int).Mul(bigInt(a), bigPow10(bs))
					r := new(big.Int).Mul(bigInt(b), bigPow10(as))

					want := l.Cmp(r)
					got := compare(a, as, b, bs)
					require.Equal(t, want, got, "compare(%d, %d, %d, %d)", a, as, b, bs)
				}
			}
		}
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	operand := func() int64 {
		// Spread magnitudes over the whole range.
		v := rng.Int63() >> rng.Intn(63)
		if rng.Intn(2) == 0 {
			v = -v
		}

		return v
	}

	for i := 0; i < 20_000; i++ {
		a, b := operand(), operand()
		as, rs := rng.Intn(MaxPlaces+1), rng.Intn(MaxPlaces+1)
		mode := RoundingModes[rng.Intn(len(RoundingModes))]

		num, den := scaled(new(big.Int).Add(bigInt(a), bigInt(b)), rs, as)
		require.Equal(t, exact(t, num, den, mode), plus(a, b, as, rs, mode),
			"plus(%d, %d, %d, %d, %s)", a, b, as, rs, mode)

		num, den = scaled(new(big.Int).Mul(bigInt(a), bigInt(b)), rs, 2*as)
		require.Equal(t, exact(t, num, den, mode), product(a, b, as, rs, mode),
			"product(%d, %d, %d, %d, %s)", a, b, as, rs, mode)

		num, _ = scaled(bigInt(a), rs, 0)
		require.Equal(t, exact(t, num, bigInt(b), mode), scaleDivRound(a, rs, b, mode),
			"scaleDivRound(%d, %d, %d, %s)", a, rs, b, mode)

		num, den = scaled(bigInt(a), rs, as)
		require.Equal(t, exact(t, num, den, mode), convert(a, as, rs, mode),
			"convert(%d, %d, %d, %s)", a, as, rs, mode)

		// a (scale rs) + b (scale as)
		num = new(big.Int).Mul(bigInt(b), bigPow10(rs))
		den = bigPow10(as)
		num.Add(num, new(big.Int).Mul(bigInt(a), den))
		require.Equal(t, exact(t, num, den, mode), add(a, b, rs, as, mode),
			"add(%d, %d, %d, %d, %s)", a, b, rs, as, mode)

		l := new(big.Int).Mul(bigInt(a), bigPow10(rs))
		r := new(big.Int).Mul(bigInt(b), bigPow10(as))
		require.Equal(t, l.Cmp(r), compare(a, as, b, rs),
			"compare(%d, %d, %d, %d)", a, as, b, rs)

		s := as + rs
		num = new(big.Int).Mul(bigInt(a), bigInt(b))
		require.Equal(t, exact(t, num, bigPow10(s), mode), mulScaleRound(a, b, s, mode),
			"mulScaleRound(%d, %d, %d, %s)", a, b, s, mode)

		require.Equal(t, exact(t, bigInt(a), bigInt(b), mode), divInt(a, b, mode),
			"divInt(%d, %d, %s)", a, b, mode)
	}
}

func TestNaNAbsorbs(t *testing.T) {
	for _, mode := range RoundingModes {
		for _, v := range []int64{0, 1, -1, math.MaxInt64, -math.MaxInt64} {
			for _, s := range testScales {
				require.Equal(t, int64(nan), plus(nan, v, s, s, mode))
				require.Equal(t, int64(nan), plus(v, nan, s, 0, mode))
				require.Equal(t, int64(nan), add(nan, v, s, 0, mode))
				require.Equal(t, int64(nan), add(v, nan, 0, s, mode))
				require.Equal(t, int64(nan), addScaled(nan, v, s))
				require.Equal(t, int64(nan), addScaled(v, nan, s))
				require.Equal(t, int64(nan), product(nan, v, s, s, mode))
				require.Equal(t, int64(nan), product(v, nan, s, 0, mode))
				require.Equal(t, int64(nan), scaleDivRound(nan, s, v, mode))
				require.Equal(t, int64(nan), scaleDivRound(v, s, nan, mode))
				require.Equal(t, int64(nan), convert(nan, s, 0, mode))
				require.Equal(t, int64(nan), convert(nan, 0, s, mode))
			}

			require.Equal(t, int64(nan), divInt(nan, v, mode))
			require.Equal(t, int64(nan), divInt(v, nan, mode))
			require.Equal(t, int64(nan), mulOverflow(nan, v))
			require.Equal(t, int64(nan), mulOverflow(v, nan))
			require.Equal(t, int64(nan), addOverflow(nan, v))
			require.Equal(t, int64(nan), neg(nan))
		}
	}

	require.Equal(t, 0, compare(nan, 0, nan, 9))
	require.Equal(t, -1, compare(nan, 0, -math.MaxInt64, 9))
	require.Equal(t, 1, compare(-math.MaxInt64, 2, nan, 0))
}

func TestSignSymmetry(t *testing.T) {
	vs := operands()

	for _, s := range testScales {
		for _, a := range vs {
			for _, b := range vs {
				// Modes that ignore the sign commute with negation.
				for _, mode := range []RoundingMode{Down, Up, HalfUp, HalfDown, HalfEven} {
					require.Equal(t, neg(product(a, b, s, s, mode)), product(neg(a), b, s, s, mode))
					require.Equal(t, neg(scaleDivRound(a, s, b, mode)), scaleDivRound(neg(a), s, b, mode))
					require.Equal(t, neg(scaleDivRound(a, s, b, mode)), scaleDivRound(a, s, neg(b), mode))
					require.Equal(t, neg(plus(a, b, s, 0, mode)), plus(neg(a), neg(b), s, 0, mode))
					require.Equal(t, neg(add(a, b, 0, s, mode)), add(neg(a), neg(b), 0, s, mode))
				}

				require.Equal(t, neg(product(a, b, s, s, Floor)), product(neg(a), b, s, s, Ceiling))
			}
		}
	}
}

func TestToInt64(t *testing.T) {
	type TC struct {
		raw  int64
		s    int
		mode RoundingMode
		want int64
		err  error
	}

	tcs := []TC{
		{raw: 12300, s: 2, mode: Unnecessary, want: 123},
		{raw: 12345, s: 2, mode: Unnecessary, err: ErrInexact},
		{raw: 12345, s: 2, mode: Down, want: 123},
		{raw: 12350, s: 2, mode: HalfEven, want: 124},
		{raw: 12250, s: 2, mode: HalfEven, want: 122},
		{raw: -12345, s: 2, mode: Floor, want: -124},
		{raw: -12345, s: 2, mode: Ceiling, want: -123},
		{raw: math.MaxInt64, s: 0, mode: Unnecessary, want: math.MaxInt64},
		{raw: nan, s: 3, mode: Down, err: ErrNaN},
	}

	for _, tc := range tcs {
		got, err := toInt64(tc.raw, tc.s, tc.mode)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestFromFloat64(t *testing.T) {
	type TC struct {
		f    float64
		s    int
		mode RoundingMode
		want int64
	}

	tcs := []TC{
		{f: 1.5, s: 0, mode: Unnecessary, want: nan},
		{f: 1.25, s: 2, mode: Unnecessary, want: 125},
		{f: 1.5, s: 0, mode: Down, want: 1},
		{f: -1.5, s: 0, mode: Down, want: -1},
		{f: 1.5, s: 0, mode: Up, want: 2},
		{f: -1.5, s: 0, mode: Up, want: -2},
		{f: -1.5, s: 0, mode: Floor, want: -2},
		{f: -1.5, s: 0, mode: Ceiling, want: -1},
		{f: 2.5, s: 0, mode: HalfUp, want: 3},
		{f: -2.5, s: 0, mode: HalfUp, want: -3},
		{f: 2.5, s: 0, mode: HalfDown, want: 2},
		{f: 2.6, s: 0, mode: HalfDown, want: 3},
		{f: -2.6, s: 0, mode: HalfDown, want: -3},
		{f: 2.5, s: 0, mode: HalfEven, want: 2},
		{f: 3.5, s: 0, mode: HalfEven, want: 4},
		{f: 0.125, s: 2, mode: HalfEven, want: 12},
		{f: 1e19, s: 0, mode: Down, want: nan},
		{f: -1e19, s: 0, mode: Down, want: nan},
		{f: 9.2e18, s: 0, mode: Down, want: 9_200_000_000_000_000_000},
		{f: math.Inf(1), s: 0, mode: Down, want: nan},
		{f: math.NaN(), s: 0, mode: Down, want: nan},
		{f: 1, s: 0, mode: RoundingMode(99), want: nan},
	}

	for _, tc := range tcs {
		got := fromFloat64(tc.f, tc.s, tc.mode)
		require.Equal(t, tc.want, got, "%v %d %s", tc.f, tc.s, tc.mode)
	}

	require.True(t, math.IsNaN(toFloat64(nan, 2)))
	require.Equal(t, 1.25, toFloat64(125, 2))
}
