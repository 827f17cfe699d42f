package decimal

import (
	"math"
	"strings"
)

// Parse converts text to a decimal of scale S. The accepted grammar is:
//
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	number  ::= ['-'] digit digits ['.' digit digits]
//	text    ::= number | 'NaN'
//
// 'NaN' is matched without regard to case. Fractional digits beyond the
// scale must be zeros ("1.230" is a valid Places2 value, "1.234" is not).
//
// Malformed text is never mapped to NaN: the returned error wraps a
// *ParseError carrying the kind of failure and its byte offset.
func Parse[S Scale](text string) (Decimal[S], error) {
	return ParseRound[S](text, Unnecessary)
}

// ParseRound is like Parse but rounds fractional digits beyond the scale by
// mode instead of rejecting them.
func ParseRound[S Scale](text string, mode RoundingMode) (d Decimal[S], err error) {
	raw, err := parse(text, places[S](), mode)
	if err != nil {
		return d, err
	}

	return Decimal[S]{raw: raw}, nil
}

// MustParse is like Parse but panics if the text cannot be parsed. It
// simplifies initialization of package level values.
func MustParse[S Scale](text string) Decimal[S] {
	d, err := Parse[S](text)
	if err != nil {
		panic(err)
	}

	return d
}

func parse(text string, s int, mode RoundingMode) (raw int64, err error) {
	fail := func(kind ParseErrorKind, offset int) error {
		return Error.Wrap(&ParseError{
			Kind:   kind,
			Offset: offset,
			Input:  text,
		})
	}

	if len(text) == 0 {
		return 0, fail(ParseEmpty, 0)
	}

	switch text[0] {
	case 'n', 'N':
		if !strings.EqualFold(text, "nan") {
			return 0, fail(ParseUnexpected, 0)
		}

		return nan, nil
	}

	i := 0

	negative := text[0] == '-'
	if negative {
		if len(text) == 1 {
			return 0, fail(ParseLoneSign, 0)
		}

		i++
	}

	var (
		mant   int64
		digits int
		frac   int
		excess int64
		sticky int64
	)

	// Offsets of the '.' and of the first non-zero digit past the scale.
	dot, inexactAt := -1, -1

	for ; i < len(text); i++ {
		ch := text[i]

		switch {
		case ch == '.':
			switch {
			case dot >= 0:
				return 0, fail(ParseDoubleDot, i)
			case digits == 0:
				return 0, fail(ParseUnexpected, i)
			case i == len(text)-1:
				return 0, fail(ParseTrailingDot, i)
			}

			dot = i
		case ch >= '0' && ch <= '9':
			v := int64(ch - '0')
			digits++

			if dot >= 0 {
				frac++

				if frac > s {
					// Only the first discarded digit and whether
					// anything follows it matter for rounding.
					if frac == s+1 {
						excess = v
					} else if v != 0 {
						sticky = 1
					}

					if v != 0 && inexactAt < 0 {
						inexactAt = i
					}

					continue
				}
			}

			if mant > (math.MaxInt64-v)/10 {
				return 0, fail(ParseOverflow, i)
			}

			mant = mant*10 + v
		default:
			return 0, fail(ParseUnexpected, i)
		}
	}

	if frac < s {
		mant = scaleUp(mant, s-frac)
		if mant == nan {
			return 0, fail(ParseOverflow, len(text))
		}
	}

	// excess/10 + sticky/100 as a fraction over 20 keeps ties exact.
	num := excess*2 + sticky

	if negative {
		mant = -mant
		num = -num
	}

	if num == 0 {
		return mant, nil
	}

	if mode == Unnecessary {
		return 0, fail(ParseInexact, inexactAt)
	}

	raw = round(mant, num, 20, mode)
	if raw == nan {
		return 0, fail(ParseOverflow, len(text))
	}

	return raw, nil
}

// String returns d with exactly S.Places() fractional digits, or "NaN".
func (d Decimal[S]) String() string {
	var buf [24]byte
	return string(appendRaw(buf[:0], d.raw, places[S]()))
}

// Append appends the text form of d to dst.
func (d Decimal[S]) Append(dst []byte) []byte {
	return appendRaw(dst, d.raw, places[S]())
}

func appendRaw(dst []byte, raw int64, s int) []byte {
	if raw == nan {
		return append(dst, "NaN"...)
	}

	var (
		buf [24]byte
		pos = len(buf)
		mag = uint64(raw)
	)

	if raw < 0 {
		mag = uint64(-raw)
	}

	// Fraction, zero padded.
	for i := 0; i < s; i++ {
		pos--
		buf[pos] = byte(mag%10) + '0'
		mag /= 10
	}

	if s > 0 {
		pos--
		buf[pos] = '.'
	}

	// Integer part, at least one digit.
	for {
		pos--
		buf[pos] = byte(mag%10) + '0'
		mag /= 10

		if mag == 0 {
			break
		}
	}

	if raw < 0 {
		pos--
		buf[pos] = '-'
	}

	return append(dst, buf[pos:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal[S]) MarshalText() ([]byte, error) {
	return d.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the grammar
// of Parse.
func (d *Decimal[S]) UnmarshalText(text []byte) (err error) {
	*d, err = Parse[S](string(text))
	return err
}
