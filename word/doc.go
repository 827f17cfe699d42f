// Package word provides the multi-word multiply and divide primitives behind
// the fixed point decimal engine.
//
// Every primitive works on non-negative magnitudes held in uint64 and splits
// them into 32 bit half words:
//
//  v = hi * 2^32 + lo
//
// Products of up to 128 bits are carried as a short array of words, most
// significant first, and divided one word at a time by divisors that fit in a
// single word. Division by a two word divisor is a restricted form of Knuth's
// Algorithm D: the divisor is normalized so its top bit is set, a quotient
// digit is estimated from the leading words and then corrected downwards.
// Normalization bounds the number of corrections to two.
//
// Quotient and remainder are returned together. Signs, NaN and rounding are
// the caller's concern; operands outside the documented ranges produce
// undefined results.
//
// Ranges
//
//  | Function          | Operands                         | Result              |
//  |-------------------|----------------------------------|---------------------|
//  | MulHi             | a < 2^64, b < 2^32               | hi < 2^64, lo < 2^32 |
//  | MulDiv            | v < 2^63, m < 2^32, 0 < d < 2^63 | q < 2^63 or !ok     |
//  | MulScale          | a, b < 2^63, 0 <= scale <= 18    | q < 2^63 or !ok     |
//  | DownScale         | any int64, 0 <= scale <= 9       | truncated q, r      |
//  | DownScaleUnsigned | any uint64, 0 <= scale <= 9      | q, r                |
//  |-------------------|----------------------------------|---------------------|
package word
