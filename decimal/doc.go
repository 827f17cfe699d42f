// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//	number = raw * 10 ^ -places
//
// Where raw is a signed 64 bit integer and places is the number of
// fractional digits, fixed at compile time by the Scale type parameter
// (Places0 through Places9). For example:
//
//	1.23 = Decimal[Places2]{raw: 123}
//
// The most negative int64 is not a number. It is NaN, the result of every
// overflow and every division by zero, and it absorbs: any operation with a
// NaN operand is NaN. Arithmetic never panics and never returns errors;
// check the result with IsNaN or Check.
//
// Operations that discard digits take a RoundingMode. Unnecessary, the zero
// mode, turns any discarded digit into NaN.
//
// Operands may have different scales. The generic functions (Plus, Product,
// Quotient, Compare, ...) take the result scale as their first type
// parameter:
//
//	a := decimal.MustParse[decimal.Places2]("0.33")
//	p := decimal.Product[decimal.Places2](a, a, decimal.Up) // 0.11
//
// Encoding
//
// A decimal is written as a single BSV data block. The payload is the
// unscaled integer (big-endian with a trailing sign bit, aka zigzag)
// followed by the scale, and finally the last 2 bits are the scale size:
//
//	| 0 | 1 | Available Scale |
//	|-------|-----------------|
//	| 0 . 0 | No Scale        | remaining bits in this byte are used for value.
//	| 0 . 1 | ±2^5 Scale      | 1 byte, remaining bits are the scale value.
//	| 1 . 0 | ±2^12 Scale     | not supported
//	| 1 . 1 | ±2^21 Scale     | not supported
//	|-------|-----------------|
//	| 0 | 1 |
//
// Places0 values use No Scale, all others the ±2^5 Scale. NaN is a Null
// block and a sequence is an Unbounded container.
//
// Examples
//
// Zero, Places0 (1 byte)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 1 | 0 . 0 . 0 . 0 | 0 | 0 . 0 | Data Control Block with value of 0.
//	|---------------|---------------|
//
// USD 0.0001, Places4 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -4.
//	|---------------|---------------|
//
// USD 20.47, Places2 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 Control Block with value of +2047.
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | ±2^5 Scale with scale of -2.
//	|---------------|---------------|
package decimal
