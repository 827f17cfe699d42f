// Package control provides the BSV blocking structure used to put decimals on
// the wire.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is
// extracted by masking off the fixed bits. This is only the first byte
// (several control block types are multi-byte sequences).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                      |
//  |---------------|---------------||---------------------|--------------------------------------|
//  | 1 |                           || Data                | 7 bits in the block                  |
//  | 0 . 1 |                       || Data Size           | 1 to 64 bytes follow                 |
//  | 0 . 0 . 1 |                   || Data + 1            | 5 bits in the block + 1 byte         |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 4 bits in the block + 2 bytes        |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 1 to 8 size bytes, then the data     |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 1 || Container Symmetric | not supported                        |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | blocks follow until Container End    |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 1 || Container Bounded   | not supported                        |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost Unbounded       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 |   || Skip Size           | not supported                        |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | Empty value                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | Null value (for nullable fields)     |
//  |---------------|---------------||---------------------|--------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// The encoder always picks the smallest block that can hold the data: Data
// for a single byte below 2^7, Data + 1 and Data + 2 when the leading byte
// fits in the spare bits, Data Size up to 64 bytes and Data Size Size
// beyond that.
//
// Null blocks indicate that the field is set to the null value. The decimal
// codec uses them for NaN.
//
// Decoding is a pull loop:
//
//	d := control.NewDecoder(r)
//	for d.Next() {
//		switch d.Type() {
//		...
//		}
//	}
//	if err := d.Err(); err != nil {
//		...
//	}
//
// An Unbounded container that is not entered with Enter is skipped whole by
// the following Next.
package control
