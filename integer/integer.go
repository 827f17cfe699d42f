package integer

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/control"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number held as a magnitude and a sign.
//
// On the wire the magnitude is shifted left by one and the sign moved into
// the low bit, then written big-endian in as few bytes as possible (zero is
// a single zero byte):
//
//	+1 -> 0b0000_0010
//	-1 -> 0b0000_0011
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 returns the block holding v. The magnitude of math.MinInt64 does
// not fit in 63 bits and is rejected by Int64.
func FromInt64(v int64) Block {
	if v < 0 {
		return Block{Value: uint64(-v), Negative: true}
	}

	return Block{Value: uint64(v)}
}

// Int64 returns the block as an int64.
func (b Block) Int64() (v int64, err error) {
	if b.Value > math.MaxInt64 {
		return 0, Error.New("overflow: magnitude=%d", b.Value)
	}

	if b.Negative {
		return -int64(b.Value), nil
	}

	return int64(b.Value), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value > math.MaxInt64 {
		return nil, Error.New("overflow: magnitude=%d", b.Value)
	}

	z := b.Value << 1
	if b.Negative {
		z |= 1
	}

	return minimal(z), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	z, err := load(data)
	if err != nil {
		return err
	}

	b.Negative = z&1 == 1
	b.Value = z >> 1

	return nil
}

// minimal returns v big-endian without leading zero bytes, or a single zero
// byte for zero.
func minimal(v uint64) []byte {
	width := (bits.Len64(v) + 7) / 8
	if width == 0 {
		width = 1
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	return append([]byte(nil), buf[8-width:]...)
}

func load(data []byte) (v uint64, err error) {
	switch {
	case len(data) == 0:
		return 0, Error.New("invalid: size=0")
	case len(data) > 8:
		return 0, Error.New("too large: size=%d", len(data))
	}

	var buf [8]byte
	copy(buf[8-len(data):], data)

	return binary.BigEndian.Uint64(buf[:]), nil
}

// Schema for an integer.
type Schema struct {
	// Bits limits the width of the magnitude. Zero means 63 for signed
	// and 64 for unsigned integers.
	Bits uint

	Signed bool

	Nullable bool
}

func (s Schema) bits() uint {
	switch {
	case s.Bits != 0:
		return s.Bits
	case s.Signed:
		return 63
	}

	return 64
}

func (s Schema) check(b *Block) (err error) {
	if !s.Signed && b.Negative {
		return Error.New("negative value in unsigned schema")
	}

	if bits.Len64(b.Value) > int(s.bits()) {
		return Error.New("value exceeds %d bits: %d", s.bits(), b.Value)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer into b. A null is reported with ok false
// and is only accepted by a nullable schema.
func (d *Decoder) Decode(b *Block) (ok bool, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		err = d.cd.Err()
		if err == nil {
			err = Error.New("unexpected end of input")
		}

		return false, err
	}

	switch t := d.cd.Type(); {
	case t == control.Null:
		if !d.schema.Nullable {
			return false, Error.New("null in non-nullable schema")
		}

		return false, nil
	case !t.IsData():
		return false, Error.New("unexpected block: %s", t)
	}

	data, err := d.cd.Data()
	if err != nil {
		return false, err
	}

	if d.schema.Signed {
		err = b.UnmarshalBinary(data)
	} else {
		b.Negative = false
		b.Value, err = load(data)
	}
	if err != nil {
		return false, err
	}

	return true, d.schema.check(b)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes b, or a null if b is nil.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil {
		if !e.schema.Nullable {
			return Error.New("null in non-nullable schema")
		}

		return e.ce.Null()
	}

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	var data []byte
	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = minimal(b.Value)
	}

	return e.ce.Data(data)
}
