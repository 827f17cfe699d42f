package decimal

import (
	"bytes"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixed/control"
	"github.com/calebcase/fixed/integer"
)

// Scale size classes held in the low two bits of the payload.
const (
	noScale  = 0b00
	scale5   = 0b01
	scale12  = 0b10
	scale21  = 0b11
	sizeMask = 0b11
)

// Schema for a decimal.
type Schema struct {
	// Nullable permits NaN, which is written as a Null block.
	Nullable bool
}

// appendPayload appends the data block payload of raw at scale s.
func appendPayload(dst []byte, raw int64, s int) (data []byte, err error) {
	value, err := integer.FromInt64(raw).MarshalBinary()
	if err != nil {
		return nil, err
	}

	if s == 0 {
		return append(dst, shiftIn(value)...), nil
	}

	// Fractional digits are a negative exponent: magnitude then sign bit.
	exp := byte(s)<<1 | 1

	dst = append(dst, value...)

	return append(dst, exp<<2|scale5), nil
}

// shiftIn shifts value left past the two size bits, leaving them noScale.
func shiftIn(value []byte) []byte {
	out := make([]byte, len(value)+1)
	for i, b := range value {
		out[i] |= b >> 6
		out[i+1] = b << 2
	}

	if len(out) > 1 && out[0] == 0 {
		out = out[1:]
	}

	return out
}

// shiftOut undoes shiftIn.
func shiftOut(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b >> 2
		if i > 0 {
			out[i] |= data[i-1] << 6
		}
	}

	for len(out) > 1 && out[0] == 0 {
		out = out[1:]
	}

	return out
}

// decodePayload reads a data block payload and converts it to scale s.
func decodePayload(data []byte, s int) (raw int64, err error) {
	if len(data) == 0 {
		return 0, Error.New("empty payload")
	}

	var (
		value []byte
		exp   int
	)

	switch last := data[len(data)-1]; last & sizeMask {
	case noScale:
		value = shiftOut(data)
	case scale5:
		if len(data) < 2 {
			return 0, Error.New("missing value: payload=%08b", data)
		}

		value = data[:len(data)-1]

		z := int(last >> 2)
		exp = z >> 1
		if z&1 == 1 {
			exp = -exp
		}
	case scale12, scale21:
		return 0, Error.New("unsupported scale size: %02b", last&sizeMask)
	}

	blk := integer.Block{}

	err = blk.UnmarshalBinary(value)
	if err != nil {
		return 0, err
	}

	v, err := blk.Int64()
	if err != nil {
		return 0, err
	}

	switch {
	case exp > MaxPlaces || exp < -MaxPlaces:
		return 0, Error.New("scale out of range: %d", exp)
	case exp > 0:
		v = scaleUp(v, exp)
		exp = 0
	}

	raw = convert(v, -exp, s, Unnecessary)
	if raw == nan {
		return 0, Error.New("value %d*10^%d does not fit scale %d", v, exp, s)
	}

	return raw, nil
}

// Encoder writes decimals of scale S as control blocks.
type Encoder[S Scale] struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder[S Scale](schema Schema, ce control.Encoder) *Encoder[S] {
	return &Encoder[S]{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes d. NaN is written as a Null block.
func (e *Encoder[S]) Encode(d Decimal[S]) (err error) {
	defer Error.WrapP(&err)

	if d.raw == nan {
		if !e.schema.Nullable {
			return Error.New("NaN in non-nullable schema")
		}

		return e.ce.Null()
	}

	data, err := appendPayload(nil, d.raw, places[S]())
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads decimals of scale S from control blocks. Values written
// with another scale are converted if that loses no digits.
type Decoder[S Scale] struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder[S Scale](schema Schema, cd control.Decoder) *Decoder[S] {
	return &Decoder[S]{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next decimal into d.
func (dec *Decoder[S]) Decode(d *Decimal[S]) (err error) {
	defer Error.WrapP(&err)

	if !dec.cd.Next() {
		err = dec.cd.Err()
		if err == nil {
			err = Error.New("unexpected end of input")
		}

		return err
	}

	return dec.load(d)
}

// load decodes the block the control decoder is positioned on.
func (dec *Decoder[S]) load(d *Decimal[S]) (err error) {
	switch t := dec.cd.Type(); {
	case t == control.Null:
		if !dec.schema.Nullable {
			return Error.New("null in non-nullable schema")
		}

		d.raw = nan

		return nil
	case !t.IsData():
		return Error.New("unexpected block: %s", t)
	}

	data, err := dec.cd.Data()
	if err != nil {
		return err
	}

	raw, err := decodePayload(data, places[S]())
	if err != nil {
		return err
	}

	d.raw = raw

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is a single
// control block.
func (d Decimal[S]) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder[S](Schema{Nullable: true}, control.NewEncoder(buf)).Encode(d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one control block.
func (d *Decimal[S]) UnmarshalBinary(data []byte) (err error) {
	cd := control.NewDecoder(bytes.NewReader(data))

	err = NewDecoder[S](Schema{Nullable: true}, cd).Decode(d)
	if err != nil {
		return err
	}

	if cd.Next() {
		return Error.New("trailing data: offset=%d", cd.Consumed()-1)
	}

	return cd.Err()
}

// EncodeAll writes ds to w as one unbounded container. NaN elements are
// written as Null blocks.
func EncodeAll[S Scale](w io.Writer, ds []Decimal[S]) (err error) {
	defer Error.WrapP(&err)

	ce := control.NewEncoder(w)

	return ce.Unbound(func(ce control.Encoder) error {
		enc := NewEncoder[S](Schema{Nullable: true}, ce)

		for _, d := range ds {
			err := enc.Encode(d)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DecodeAll reads one unbounded container of decimals from r.
func DecodeAll[S Scale](r io.Reader) (ds []Decimal[S], err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(r)

	if !cd.Next() {
		err = cd.Err()
		if err == nil {
			err = Error.New("unexpected end of input")
		}

		return nil, err
	}

	if cd.Type() != control.ContainerUnbounded {
		return nil, Error.New("unexpected block: %s", cd.Type())
	}

	err = cd.Enter()
	if err != nil {
		return nil, oops.Trace(err)
	}

	dec := NewDecoder[S](Schema{Nullable: true}, cd)
	ds = []Decimal[S]{}

	for cd.Next() {
		if cd.Type() == control.ContainerEnd {
			return ds, nil
		}

		var d Decimal[S]

		err = dec.load(&d)
		if err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}

	err = cd.Err()
	if err == nil {
		err = Error.New("unterminated sequence")
	}

	return nil, err
}
