package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// MaxDataSize is the largest Data Size Size payload the decoder accepts.
const MaxDataSize = 1 << 32

// Decoder reads control blocks.
type Decoder interface {
	// Next moves to the next block. It returns false at the end of the
	// input or on error; check Err afterwards.
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	// Data returns the bytes carried by a data block.
	Data() (data []byte, err error)

	// Enter descends into the current Unbounded container.
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	stack Stack

	value    [1]byte
	t        Type
	finished bool

	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	return d
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// skip moves past the unread remainder of the current block.
func (d *decoder) skip() (err error) {
	switch {
	case d.t.IsData():
		_, err = d.Data()
		return err
	case d.t == ContainerUnbounded:
		// Read until the matching ContainerEnd, which leaves the depth
		// one less than our current.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.Depth() == target {
				return nil
			}
		}

		return d.Err()
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if top := d.stack.Top(); top != nil {
				d.err = Error.New(
					"unterminated container: offset=%d depth=%d",
					top.Offset,
					d.Depth(),
				)
			}

			return false
		}

		d.err = oops.Trace(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
		d.stack.Count()
	case DataSize, Data1, Data2, DataSizeSize:
		d.stack.Count()
	case ContainerUnbounded:
		d.stack.Count()
		d.stack.Push(&Frame{
			Type:   t,
			Offset: d.consumed - 1,
		})
	case ContainerEnd:
		d.err = d.stack.Pop(t)
		if d.err != nil {
			return false
		}

		d.finished = true
	default:
		d.err = Error.Wrap(oops.Trace(ErrUnsupported))

		return false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(d.stack)
}

func (d *decoder) Stack() Stack {
	return d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1:
		d.data = make([]byte, 2)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
	case Data2:
		d.data = make([]byte, 3)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
	case DataSize:
		d.data = make([]byte, int(d.value[0]&d.t.Mask)+1)

		err = d.read(d.data)
	case DataSizeSize:
		var sb [8]byte
		width := int(d.value[0]&d.t.Mask) + 1

		err = d.read(sb[8-width:])
		if err != nil {
			return nil, err
		}

		size := binary.BigEndian.Uint64(sb[:])
		if size >= MaxDataSize {
			return nil, Error.New("data too large: size=%d", size+1)
		}

		// The size is untrusted, so grow with the input instead of
		// allocating it up front.
		buf := &bytes.Buffer{}

		var n int64
		n, err = io.CopyN(buf, d.r, int64(size)+1)
		d.consumed += uint64(n)
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, oops.Trace(err)
		}

		d.data = buf.Bytes()
	}
	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.data, nil
}

// Enter informs decoder that the ContainerUnbounded field should be entered.
// If the current field type is not ContainerUnbounded, then it returns
// ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	if d.t != ContainerUnbounded {
		d.err = oops.Trace(ErrInvalidOperation)
		return d.err
	}

	d.finished = true

	return nil
}
