package control

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/calebcase/oops"
)

// Encoder writes control blocks.
type Encoder interface {
	// Data writes data in the smallest block that holds it.
	Data(data []byte) (err error)

	// Unbound writes the blocks produced by fn inside an Unbounded
	// container.
	Unbound(fn func(Encoder) error) (err error)

	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(p ...byte) (err error) {
	_, err = e.w.Write(p)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write(Data.Prefix | data[0])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write(Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write(Data2.Prefix|data[0], data[1], data[2])
	case size <= 64:
		err = e.write(DataSize.Prefix | byte(size-1))
		if err != nil {
			return err
		}

		return e.write(data...)
	}

	// Minimal big-endian size-1, at least one byte.
	n := uint64(size - 1)
	width := (bits.Len64(n) + 7) / 8
	if width == 0 {
		width = 1
	}

	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], n)

	err = e.write(DataSizeSize.Prefix | byte(width-1))
	if err != nil {
		return err
	}

	err = e.write(sb[8-width:]...)
	if err != nil {
		return err
	}

	return e.write(data...)
}

func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write(ContainerUnbounded.Prefix)
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write(ContainerEnd.Prefix)
}

func (e *encoder) Empty() (err error) {
	return e.write(Empty.Prefix)
}

func (e *encoder) Null() (err error) {
	return e.write(Null.Prefix)
}
