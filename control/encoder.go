package control

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes canonical heads. Every argument is written in the smallest
// size class that holds it.
type Encoder interface {
	// Head writes a head of type t with argument arg.
	Head(t Type, arg uint64) (err error)

	// Data writes a byte or text string: a head carrying the length followed
	// by the data.
	Data(t Type, data []byte) (err error)

	// Tag writes a tag head. The tagged item follows.
	Tag(tag uint64) (err error)

	// Float writes an IEEE float of the given width (16, 32 or 64) from its
	// bit pattern.
	Float(width int, bits uint64) (err error)

	// Simple writes a simple value.
	Simple(value byte) (err error)

	// Written returns the number of bytes written so far.
	Written() uint64
}

type encoder struct {
	w       io.Writer
	buf     [9]byte
	written uint64
}

func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

// head fills the buffer with a head of class c. It panics if c cannot hold
// arg.
func (e *encoder) head(t Type, c Class, arg uint64) []byte {
	if !c.Holds(arg) {
		panic(Error.New("argument %d does not fit size class %s", arg, c.Abbr).Error())
	}

	switch c {
	case Direct:
		e.buf[0] = t.Prefix() | byte(arg)
	case Arg1:
		e.buf[0] = t.Prefix() | c.Info
		e.buf[1] = byte(arg)
	case Arg2:
		e.buf[0] = t.Prefix() | c.Info
		binary.BigEndian.PutUint16(e.buf[1:], uint16(arg))
	case Arg4:
		e.buf[0] = t.Prefix() | c.Info
		binary.BigEndian.PutUint32(e.buf[1:], uint32(arg))
	case Arg8:
		e.buf[0] = t.Prefix() | c.Info
		binary.BigEndian.PutUint64(e.buf[1:], arg)
	default:
		panic(Error.New("unknown size class %q", c.Abbr).Error())
	}

	return e.buf[:c.Size]
}

func (e *encoder) write(data []byte) (err error) {
	n, err := e.w.Write(data)
	e.written += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

func (e *encoder) Head(t Type, arg uint64) (err error) {
	return e.write(e.head(t, ClassOf(arg), arg))
}

func (e *encoder) Data(t Type, data []byte) (err error) {
	if t != Bytes && t != Text {
		return Error.New("invalid: %s cannot carry data", t.Abbr)
	}

	err = e.Head(t, uint64(len(data)))
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	return e.write(data)
}

func (e *encoder) Tag(tag uint64) (err error) {
	return e.Head(Tag, tag)
}

func (e *encoder) Float(width int, bits uint64) (err error) {
	c, ok := floatClasses[width]
	if !ok {
		return Error.New("invalid float width %d", width)
	}

	return e.write(e.head(Simple, c, bits))
}

func (e *encoder) Simple(value byte) (err error) {
	if uint64(value) > Direct.Max && value < 32 {
		return Error.New("invalid: reserved simple value %d", value)
	}

	return e.Head(Simple, uint64(value))
}

func (e *encoder) Written() uint64 {
	return e.written
}
