package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// ErrInvalidOperation is returned when an accessor does not apply to the
// current item.
var ErrInvalidOperation = Error.New("invalid operation")

// Options configure a Decoder. The zero value accepts any well formed input.
type Options struct {
	// Strict rejects heads whose argument is not in the smallest size class.
	Strict bool

	// MaxData bounds the length of byte and text strings. Zero means no
	// limit.
	MaxData uint64

	// MaxDepth bounds the nesting of arrays, maps and tags. Zero means no
	// limit.
	MaxDepth int
}

// Decoder reads heads one at a time.
type Decoder interface {
	// Next advances to the next head, skipping any unread string data. It
	// returns false at the end of input or on error.
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Class() Class
	Argument() uint64

	// Data reads the content of a byte or text string head.
	Data() (data []byte, err error)

	// Skip moves past the rest of the current item including nested
	// content.
	Skip() (err error)

	Depth() int
	Stack() Stack
	Consumed() uint64
}

type decoder struct {
	r    io.Reader
	s    io.Seeker
	opts Options

	consumed uint64

	stack *Stack

	buf [9]byte
	t   Type
	c   Class
	arg uint64

	// pending is the number of unread string bytes of the current item.
	pending uint64

	// opened is true when the current head opened a frame.
	opened bool

	err error
}

func NewDecoder(r io.Reader, opts Options) Decoder {
	d := &decoder{
		r:     r,
		opts:  opts,
		stack: &Stack{},
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("length %d too large", size)
	}

	if d.s != nil {
		start, err := d.s.Seek(0, io.SeekCurrent)
		if err != nil {
			return oops.Trace(err)
		}

		end, err := d.s.Seek(0, io.SeekEnd)
		if err != nil {
			return oops.Trace(err)
		}

		if uint64(end-start) < size {
			return Error.Wrap(io.ErrUnexpectedEOF)
		}

		_, err = d.s.Seek(start+int64(size), io.SeekStart)
		if err != nil {
			return oops.Trace(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Error.Wrap(io.ErrUnexpectedEOF)
		}

		return oops.Trace(err)
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current item was fully read before moving on...
	if d.pending > 0 {
		d.err = d.seek(d.pending)
		if d.err != nil {
			return false
		}
		d.pending = 0
	}

	d.t = Type{}
	d.c = Class{}
	d.arg = 0
	d.opened = false

	_, d.err = io.ReadFull(d.r, d.buf[:1])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			if d.Depth() > 0 {
				d.err = Error.Wrap(io.ErrUnexpectedEOF)
			}

			return false
		}

		d.err = oops.Trace(d.err)

		return false
	}

	d.consumed++

	t, c, err := Parse(d.buf[0])
	if err != nil {
		d.err = err

		return false
	}

	switch c {
	case Direct:
		d.arg = uint64(d.buf[0] & infoMask)
	default:
		_, err = io.ReadFull(d.r, d.buf[1:c.Size])
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			d.err = Error.Wrap(err)

			return false
		}

		d.consumed += uint64(c.Size - 1)

		switch c {
		case Arg1:
			d.arg = uint64(d.buf[1])
		case Arg2:
			d.arg = uint64(binary.BigEndian.Uint16(d.buf[1:]))
		case Arg4:
			d.arg = uint64(binary.BigEndian.Uint32(d.buf[1:]))
		case Arg8:
			d.arg = binary.BigEndian.Uint64(d.buf[1:])
		}
	}

	d.t = t
	d.c = c

	d.err = d.check()
	if d.err != nil {
		return false
	}

	d.err = d.enter()
	if d.err != nil {
		return false
	}

	return true
}

// check validates the head against the options.
func (d *decoder) check() (err error) {
	if d.t == Simple {
		// Floats are fixed width; simple values below 32 must be direct.
		if d.c == Arg1 && d.arg < 32 {
			return Error.New("invalid simple value %d in two byte head", d.arg)
		}

		return nil
	}

	if d.opts.Strict && ClassOf(d.arg) != d.c {
		return Error.New(
			"non-canonical head: argument %d in size class %s",
			d.arg,
			d.c.Abbr,
		)
	}

	if d.t == Bytes || d.t == Text {
		if d.opts.MaxData > 0 && d.arg > d.opts.MaxData {
			return ErrLimit.New("string of %d bytes exceeds %d", d.arg, d.opts.MaxData)
		}

		d.pending = d.arg
	}

	return nil
}

// enter opens a frame for arrays, maps and tags, or completes the item.
func (d *decoder) enter() (err error) {
	opened, err := d.stack.push(d.t, d.arg)
	if err != nil {
		return err
	}

	if !opened {
		return d.stack.Complete()
	}

	d.opened = true

	if d.opts.MaxDepth > 0 && d.Depth() > d.opts.MaxDepth {
		return ErrLimit.New("nesting depth %d exceeds %d", d.Depth(), d.opts.MaxDepth)
	}

	return nil
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Class() Class {
	return d.c
}

func (d *decoder) Argument() uint64 {
	return d.arg
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return append(Stack(nil), *d.stack...)
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

func (d *decoder) Data() (data []byte, err error) {
	if d.t != Bytes && d.t != Text {
		return nil, ErrInvalidOperation
	}
	if d.pending != d.arg {
		return nil, Error.New("data already read")
	}

	if d.arg > math.MaxInt64 {
		d.err = Error.New("length %d too large", d.arg)

		return nil, d.err
	}

	// Grow as data arrives rather than trusting the declared length.
	buf := &bytes.Buffer{}
	n, err := io.CopyN(buf, d.r, int64(d.arg))
	d.consumed += uint64(n)
	d.pending = 0
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.err = Error.Wrap(err)

		return nil, d.err
	}

	return buf.Bytes(), nil
}

func (d *decoder) Skip() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.pending > 0 {
		err = d.seek(d.pending)
		if err != nil {
			return err
		}
		d.pending = 0
	}

	if !d.opened {
		return nil
	}
	d.opened = false

	// Read items until the frame opened by the current head is gone.
	target := d.Depth() - 1

	for d.Depth() > target {
		if !d.Next() {
			if d.err != nil {
				return d.err
			}

			return Error.Wrap(io.ErrUnexpectedEOF)
		}

		if d.pending > 0 {
			err = d.seek(d.pending)
			if err != nil {
				return err
			}
			d.pending = 0
		}
	}

	return nil
}
