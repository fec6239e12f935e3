package numcbor

import (
	"bytes"
	"io"
	"math/big"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/numcbor/decimal"
	"github.com/calebcase/numcbor/integer"
	"github.com/calebcase/numcbor/number"
)

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

func (UndefinedType) String() string { return "undefined" }

// Undefined is the decoded form of the undefined simple value.
var Undefined = UndefinedType{}

// Decoder reads items from a stream.
type Decoder struct {
	cd control.Decoder
	id *integer.Decoder
	fd *decimal.Decoder

	maxExponent *big.Int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts DecOptions) *Decoder {
	cd := control.NewDecoder(r, opts.control())

	d := &Decoder{
		cd: cd,
		id: integer.NewDecoder(integer.Schema{
			Strict:   opts.Strict,
			MaxBytes: opts.MaxBignumBytes,
		}, cd),
		fd: decimal.NewDecoder(decimal.Schema{
			Strict:        opts.Strict,
			MaxScaleBytes: opts.MaxExponentBytes,
			MaxValueBytes: opts.MaxBignumBytes,
		}, cd),
	}

	if opts.MaxExponent > 0 {
		d.maxExponent = big.NewInt(int64(opts.MaxExponent))
	}

	return d
}

// Decode reads the next item. It returns io.EOF at a clean end of input.
//
// An ErrUnsupported item has been skipped and decoding may continue. After
// any other error the decoder is not usable.
func (d *Decoder) Decode() (item any, err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, classify(d.cd.Err())
		}

		return nil, io.EOF
	}

	item, err = d.read()
	if err != nil {
		return nil, classify(err)
	}

	return item, nil
}

// DecodeNumber reads the next item and requires it to be a number.
func (d *Decoder) DecodeNumber() (n number.Number, err error) {
	item, err := d.Decode()
	if err != nil {
		return nil, err
	}

	n, ok := item.(number.Number)
	if !ok {
		return nil, number.ErrInvalidOperation.New("%s is not a number", describe(item))
	}

	return n, nil
}

// Consumed returns the number of input bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.cd.Consumed()
}

func (d *Decoder) read() (item any, err error) {
	t := d.cd.Type()
	arg := d.cd.Argument()

	switch t {
	case control.Unsigned, control.Negative:
		return d.integer()
	case control.Tag:
		switch arg {
		case integer.TagPositive, integer.TagNegative:
			return d.integer()
		case decimal.TagDecimal, decimal.TagBigfloat:
			b := &decimal.Block{}

			err = d.fd.Read(b)
			if err != nil {
				return nil, err
			}

			if d.maxExponent != nil {
				if e := b.Scale.Big(); e.CmpAbs(d.maxExponent) > 0 {
					return nil, ErrLimit.New("exponent %s exceeds %s", e, d.maxExponent)
				}
			}

			return b.Number()
		case decimal.TagRational:
			r := &decimal.Ratio{}

			err = d.fd.ReadRatio(r)
			if err != nil {
				return nil, err
			}

			return r.Number()
		}

		return d.unsupported("tag %d", arg)
	case control.Simple:
		return d.simple()
	}

	return d.unsupported("major type %d", t.Major)
}

func (d *Decoder) integer() (item any, err error) {
	b := &integer.Block{}

	err = d.id.Read(b)
	if err != nil {
		return nil, err
	}

	return number.NewInteger(b.Big()), nil
}

func (d *Decoder) simple() (item any, err error) {
	arg := d.cd.Argument()

	switch d.cd.Class() {
	case control.Direct:
		switch byte(arg) {
		case control.SimpleFalse:
			return false, nil
		case control.SimpleTrue:
			return true, nil
		case control.SimpleNull:
			return nil, nil
		case control.SimpleUndefined:
			return Undefined, nil
		}
	case control.Arg2:
		return number.FromFloat16Bits(uint16(arg)), nil
	case control.Arg4:
		return number.FromFloat32Bits(uint32(arg)), nil
	case control.Arg8:
		return number.FromFloat64Bits(arg), nil
	}

	return d.unsupported("simple value %d", arg)
}

// unsupported skips the rest of the current item.
func (d *Decoder) unsupported(format string, args ...any) (item any, err error) {
	err = d.cd.Skip()
	if err != nil {
		return nil, err
	}

	return nil, ErrUnsupported.New(format, args...)
}

// Unmarshal decodes exactly one item from data with DefaultDecOptions.
func Unmarshal(data []byte) (item any, err error) {
	d := NewDecoder(bytes.NewReader(data), DefaultDecOptions())

	item, err = d.Decode()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMalformed.Wrap(io.ErrUnexpectedEOF)
		}

		return nil, err
	}

	if d.Consumed() != uint64(len(data)) {
		return nil, ErrMalformed.New("%d trailing bytes", uint64(len(data))-d.Consumed())
	}

	return item, nil
}
