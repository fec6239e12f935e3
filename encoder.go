package numcbor

import (
	"bytes"
	"io"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/numcbor/decimal"
	"github.com/calebcase/numcbor/integer"
	"github.com/calebcase/numcbor/number"
)

const (
	// negativeZero is the binary16 pattern of -0.0.
	negativeZero = 0x8000

	// maxIntegralBits bounds the integral fractions written as integers. It
	// matches the default MaxBignumBytes.
	maxIntegralBits = 8 << 16
)

// Encoder writes canonical items to a stream.
type Encoder struct {
	ce control.Encoder
	ie *integer.Encoder
	fe *decimal.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	ce := control.NewEncoder(w)

	return &Encoder{
		ce: ce,
		ie: integer.NewEncoder(integer.Schema{}, ce),
		fe: decimal.NewEncoder(decimal.Schema{}, ce),
	}
}

// Encode writes item. Booleans, nil and Undefined are simple values; numbers
// and native Go numbers are accepted as by number.Of. Anything else fails
// with number.ErrInvalidOperation.
func (e *Encoder) Encode(item any) (err error) {
	switch v := item.(type) {
	case nil:
		return e.ce.Simple(control.SimpleNull)
	case UndefinedType:
		return e.ce.Simple(control.SimpleUndefined)
	case bool:
		if v {
			return e.ce.Simple(control.SimpleTrue)
		}

		return e.ce.Simple(control.SimpleFalse)
	}

	n, err := number.Of(item)
	if err != nil {
		return err
	}

	return e.EncodeNumber(n)
}

// EncodeNumber writes n in its canonical form. Equal integral values share
// one encoding whatever their representation, so 1, 1.0, 1E0 and 2/2 are all
// written as 01. Fractions with magnitudes of 2^524288 or more keep their
// tagged form. A NaN whose payload does not fit binary64 fails with
// number.ErrOverflow.
func (e *Encoder) EncodeNumber(n number.Number) (err error) {
	switch v := n.(type) {
	case nil:
		return number.ErrInvalidArgument.New("nil number")
	case number.Int64:
		if v >= 0 {
			return e.ce.Head(control.Unsigned, uint64(v))
		}

		return e.ce.Head(control.Negative, uint64(-1-v))
	case number.BigInt:
		return e.ie.EncodeBig(v.Int())
	case number.Special:
		width, bits, ok := number.ShortestFloat(v)
		if !ok {
			return number.ErrOverflow.New("%s payload does not fit a float", v)
		}

		return e.ce.Float(width, bits)
	}

	if number.IsZero(n) && number.Signbit(n) {
		return e.ce.Float(16, negativeZero)
	}

	if i, ok := number.IntegerWithin(n, maxIntegralBits); ok {
		return e.ie.EncodeBig(i)
	}

	switch v := n.(type) {
	case number.DecimalFraction:
		return e.fe.Encode(decimal.FromDecimal(v))
	case number.BinaryFraction:
		width, bits, ok := number.ShortestFloat(v)
		if ok {
			return e.ce.Float(width, bits)
		}

		return e.fe.Encode(decimal.FromBinary(v))
	case number.Rational:
		return e.fe.EncodeRatio(decimal.FromRational(v))
	}

	return number.ErrInvalidOperation.New("unknown number kind %s", n.Kind())
}

// Marshal returns the canonical encoding of item.
func Marshal(item any) (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf).Encode(item)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
