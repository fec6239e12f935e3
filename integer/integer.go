package integer

import (
	"bytes"
	"io"
	"math/big"

	"github.com/calebcase/numcbor/control"
)

// Bignum tags.
const (
	TagPositive uint64 = 2
	TagNegative uint64 = 3
)

var one = big.NewInt(1)

// Block is a signed integer number. Value is the big-endian magnitude; a nil
// Value is null.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i. A nil i is null.
func FromBig(i *big.Int) *Block {
	if i == nil {
		return &Block{}
	}

	return &Block{
		Value:    magnitude(new(big.Int).Abs(i)),
		Negative: i.Sign() < 0,
	}
}

// Big returns the value of the block or nil if it is null.
func (b *Block) Big() *big.Int {
	if b.Value == nil {
		return nil
	}

	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// magnitude returns the minimal big-endian bytes of i.
func magnitude(i *big.Int) []byte {
	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// MarshalBinary implements encoding.BinaryMarshaler. The output is the
// canonical item.
func (b Block) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(Schema{}, control.NewEncoder(buf)).Encode(&b)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only a single
// canonical item is accepted.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	cd := control.NewDecoder(bytes.NewReader(data), control.Options{Strict: true})

	err = NewDecoder(Schema{Strict: true}, cd).Decode(b)
	if err != nil {
		return err
	}

	if cd.Next() {
		return Error.New("trailing data after integer")
	}

	return cd.Err()
}

// Schema for an integer.
type Schema struct {
	// Nullable allows null in place of an integer.
	Nullable bool

	// Strict rejects bignums with leading zero bytes and bignums small
	// enough for a plain head.
	Strict bool

	// MaxBytes bounds the magnitude of a bignum. Zero means no limit.
	MaxBytes int
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

// Decode advances to the next item and reads it. It returns io.EOF at a clean
// end of input.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	return d.Read(b)
}

// Read reads the integer whose head the control decoder is positioned on.
func (d *Decoder) Read(b *Block) (err error) {
	defer Error.WrapP(&err)

	arg := d.cd.Argument()

	switch d.cd.Type() {
	case control.Unsigned:
		b.Value = magnitude(new(big.Int).SetUint64(arg))
		b.Negative = false

		return nil
	case control.Negative:
		i := new(big.Int).SetUint64(arg)
		i.Add(i, one)

		b.Value = magnitude(i)
		b.Negative = true

		return nil
	case control.Tag:
		if arg == TagPositive || arg == TagNegative {
			return d.bignum(b, arg == TagNegative)
		}

		return Error.New("unexpected tag %d", arg)
	case control.Simple:
		if d.schema.Nullable && d.cd.Class() == control.Direct && arg == uint64(control.SimpleNull) {
			b.Value = nil
			b.Negative = false

			return nil
		}
	}

	return Error.New("unexpected %s item", d.cd.Type().Abbr)
}

// bignum reads the byte string following a bignum tag.
func (d *Decoder) bignum(b *Block, negative bool) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return Error.Wrap(io.ErrUnexpectedEOF)
	}

	if d.cd.Type() != control.Bytes {
		return Error.New("bignum content is %s, not a byte string", d.cd.Type().Abbr)
	}

	size := d.cd.Argument()
	if d.schema.MaxBytes > 0 && size > uint64(d.schema.MaxBytes) {
		return control.ErrLimit.New("bignum of %d bytes exceeds %d", size, d.schema.MaxBytes)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Strict {
		if len(data) > 0 && data[0] == 0 {
			return Error.New("non-canonical bignum: leading zero byte")
		}

		if len(data) <= 8 {
			return Error.New("non-canonical bignum: %d bytes fits a head", len(data))
		}
	}

	i := new(big.Int).SetBytes(data)
	if negative {
		i.Add(i, one)
	}

	b.Value = magnitude(i)
	b.Negative = negative

	return nil
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

// Encode writes a block to the writer. Values within 64 bits use a plain
// head, larger ones a bignum tag.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null integer")
		}

		return e.ce.Simple(control.SimpleNull)
	}

	t, tag := control.Unsigned, TagPositive

	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		if i.Sign() == 0 {
			return Error.New("negative zero")
		}

		t, tag = control.Negative, TagNegative
		i.Sub(i, one)
	}

	switch bits := i.BitLen(); {
	case bits <= 64:
		return e.ce.Head(t, i.Uint64())
	default:
		err = e.ce.Tag(tag)
		if err != nil {
			return err
		}

		return e.ce.Data(control.Bytes, i.Bytes())
	}
}

// EncodeBig writes i. A nil i is null.
func (e *Encoder) EncodeBig(i *big.Int) (err error) {
	return e.Encode(FromBig(i))
}
