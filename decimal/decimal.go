package decimal

import (
	"bytes"
	"io"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/numcbor/integer"
)

// Fraction tags.
const (
	TagDecimal  uint64 = 4
	TagBigfloat uint64 = 5
	TagRational uint64 = 30
)

// Block is a fraction: Value * base^Scale where base is 10 for TagDecimal and
// 2 for TagBigfloat.
type Block struct {
	Tag   uint64
	Value *integer.Block
	Scale *integer.Block
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(Schema{}, control.NewEncoder(buf)).Encode(&b)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	return unmarshal(data, func(d *Decoder) error {
		return d.Decode(b)
	})
}

func unmarshal(data []byte, decode func(d *Decoder) error) (err error) {
	cd := control.NewDecoder(bytes.NewReader(data), control.Options{Strict: true})

	err = decode(NewDecoder(Schema{Strict: true}, cd))
	if err != nil {
		return err
	}

	if cd.Next() {
		return Error.New("trailing data after fraction")
	}

	return cd.Err()
}

// Schema for a fraction.
type Schema struct {
	// Strict rejects non-canonical heads and bignums.
	Strict bool

	// MaxScaleBytes bounds the magnitude of a bignum scale. Zero means no
	// limit.
	MaxScaleBytes int

	// MaxValueBytes bounds the magnitude of a bignum value, numerator or
	// denominator. Zero means no limit.
	MaxValueBytes int
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder

	scale *integer.Decoder
	value *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
		scale: integer.NewDecoder(integer.Schema{
			Strict:   schema.Strict,
			MaxBytes: schema.MaxScaleBytes,
		}, cd),
		value: integer.NewDecoder(integer.Schema{
			Strict:   schema.Strict,
			MaxBytes: schema.MaxValueBytes,
		}, cd),
	}
}

// next advances the control decoder, returning io.EOF at a clean end.
func (d *Decoder) next() (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	return nil
}

// Decode advances to the next item and reads it. It returns io.EOF at a clean
// end of input.
func (d *Decoder) Decode(b *Block) (err error) {
	err = d.next()
	if err != nil {
		return err
	}

	return d.Read(b)
}

// Read reads the fraction whose tag head the control decoder is positioned
// on.
func (d *Decoder) Read(b *Block) (err error) {
	defer Error.WrapP(&err)

	tag, err := d.open(TagDecimal, TagBigfloat)
	if err != nil {
		return err
	}

	scale := &integer.Block{}

	err = d.scale.Decode(scale)
	if err != nil {
		return err
	}

	value := &integer.Block{}

	err = d.value.Decode(value)
	if err != nil {
		return err
	}

	b.Tag = tag
	b.Scale = scale
	b.Value = value

	return nil
}

// open checks the current tag against the accepted tags and reads the head of
// the two element array that follows.
func (d *Decoder) open(accept ...uint64) (tag uint64, err error) {
	if d.cd.Type() != control.Tag {
		return 0, Error.New("unexpected %s item", d.cd.Type().Abbr)
	}

	tag = d.cd.Argument()

	found := false
	for _, a := range accept {
		if a == tag {
			found = true

			break
		}
	}
	if !found {
		return 0, Error.New("unexpected tag %d", tag)
	}

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return 0, d.cd.Err()
		}

		return 0, io.ErrUnexpectedEOF
	}

	if d.cd.Type() != control.Array || d.cd.Argument() != 2 {
		return 0, Error.New(
			"tag %d content must be an array of two integers, found %s(%d)",
			tag,
			d.cd.Type().Abbr,
			d.cd.Argument(),
		)
	}

	return tag, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
		ie:     integer.NewEncoder(integer.Schema{}, ce),
	}
}

// Encode writes a block to the writer as a tag followed by [scale, value].
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Tag != TagDecimal && b.Tag != TagBigfloat {
		return Error.New("invalid fraction tag %d", b.Tag)
	}

	if b.Scale == nil || b.Value == nil {
		return Error.New("fraction requires a scale and a value")
	}

	return e.pair(b.Tag, b.Scale, b.Value)
}

func (e *Encoder) pair(tag uint64, first, second *integer.Block) (err error) {
	err = e.ce.Tag(tag)
	if err != nil {
		return err
	}

	err = e.ce.Head(control.Array, 2)
	if err != nil {
		return err
	}

	err = e.ie.Encode(first)
	if err != nil {
		return err
	}

	return e.ie.Encode(second)
}
