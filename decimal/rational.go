package decimal

import (
	"bytes"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/numcbor/integer"
)

// Ratio is a rational number. The Denominator is positive; the sign is
// carried by the Numerator.
type Ratio struct {
	Numerator   *integer.Block
	Denominator *integer.Block
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Ratio) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(Schema{}, control.NewEncoder(buf)).EncodeRatio(&r)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Ratio) UnmarshalBinary(data []byte) (err error) {
	return unmarshal(data, func(d *Decoder) error {
		return d.DecodeRatio(r)
	})
}

func positive(b *integer.Block) bool {
	if b == nil || b.Negative {
		return false
	}

	for _, v := range b.Value {
		if v != 0 {
			return true
		}
	}

	return false
}

// DecodeRatio advances to the next item and reads it as a rational.
func (d *Decoder) DecodeRatio(r *Ratio) (err error) {
	err = d.next()
	if err != nil {
		return err
	}

	return d.ReadRatio(r)
}

// ReadRatio reads the rational whose tag head the control decoder is
// positioned on.
func (d *Decoder) ReadRatio(r *Ratio) (err error) {
	defer Error.WrapP(&err)

	_, err = d.open(TagRational)
	if err != nil {
		return err
	}

	num := &integer.Block{}

	err = d.value.Decode(num)
	if err != nil {
		return err
	}

	den := &integer.Block{}

	err = d.value.Decode(den)
	if err != nil {
		return err
	}

	if !positive(den) {
		return Error.New("rational denominator must be positive")
	}

	r.Numerator = num
	r.Denominator = den

	return nil
}

// EncodeRatio writes a rational as tag 30 followed by [numerator,
// denominator].
func (e *Encoder) EncodeRatio(r *Ratio) (err error) {
	defer Error.WrapP(&err)

	if r.Numerator == nil || r.Numerator.Value == nil {
		return Error.New("rational requires a numerator")
	}

	if !positive(r.Denominator) {
		return Error.New("rational denominator must be positive")
	}

	return e.pair(TagRational, r.Numerator, r.Denominator)
}
