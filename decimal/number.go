package decimal

import (
	"github.com/calebcase/numcbor/integer"
	"github.com/calebcase/numcbor/number"
)

// FromDecimal returns the tag 4 block for d. The sign of a zero is not
// carried.
func FromDecimal(d number.DecimalFraction) *Block {
	return &Block{
		Tag:   TagDecimal,
		Value: integer.FromBig(d.Unscaled()),
		Scale: integer.FromBig(d.Exponent()),
	}
}

// FromBinary returns the tag 5 block for b. The sign of a zero is not
// carried.
func FromBinary(b number.BinaryFraction) *Block {
	return &Block{
		Tag:   TagBigfloat,
		Value: integer.FromBig(b.Significand()),
		Scale: integer.FromBig(b.Exponent()),
	}
}

// FromRational returns the ratio for r as constructed, without reducing it.
func FromRational(r number.Rational) *Ratio {
	return &Ratio{
		Numerator:   integer.FromBig(r.Numerator()),
		Denominator: integer.FromBig(r.Denominator()),
	}
}

// Number returns the numeric value of the block.
func (b *Block) Number() (n number.Number, err error) {
	if b.Value == nil || b.Value.Value == nil || b.Scale == nil || b.Scale.Value == nil {
		return nil, Error.New("fraction requires a scale and a value")
	}

	switch b.Tag {
	case TagDecimal:
		return number.NewDecimalFraction(b.Value.Big(), b.Scale.Big()), nil
	case TagBigfloat:
		return number.NewBinaryFraction(b.Value.Big(), b.Scale.Big()), nil
	}

	return nil, Error.New("invalid fraction tag %d", b.Tag)
}

// Number returns the numeric value of the ratio.
func (r *Ratio) Number() (n number.Rational, err error) {
	if r.Numerator == nil || r.Numerator.Value == nil || !positive(r.Denominator) {
		return number.Rational{}, Error.New("rational requires a numerator and a positive denominator")
	}

	return number.NewRational(r.Numerator.Big(), r.Denominator.Big())
}
