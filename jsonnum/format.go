package jsonnum

import (
	"math/big"

	"github.com/calebcase/numcbor/number"
)

// floatPrec is the precision used for rationals without a finite decimal
// expansion.
const floatPrec = 53

// Format renders n as JSON number text. Infinities and NaNs render as null.
// Rationals render exactly when their decimal expansion terminates and
// otherwise as the nearest 53 bit binary value.
func Format(n number.Number) (string, error) {
	switch v := n.(type) {
	case nil:
		return "", number.ErrInvalidArgument.New("nil number")
	case number.Special:
		return "null", nil
	case number.Int64, number.BigInt, number.DecimalFraction:
		return v.String(), nil
	case number.Rational:
		d, err := number.ToDecimal(v)
		if err == nil {
			return d.String(), nil
		}
		if !number.ErrInvalidOperation.Has(err) {
			return "", err
		}

		r := new(big.Rat).SetFrac(v.Numerator(), v.Denominator())

		return new(big.Float).SetPrec(floatPrec).SetRat(r).Text('g', -1), nil
	}

	d, err := number.ToDecimal(n)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// Value adapts a number to encoding/json. A nil Number is null.
type Value struct {
	number.Number
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Number == nil {
		return []byte("null"), nil
	}

	s, err := Format(v.Number)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		v.Number = nil

		return nil
	}

	d, err := Parse(string(data))
	if err != nil {
		return err
	}

	v.Number = d

	return nil
}
