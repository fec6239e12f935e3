package number

import "math/big"

// DecimalFraction is an exact decimal number:
//
//	number = unscaled * 10 ^ exponent
//
// For example 1.23 is 123 * 10^-2. Both parts are arbitrary precision. The
// zero value is +0. Different representations of the same quantity (1.5 and
// 1.50) are distinct values that compare equal.
type DecimalFraction fraction

// NewDecimalFraction returns unscaled * 10^exponent. Nil arguments are zero.
func NewDecimalFraction(unscaled, exponent *big.Int) DecimalFraction {
	return DecimalFraction{mant: clone(unscaled), exp: clone(exponent)}
}

// NewDecimalFractionInt64 returns unscaled * 10^exponent.
func NewDecimalFractionInt64(unscaled, exponent int64) DecimalFraction {
	return DecimalFraction{mant: big.NewInt(unscaled), exp: big.NewInt(exponent)}
}

// Unscaled returns a copy of the unscaled integer value.
func (d DecimalFraction) Unscaled() *big.Int { return clone(d.mant) }

// Exponent returns a copy of the base 10 exponent.
func (d DecimalFraction) Exponent() *big.Int { return clone(d.exp) }

// IsZero reports whether the value is +0 or -0.
func (d DecimalFraction) IsZero() bool { return orZero(d.mant).Sign() == 0 }

// Signbit reports whether the value is negative or -0.
func (d DecimalFraction) Signbit() bool { return d.frac().signbit() }

// Kind implements Number.
func (DecimalFraction) Kind() Kind { return KindDecimalFraction }

func (d DecimalFraction) String() string {
	f := d.frac()

	return formatDecimal(f.mant, f.exp, f.neg)
}

func (DecimalFraction) isNumber() {}

func (d DecimalFraction) frac() fraction {
	return fraction{mant: orZero(d.mant), exp: orZero(d.exp), neg: d.neg}
}
