package number

import "math/big"

// BinaryFraction is an exact binary number:
//
//	number = significand * 2 ^ exponent
//
// Every finite IEEE float converts to exactly one BinaryFraction with an odd
// significand (or a zero significand with its sign).
type BinaryFraction fraction

// NewBinaryFraction returns significand * 2^exponent. Nil arguments are zero.
func NewBinaryFraction(significand, exponent *big.Int) BinaryFraction {
	return BinaryFraction{mant: clone(significand), exp: clone(exponent)}
}

// NewBinaryFractionInt64 returns significand * 2^exponent.
func NewBinaryFractionInt64(significand, exponent int64) BinaryFraction {
	return BinaryFraction{mant: big.NewInt(significand), exp: big.NewInt(exponent)}
}

// Significand returns a copy of the significand.
func (b BinaryFraction) Significand() *big.Int { return clone(b.mant) }

// Exponent returns a copy of the base 2 exponent.
func (b BinaryFraction) Exponent() *big.Int { return clone(b.exp) }

// IsZero reports whether the value is +0 or -0.
func (b BinaryFraction) IsZero() bool { return orZero(b.mant).Sign() == 0 }

// Signbit reports whether the value is negative or -0.
func (b BinaryFraction) Signbit() bool { return b.frac().signbit() }

// Kind implements Number.
func (BinaryFraction) Kind() Kind { return KindBinaryFraction }

// String renders the exact decimal expansion of the value.
func (b BinaryFraction) String() string {
	f := binaryToDecimal(b.frac())

	return formatDecimal(f.mant, f.exp, f.neg)
}

func (BinaryFraction) isNumber() {}

func (b BinaryFraction) frac() fraction {
	return fraction{mant: orZero(b.mant), exp: orZero(b.exp), neg: b.neg}
}

// binaryToDecimal re-expresses m * 2^e as (m * 5^-e) * 10^e when e < 0.
func binaryToDecimal(f fraction) fraction {
	if f.exp.Sign() >= 0 {
		return fraction{mant: scale(f.mant, 2, f.exp), exp: bigZero, neg: f.neg}
	}

	k := new(big.Int).Neg(f.exp)

	return fraction{mant: scale(f.mant, 5, k), exp: f.exp, neg: f.neg}
}
