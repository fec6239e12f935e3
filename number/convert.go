package number

import (
	"math/big"
)

// rank orders the finite representations by generality. Two operands are
// combined in the larger of their ranks.
type rank uint8

const (
	rankInteger rank = iota
	rankBinary
	rankDecimal
	rankRational
)

func rankOf(n Number) rank {
	switch n.(type) {
	case Int64, BigInt:
		return rankInteger
	case BinaryFraction:
		return rankBinary
	case DecimalFraction:
		return rankDecimal
	case Rational:
		return rankRational
	}

	panic("number: no rank for " + n.Kind().String())
}

func familyOf(r rank) Family {
	switch r {
	case rankBinary:
		return FamilyBinary
	case rankRational:
		return FamilyRational
	}

	return FamilyDecimal
}

// binaryOf returns an integer or binary fraction as a base 2 fraction.
func binaryOf(n Number) fraction {
	switch v := n.(type) {
	case Int64, BigInt:
		return fraction{mant: intOf(v), exp: bigZero}
	case BinaryFraction:
		return v.frac()
	}

	panic("number: not binary: " + n.Kind().String())
}

// decimalOf returns an integer, binary or decimal fraction as a base 10
// fraction.
func decimalOf(n Number) fraction {
	switch v := n.(type) {
	case Int64, BigInt:
		return fraction{mant: intOf(v), exp: bigZero}
	case BinaryFraction:
		return binaryToDecimal(v.frac())
	case DecimalFraction:
		return v.frac()
	}

	panic("number: not decimal: " + n.Kind().String())
}

// ratioOf returns any finite value as a ratio.
func ratioOf(n Number) ratio {
	switch v := n.(type) {
	case Int64, BigInt:
		return ratio{num: intOf(v), den: bigOne}
	case BinaryFraction:
		return fracToRatio(v.frac(), 2)
	case DecimalFraction:
		return fracToRatio(v.frac(), 10)
	case Rational:
		return v.ratio()
	}

	panic("number: not finite: " + n.Kind().String())
}

func fracToRatio(f fraction, base int64) ratio {
	if f.exp.Sign() >= 0 {
		return ratio{num: scale(f.mant, base, f.exp), den: bigOne, neg: f.neg}
	}

	return ratio{num: f.mant, den: pow(base, new(big.Int).Neg(f.exp)), neg: f.neg}
}

func signbit(n Number) bool {
	switch v := n.(type) {
	case Int64:
		return v < 0
	case BigInt:
		return orZero(v.v).Sign() < 0
	case BinaryFraction:
		return v.frac().signbit()
	case DecimalFraction:
		return v.frac().signbit()
	case Rational:
		return v.ratio().signbit()
	case Special:
		return v.kind == NegativeInfinity
	}

	return false
}

func isZero(n Number) bool {
	switch v := n.(type) {
	case Int64:
		return v == 0
	case BigInt:
		return orZero(v.v).Sign() == 0
	case BinaryFraction:
		return v.IsZero()
	case DecimalFraction:
		return v.IsZero()
	case Rational:
		return v.IsZero()
	}

	return false
}

// ToDecimal returns n as an exact decimal fraction. Binary fractions are
// scaled by powers of five. A rational converts only when its reduced
// denominator has no prime factors other than 2 and 5; otherwise
// ErrInvalidOperation is returned. Specials return ErrOverflow.
func ToDecimal(n Number) (DecimalFraction, error) {
	if err := checkOperand(n); err != nil {
		return DecimalFraction{}, err
	}

	switch v := n.(type) {
	case Special:
		return DecimalFraction{}, ErrOverflow.New("%s has no decimal value", v)
	case Rational:
		q := v.ratio().reduce()

		k, mult, ok := terminates(q.den, 10)
		if !ok {
			return DecimalFraction{}, ErrInvalidOperation.New("%s has no finite decimal expansion", v)
		}

		return DecimalFraction{
			mant: new(big.Int).Mul(q.num, mult),
			exp:  new(big.Int).Neg(new(big.Int).SetUint64(k)),
			neg:  q.neg,
		}, nil
	}

	return DecimalFraction(decimalOf(n)), nil
}

// ToBinary returns n as an exact binary fraction. Decimal fractions and
// rationals that are not dyadic return ErrInvalidOperation. Specials return
// ErrOverflow.
func ToBinary(n Number) (BinaryFraction, error) {
	if err := checkOperand(n); err != nil {
		return BinaryFraction{}, err
	}

	switch v := n.(type) {
	case Special:
		return BinaryFraction{}, ErrOverflow.New("%s has no binary value", v)
	case DecimalFraction:
		f := v.frac()
		if f.exp.Sign() >= 0 {
			return BinaryFraction{mant: scale(f.mant, 10, f.exp), exp: bigZero, neg: f.neg}, nil
		}

		// m * 10^e = (m / 5^-e) * 2^e
		k := new(big.Int).Neg(f.exp)
		q, r := new(big.Int).QuoRem(f.mant, pow(5, k), new(big.Int))
		if r.Sign() != 0 {
			return BinaryFraction{}, ErrInvalidOperation.New("%s has no finite binary expansion", v)
		}

		return BinaryFraction{mant: q, exp: f.exp, neg: f.neg}, nil
	case Rational:
		q := v.ratio().reduce()

		k, _, ok := terminates(q.den, 2)
		if !ok {
			return BinaryFraction{}, ErrInvalidOperation.New("%s has no finite binary expansion", v)
		}

		return BinaryFraction{
			mant: q.num,
			exp:  new(big.Int).Neg(new(big.Int).SetUint64(k)),
			neg:  q.neg,
		}, nil
	}

	return BinaryFraction(binaryOf(n)), nil
}

// ToRational returns n as an exact rational. Specials return ErrOverflow.
func ToRational(n Number) (Rational, error) {
	if err := checkOperand(n); err != nil {
		return Rational{}, err
	}
	if s, ok := n.(Special); ok {
		return Rational{}, ErrOverflow.New("%s has no rational value", s)
	}

	return Rational(ratioOf(n)), nil
}

// IsInteger reports whether n is a finite integral value.
func IsInteger(n Number) bool {
	switch v := n.(type) {
	case Int64, BigInt:
		return true
	case Special, nil:
		return false
	case Rational:
		q := v.ratio()

		return new(big.Int).Rem(q.num, q.den).Sign() == 0
	}

	base := int64(10)
	f := fraction{}
	switch v := n.(type) {
	case DecimalFraction:
		f = v.frac()
	case BinaryFraction:
		f = v.frac()
		base = 2
	}

	if f.exp.Sign() >= 0 || f.mant.Sign() == 0 {
		return true
	}
	if _, hi := log2Bounds(n); hi.Sign() <= 0 {
		return false
	}

	k := new(big.Int).Neg(f.exp)
	if base == 2 {
		return big.NewInt(int64(f.mant.TrailingZeroBits())).Cmp(k) >= 0
	}

	return new(big.Int).Rem(f.mant, pow(10, k)).Sign() == 0
}

// IntegerWithin returns the integer value of n when n is integral and its
// magnitude is below 2^bits.
func IntegerWithin(n Number, bits int64) (*big.Int, bool) {
	if !IsInteger(n) || !fitsBits(n, bits) {
		return nil, false
	}

	i := truncate(n)
	if int64(i.BitLen()) > bits {
		return nil, false
	}

	return i, true
}

// ToBigInt returns the integer value of n. A non-integral value returns
// ErrInvalidOperation and a special returns ErrOverflow.
func ToBigInt(n Number) (*big.Int, error) {
	if err := checkOperand(n); err != nil {
		return nil, err
	}
	if s, ok := n.(Special); ok {
		return nil, ErrOverflow.New("%s has no integer value", s)
	}
	if !IsInteger(n) {
		return nil, ErrInvalidOperation.New("%s is not an integer", n)
	}

	return truncate(n), nil
}

// TruncateToBigInt returns n rounded toward zero. Specials return ErrOverflow.
func TruncateToBigInt(n Number) (*big.Int, error) {
	if err := checkOperand(n); err != nil {
		return nil, err
	}
	if s, ok := n.(Special); ok {
		return nil, ErrOverflow.New("%s has no integer value", s)
	}

	return truncate(n), nil
}

// ToInt64 returns the integer value of n. Values outside the int64 range and
// specials return ErrOverflow; non-integral values return ErrInvalidOperation.
func ToInt64(n Number) (int64, error) {
	if err := checkOperand(n); err != nil {
		return 0, err
	}
	if v, ok := n.(Int64); ok {
		return int64(v), nil
	}
	if s, ok := n.(Special); ok {
		return 0, ErrOverflow.New("%s has no integer value", s)
	}
	if !IsInteger(n) {
		return 0, ErrInvalidOperation.New("%s is not an integer", n)
	}
	if !fitsBits(n, 64) {
		return 0, ErrOverflow.New("%s exceeds the int64 range", n)
	}

	i := truncate(n)
	if !i.IsInt64() {
		return 0, ErrOverflow.New("%s exceeds the int64 range", n)
	}

	return i.Int64(), nil
}

// TruncateToInt64 returns n rounded toward zero. Results outside the int64
// range and specials return ErrOverflow.
func TruncateToInt64(n Number) (int64, error) {
	if err := checkOperand(n); err != nil {
		return 0, err
	}
	if s, ok := n.(Special); ok {
		return 0, ErrOverflow.New("%s has no integer value", s)
	}
	if !fitsBits(n, 64) {
		return 0, ErrOverflow.New("%s exceeds the int64 range", n)
	}

	i := truncate(n)
	if !i.IsInt64() {
		return 0, ErrOverflow.New("%s exceeds the int64 range", n)
	}

	return i.Int64(), nil
}

// FitsInt64 reports whether n is an integer in the int64 range.
func FitsInt64(n Number) bool {
	if !IsInteger(n) || !fitsBits(n, 64) {
		return false
	}

	return truncate(n).IsInt64()
}

// TruncatedFitsInt64 reports whether n rounded toward zero is in the int64
// range.
func TruncatedFitsInt64(n Number) bool {
	if n == nil {
		return false
	}
	if _, ok := n.(Special); ok {
		return false
	}
	if !fitsBits(n, 64) {
		return false
	}

	return truncate(n).IsInt64()
}

// fitsBits reports whether a finite |n| might be below 2^bits. False means it
// certainly is not.
func fitsBits(n Number, bits int64) bool {
	if isZero(n) {
		return true
	}

	lo, _ := log2Bounds(n)

	return lo.Cmp(big.NewInt(bits)) < 0
}

// truncate returns a finite n rounded toward zero.
func truncate(n Number) *big.Int {
	switch v := n.(type) {
	case Int64:
		return big.NewInt(int64(v))
	case BigInt:
		return v.Int()
	case Rational:
		q := v.ratio()

		return new(big.Int).Quo(q.num, q.den)
	}

	if isZero(n) {
		return new(big.Int)
	}
	if _, hi := log2Bounds(n); hi.Sign() <= 0 {
		return new(big.Int)
	}

	switch v := n.(type) {
	case DecimalFraction:
		f := v.frac()
		if f.exp.Sign() >= 0 {
			return new(big.Int).Set(scale(f.mant, 10, f.exp))
		}

		return new(big.Int).Quo(f.mant, pow(10, new(big.Int).Neg(f.exp)))
	case BinaryFraction:
		f := v.frac()
		if f.exp.Sign() >= 0 {
			return new(big.Int).Set(scale(f.mant, 2, f.exp))
		}

		// Shift the magnitude so the result rounds toward zero.
		m := new(big.Int).Abs(f.mant)
		k := new(big.Int).Neg(f.exp)
		if !k.IsUint64() || k.Uint64() >= uint64(m.BitLen()) {
			return new(big.Int)
		}
		m.Rsh(m, uint(k.Uint64()))
		if f.mant.Sign() < 0 {
			m.Neg(m)
		}

		return m
	}

	panic("number: cannot truncate " + n.Kind().String())
}
