package number

import (
	"math"
	"math/big"
)

// Add returns a + b exactly. A nil operand returns ErrInvalidArgument.
func Add(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if r, ok := addSpecial(a, b); ok {
		return r, nil
	}

	return addFinite(a, b), nil
}

// Subtract returns a - b exactly. A nil operand returns ErrInvalidArgument.
func Subtract(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	nb := negate(b)
	if r, ok := addSpecial(a, nb); ok {
		return r, nil
	}

	return addFinite(a, nb), nil
}

// Multiply returns a * b exactly. A nil operand returns ErrInvalidArgument.
func Multiply(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if r, ok := mulSpecial(a, b); ok {
		return r, nil
	}

	switch maxRank(rankOf(a), rankOf(b)) {
	case rankInteger:
		x, xok := a.(Int64)
		y, yok := b.(Int64)
		if xok && yok {
			if p, ok := mul64(int64(x), int64(y)); ok {
				return Int64(p), nil
			}
		}

		return normInt(new(big.Int).Mul(intOf(a), intOf(b))), nil
	case rankBinary:
		return BinaryFraction(mulFrac(binaryOf(a), binaryOf(b))), nil
	case rankDecimal:
		return DecimalFraction(mulFrac(decimalOf(a), decimalOf(b))), nil
	}

	return mulRatio(ratioOf(a), ratioOf(b)).number(), nil
}

// Divide returns a / b exactly. The quotient keeps the promoted
// representation of the operands when it is exactly representable there and
// is a Rational otherwise: 1/4 of two integers is a Rational, 1/4 of two
// decimals is 0.25. A finite nonzero value divided by zero is a signed
// infinity and 0/0 is NaN.
func Divide(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if r, ok := quoSpecial(a, b); ok {
		return r, nil
	}

	r := maxRank(rankOf(a), rankOf(b))

	if isZero(b) {
		if isZero(a) {
			return NewNaN(familyOf(r), false, nil), nil
		}
		if signbit(a) != signbit(b) {
			return Infinity(-1, familyOf(r)), nil
		}

		return Infinity(1, familyOf(r)), nil
	}

	switch r {
	case rankInteger:
		x, y := intOf(a), intOf(b)

		q, m := new(big.Int).QuoRem(x, y, new(big.Int))
		if m.Sign() == 0 {
			return normInt(q), nil
		}

		return ratio{num: new(big.Int).Set(x), den: new(big.Int).Set(y)}.normalize().reduce().number(), nil
	case rankBinary:
		return quoFrac(binaryOf(a), binaryOf(b), 2), nil
	case rankDecimal:
		return quoFrac(decimalOf(a), decimalOf(b), 10), nil
	}

	return quoRatio(ratioOf(a), ratioOf(b)).number(), nil
}

// Remainder returns a - trunc(a/b) * b exactly, after aligning exponents.
// The result has the sign of a. A zero divisor or an infinite dividend
// returns NaN; an infinite divisor returns a.
func Remainder(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}

	sa, aok := a.(Special)
	sb, bok := b.(Special)

	switch {
	case aok && sa.IsNaN():
		return sa, nil
	case bok && sb.IsNaN():
		return sb, nil
	case aok:
		return NewNaN(sa.family, false, nil), nil
	case bok:
		return a, nil
	}

	r := maxRank(rankOf(a), rankOf(b))

	if isZero(b) {
		return NewNaN(familyOf(r), false, nil), nil
	}

	switch r {
	case rankInteger:
		return normInt(new(big.Int).Rem(intOf(a), intOf(b))), nil
	case rankBinary:
		return BinaryFraction(remFrac(binaryOf(a), binaryOf(b), 2)), nil
	case rankDecimal:
		return DecimalFraction(remFrac(decimalOf(a), decimalOf(b), 10)), nil
	}

	return remRatio(ratioOf(a), ratioOf(b)).number(), nil
}

// Negate returns -n. Negating a zero fraction flips its sign; integer zero
// has no sign.
func Negate(n Number) (Number, error) {
	if err := checkOperand(n); err != nil {
		return nil, err
	}

	return negate(n), nil
}

// Abs returns |n|. The absolute value of NaN is NaN.
func Abs(n Number) (Number, error) {
	if err := checkOperand(n); err != nil {
		return nil, err
	}

	if signbit(n) {
		return negate(n), nil
	}

	return n, nil
}

func negate(n Number) Number {
	switch v := n.(type) {
	case Int64:
		if v == math.MinInt64 {
			return BigInt{v: new(big.Int).Neg(big.NewInt(int64(v)))}
		}

		return -v
	case BigInt:
		return normInt(new(big.Int).Neg(orZero(v.v)))
	case BinaryFraction:
		return BinaryFraction(v.frac().negate())
	case DecimalFraction:
		return DecimalFraction(v.frac().negate())
	case Rational:
		return v.ratio().negate().number()
	case Special:
		return v.negate()
	}

	panic("number: cannot negate " + n.Kind().String())
}

func addFinite(a, b Number) Number {
	switch maxRank(rankOf(a), rankOf(b)) {
	case rankInteger:
		x, xok := a.(Int64)
		y, yok := b.(Int64)
		if xok && yok {
			if s, ok := add64(int64(x), int64(y)); ok {
				return Int64(s)
			}
		}

		return normInt(new(big.Int).Add(intOf(a), intOf(b)))
	case rankBinary:
		return BinaryFraction(addFrac(binaryOf(a), binaryOf(b), 2))
	case rankDecimal:
		return DecimalFraction(addFrac(decimalOf(a), decimalOf(b), 10))
	}

	return addRatio(ratioOf(a), ratioOf(b)).number()
}

func add64(x, y int64) (int64, bool) {
	s := x + y
	if (s > x) != (y > 0) {
		return 0, false
	}

	return s, true
}

func mul64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}

	p := x * y
	if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}

	return p, true
}

// addSpecial applies the special value table for addition. It reports false
// when both operands are finite.
func addSpecial(a, b Number) (Number, bool) {
	sa, aok := a.(Special)
	sb, bok := b.(Special)

	switch {
	case !aok && !bok:
		return nil, false
	case aok && sa.IsNaN():
		return sa, true
	case bok && sb.IsNaN():
		return sb, true
	case aok && bok:
		if sa.SpecialKind() != sb.SpecialKind() {
			return NewNaN(sa.family, false, nil), true
		}

		return sa, true
	case aok:
		return sa, true
	}

	return sb, true
}

func mulSpecial(a, b Number) (Number, bool) {
	sa, aok := a.(Special)
	sb, bok := b.(Special)

	switch {
	case !aok && !bok:
		return nil, false
	case aok && sa.IsNaN():
		return sa, true
	case bok && sb.IsNaN():
		return sb, true
	}

	family := sa.family
	if !aok {
		family = sb.family
	}

	if (!aok && isZero(a)) || (!bok && isZero(b)) {
		return NewNaN(family, false, nil), true
	}

	if signbit(a) != signbit(b) {
		return Infinity(-1, family), true
	}

	return Infinity(1, family), true
}

func quoSpecial(a, b Number) (Number, bool) {
	sa, aok := a.(Special)
	sb, bok := b.(Special)

	switch {
	case !aok && !bok:
		return nil, false
	case aok && sa.IsNaN():
		return sa, true
	case bok && sb.IsNaN():
		return sb, true
	case aok && bok:
		return NewNaN(sa.family, false, nil), true
	case aok:
		if signbit(a) != signbit(b) {
			return Infinity(-1, sa.family), true
		}

		return Infinity(1, sa.family), true
	}

	// finite / infinity is a zero carrying the sign of the quotient.
	neg := signbit(a) != signbit(b)

	switch rankOf(a) {
	case rankBinary:
		return BinaryFraction{mant: new(big.Int), exp: new(big.Int), neg: neg}, true
	case rankDecimal:
		return DecimalFraction{mant: new(big.Int), exp: new(big.Int), neg: neg}, true
	case rankRational:
		return Rational{num: new(big.Int), den: big.NewInt(1), neg: neg}, true
	}

	return Int64(0), true
}

// normalize moves the sign of the denominator to the numerator.
func (q ratio) normalize() ratio {
	if q.den.Sign() < 0 {
		return ratio{num: new(big.Int).Neg(q.num), den: new(big.Int).Neg(q.den), neg: q.neg}
	}

	return q
}
