package number

import (
	"math/big"
)

// order classes of the total order
const (
	orderNegInf = iota
	orderFinite
	orderPosInf
	orderNaN
	orderNil
)

func orderOf(n Number) int {
	if n == nil {
		return orderNil
	}

	s, ok := n.(Special)
	if !ok {
		return orderFinite
	}

	switch s.SpecialKind() {
	case PositiveInfinity:
		return orderPosInf
	case NegativeInfinity:
		return orderNegInf
	}

	return orderNaN
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. It is a total order over every Number:
//
//	-Infinity < finite values < +Infinity < NaN
//
// All NaNs compare equal regardless of family or payload, -0 equals +0, and
// different representations of the same quantity compare equal. A nil Number
// sorts after everything else. Compare never fails.
func Compare(a, b Number) int {
	oa, ob := orderOf(a), orderOf(b)
	switch {
	case oa < ob:
		return -1
	case oa > ob:
		return 1
	case oa != orderFinite:
		return 0
	}

	return compareFinite(a, b)
}

func compareFinite(a, b Number) int {
	sa, sb := sign(a), sign(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case sa == 0:
		return 0
	}

	if x, ok := a.(Int64); ok {
		if y, ok := b.(Int64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}

			return 0
		}
	}

	// Values with disjoint magnitude bounds are ordered without aligning.
	loA, hiA := log2Bounds(a)
	loB, hiB := log2Bounds(b)
	if hiA.Cmp(loB) <= 0 {
		return -sa
	}
	if hiB.Cmp(loA) <= 0 {
		return sa
	}

	switch maxRank(rankOf(a), rankOf(b)) {
	case rankInteger:
		return intOf(a).Cmp(intOf(b))
	case rankBinary:
		return cmpFrac(binaryOf(a), binaryOf(b), 2)
	case rankDecimal:
		return cmpFrac(decimalOf(a), decimalOf(b), 10)
	}

	return cmpRatio(ratioOf(a), ratioOf(b))
}

func maxRank(a, b rank) rank {
	if a > b {
		return a
	}

	return b
}

// sign returns -1, 0 or +1 for a finite n. Both zeros return 0.
func sign(n Number) int {
	switch v := n.(type) {
	case Int64:
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}

		return 0
	case BigInt:
		return orZero(v.v).Sign()
	case BinaryFraction:
		return orZero(v.mant).Sign()
	case DecimalFraction:
		return orZero(v.mant).Sign()
	case Rational:
		return orZero(v.num).Sign()
	case Special:
		return v.sign()
	}

	return 0
}

// Sign returns -1, 0 or +1 for negative, zero and positive values including
// the infinities. NaN and nil return 0.
func Sign(n Number) int {
	if n == nil || IsNaN(n) {
		return 0
	}

	return sign(n)
}

// Equal reports whether a and b are numerically equal with IEEE semantics:
// NaN is not equal to anything, including itself, and -0 equals +0.
func Equal(a, b Number) bool {
	if a == nil || b == nil || IsNaN(a) || IsNaN(b) {
		return false
	}

	return Compare(a, b) == 0
}

// Identical reports whether a and b are the same representation of the same
// value. 1.5 and 1.50 are equal but not identical. NaNs are identical only when
// they share family, kind and payload.
func Identical(a, b Number) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Int64:
		return x == b.(Int64)
	case BigInt:
		return orZero(x.v).Cmp(orZero(b.(BigInt).v)) == 0
	case DecimalFraction:
		return identicalFrac(x.frac(), b.(DecimalFraction).frac())
	case BinaryFraction:
		return identicalFrac(x.frac(), b.(BinaryFraction).frac())
	case Rational:
		p, q := x.ratio(), b.(Rational).ratio()

		return p.num.Cmp(q.num) == 0 && p.den.Cmp(q.den) == 0 && p.signbit() == q.signbit()
	case Special:
		y := b.(Special)

		return x.SpecialKind() == y.SpecialKind() &&
			x.family == y.family &&
			orZero(x.payload).Cmp(orZero(y.payload)) == 0
	}

	return false
}

func identicalFrac(x, y fraction) bool {
	return x.mant.Cmp(y.mant) == 0 && x.exp.Cmp(y.exp) == 0 && x.signbit() == y.signbit()
}

// Min returns the smaller of a and b under Compare.
func Min(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if Compare(a, b) <= 0 {
		return a, nil
	}

	return b, nil
}

// Max returns the larger of a and b under Compare.
func Max(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if Compare(a, b) >= 0 {
		return a, nil
	}

	return b, nil
}

// IsNaN reports whether n is a quiet or signaling NaN.
func IsNaN(n Number) bool {
	s, ok := n.(Special)

	return ok && s.IsNaN()
}

// IsInfinity reports whether n is +Infinity or -Infinity.
func IsInfinity(n Number) bool {
	s, ok := n.(Special)

	return ok && s.IsInfinity()
}

// IsFinite reports whether n is neither an infinity nor a NaN.
func IsFinite(n Number) bool {
	if n == nil {
		return false
	}
	_, ok := n.(Special)

	return !ok
}

// IsZero reports whether n is a finite zero of either sign.
func IsZero(n Number) bool {
	return n != nil && isZero(n)
}

// Signbit reports whether n is negative, -0 or -Infinity.
func Signbit(n Number) bool {
	return n != nil && signbit(n)
}

// log2(10) lies between these bounds.
var (
	log10Lo = big.NewInt(33219)
	log10Hi = big.NewInt(33220)
	log10D  = big.NewInt(10000)
)

// log2Bounds returns lo and hi such that 2^lo <= |n| < 2^hi for a finite,
// nonzero n.
func log2Bounds(n Number) (lo, hi *big.Int) {
	bl := func(i *big.Int) *big.Int { return big.NewInt(int64(i.BitLen())) }

	switch v := n.(type) {
	case Int64, BigInt:
		l := bl(intOf(v))

		return new(big.Int).Sub(l, bigOne), l
	case BinaryFraction:
		f := v.frac()
		l := bl(f.mant)
		hi = new(big.Int).Add(l, f.exp)

		return new(big.Int).Sub(hi, bigOne), hi
	case DecimalFraction:
		f := v.frac()
		l := bl(f.mant)

		loMul, hiMul := log10Lo, log10Hi
		if f.exp.Sign() < 0 {
			loMul, hiMul = log10Hi, log10Lo
		}

		// floor(e * loMul / D) and ceil(e * hiMul / D)
		flo := new(big.Int).Mul(f.exp, loMul)
		flo.Div(flo, log10D)
		fhi := new(big.Int).Mul(f.exp, hiMul)
		fhi.Neg(fhi).Div(fhi, log10D).Neg(fhi)

		lo = new(big.Int).Sub(l, bigOne)
		lo.Add(lo, flo)

		return lo, fhi.Add(fhi, l)
	case Rational:
		q := v.ratio()
		diff := new(big.Int).Sub(bl(q.num), bl(q.den))

		return new(big.Int).Sub(diff, bigOne), diff.Add(diff, bigOne)
	}

	panic("number: no magnitude for " + n.Kind().String())
}
