package number

import "math/big"

// fraction is mant * base^exp with the sign of a zero mant tracked by neg.
// The integers are shared between values and never modified.
type fraction struct {
	mant *big.Int
	exp  *big.Int
	neg  bool
}

func (f fraction) signbit() bool {
	s := f.mant.Sign()

	return s < 0 || (s == 0 && f.neg)
}

func (f fraction) negate() fraction {
	if f.mant.Sign() == 0 {
		return fraction{mant: f.mant, exp: f.exp, neg: !f.neg}
	}

	return fraction{mant: new(big.Int).Neg(f.mant), exp: f.exp}
}

func (f fraction) abs() fraction {
	if f.mant.Sign() >= 0 {
		return fraction{mant: f.mant, exp: f.exp}
	}

	return fraction{mant: new(big.Int).Neg(f.mant), exp: f.exp}
}

// align rescales x and y to the smaller of their exponents.
func align(x, y fraction, base int64) (xm, ym, exp *big.Int) {
	switch x.exp.Cmp(y.exp) {
	case 1:
		d := new(big.Int).Sub(x.exp, y.exp)

		return scale(x.mant, base, d), y.mant, y.exp
	case -1:
		d := new(big.Int).Sub(y.exp, x.exp)

		return x.mant, scale(y.mant, base, d), x.exp
	}

	return x.mant, y.mant, x.exp
}

func addFrac(x, y fraction, base int64) fraction {
	xm, ym, exp := align(x, y, base)

	m := new(big.Int).Add(xm, ym)

	// An exact zero sum is +0 unless both addends are -0.
	return fraction{
		mant: m,
		exp:  exp,
		neg:  m.Sign() == 0 && x.signbit() && y.signbit(),
	}
}

func mulFrac(x, y fraction) fraction {
	m := new(big.Int).Mul(x.mant, y.mant)

	return fraction{
		mant: m,
		exp:  new(big.Int).Add(x.exp, y.exp),
		neg:  m.Sign() == 0 && x.signbit() != y.signbit(),
	}
}

// remFrac returns the truncated remainder of x / y. y must not be zero.
func remFrac(x, y fraction, base int64) fraction {
	xm, ym, exp := align(x, y, base)

	m := new(big.Int).Rem(xm, ym)

	return fraction{
		mant: m,
		exp:  exp,
		neg:  m.Sign() == 0 && x.signbit(),
	}
}

func cmpFrac(x, y fraction, base int64) int {
	xm, ym, _ := align(x, y, base)

	return xm.Cmp(ym)
}

// terminates reports whether 1/d has a finite expansion in base. If it does,
// d * mult == base^k.
func terminates(d *big.Int, base int64) (k uint64, mult *big.Int, ok bool) {
	twos := uint64(d.TrailingZeroBits())
	rest := new(big.Int).Rsh(d, uint(twos))

	if base == 2 {
		if rest.Cmp(bigOne) != 0 {
			return 0, nil, false
		}

		return twos, bigOne, true
	}

	var fives uint64
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(rest, bigFive, r)
		if r.Sign() != 0 {
			break
		}
		rest, q = q, rest
		fives++
	}

	if rest.Cmp(bigOne) != 0 {
		return 0, nil, false
	}

	k = twos
	if fives > k {
		k = fives
	}

	mult = new(big.Int).Lsh(bigOne, uint(k-twos))
	mult.Mul(mult, new(big.Int).Exp(bigFive, new(big.Int).SetUint64(k-fives), nil))

	return k, mult, true
}

// quoFrac returns x / y exactly. y must not be zero. The quotient keeps the
// base of its operands when it terminates and is a rational otherwise.
func quoFrac(x, y fraction, base int64) Number {
	neg := x.signbit() != y.signbit()
	exp := new(big.Int).Sub(x.exp, y.exp)

	if x.mant.Sign() == 0 {
		return fromFrac(fraction{mant: new(big.Int), exp: exp, neg: neg}, base)
	}

	n, d := new(big.Int).Set(x.mant), new(big.Int).Set(y.mant)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	n.Quo(n, g)
	d.Quo(d, g)

	k, mult, ok := terminates(d, base)
	if ok {
		return fromFrac(fraction{
			mant: n.Mul(n, mult),
			exp:  exp.Sub(exp, new(big.Int).SetUint64(k)),
		}, base)
	}

	if exp.Sign() >= 0 {
		n.Mul(n, pow(base, exp))
	} else {
		d.Mul(d, pow(base, new(big.Int).Neg(exp)))
	}

	return ratio{num: n, den: d}.reduce().number()
}

func fromFrac(f fraction, base int64) Number {
	if base == 2 {
		return BinaryFraction(f)
	}

	return DecimalFraction(f)
}
