package number

import (
	"math/big"
)

// Rational is an exact quotient of two integers. The denominator is always
// positive. The pair is kept as constructed; Reduce returns lowest terms.
type Rational struct {
	num *big.Int
	den *big.Int
	neg bool
}

// NewRational returns num / den. A zero denominator is rejected with
// ErrInvalidArgument. A negative denominator moves its sign to the numerator.
func NewRational(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, ErrInvalidArgument.New("zero denominator")
	}

	n, d := clone(num), clone(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return Rational{num: n, den: d}, nil
}

// NewRationalInt64 returns num / den.
func NewRationalInt64(num, den int64) (Rational, error) {
	return NewRational(big.NewInt(num), big.NewInt(den))
}

// Numerator returns a copy of the numerator.
func (r Rational) Numerator() *big.Int { return clone(r.num) }

// Denominator returns a copy of the denominator.
func (r Rational) Denominator() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}

	return new(big.Int).Set(r.den)
}

// Reduce returns the value in lowest terms.
func (r Rational) Reduce() Rational {
	return Rational(r.ratio().reduce())
}

// IsZero reports whether the value is +0 or -0.
func (r Rational) IsZero() bool { return orZero(r.num).Sign() == 0 }

// Signbit reports whether the value is negative or -0.
func (r Rational) Signbit() bool { return r.ratio().signbit() }

// Kind implements Number.
func (Rational) Kind() Kind { return KindRational }

func (r Rational) String() string {
	q := r.ratio()

	s := q.num.String() + "/" + q.den.String()
	if q.num.Sign() == 0 && q.neg {
		s = "-" + s
	}

	return s
}

func (Rational) isNumber() {}

func (r Rational) ratio() ratio {
	den := r.den
	if den == nil {
		den = bigOne
	}

	return ratio{num: orZero(r.num), den: den, neg: r.neg}
}

// ratio is num / den with den > 0 and the sign of a zero num tracked by neg.
type ratio struct {
	num *big.Int
	den *big.Int
	neg bool
}

func (q ratio) number() Rational { return Rational(q) }

func (q ratio) signbit() bool {
	s := q.num.Sign()

	return s < 0 || (s == 0 && q.neg)
}

func (q ratio) negate() ratio {
	if q.num.Sign() == 0 {
		return ratio{num: q.num, den: q.den, neg: !q.neg}
	}

	return ratio{num: new(big.Int).Neg(q.num), den: q.den}
}

func (q ratio) reduce() ratio {
	if q.num.Sign() == 0 {
		return ratio{num: new(big.Int), den: big.NewInt(1), neg: q.neg}
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(q.num), q.den)
	if g.Cmp(bigOne) == 0 {
		return q
	}

	return ratio{
		num: new(big.Int).Quo(q.num, g),
		den: new(big.Int).Quo(q.den, g),
	}
}

func addRatio(x, y ratio) ratio {
	var num, den *big.Int

	if x.den.Cmp(y.den) == 0 {
		num = new(big.Int).Add(x.num, y.num)
		den = x.den
	} else {
		num = new(big.Int).Mul(x.num, y.den)
		num.Add(num, new(big.Int).Mul(y.num, x.den))
		den = new(big.Int).Mul(x.den, y.den)
	}

	return ratio{
		num: num,
		den: den,
		neg: num.Sign() == 0 && x.signbit() && y.signbit(),
	}
}

func mulRatio(x, y ratio) ratio {
	num := new(big.Int).Mul(x.num, y.num)

	return ratio{
		num: num,
		den: new(big.Int).Mul(x.den, y.den),
		neg: num.Sign() == 0 && x.signbit() != y.signbit(),
	}
}

// quoRatio returns x / y. y must not be zero.
func quoRatio(x, y ratio) ratio {
	num := new(big.Int).Mul(x.num, y.den)
	den := new(big.Int).Mul(x.den, y.num)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	return ratio{
		num: num,
		den: den,
		neg: num.Sign() == 0 && x.signbit() != y.signbit(),
	}.reduce()
}

// remRatio returns the truncated remainder of x / y. y must not be zero.
func remRatio(x, y ratio) ratio {
	a := new(big.Int).Mul(x.num, y.den)
	b := new(big.Int).Mul(y.num, x.den)

	num := a.Rem(a, b)

	return ratio{
		num: num,
		den: new(big.Int).Mul(x.den, y.den),
		neg: num.Sign() == 0 && x.signbit(),
	}
}

func cmpRatio(x, y ratio) int {
	a := new(big.Int).Mul(x.num, y.den)
	b := new(big.Int).Mul(y.num, x.den)

	return a.Cmp(b)
}
