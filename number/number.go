package number

import "math/big"

// Kind identifies the representation of a Number.
type Kind uint8

// Kinds
const (
	KindInt64 Kind = iota + 1
	KindBigInt
	KindDecimalFraction
	KindBinaryFraction
	KindRational
	KindSpecial
)

var kindNames = [...]string{
	KindInt64:           "int64",
	KindBigInt:          "bigint",
	KindDecimalFraction: "decimal",
	KindBinaryFraction:  "binary",
	KindRational:        "rational",
	KindSpecial:         "special",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return "unknown"
}

// Number is a numeric value. The set of implementations is closed: Int64,
// BigInt, DecimalFraction, BinaryFraction, Rational and Special.
type Number interface {
	Kind() Kind
	String() string

	isNumber()
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// orZero returns i, or zero when i is nil. The result must not be modified.
func orZero(i *big.Int) *big.Int {
	if i == nil {
		return bigZero
	}

	return i
}

// clone returns a copy of i treating nil as zero.
func clone(i *big.Int) *big.Int {
	if i == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(i)
}

// pow returns base^d for d >= 0.
func pow(base int64, d *big.Int) *big.Int {
	if base == 2 && d.IsUint64() {
		return new(big.Int).Lsh(bigOne, uint(d.Uint64()))
	}

	return new(big.Int).Exp(big.NewInt(base), d, nil)
}

// scale returns x * base^d for d >= 0.
func scale(x *big.Int, base int64, d *big.Int) *big.Int {
	if d.Sign() == 0 {
		return x
	}
	if base == 2 && d.IsUint64() {
		return new(big.Int).Lsh(x, uint(d.Uint64()))
	}

	return new(big.Int).Mul(x, pow(base, d))
}
