package number

import (
	"math/big"
	"strconv"
)

// Int64 is a fixed width integer. It is the compact form of integers that fit
// in 64 bits.
type Int64 int64

// NewInt64 returns v as a Number.
func NewInt64(v int64) Int64 {
	return Int64(v)
}

// Kind implements Number.
func (Int64) Kind() Kind { return KindInt64 }

func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int64) isNumber() {}

// BigInt is an arbitrary precision integer. The zero value is 0.
type BigInt struct {
	v *big.Int
}

// NewBigInt returns a BigInt holding a copy of v. A nil v is zero.
func NewBigInt(v *big.Int) BigInt {
	return BigInt{v: clone(v)}
}

// NewInteger returns v in its most compact integer representation: Int64 when
// it fits and BigInt otherwise.
func NewInteger(v *big.Int) Number {
	return normInt(clone(v))
}

// Int returns a copy of the integer value.
func (b BigInt) Int() *big.Int {
	return clone(b.v)
}

// Kind implements Number.
func (BigInt) Kind() Kind { return KindBigInt }

func (b BigInt) String() string {
	return orZero(b.v).String()
}

func (BigInt) isNumber() {}

// normInt takes ownership of v.
func normInt(v *big.Int) Number {
	if v.IsInt64() {
		return Int64(v.Int64())
	}

	return BigInt{v: v}
}

// intOf returns the integer value of an Int64 or BigInt. The result must not
// be modified.
func intOf(n Number) *big.Int {
	switch v := n.(type) {
	case Int64:
		return big.NewInt(int64(v))
	case BigInt:
		return orZero(v.v)
	}

	panic("number: not an integer: " + n.Kind().String())
}
