package number

import (
	"math"
	"math/big"
	"math/bits"
)

// format describes an IEEE 754 binary interchange format.
type format struct {
	width    int
	expBits  uint
	mantBits uint
}

var (
	binary16 = format{width: 16, expBits: 5, mantBits: 10}
	binary32 = format{width: 32, expBits: 8, mantBits: 23}
	binary64 = format{width: 64, expBits: 11, mantBits: 52}
)

func (f format) bias() int64 { return 1<<(f.expBits-1) - 1 }

func (f format) quietBit() uint64 { return 1 << (f.mantBits - 1) }

// FromFloat64 returns the exact value of f.
func FromFloat64(f float64) Number { return fromBits(math.Float64bits(f), binary64) }

// FromFloat32 returns the exact value of f.
func FromFloat32(f float32) Number { return fromBits(uint64(math.Float32bits(f)), binary32) }

// FromFloat64Bits returns the exact value of an IEEE binary64 bit pattern.
func FromFloat64Bits(b uint64) Number { return fromBits(b, binary64) }

// FromFloat32Bits returns the exact value of an IEEE binary32 bit pattern.
func FromFloat32Bits(b uint32) Number { return fromBits(uint64(b), binary32) }

// FromFloat16Bits returns the exact value of an IEEE binary16 bit pattern.
func FromFloat16Bits(b uint16) Number { return fromBits(uint64(b), binary16) }

// fromBits decomposes an IEEE bit pattern. Finite values become a
// BinaryFraction with an odd significand. NaN mantissa bits other than the
// quiet bit are kept as the payload.
func fromBits(b uint64, f format) Number {
	neg := b>>(f.expBits+f.mantBits)&1 == 1
	field := int64(b >> f.mantBits & (1<<f.expBits - 1))
	mant := b & (1<<f.mantBits - 1)

	var exp int64

	switch field {
	case 1<<f.expBits - 1:
		if mant == 0 {
			if neg {
				return Infinity(-1, FamilyFloat)
			}

			return Infinity(1, FamilyFloat)
		}

		payload := new(big.Int).SetUint64(mant &^ f.quietBit())

		return NewNaN(FamilyFloat, mant&f.quietBit() == 0, payload)
	case 0:
		if mant == 0 {
			return BinaryFraction{mant: new(big.Int), exp: new(big.Int), neg: neg}
		}

		// Subnormal: minimum exponent, no implicit leading bit.
		exp = 1 - f.bias() - int64(f.mantBits)
	default:
		mant |= 1 << f.mantBits
		exp = field - f.bias() - int64(f.mantBits)
	}

	tz := bits.TrailingZeros64(mant)
	mant >>= uint(tz)
	exp += int64(tz)

	m := new(big.Int).SetUint64(mant)
	if neg {
		m.Neg(m)
	}

	return BinaryFraction{mant: m, exp: big.NewInt(exp)}
}

// FloatBits returns the IEEE bit pattern of width 16, 32 or 64 that is exactly
// equal to n. It reports false when no such pattern exists: the value needs
// rounding, is out of range, is not a binary fraction or a special, or is a
// NaN whose payload does not fit.
func FloatBits(n Number, width int) (uint64, bool) {
	var f format

	switch width {
	case 16:
		f = binary16
	case 32:
		f = binary32
	case 64:
		f = binary64
	default:
		return 0, false
	}

	switch v := n.(type) {
	case Special:
		return specialBits(v, f)
	case BinaryFraction:
		return exactBits(v.frac(), f)
	}

	return 0, false
}

// ShortestFloat returns the narrowest IEEE width that holds n exactly along
// with its bit pattern.
func ShortestFloat(n Number) (width int, b uint64, ok bool) {
	for _, w := range []int{16, 32, 64} {
		b, ok = FloatBits(n, w)
		if ok {
			return w, b, true
		}
	}

	return 0, 0, false
}

func specialBits(s Special, f format) (uint64, bool) {
	inf := uint64(1<<f.expBits-1) << f.mantBits
	sign := uint64(1) << (f.expBits + f.mantBits)

	switch s.SpecialKind() {
	case PositiveInfinity:
		return inf, true
	case NegativeInfinity:
		return sign | inf, true
	}

	var payload uint64
	if s.payload != nil {
		if !s.payload.IsUint64() || s.payload.Uint64() >= f.quietBit() {
			return 0, false
		}
		payload = s.payload.Uint64()
	}

	if s.SpecialKind() == SignalingNaN {
		if payload == 0 {
			payload = 1
		}

		return inf | payload, true
	}

	return inf | f.quietBit() | payload, true
}

func exactBits(x fraction, f format) (uint64, bool) {
	var sign uint64
	if x.signbit() {
		sign = 1 << (f.expBits + f.mantBits)
	}

	if x.mant.Sign() == 0 {
		return sign, true
	}

	m := new(big.Int).Abs(x.mant)
	tz := m.TrailingZeroBits()
	m.Rsh(m, tz)

	e := new(big.Int).Add(x.exp, new(big.Int).SetUint64(uint64(tz)))
	l := int64(m.BitLen())
	if l-1 > int64(f.mantBits) || !e.IsInt64() {
		return 0, false
	}

	exp := e.Int64()
	if exp > math.MaxInt64/2 || exp < math.MinInt64/2 {
		return 0, false
	}

	// value = 1.xxx * 2^top
	top := l - 1 + exp
	switch {
	case top > f.bias():
		return 0, false
	case top >= 1-f.bias():
		mant := m.Uint64() << uint(int64(f.mantBits)-(l-1))
		mant &^= 1 << f.mantBits
		field := uint64(top+f.bias()) << f.mantBits

		return sign | field | mant, true
	}

	shift := exp - (1 - f.bias() - int64(f.mantBits))
	if shift < 0 {
		return 0, false
	}

	return sign | m.Uint64()<<uint(shift), true
}

// Float64 returns the float64 nearest to n, rounding ties to even. Specials
// map to the IEEE specials. A finite n whose magnitude rounds to infinity
// returns ErrOverflow.
func Float64(n Number) (float64, error) {
	if err := checkOperand(n); err != nil {
		return 0, err
	}

	v, _, over := roundFloat(n, binary64)
	if over {
		return v, ErrOverflow.New("%s exceeds the float64 range", n.Kind())
	}

	return v, nil
}

// Float32 returns the float32 nearest to n, rounding ties to even. Specials
// map to the IEEE specials. A finite n whose magnitude rounds to infinity
// returns ErrOverflow.
func Float32(n Number) (float32, error) {
	if err := checkOperand(n); err != nil {
		return 0, err
	}

	v, _, over := roundFloat(n, binary32)
	if over {
		return float32(v), ErrOverflow.New("%s exceeds the float32 range", n.Kind())
	}

	return float32(v), nil
}

// FitsFloat64 reports whether n converts to float64 without rounding.
func FitsFloat64(n Number) bool {
	if n == nil {
		return false
	}
	if s, ok := n.(Special); ok {
		_, ok = specialBits(s, binary64)

		return ok
	}

	_, exact, over := roundFloat(n, binary64)

	return exact && !over
}

// FitsFloat32 reports whether n converts to float32 without rounding.
func FitsFloat32(n Number) bool {
	if n == nil {
		return false
	}
	if s, ok := n.(Special); ok {
		_, ok = specialBits(s, binary32)

		return ok
	}

	_, exact, over := roundFloat(n, binary32)

	return exact && !over
}

// roundFloat rounds n to the nearest value in f. The float32 result is
// returned widened to float64, which is exact.
func roundFloat(n Number, f format) (v float64, exact, overflow bool) {
	if s, ok := n.(Special); ok {
		switch s.SpecialKind() {
		case PositiveInfinity:
			return math.Inf(1), true, false
		case NegativeInfinity:
			return math.Inf(-1), true, false
		}

		return math.NaN(), false, false
	}

	neg := signbit(n)
	zero := 0.0
	if neg {
		zero = math.Copysign(0, -1)
	}

	if isZero(n) {
		return zero, true, false
	}

	// Skip building huge rationals for values far outside the format.
	lo, hi := log2Bounds(n)
	maxExp := big.NewInt(f.bias() + 1)
	minExp := big.NewInt(1 - f.bias() - int64(f.mantBits) - 2)
	if lo.Cmp(maxExp) >= 0 {
		return math.Inf(signOf(neg)), false, true
	}
	if hi.Cmp(minExp) < 0 {
		return zero, false, false
	}

	r := toRat(n)
	if f.width == 32 {
		v32, ok := r.Float32()
		v = float64(v32)
		exact = ok
	} else {
		v, exact = r.Float64()
	}

	if math.IsInf(v, 0) {
		return v, false, true
	}
	if v == 0 && neg {
		v = zero
	}

	return v, exact, false
}

func signOf(neg bool) int {
	if neg {
		return -1
	}

	return 1
}

// toRat returns the exact value of a finite n.
func toRat(n Number) *big.Rat {
	q := ratioOf(n)

	return new(big.Rat).SetFrac(new(big.Int).Set(q.num), new(big.Int).Set(q.den))
}
