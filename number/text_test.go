package number

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecimalString(t *testing.T) {
	type TC struct {
		mant int64
		exp  int64
		want string
	}

	tcs := []TC{
		{mant: 0, exp: 0, want: "0"},
		{mant: 1, exp: 0, want: "1"},
		{mant: -5, exp: 0, want: "-5"},
		{mant: 123, exp: -2, want: "1.23"},
		{mant: 12345, exp: -3, want: "12.345"},
		{mant: -1, exp: -1, want: "-0.1"},
		{mant: 0, exp: -2, want: "0.00"},
		{mant: 1, exp: -6, want: "0.000001"},
		{mant: 123456789, exp: -14, want: "0.00000123456789"},
		{mant: 1, exp: -7, want: "1E-7"},
		{mant: 123, exp: -10, want: "1.23E-8"},
		{mant: 123, exp: 2, want: "1.23E+4"},
		{mant: 10, exp: 3, want: "1.0E+4"},
		{mant: 0, exp: 2, want: "0E+2"},
		{mant: -7, exp: 1, want: "-7E+1"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, NewDecimalFractionInt64(tc.mant, tc.exp).String())

			back, err := ParseDecimal(tc.want)
			require.NoError(t, err)
			requireIdentical(t, NewDecimalFractionInt64(tc.mant, tc.exp), back)
		})
	}
}

func TestDecimalStringHugeExponent(t *testing.T) {
	exp, ok := new(big.Int).SetString("-100000000000000000000", 10)
	require.True(t, ok)

	d := NewDecimalFraction(big.NewInt(25), exp)
	require.Equal(t, "2.5E-99999999999999999999", d.String())
}

func TestStrings(t *testing.T) {
	type TC struct {
		in   Number
		want string
	}

	negZero, err := Negate(NewDecimalFractionInt64(0, -1))
	require.NoError(t, err)

	tcs := []TC{
		{in: Int64(-42), want: "-42"},
		{in: NewInteger(new(big.Int).Lsh(big.NewInt(1), 64)), want: "18446744073709551616"},
		{in: negZero, want: "-0.0"},
		{in: MustRational(-1, 2), want: "-1/2"},
		{in: MustRational(2, 4), want: "2/4"},
		{in: FromFloat64(1.5), want: "1.5"},
		{in: FromFloat64(-2), want: "-2"},
		{in: FromFloat64(1024), want: "1024"},
		{in: FromFloat64(math.Copysign(0, -1)), want: "-0"},
		{in: FromFloat64(0.1), want: "0.1000000000000000055511151231257827021181583404541015625"},
		{in: Infinity(1, FamilyFloat), want: "Infinity"},
		{in: Infinity(-1, FamilyFloat), want: "-Infinity"},
		{in: NewNaN(FamilyFloat, false, nil), want: "NaN"},
		{in: NewNaN(FamilyFloat, false, big.NewInt(12)), want: "NaN12"},
		{in: NewNaN(FamilyFloat, true, nil), want: "sNaN"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestParseDecimal(t *testing.T) {
	type TC struct {
		in   string
		mant int64
		exp  int64
		neg  bool
		err  bool
	}

	tcs := []TC{
		{in: "1.23", mant: 123, exp: -2},
		{in: "-0", mant: 0, exp: 0, neg: true},
		{in: "1e3", mant: 1, exp: 3},
		{in: "1.5E-3", mant: 15, exp: -4},
		{in: ".5", mant: 5, exp: -1},
		{in: "5.", mant: 5, exp: 0},
		{in: "+7", mant: 7, exp: 0},
		{in: "007", mant: 7, exp: 0},
		{in: "", err: true},
		{in: "-", err: true},
		{in: ".", err: true},
		{in: "1e", err: true},
		{in: "1e+", err: true},
		{in: "e5", err: true},
		{in: "abc", err: true},
		{in: "1.2.3", err: true},
		{in: "1e5x", err: true},
		{in: "1 ", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.in), func(t *testing.T) {
			d, err := ParseDecimal(tc.in)
			if tc.err {
				require.Error(t, err)
				require.True(t, ErrInvalidArgument.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.mant, d.Unscaled().Int64())
			require.Equal(t, tc.exp, d.Exponent().Int64())
			require.Equal(t, tc.neg, d.Signbit())
		})
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		in   string
		want Number
	}

	tcs := []TC{
		{in: "Infinity", want: Infinity(1, FamilyDecimal)},
		{in: "-Infinity", want: Infinity(-1, FamilyDecimal)},
		{in: "+inf", want: Infinity(1, FamilyDecimal)},
		{in: "NaN", want: NewNaN(FamilyDecimal, false, nil)},
		{in: "NaN42", want: NewNaN(FamilyDecimal, false, big.NewInt(42))},
		{in: "sNaN", want: NewNaN(FamilyDecimal, true, nil)},
		{in: "1/3", want: MustRational(1, 3)},
		{in: "-2/4", want: MustRational(-2, 4)},
		{in: "1.5", want: NewDecimalFractionInt64(15, -1)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.in), func(t *testing.T) {
			n, err := Parse(tc.in)
			require.NoError(t, err)
			requireIdentical(t, tc.want, n)
		})
	}

	n, err := Parse("-0/5")
	require.NoError(t, err)
	require.True(t, IsZero(n))
	require.True(t, Signbit(n))

	for _, bad := range []string{"NaNx", "2/0", "x/3", "3/y", "1/2/3", "Infinityy"} {
		_, err := Parse(bad)
		require.True(t, ErrInvalidArgument.Has(err), "%q: %+v", bad, err)
	}

	require.Panics(t, func() { MustParse("bogus") })
	require.Panics(t, func() { MustParseDecimal("1..1") })
	require.Panics(t, func() { MustRational(1, 0) })
}

func TestOf(t *testing.T) {
	type TC struct {
		name string
		in   any
		want Number
	}

	tcs := []TC{
		{name: "int", in: 7, want: Int64(7)},
		{name: "int8", in: int8(-3), want: Int64(-3)},
		{name: "uint32", in: uint32(math.MaxUint32), want: Int64(math.MaxUint32)},
		{name: "uint64", in: uint64(math.MaxUint64), want: NewInteger(new(big.Int).SetUint64(math.MaxUint64))},
		{name: "float64", in: 1.5, want: NewBinaryFractionInt64(3, -1)},
		{name: "float32", in: float32(40.20107), want: NewBinaryFractionInt64(10538469, -18)},
		{name: "big.Int", in: big.NewInt(-9), want: Int64(-9)},
		{name: "big.Rat", in: big.NewRat(1, 2), want: MustRational(1, 2)},
		{name: "big.Rat integral", in: big.NewRat(4, 2), want: Int64(2)},
		{name: "Number", in: MustParseDecimal("2.50"), want: NewDecimalFractionInt64(250, -2)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n, err := Of(tc.in)
			require.NoError(t, err)
			requireIdentical(t, tc.want, n)
		})
	}

	_, err := Of(nil)
	require.True(t, ErrInvalidArgument.Has(err))

	_, err = Of((*big.Int)(nil))
	require.True(t, ErrInvalidArgument.Has(err))

	_, err = Of(true)
	require.True(t, ErrInvalidOperation.Has(err))

	_, err = Of("1")
	require.True(t, ErrInvalidOperation.Has(err))
}
