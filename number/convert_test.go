package number

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBigInt(t *testing.T) {
	type TC struct {
		name    string
		in      Number
		want    int64
		inexact bool
		trunc   int64
	}

	tcs := []TC{
		{name: "15.0", in: NewDecimalFractionInt64(150, -1), want: 15, trunc: 15},
		{name: "1.2E+3", in: NewDecimalFractionInt64(12, 2), want: 1200, trunc: 1200},
		{name: "3*2^2", in: NewBinaryFractionInt64(3, 2), want: 12, trunc: 12},
		{name: "4*2^-2", in: NewBinaryFractionInt64(4, -2), want: 1, trunc: 1},
		{name: "6/3", in: MustRational(6, 3), want: 2, trunc: 2},
		{name: "-2.7", in: MustParseDecimal("-2.7"), inexact: true, trunc: -2},
		{name: "-3.5f", in: FromFloat64(-3.5), inexact: true, trunc: -3},
		{name: "-7/2", in: MustRational(-7, 2), inexact: true, trunc: -3},
		{name: "1E-9", in: MustParseDecimal("1E-9"), inexact: true, trunc: 0},
		{name: "tiny float", in: FromFloat64(math.SmallestNonzeroFloat64), inexact: true, trunc: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := ToBigInt(tc.in)
			if tc.inexact {
				require.Error(t, err)
				require.True(t, ErrInvalidOperation.Has(err))
				require.False(t, IsInteger(tc.in))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.want, v.Int64())
				require.True(t, IsInteger(tc.in))
			}

			v, err = TruncateToBigInt(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.trunc, v.Int64())
		})
	}
}

func TestToBigIntSpecial(t *testing.T) {
	for _, n := range []Number{Infinity(1, FamilyFloat), Infinity(-1, FamilyDecimal), NewNaN(FamilyFloat, false, nil)} {
		_, err := ToBigInt(n)
		require.True(t, ErrOverflow.Has(err), "%s: %+v", n, err)

		_, err = TruncateToBigInt(n)
		require.True(t, ErrOverflow.Has(err), "%s: %+v", n, err)

		_, err = ToInt64(n)
		require.True(t, ErrOverflow.Has(err), "%s: %+v", n, err)

		_, err = TruncateToInt64(n)
		require.True(t, ErrOverflow.Has(err), "%s: %+v", n, err)

		require.False(t, IsInteger(n))
		require.False(t, FitsInt64(n))
		require.False(t, TruncatedFitsInt64(n))
	}
}

func TestToInt64(t *testing.T) {
	v, err := ToInt64(Int64(-5))
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)

	v, err = ToInt64(NewBigInt(big.NewInt(math.MinInt64)))
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	_, err = ToInt64(MustParseDecimal("1E+19"))
	require.True(t, ErrOverflow.Has(err))

	_, err = ToInt64(NewInteger(new(big.Int).Lsh(big.NewInt(1), 63)))
	require.True(t, ErrOverflow.Has(err))

	_, err = ToInt64(MustRational(5, 3))
	require.True(t, ErrInvalidOperation.Has(err))

	v, err = TruncateToInt64(MustRational(5, 3))
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	_, err = TruncateToInt64(MustParseDecimal("1E+1000000"))
	require.True(t, ErrOverflow.Has(err))

	require.True(t, FitsInt64(FromFloat64(-9223372036854775808)))
	require.False(t, FitsInt64(FromFloat64(9223372036854775808)))
	require.False(t, FitsInt64(MustParseDecimal("1.5")))
	require.True(t, TruncatedFitsInt64(MustParseDecimal("1.5")))
	require.False(t, TruncatedFitsInt64(nil))

	_, err = ToInt64(nil)
	require.True(t, ErrInvalidArgument.Has(err))
}

func TestToDecimal(t *testing.T) {
	d, err := ToDecimal(MustRational(1, 8))
	require.NoError(t, err)
	requireIdentical(t, NewDecimalFractionInt64(125, -3), d)

	d, err = ToDecimal(MustRational(-3, 6))
	require.NoError(t, err)
	requireIdentical(t, NewDecimalFractionInt64(-5, -1), d)

	d, err = ToDecimal(FromFloat64(0.5))
	require.NoError(t, err)
	requireIdentical(t, NewDecimalFractionInt64(5, -1), d)

	d, err = ToDecimal(Int64(42))
	require.NoError(t, err)
	requireIdentical(t, NewDecimalFractionInt64(42, 0), d)

	_, err = ToDecimal(MustRational(1, 3))
	require.True(t, ErrInvalidOperation.Has(err))

	_, err = ToDecimal(NewNaN(FamilyFloat, false, nil))
	require.True(t, ErrOverflow.Has(err))
}

func TestToBinary(t *testing.T) {
	b, err := ToBinary(MustParseDecimal("0.75"))
	require.NoError(t, err)
	requireIdentical(t, NewBinaryFractionInt64(3, -2), b)

	b, err = ToBinary(MustParseDecimal("1E+2"))
	require.NoError(t, err)
	requireIdentical(t, NewBinaryFractionInt64(100, 0), b)

	b, err = ToBinary(MustRational(3, 4))
	require.NoError(t, err)
	requireIdentical(t, NewBinaryFractionInt64(3, -2), b)

	_, err = ToBinary(MustParseDecimal("0.1"))
	require.True(t, ErrInvalidOperation.Has(err))

	_, err = ToBinary(MustRational(1, 3))
	require.True(t, ErrInvalidOperation.Has(err))

	_, err = ToBinary(Infinity(1, FamilyFloat))
	require.True(t, ErrOverflow.Has(err))
}

func TestToRational(t *testing.T) {
	r, err := ToRational(MustParseDecimal("0.25"))
	require.NoError(t, err)
	require.Equal(t, "25/100", r.String())
	require.Equal(t, "1/4", r.Reduce().String())

	r, err = ToRational(FromFloat64(-0.5))
	require.NoError(t, err)
	require.Equal(t, "-1/2", r.String())

	_, err = ToRational(NewNaN(FamilyFloat, false, nil))
	require.True(t, ErrOverflow.Has(err))
}

func TestIntegerWithin(t *testing.T) {
	type TC struct {
		name string
		in   Number
		bits int64
		want string
		ok   bool
	}

	tcs := []TC{
		{name: "1E0", in: NewDecimalFractionInt64(1, 0), bits: 64, want: "1", ok: true},
		{name: "1.20E+3", in: MustParseDecimal("1.20E+3"), bits: 64, want: "1200", ok: true},
		{name: "-1 float", in: FromFloat64(-1), bits: 64, want: "-1", ok: true},
		{name: "9/3", in: MustRational(9, 3), bits: 64, want: "3", ok: true},
		{name: "2^64", in: NewBinaryFractionInt64(1, 64), bits: 65, want: "18446744073709551616", ok: true},
		{name: "2^64 over", in: NewBinaryFractionInt64(1, 64), bits: 64},
		{name: "1E+1000000", in: MustParseDecimal("1E+1000000"), bits: 1 << 19},
		{name: "1.5", in: MustParseDecimal("1.5"), bits: 64},
		{name: "1/3", in: MustRational(1, 3), bits: 64},
		{name: "infinity", in: Infinity(1, FamilyFloat), bits: 64},
		{name: "nil", in: nil, bits: 64},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, ok := IntegerWithin(tc.in, tc.bits)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, v.String())
			}
		})
	}
}
