package control_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/oops"
)

type head struct {
	Type  control.Type
	Arg   uint64
	Depth int
}

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Heads []head
		Mark  error
	}

	t.Run("read", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0x00},
				Heads: []head{{control.Unsigned, 0, 0}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
				Heads: []head{{control.Unsigned, 1<<64 - 1, 0}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0x39, 0x03, 0xe7},
				Heads: []head{{control.Negative, 999, 0}},
				Mark:  oops.New("unexpected"),
			},
			{
				// 4([-2, 27315])
				Input: []byte{0xc4, 0x82, 0x21, 0x19, 0x6a, 0xb3},
				Heads: []head{
					{control.Tag, 4, 1},
					{control.Array, 2, 2},
					{control.Negative, 1, 2},
					{control.Unsigned, 27315, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				// 2(h'010000000000000000')
				Input: []byte{0xc2, 0x49, 0x01, 0, 0, 0, 0, 0, 0, 0, 0},
				Heads: []head{
					{control.Tag, 2, 1},
					{control.Bytes, 9, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				// Unread string data is skipped.
				Input: []byte{0x42, 0x01, 0x02, 0x03},
				Heads: []head{
					{control.Bytes, 2, 0},
					{control.Unsigned, 3, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0x80, 0xa0, 0x01},
				Heads: []head{
					{control.Array, 0, 0},
					{control.Map, 0, 0},
					{control.Unsigned, 1, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0xa1, 0x01, 0x02},
				Heads: []head{
					{control.Map, 1, 1},
					{control.Unsigned, 1, 1},
					{control.Unsigned, 2, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0xf4, 0xf5, 0xf6, 0xf7, 0xf8, 0x20},
				Heads: []head{
					{control.Simple, 20, 0},
					{control.Simple, 21, 0},
					{control.Simple, 22, 0},
					{control.Simple, 23, 0},
					{control.Simple, 32, 0},
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0xf9, 0x3c, 0x00, 0xfa, 0x47, 0x80, 0x00, 0x00},
				Heads: []head{
					{control.Simple, 0x3c00, 0},
					{control.Simple, 0x47800000, 0},
				},
				Mark: oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				for _, r := range []io.Reader{bytes.NewBuffer(tc.Input), bytes.NewReader(tc.Input)} {
					d := control.NewDecoder(r, control.Options{Strict: true})

					heads := []head{}

					for d.Next() {
						heads = append(heads, head{d.Type(), d.Argument(), d.Depth()})

						t.Logf("Type: %s\n", d.Type().Abbr)
						t.Logf("Stack: %s\n", spew.Sdump(d.Stack()))
					}
					err := d.Err()
					require.NoError(t, err, tc.Mark)

					require.Equal(t, tc.Heads, heads, tc.Mark)
					require.Equal(t, 0, d.Depth(), tc.Mark)
					require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
				}
			})
		}
	})

	t.Run("reject", func(t *testing.T) {
		type TC struct {
			Input []byte
			Opts  control.Options
			Limit bool
			Mark  error
		}

		tcs := []TC{
			{Input: []byte{0x1c}, Mark: oops.New("reserved info 28")},
			{Input: []byte{0x5d}, Mark: oops.New("reserved info 29")},
			{Input: []byte{0xde}, Mark: oops.New("reserved info 30")},
			{Input: []byte{0x5f}, Mark: oops.New("indefinite length")},
			{Input: []byte{0xff}, Mark: oops.New("break")},
			{Input: []byte{0xf8, 0x10}, Mark: oops.New("simple value below 32 in two bytes")},
			{Input: []byte{0x19, 0x01}, Mark: oops.New("truncated argument")},
			{Input: []byte{0x43, 0x01}, Mark: oops.New("truncated string")},
			{Input: []byte{0x82, 0x01}, Mark: oops.New("truncated array")},
			{Input: []byte{0xc2}, Mark: oops.New("truncated tag")},
			{Input: []byte{0x18, 0x17}, Opts: control.Options{Strict: true}, Mark: oops.New("non-canonical a1")},
			{Input: []byte{0x19, 0x00, 0xff}, Opts: control.Options{Strict: true}, Mark: oops.New("non-canonical a2")},
			{Input: []byte{0x3a, 0x00, 0x00, 0xff, 0xff}, Opts: control.Options{Strict: true}, Mark: oops.New("non-canonical a4")},
			{Input: []byte{0xdb, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, Opts: control.Options{Strict: true}, Mark: oops.New("non-canonical a8")},
			{Input: []byte{0x45, 1, 2, 3, 4, 5}, Opts: control.Options{MaxData: 4}, Limit: true, Mark: oops.New("data limit")},
			{Input: []byte{0x81, 0x81, 0x81, 0x00}, Opts: control.Options{MaxDepth: 2}, Limit: true, Mark: oops.New("depth limit")},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input), tc.Opts)

				for d.Next() {
				}

				err := d.Err()
				require.Error(t, err, tc.Mark)

				if tc.Limit {
					require.True(t, control.ErrLimit.Has(err), tc.Mark)
				} else {
					require.True(t, control.Error.Has(err), "%+v %v", err, tc.Mark)
				}
			})
		}
	})

	t.Run("lenient", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{0x18, 0x17}), control.Options{})

		require.True(t, d.Next())
		require.Equal(t, uint64(23), d.Argument())
		require.Equal(t, control.Arg1, d.Class())
	})
}

func TestDecoderData(t *testing.T) {
	d := control.NewDecoder(bytes.NewBuffer([]byte{0x63, 'a', 'b', 'c', 0x40, 0x01}), control.Options{})

	require.True(t, d.Next())
	require.Equal(t, control.Text, d.Type())

	data, err := d.Data()
	require.NoError(t, err)
	require.Equal(t, "abc", string(data))

	_, err = d.Data()
	require.Error(t, err)

	require.True(t, d.Next())
	data, err = d.Data()
	require.NoError(t, err)
	require.Empty(t, data)

	require.True(t, d.Next())
	_, err = d.Data()
	require.True(t, errors.Is(err, control.ErrInvalidOperation))
}

func TestDecoderSkip(t *testing.T) {
	// [1, [2, "ab"], 3], 4
	input := []byte{0x83, 0x01, 0x82, 0x02, 0x62, 'a', 'b', 0x03, 0x04}

	for _, r := range []io.Reader{bytes.NewBuffer(input), bytes.NewReader(input)} {
		d := control.NewDecoder(r, control.Options{})

		require.True(t, d.Next())
		require.Equal(t, control.Array, d.Type())
		require.Equal(t, 1, d.Depth())

		require.NoError(t, d.Skip())
		require.Equal(t, 0, d.Depth())

		require.True(t, d.Next())
		require.Equal(t, control.Unsigned, d.Type())
		require.Equal(t, uint64(4), d.Argument())

		require.False(t, d.Next())
		require.NoError(t, d.Err())
	}

	t.Run("scalar", func(t *testing.T) {
		d := control.NewDecoder(strings.NewReader("\x62ab\x05"), control.Options{})

		require.True(t, d.Next())
		require.NoError(t, d.Skip())

		require.True(t, d.Next())
		require.Equal(t, uint64(5), d.Argument())
	})

	t.Run("map", func(t *testing.T) {
		// {1: [2], 3: 4}, 5
		d := control.NewDecoder(bytes.NewReader([]byte{0xa2, 0x01, 0x81, 0x02, 0x03, 0x04, 0x05}), control.Options{})

		require.True(t, d.Next())
		require.Equal(t, control.Map, d.Type())
		require.NoError(t, d.Skip())
		require.Equal(t, 0, d.Depth())

		require.True(t, d.Next())
		require.Equal(t, uint64(5), d.Argument())
	})

	t.Run("map missing value", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{0xa1, 0x01}), control.Options{})

		require.True(t, d.Next())
		require.Error(t, d.Skip())
	})

	t.Run("truncated", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{0x82, 0x01}), control.Options{})

		require.True(t, d.Next())
		require.Error(t, d.Skip())
	})
}
