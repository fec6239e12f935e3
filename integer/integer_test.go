package integer

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numcbor/control"
)

type TC struct {
	name string
	blk  *Block
	data []byte
}

var tcs = []TC{
	{
		name: "0",
		blk:  &Block{Value: []byte{0x00}},
		data: []byte{0x00},
	},
	{
		name: "+1",
		blk:  &Block{Value: []byte{0x01}},
		data: []byte{0x01},
	},
	{
		name: "-1",
		blk:  &Block{Value: []byte{0x01}, Negative: true},
		data: []byte{0x20},
	},
	{
		name: "+23",
		blk:  &Block{Value: []byte{0x17}},
		data: []byte{0x17},
	},
	{
		name: "+24",
		blk:  &Block{Value: []byte{0x18}},
		data: []byte{0x18, 0x18},
	},
	{
		name: "-24",
		blk:  &Block{Value: []byte{0x18}, Negative: true},
		data: []byte{0x37},
	},
	{
		name: "-25",
		blk:  &Block{Value: []byte{0x19}, Negative: true},
		data: []byte{0x38, 0x18},
	},
	{
		name: "+255",
		blk:  &Block{Value: []byte{0xff}},
		data: []byte{0x18, 0xff},
	},
	{
		name: "+256",
		blk:  &Block{Value: []byte{0x01, 0x00}},
		data: []byte{0x19, 0x01, 0x00},
	},
	{
		name: "-256",
		blk:  &Block{Value: []byte{0x01, 0x00}, Negative: true},
		data: []byte{0x38, 0xff},
	},
	{
		name: "-257",
		blk:  &Block{Value: []byte{0x01, 0x01}, Negative: true},
		data: []byte{0x39, 0x01, 0x00},
	},
	{
		name: "+65535",
		blk:  &Block{Value: []byte{0xff, 0xff}},
		data: []byte{0x19, 0xff, 0xff},
	},
	{
		name: "+65536",
		blk:  &Block{Value: []byte{0x01, 0x00, 0x00}},
		data: []byte{0x1a, 0x00, 0x01, 0x00, 0x00},
	},
	{
		name: "+4294967295",
		blk:  &Block{Value: []byte{0xff, 0xff, 0xff, 0xff}},
		data: []byte{0x1a, 0xff, 0xff, 0xff, 0xff},
	},
	{
		name: "+4294967296",
		blk:  &Block{Value: []byte{0x01, 0x00, 0x00, 0x00, 0x00}},
		data: []byte{0x1b, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00},
	},
	{
		name: "+18446744073709551615",
		blk: &Block{
			Value: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
		data: []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	},
	{
		name: "+18446744073709551616",
		blk: &Block{
			Value: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		data: []byte{0xc2, 0x49, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	},
	{
		name: "-18446744073709551616",
		blk: &Block{
			Value:    []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			Negative: true,
		},
		data: []byte{0x3b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	},
	{
		name: "-18446744073709551617",
		blk: &Block{
			Value:    []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
			Negative: true,
		},
		data: []byte{0xc3, 0x49, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	},
}

// checkName ensures that the test case name matches the value.
func checkName(t *testing.T, name string, blk *Block) {
	i := new(big.Int)
	err := i.UnmarshalText([]byte(name))
	require.NoError(t, err)

	require.Equal(t, magnitude(new(big.Int).Abs(i)), blk.Value)
	require.Equal(t, i.Sign() < 0, blk.Negative)
	require.Zero(t, i.Cmp(blk.Big()))
}

func TestMarshalUnmarshal(t *testing.T) {
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				checkName(t, tc.name, blk)
			})

			t.Run("oracle", func(t *testing.T) {
				data, err := cbor.Marshal(tc.blk.Big())
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})
		})
	}
}

func TestUnmarshalTrailing(t *testing.T) {
	blk := &Block{}
	err := blk.UnmarshalBinary([]byte{0x01, 0x02})
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestEncodeDecode(t *testing.T) {
	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)

			t.Run("encode", func(t *testing.T) {
				enc := NewEncoder(Schema{}, control.NewEncoder(buf))
				err := enc.EncodeBig(tc.blk.Big())
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				dec := NewDecoder(Schema{Strict: true}, control.NewDecoder(buf, control.Options{Strict: true}))
				blk := &Block{}
				err := dec.Decode(blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				checkName(t, tc.name, blk)

				err = dec.Decode(blk)
				require.Equal(t, io.EOF, err)
			})
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	enc := NewEncoder(Schema{}, control.NewEncoder(&bytes.Buffer{}))

	err := enc.Encode(&Block{Value: []byte{0x00}, Negative: true})
	require.Error(t, err)
	require.True(t, Error.Has(err))

	err = enc.Encode(&Block{})
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestNullable(t *testing.T) {
	buf := &bytes.Buffer{}
	schema := Schema{Nullable: true}

	err := NewEncoder(schema, control.NewEncoder(buf)).EncodeBig(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xf6}, buf.Bytes())

	blk := &Block{Value: []byte{0x01}}
	err = NewDecoder(schema, control.NewDecoder(buf, control.Options{})).Decode(blk)
	require.NoError(t, err)
	require.Nil(t, blk.Value)
	require.Nil(t, blk.Big())
}

func TestDecodeLenient(t *testing.T) {
	type TC struct {
		name string
		data []byte
		want string
	}

	tcs := []TC{
		{
			name: "bignum fits head",
			data: []byte{0xc2, 0x41, 0x01},
			want: "1",
		},
		{
			name: "bignum leading zero",
			data: []byte{0xc2, 0x49, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: "72057594037927936",
		},
		{
			name: "empty negative bignum",
			data: []byte{0xc3, 0x40},
			want: "-1",
		},
		{
			name: "non-minimal head",
			data: []byte{0x19, 0x00, 0x01},
			want: "1",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			cd := control.NewDecoder(bytes.NewReader(tc.data), control.Options{})
			blk := &Block{}

			err := NewDecoder(Schema{}, cd).Decode(blk)
			require.NoError(t, err)
			require.Equal(t, tc.want, blk.Big().String())

			t.Run("strict", func(t *testing.T) {
				cd := control.NewDecoder(bytes.NewReader(tc.data), control.Options{Strict: true})

				err := NewDecoder(Schema{Strict: true}, cd).Decode(&Block{})
				require.Error(t, err)
				require.True(t, Error.Has(err))
			})
		})
	}
}

func TestDecodeReject(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		data   []byte
		limit  bool
	}

	tcs := []TC{
		{
			name: "bignum content not bytes",
			data: []byte{0xc2, 0x01},
		},
		{
			name: "unexpected tag",
			data: []byte{0xc4, 0x82, 0x01, 0x01},
		},
		{
			name: "text",
			data: []byte{0x61, 0x31},
		},
		{
			name: "null",
			data: []byte{0xf6},
		},
		{
			name: "float",
			data: []byte{0xf9, 0x3c, 0x00},
		},
		{
			name: "truncated tag",
			data: []byte{0xc2},
		},
		{
			name: "truncated bignum",
			data: []byte{0xc2, 0x49, 0x01},
		},
		{
			name: "truncated head",
			data: []byte{0x1a, 0x01},
		},
		{
			name:   "bignum limit",
			schema: Schema{MaxBytes: 9},
			data:   []byte{0xc2, 0x4a, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			limit:  true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			cd := control.NewDecoder(bytes.NewReader(tc.data), control.Options{})

			err := NewDecoder(tc.schema, cd).Decode(&Block{})
			require.Error(t, err)
			require.True(t, Error.Has(err))
			require.Equal(t, tc.limit, control.ErrLimit.Has(err))
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(Schema{}, control.NewEncoder(buf))

	blk := &Block{
		Value:    []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
		Negative: true,
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{0xc3, 0x49, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		cd := control.NewDecoder(bytes.NewReader(data), control.Options{Strict: true})
		dec := NewDecoder(Schema{Strict: true}, cd)

		err := dec.Decode(&blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
