package numcbor

import "github.com/calebcase/numcbor/control"

// DecOptions configure a Decoder. Zero limits mean no limit.
type DecOptions struct {
	// Strict rejects non-canonical heads and bignums.
	Strict bool

	// MaxBignumBytes bounds the magnitude of a bignum integer, mantissa,
	// numerator or denominator.
	MaxBignumBytes int

	// MaxExponentBytes bounds the encoded size of a bignum exponent in tags
	// 4 and 5. It does not bound the exponent's value: a nine byte head
	// already reaches 2^64-1. Use MaxExponent for that.
	MaxExponentBytes int

	// MaxExponent bounds the absolute value of the exponent in tags 4 and 5.
	// Arithmetic on a fraction can allocate integers in proportion to its
	// exponent.
	MaxExponent int

	// MaxStringBytes bounds byte and text strings, including those of
	// skipped items.
	MaxStringBytes int

	// MaxDepth bounds the nesting of arrays, maps and tags.
	MaxDepth int
}

// DefaultDecOptions returns the options used by Unmarshal.
func DefaultDecOptions() DecOptions {
	return DecOptions{
		Strict:           true,
		MaxBignumBytes:   1 << 16,
		MaxExponentBytes: 16,
		MaxExponent:      1 << 20,
		MaxStringBytes:   1 << 20,
		MaxDepth:         32,
	}
}

func (o DecOptions) control() control.Options {
	return control.Options{
		Strict:   o.Strict,
		MaxData:  uint64(o.MaxStringBytes),
		MaxDepth: o.MaxDepth,
	}
}
