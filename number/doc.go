// Package number provides the exact numeric model shared by the binary and
// text encodings.
//
// A Number is one of a closed set of representations:
//
//	Int64            fixed width signed integer fast path
//	BigInt           arbitrary precision integer
//	DecimalFraction  unscaled * 10 ^ exponent
//	BinaryFraction   significand * 2 ^ exponent
//	Rational         numerator / denominator
//	Special          ±Infinity, NaN and signaling NaN
//
// Exponents are arbitrary precision integers. Zero fractions carry their own
// sign so that -0 survives conversion from IEEE floats.
//
// Arithmetic
//
// Add, Subtract, Multiply, Divide and Remainder are exact. Operands are
// promoted to the most specific representation able to hold both of them
// exactly:
//
//	integer < binary fraction < decimal fraction < rational
//
// Binary fractions become decimal fractions by multiplying the significand by
// 5^k, which is why products of floats and decimals carry long digit strings:
// they are exact, not rounded.
//
// Ordering
//
// Compare is a total order. -Infinity sorts before every finite value,
// +Infinity after, and every NaN after +Infinity. All NaNs compare equal to
// each other. Equal keeps IEEE semantics instead: NaN is never equal to
// anything.
//
// Values are immutable and safe for concurrent use. No operation blocks; a
// pathological exponent allocates proportionally large integers, so callers
// decoding untrusted input should bound exponents before they reach this
// package.
package number
