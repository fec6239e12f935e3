// Package numcbor encodes and decodes the numeric items of CBOR.
//
// Decoded numbers are number.Number values:
//
//	| Item                       | Decoded as                          |
//	|----------------------------|-------------------------------------|
//	| major 0, major 1           | number.Int64 or number.BigInt       |
//	| tag 2, tag 3 (bignum)      | number.Int64 or number.BigInt       |
//	| tag 4 [exponent, mantissa] | number.DecimalFraction              |
//	| tag 5 [exponent, mantissa] | number.BinaryFraction               |
//	| tag 30 [numerator, denom]  | number.Rational                     |
//	| major 7 float 16/32/64     | number.BinaryFraction or Special    |
//	| false, true                | bool                                |
//	| null                       | nil                                 |
//	| undefined                  | Undefined                           |
//	|----------------------------|-------------------------------------|
//
// Other items are skipped and reported with ErrUnsupported so the stream
// stays aligned on the next item.
//
// Encoding is canonical. Integral values of every representation are written
// as integers with the smallest head, so 1, 1.0 and 2/2 share the bytes 01.
// Negative zeros are written as the float -0.0. Other binary fractions and
// specials use the shortest float that holds them.
package numcbor
