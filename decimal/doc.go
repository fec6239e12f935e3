// Package decimal provides the fraction items: decimal fractions, bigfloats
// and rationals.
//
// The equation for a fraction is:
//
//	number = value * base ^ scale
//
// Where base is 10 for a decimal fraction (tag 4) and 2 for a bigfloat (tag
// 5). For example:
//
//	273.15 = 27315 * 10^-2
//	1.5    = 3 * 2^-1
//
// A rational (tag 30) is numerator / denominator with a positive denominator.
//
// # Encoding
//
// Every fraction is a tag head followed by a two element array of integers.
// Each integer is a plain head when it fits 64 bits, otherwise a bignum (tags
// 2 and 3), so both the scale and the value are unbounded:
//
//	| Tag | Array         | Meaning                     |
//	|-----|---------------|-----------------------------|
//	| 4   | [scale, value]| value * 10^scale            |
//	| 5   | [scale, value]| value * 2^scale             |
//	| 30  | [num, den]    | num / den, den > 0          |
//	|-----|---------------|-----------------------------|
//
// # Examples
//
// 273.15 (6 bytes)
//
//	| c4          | Tag 4.
//	| 82          | Array of 2.
//	| 21          | Scale of -2.
//	| 19 6a b3    | Value of +27315.
//
// 1.5 as a bigfloat (4 bytes)
//
//	| c5          | Tag 5.
//	| 82          | Array of 2.
//	| 20          | Scale of -1.
//	| 03          | Value of +3.
//
// -1/3 (5 bytes)
//
//	| d8 1e       | Tag 30.
//	| 82          | Array of 2.
//	| 20          | Numerator of -1.
//	| 03          | Denominator of +3.
//
// The sign of a zero fraction is not representable in these items.
package decimal
