// Package jsonnum bridges JSON number text and numeric values.
//
// Parsing accepts exactly the JSON number grammar:
//
//	number   = [ "-" ] integer [ fraction ] [ exponent ]
//	integer  = "0" / ( digit1-9 *digit )
//	fraction = "." 1*digit
//	exponent = ( "e" / "E" ) [ "+" / "-" ] 1*digit
//
// and always yields a number.DecimalFraction, keeping trailing zeros and the
// sign of zero. Formatting renders finite values as JSON number text and
// non-finite values as null.
package jsonnum
